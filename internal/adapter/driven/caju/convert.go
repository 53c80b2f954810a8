package caju

import (
	"github.com/rcardoso/beneficio-ofx-go/internal/domain/entity"
	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
)

// ToStatement converte os itens brutos da Caju no extrato canônico.
//
// O período vem do primeiro e do último item na ordem da resposta, antes do
// filtro de status. Entrada vazia é rejeitada; entrada não vazia cujos itens
// foram todos filtrados ainda produz um extrato sem transações.
func ToStatement(items []StatementItem) (*entity.Statement, error) {
	if len(items) == 0 {
		return nil, types.ErrEmptyStatement
	}

	start := items[0].CreatedAt.Time
	end := items[len(items)-1].CreatedAt.Time

	transactions := make([]entity.Transaction, 0, len(items))
	for _, item := range items {
		if item.Status != StatusConfirmed {
			continue
		}
		transactions = append(transactions, toTransaction(item))
	}

	return entity.NewStatement(ProviderName, start, end, transactions), nil
}

func toTransaction(item StatementItem) entity.Transaction {
	// A ação bruta vira o kind canônico sem tradução; só a ausência vira
	// débito. O sinal é negativo apenas para "DEBIT".
	kind := entity.KindDebit
	if item.Action != "" {
		kind = entity.Kind(item.Action)
	}

	amount := item.AmountCents
	if kind == entity.KindDebit {
		amount = -amount
	}

	return entity.Transaction{
		ID:          item.ID,
		Description: description(item),
		Kind:        kind,
		Date:        item.CreatedAt.Time,
		AmountCents: amount,
	}
}

func description(item StatementItem) string {
	if item.Data != nil && item.Data.MerchantName != "" {
		return item.Data.MerchantName
	}
	if item.Action == string(entity.KindCredit) {
		return "Depósito em conta"
	}
	return "unknown"
}
