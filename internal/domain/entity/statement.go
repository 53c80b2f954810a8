package entity

import (
	"fmt"
	"time"
)

// DefaultCurrency is the only currency the providers operate in.
const DefaultCurrency = "BRL"

// Kind identifica a direção de uma transação canônica. Caju repassa a ação
// bruta do item como kind (ex.: "CREDIT"); o sinal do valor é negativo apenas
// quando o kind é exatamente "DEBIT".
type Kind string

const (
	KindCredit Kind = "CREDIT"
	KindDebit  Kind = "DEBIT"
)

// Transaction é o registro canônico para o qual os dois provedores convergem.
type Transaction struct {
	ID          string
	Description string
	Kind        Kind
	// Date é naive: só a data de calendário sobrevive na serialização.
	Date time.Time
	// AmountCents carries signed minor units: negative for debits,
	// positive for credits.
	AmountCents int64
}

// Amount renders the value with exactly two decimal digits
// (e.g. 1050 -> "10.50").
func (t Transaction) Amount() string {
	return fmt.Sprintf("%.2f", float64(t.AmountCents)/100.0)
}

// Statement é o extrato canônico de um mês de um provedor.
//
// PeriodStart e PeriodEnd vêm do primeiro e do último item da resposta do
// provedor (ordem mais-recente-primeiro), antes do filtro de status — não de
// uma varredura min/max. Importadores existentes dependem desse detalhe.
type Statement struct {
	Currency     string
	AccountLabel string
	PeriodStart  time.Time
	PeriodEnd    time.Time
	Transactions []Transaction
}

// NewStatement builds a statement in the default currency. The caller is
// responsible for rejecting empty raw input before conversion; a non-empty
// raw input whose items were all filtered out still yields a statement with
// zero transactions.
func NewStatement(accountLabel string, periodStart, periodEnd time.Time, transactions []Transaction) *Statement {
	return &Statement{
		Currency:     DefaultCurrency,
		AccountLabel: accountLabel,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		Transactions: transactions,
	}
}
