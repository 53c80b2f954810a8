package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rcardoso/beneficio-ofx-go/internal/domain/entity"
	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
)

// Statuses and transaction types the BFF reports.
const (
	StatusCompleted     = "COMPLETED"
	TypeDeposit         = "DEPOSIT"
	TypeOpenLoopPayment = "OPEN_LOOP_PAYMENT"
)

// statementPageSize é o tamanho da única página pedida. Meses com mais
// transações liquidadas que isso são truncados silenciosamente; paginar o
// endpoint continua pendente.
// TODO: paginar person.getStatement usando meta.totalPages.
const statementPageSize = 100

// Transaction is one raw item from person.getStatement.
type Transaction struct {
	ID          string        `json:"_id"`
	Date        types.APITime `json:"date"`
	AmountCents uint64        `json:"amount"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	Type        string        `json:"type"`
}

// Estruturas da query no formato de batching do trpc.
type statementInput struct {
	JSON statementBody   `json:"json"`
	Meta json.RawMessage `json:"meta"`
}

type statementBody struct {
	Pagination statementPagination `json:"pagination"`
	Filter     statementFilter     `json:"filter"`
}

type statementPagination struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}

type statementFilter struct {
	StartDate types.APITime `json:"startDate"`
	EndDate   types.APITime `json:"endDate"`
}

var statementMeta = json.RawMessage(`{"values":{"filter.endDate":["Date"],"filter.startDate":["Date"]}}`)

// statementResponse é um elemento do envelope duplamente aninhado que o
// batching do trpc devolve.
type statementResponse struct {
	Result struct {
		Data struct {
			JSON struct {
				Items []Transaction `json:"items"`
			} `json:"json"`
		} `json:"data"`
	} `json:"result"`
}

// MonthStatement issues the single-page month query and converts the result
// into the canonical statement. Requires an authenticated session.
func (c *Client) MonthStatement(ctx context.Context, year int, month time.Month) (*entity.Statement, error) {
	if c.state != authAuthenticated {
		return nil, types.ErrNotAuthenticated
	}
	if year == 0 {
		year = time.Now().Local().Year()
	}

	// A janela segue a convenção de offset fixo -03:00 da Flash: o primeiro
	// instante é 03:00 do dia 1 e o último é 23:59:59 do último dia do mês.
	start := time.Date(year, month, 1, 3, 0, 0, 0, time.UTC)
	end := time.Date(year, month, 1, 23, 59, 59, 0, time.UTC).AddDate(0, 1, -1)

	input, err := json.Marshal(map[string]statementInput{
		"0": {
			JSON: statementBody{
				Pagination: statementPagination{CurrentPage: 0, PageSize: statementPageSize},
				Filter: statementFilter{
					StartDate: types.NewAPITime(start),
					EndDate:   types.NewAPITime(end),
				},
			},
			Meta: statementMeta,
		},
	})
	if err != nil {
		return nil, err
	}

	endpoint := c.endpoints.BFFURL + "/person.getStatement"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("batch", "1")
	params.Set("input", string(input))
	req.URL.RawQuery = params.Encode()

	req.Header.Set("Authorization", c.token)
	req.Header.Set("x-flash-auth", "Bearer "+c.token)
	req.Header.Set("company-id", c.companyID)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flash statement: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("flash statement: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flash statement: unexpected status %d: %s", resp.StatusCode, raw)
	}

	var batches []statementResponse
	if err := json.Unmarshal(raw, &batches); err != nil {
		return nil, &types.ParseError{Err: err, Body: string(raw)}
	}

	// Envelope ausente não é erro: vira resultado vazio, e a conversão é
	// quem rejeita extrato sem dados.
	var items []Transaction
	if len(batches) > 0 {
		items = batches[len(batches)-1].Result.Data.JSON.Items
	}

	return ToStatement(items)
}

// ToStatement converte os itens brutos da Flash no extrato canônico. As
// mesmas regras de período e de entrada vazia da Caju se aplicam.
func ToStatement(items []Transaction) (*entity.Statement, error) {
	if len(items) == 0 {
		return nil, types.ErrEmptyStatement
	}

	start := items[0].Date.Time
	end := items[len(items)-1].Date.Time

	transactions := make([]entity.Transaction, 0, len(items))
	for _, item := range items {
		if item.Status != StatusCompleted {
			continue
		}

		kind := entity.KindDebit
		amount := -int64(item.AmountCents)
		if item.Type == TypeDeposit {
			kind = entity.KindCredit
			amount = int64(item.AmountCents)
		}

		transactions = append(transactions, entity.Transaction{
			ID:          item.ID,
			Description: item.Description,
			Kind:        kind,
			Date:        item.Date.Time,
			AmountCents: amount,
		})
	}

	return entity.NewStatement(ProviderName, start, end, transactions), nil
}
