package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcardoso/beneficio-ofx-go/internal/domain/entity"
	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
)

func flashItem(id string, day int, amount uint64, status, txnType string) Transaction {
	return Transaction{
		ID:          id,
		Date:        types.NewAPITime(time.Date(2025, time.March, day, 12, 0, 0, 0, time.UTC)),
		AmountCents: amount,
		Description: "desc " + id,
		Status:      status,
		Type:        txnType,
	}
}

func TestMonthStatementRequiresAuth(t *testing.T) {
	client := NewClient("user@example.com", types.NewSecret("hunter2"), "comp-1", "emp-1", Endpoints{})
	_, err := client.MonthStatement(context.Background(), 2025, time.March)
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestMonthStatementRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/person.getStatement", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("batch"))

		// Token cru no Authorization e com prefixo Bearer no x-flash-auth.
		assert.Equal(t, "app-token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "Bearer app-token-1", r.Header.Get("x-flash-auth"))
		assert.Equal(t, "comp-1", r.Header.Get("company-id"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))

		var input map[string]statementInput
		require.NoError(t, json.Unmarshal([]byte(r.URL.Query().Get("input")), &input))
		body := input["0"].JSON
		assert.Equal(t, 0, body.Pagination.CurrentPage)
		assert.Equal(t, statementPageSize, body.Pagination.PageSize)
		assert.Equal(t, time.Date(2025, time.March, 1, 3, 0, 0, 0, time.UTC), body.Filter.StartDate.Time)
		assert.Equal(t, time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC), body.Filter.EndDate.Time)
		assert.JSONEq(t, string(statementMeta), string(input["0"].Meta))

		items := []Transaction{
			flashItem("f1", 31, 4590, StatusCompleted, TypeOpenLoopPayment),
			flashItem("f2", 15, 2000, "PROCESSING", TypeOpenLoopPayment),
			flashItem("f3", 2, 80000, StatusCompleted, TypeDeposit),
		}
		payload, err := json.Marshal(items)
		require.NoError(t, err)
		fmt.Fprintf(w, `[{"result":{"data":{"json":{"items":%s}}}}]`, payload)
	}))
	defer server.Close()

	client := NewClientWithToken("app-token-1", "comp-1", "emp-1", Endpoints{BFFURL: server.URL})
	statement, err := client.MonthStatement(context.Background(), 2025, time.March)
	require.NoError(t, err)

	assert.Equal(t, ProviderName, statement.AccountLabel)
	assert.Equal(t, time.Date(2025, time.March, 31, 12, 0, 0, 0, time.UTC), statement.PeriodStart)
	assert.Equal(t, time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC), statement.PeriodEnd)

	require.Len(t, statement.Transactions, 2)
	assert.Equal(t, entity.KindDebit, statement.Transactions[0].Kind)
	assert.Equal(t, int64(-4590), statement.Transactions[0].AmountCents)
	assert.Equal(t, entity.KindCredit, statement.Transactions[1].Kind)
	assert.Equal(t, int64(80000), statement.Transactions[1].AmountCents)
}

func TestMonthStatementMissingEnvelope(t *testing.T) {
	// Resposta sem envelope não é erro de parse: vira resultado vazio e a
	// conversão rejeita o extrato sem dados.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := NewClientWithToken("app-token-1", "comp-1", "emp-1", Endpoints{BFFURL: server.URL})
	_, err := client.MonthStatement(context.Background(), 2025, time.March)
	assert.ErrorIs(t, err, types.ErrEmptyStatement)
}

func TestMonthStatementRejectsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":"expired token"}`)
	}))
	defer server.Close()

	client := NewClientWithToken("app-token-1", "comp-1", "emp-1", Endpoints{BFFURL: server.URL})
	_, err := client.MonthStatement(context.Background(), 2025, time.March)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "expired token")
}

func TestToStatementEmpty(t *testing.T) {
	_, err := ToStatement(nil)
	assert.ErrorIs(t, err, types.ErrEmptyStatement)
}

func TestToStatementPeriodBeforeFiltering(t *testing.T) {
	items := []Transaction{
		flashItem("f1", 31, 100, "PROCESSING", TypeOpenLoopPayment),
		flashItem("f2", 15, 200, StatusCompleted, TypeOpenLoopPayment),
		flashItem("f3", 2, 300, "CANCELED", TypeOpenLoopPayment),
	}

	statement, err := ToStatement(items)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 31, 12, 0, 0, 0, time.UTC), statement.PeriodStart)
	assert.Equal(t, time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC), statement.PeriodEnd)
	require.Len(t, statement.Transactions, 1)
	assert.Equal(t, "f2", statement.Transactions[0].ID)
}

func TestToStatementAllFiltered(t *testing.T) {
	items := []Transaction{flashItem("f1", 10, 100, "PROCESSING", TypeOpenLoopPayment)}

	statement, err := ToStatement(items)
	require.NoError(t, err)
	assert.Empty(t, statement.Transactions)
}
