package caju

import (
	"time"

	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
)

// Transaction statuses the statement endpoint reports. Only confirmed items
// make it into the canonical statement.
const (
	StatusConfirmed = "CONFIRMED"
	StatusRefunded  = "REFUNDED"
	StatusPending   = "PENDING"
)

// LoginResponse is the body of the bearer_token exchange.
type LoginResponse struct {
	BearerToken string `json:"bearerToken"`
}

// StatementResponse is one page of the cursor-paginated statement endpoint.
type StatementResponse struct {
	HasNext bool                    `json:"hasNext"`
	Items   []StatementResponseItem `json:"items"`
}

// StatementResponseItem pairs a statement item with its pagination cursor.
type StatementResponseItem struct {
	Cursor string        `json:"cursor"`
	Item   StatementItem `json:"item"`
}

// StatementItem é um lançamento bruto do extrato. Quase tudo é opcional na
// resposta da API; os defaults são aplicados na conversão.
type StatementItem struct {
	ID             string             `json:"id"`
	Action         string             `json:"action"`
	AmountCents    int64              `json:"amount"`
	Status         string             `json:"status"`
	CreatedAt      types.APITime      `json:"createdAt"`
	Data           *StatementItemData `json:"data"`
	NormalizedName string             `json:"normalizedName"`
}

// StatementItemData carries merchant details for purchase items.
type StatementItemData struct {
	MerchantName  string `json:"merchantName"`
	OperationType string `json:"operationType"`
}

// StatementQuery mirrors the statement endpoint's query parameters. Zero
// values serialize as empty-string sentinels, which is what the API expects
// for absent cursor and date range.
type StatementQuery struct {
	Limit     int
	Cursor    string
	StartDate time.Time
	EndDate   time.Time
}
