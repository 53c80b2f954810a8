package export

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/rcardoso/beneficio-ofx-go/internal/domain/entity"
)

// Constantes do esqueleto fixo do documento.
const (
	batchTransactionID = "transaction_id"
	severityInfo       = "INFO"

	// A hora é sempre zerada: só a data de calendário do provedor
	// sobrevive, com o marcador fixo de fuso do Brasil.
	ofxDateSuffix = "000000[-3:BRT]"
)

// Document is the root OFX envelope. Exactly one of Bank or CreditCard is
// present; this exporter always emits the credit-card block.
type Document struct {
	XMLName    xml.Name           `xml:"OFX"`
	Bank       *BankMessage       `xml:"BANKMSGSRSV1,omitempty"`
	CreditCard *CreditCardMessage `xml:"CREDITCARDMSGSRSV1,omitempty"`
}

// BankMessage wraps a banking statement response.
type BankMessage struct {
	Statement BankResponse `xml:"STMTTRNRS"`
}

// CreditCardMessage wraps a credit-card statement response.
type CreditCardMessage struct {
	Statement CreditCardResponse `xml:"CCSTMTTRNRS"`
}

// BankResponse is the banking transaction-response block.
type BankResponse struct {
	TransactionID string         `xml:"TRNUID"`
	Status        ResponseStatus `xml:"STATUS"`
	Statement     StatementBody  `xml:"STMTRS"`
}

// CreditCardResponse is the credit-card transaction-response block.
type CreditCardResponse struct {
	TransactionID string         `xml:"TRNUID"`
	Status        ResponseStatus `xml:"STATUS"`
	Statement     StatementBody  `xml:"CCSTMTRS"`
}

// ResponseStatus is the fixed success status block.
type ResponseStatus struct {
	Code     int    `xml:"CODE"`
	Severity string `xml:"SEVERITY"`
}

// StatementBody carries the statement itself.
type StatementBody struct {
	Currency     string          `xml:"CURDEF"`
	BankAccount  BankAccount     `xml:"BANKACCTFROM"`
	Transactions TransactionList `xml:"BANKTRANLIST"`
}

// BankAccount identifies the source account; the provider display name is
// its only field.
type BankAccount struct {
	BankID string `xml:"BANKID"`
}

// TransactionList is the ordered transaction list with its period bounds.
type TransactionList struct {
	Start        string             `xml:"DTSTART"`
	End          string             `xml:"DTEND"`
	Transactions []TransactionEntry `xml:"STMTTRN"`
}

// TransactionEntry is one statement transaction.
type TransactionEntry struct {
	Type       string `xml:"TRNTYPE"`
	PostedDate string `xml:"DTPOSTED"`
	Amount     string `xml:"TRNAMT"`
	ID         string `xml:"FITID"`
	Memo       string `xml:"MEMO"`
}

// FormatDate renders an OFX date string (YYYYMMDD000000[-3:BRT]).
func FormatDate(t time.Time) string {
	return t.Format("20060102") + ofxDateSuffix
}

// BuildDocument mapeia o extrato canônico na árvore OFX. O bloco bancário
// fica ausente; os cartões benefício sempre saem como cartão de crédito.
func BuildDocument(statement *entity.Statement) *Document {
	entries := make([]TransactionEntry, 0, len(statement.Transactions))
	for _, txn := range statement.Transactions {
		entries = append(entries, TransactionEntry{
			Type:       string(txn.Kind),
			PostedDate: FormatDate(txn.Date),
			Amount:     txn.Amount(),
			ID:         txn.ID,
			Memo:       txn.Description,
		})
	}

	return &Document{
		CreditCard: &CreditCardMessage{
			Statement: CreditCardResponse{
				TransactionID: batchTransactionID,
				Status:        ResponseStatus{Code: 0, Severity: severityInfo},
				Statement: StatementBody{
					Currency:    statement.Currency,
					BankAccount: BankAccount{BankID: statement.AccountLabel},
					Transactions: TransactionList{
						Start:        FormatDate(statement.PeriodStart),
						End:          FormatDate(statement.PeriodEnd),
						Transactions: entries,
					},
				},
			},
		},
	}
}

// Render serializes the statement into the OFX document text. Failures come
// back verbatim; there is no partial output.
func Render(statement *entity.Statement) (string, error) {
	out, err := xml.Marshal(BuildDocument(statement))
	if err != nil {
		return "", fmt.Errorf("error rendering OFX document: %w", err)
	}
	return string(out), nil
}
