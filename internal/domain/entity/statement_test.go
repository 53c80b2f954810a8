package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransactionAmount(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{1050, "10.50"},
		{-1050, "-10.50"},
		{0, "0.00"},
		{5, "0.05"},
		{-5, "-0.05"},
		{123456789, "1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			txn := Transaction{AmountCents: tt.cents}
			assert.Equal(t, tt.want, txn.Amount())
		})
	}
}

func TestNewStatementDefaults(t *testing.T) {
	start := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	statement := NewStatement("Caju", start, end, nil)

	assert.Equal(t, DefaultCurrency, statement.Currency)
	assert.Equal(t, "Caju", statement.AccountLabel)
	assert.Equal(t, start, statement.PeriodStart)
	assert.Equal(t, end, statement.PeriodEnd)
	assert.Empty(t, statement.Transactions)
}
