package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorCarriesBody(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := &ParseError{Err: inner, Body: `{"partial":`}

	assert.Contains(t, err.Error(), "failed to parse response")
	assert.Contains(t, err.Error(), `{"partial":`)
	assert.ErrorIs(t, err, inner)
}
