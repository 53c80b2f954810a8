package types

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyStatement   = errors.New("no statement items to convert")
	ErrAuthNotStarted   = errors.New("auth not started: call InitiateAuth first")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnknownProvider  = errors.New("unknown provider: valid values are caju, flash")
)

// ParseError reporta um corpo de resposta que não corresponde à forma
// esperada. Body guarda o payload bruto para diagnóstico.
type ParseError struct {
	Err  error
	Body string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response: %v.\nResponse: %s", e.Err, e.Body)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
