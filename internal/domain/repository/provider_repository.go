package repository

import (
	"context"
	"time"

	"github.com/rcardoso/beneficio-ofx-go/internal/domain/entity"
	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
)

// StatementProvider is the contract both benefit-card providers fulfill:
// produce the canonical statement for one month. The providers share no
// code — authentication and pagination are entirely provider-specific.
type StatementProvider interface {
	// Name returns the provider display name used as the statement's
	// account label.
	Name() string

	// MonthStatement fetches and converts one month of transactions.
	// A year of 0 means the current local year.
	MonthStatement(ctx context.Context, year int, month time.Month) (*entity.Statement, error)
}

// ProviderFactory builds and authenticates the provider selected by the CLI
// arguments, driving whatever auth flow the provider requires.
type ProviderFactory interface {
	Build(ctx context.Context, args *types.CLIArgs) (StatementProvider, error)
}
