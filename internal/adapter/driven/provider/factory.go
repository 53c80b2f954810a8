package provider

import (
	"context"
	"strings"

	"github.com/rcardoso/beneficio-ofx-go/internal/adapter/driven/caju"
	"github.com/rcardoso/beneficio-ofx-go/internal/adapter/driven/flash"
	"github.com/rcardoso/beneficio-ofx-go/internal/domain/repository"
	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
)

// FactoryImpl constrói e autentica o provedor escolhido pela linha de
// comando. O fluxo interativo do segundo fator da Flash passa pelo console.
type FactoryImpl struct {
	console types.ConsoleInterface
}

// NewFactory cria uma nova implementação do ProviderFactory.
func NewFactory(console types.ConsoleInterface) repository.ProviderFactory {
	return &FactoryImpl{console: console}
}

// Build resolve o provedor e leva a autenticação até o fim. Qualquer falha
// aborta a execução; não há retry.
func (f *FactoryImpl) Build(ctx context.Context, args *types.CLIArgs) (repository.StatementProvider, error) {
	switch strings.ToLower(args.Provider) {
	case "caju":
		return f.buildCaju(ctx, args)
	case "flash":
		return f.buildFlash(ctx, args)
	default:
		return nil, types.ErrUnknownProvider
	}
}

func (f *FactoryImpl) buildCaju(ctx context.Context, args *types.CLIArgs) (repository.StatementProvider, error) {
	client := caju.NewClient(args.BaseURL, args.UserID, args.EmployeeID)
	if err := client.Login(ctx, args.BearerToken, args.RefreshToken); err != nil {
		return nil, err
	}
	return client, nil
}

func (f *FactoryImpl) buildFlash(ctx context.Context, args *types.CLIArgs) (repository.StatementProvider, error) {
	if args.FlashOverrideToken != "" {
		f.console.LogInfo("Using the supplied Flash application token; skipping login")
		return flash.NewClientWithToken(args.FlashOverrideToken, args.FlashCompanyID, args.EmployeeID, flash.Endpoints{}), nil
	}

	password := args.FlashPassword
	if password.IsZero() {
		raw, err := f.console.AskSecret("Senha Flash")
		if err != nil {
			return nil, err
		}
		password = types.NewSecret(raw)
	}

	client := flash.NewClient(args.FlashUsername, password, args.FlashCompanyID, args.EmployeeID, flash.Endpoints{})
	if err := client.InitiateAuth(ctx); err != nil {
		return nil, err
	}

	code, err := f.console.AskText("Código SMS enviado pela Flash")
	if err != nil {
		return nil, err
	}
	if err := client.FinishLogin(ctx, strings.TrimSpace(code)); err != nil {
		return nil, err
	}

	return client, nil
}
