package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rcardoso/beneficio-ofx-go/internal/domain/repository"
	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
)

// StatementUseCase conduz uma execução completa: autentica o provedor, busca
// o mês, converte para o modelo canônico e entrega o documento ao export.
type StatementUseCase struct {
	providerFactory repository.ProviderFactory
	exportRepo      repository.ExportRepository
	configRepo      repository.ConfigRepository
	console         types.ConsoleInterface
}

// NewStatementUseCase creates a new statement use case.
func NewStatementUseCase(
	providerFactory repository.ProviderFactory,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *StatementUseCase {
	return &StatementUseCase{
		providerFactory: providerFactory,
		exportRepo:      exportRepo,
		configRepo:      configRepo,
		console:         console,
	}
}

// Run executa a busca e exportação de um mês. Qualquer erro aborta a
// execução inteira; dados parciais são descartados, nunca emitidos.
func (uc *StatementUseCase) Run(ctx context.Context, args *types.CLIArgs) error {
	prov, err := uc.providerFactory.Build(ctx, args)
	if err != nil {
		return err
	}

	status := uc.console.Status(fmt.Sprintf("Fetching %s statement for %s/%d", prov.Name(), args.Month, args.Year))
	statement, err := prov.MonthStatement(ctx, args.Year, args.Month)
	status.Stop()
	if err != nil {
		return err
	}

	path, err := uc.exportRepo.ExportToOFX(statement, args.OutputFile)
	if err != nil {
		return err
	}
	if path != "" {
		uc.console.LogSuccess("Wrote OFX for %s/%d at %s", args.Month, args.Year, path)
	}

	if args.ReportPDF {
		base, dir := pdfDestination(args.OutputFile)
		pdfPath, err := uc.exportRepo.ExportToPDF(statement, base, dir)
		if err != nil {
			return err
		}
		uc.console.LogSuccess("Wrote PDF report at %s", pdfPath)
	}

	return nil
}

// pdfDestination deriva o nome-base e o diretório do relatório PDF a partir
// do arquivo OFX de saída, quando houver.
func pdfDestination(outputFile string) (base, dir string) {
	if outputFile == "" {
		return "", ""
	}
	name := filepath.Base(outputFile)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return name, filepath.Dir(outputFile)
}
