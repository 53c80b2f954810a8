package main

import (
	"fmt"
	"os"

	"github.com/rcardoso/beneficio-ofx-go/internal/adapter/driven/config"
	"github.com/rcardoso/beneficio-ofx-go/internal/adapter/driven/export"
	"github.com/rcardoso/beneficio-ofx-go/internal/adapter/driven/provider"
	"github.com/rcardoso/beneficio-ofx-go/internal/adapter/driving/cli"
	"github.com/rcardoso/beneficio-ofx-go/internal/application/usecase"
	"github.com/rcardoso/beneficio-ofx-go/pkg/console"
	"github.com/rcardoso/beneficio-ofx-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	consoleImpl := console.NewConsole()
	providerFactory := provider.NewFactory(consoleImpl)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()

	// Inicializa o caso de uso
	statementUseCase := usecase.NewStatementUseCase(
		providerFactory,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define as dependências no aplicativo CLI
	app.SetStatementUseCase(statementUseCase)
	app.SetConfigRepository(configRepo)
	app.SetConsole(consoleImpl)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
