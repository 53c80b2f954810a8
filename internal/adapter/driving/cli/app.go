package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcardoso/beneficio-ofx-go/internal/application/usecase"
	"github.com/rcardoso/beneficio-ofx-go/internal/domain/repository"
	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
	"github.com/rcardoso/beneficio-ofx-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	statementUseCase *usecase.StatementUseCase
	configRepo       repository.ConfigRepository
	console          types.ConsoleInterface
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "beneficio-ofx [flags] <month> [year]",
		Short:   "Exporta extratos de cartão benefício (Caju e Flash) para OFX",
		Args:    cobra.RangeArgs(1, 2),
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "beneficio-ofx version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("provider", "P", "", "Statement provider: caju or flash (env PROVIDER, default flash)")
	rootCmd.PersistentFlags().String("base-url", "", "Base URL of the Caju API (env BASE_URL)")
	rootCmd.PersistentFlags().String("bearer-token", "", "Bearer token captured from the Caju app (env BEARER_TOKEN)")
	rootCmd.PersistentFlags().String("refresh-token", "", "Refresh token captured from the Caju app (env REFRESH_TOKEN)")
	rootCmd.PersistentFlags().String("user-id", "", "Caju user id (env USER_ID)")
	rootCmd.PersistentFlags().String("employee-id", "", "Employee id, shared by both providers (env EMPLOYEE_ID)")
	rootCmd.PersistentFlags().String("flash-username", "", "Flash username (env FLASH_USERNAME)")
	rootCmd.PersistentFlags().String("flash-password", "", "Flash password (env FLASH_PASSWORD)")
	rootCmd.PersistentFlags().String("flash-company", "", "Flash company id (env FLASH_COMPANY_ID)")
	rootCmd.PersistentFlags().String("flash-override-token", "", "Flash application token, skips the login flow (env FLASH_AUTH_OVERRIDE_TOKEN)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "File name to write the OFX to (default stdout)")
	rootCmd.PersistentFlags().Bool("pdf", false, "Also write a PDF report of the statement")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// stringFlagOrEnv resolve um valor: flag explícita primeiro, depois a
// variável de ambiente correspondente.
func (app *CLIApp) stringFlagOrEnv(flagName, envName string) string {
	value, _ := app.rootCmd.Flags().GetString(flagName)
	if value != "" {
		return value
	}
	return os.Getenv(envName)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(positional []string) (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	output, _ := app.rootCmd.Flags().GetString("output")
	reportPDF, _ := app.rootCmd.Flags().GetBool("pdf")

	args := &types.CLIArgs{
		ConfigFile:         configFile,
		Provider:           app.stringFlagOrEnv("provider", "PROVIDER"),
		BaseURL:            app.stringFlagOrEnv("base-url", "BASE_URL"),
		BearerToken:        types.NewSecret(app.stringFlagOrEnv("bearer-token", "BEARER_TOKEN")),
		RefreshToken:       types.NewSecret(app.stringFlagOrEnv("refresh-token", "REFRESH_TOKEN")),
		UserID:             app.stringFlagOrEnv("user-id", "USER_ID"),
		EmployeeID:         app.stringFlagOrEnv("employee-id", "EMPLOYEE_ID"),
		FlashUsername:      app.stringFlagOrEnv("flash-username", "FLASH_USERNAME"),
		FlashPassword:      types.NewSecret(app.stringFlagOrEnv("flash-password", "FLASH_PASSWORD")),
		FlashCompanyID:     app.stringFlagOrEnv("flash-company", "FLASH_COMPANY_ID"),
		FlashOverrideToken: app.stringFlagOrEnv("flash-override-token", "FLASH_AUTH_OVERRIDE_TOKEN"),
		OutputFile:         output,
		ReportPDF:          reportPDF,
	}

	now := time.Now().Local()

	month, err := types.ParseMonth(positional[0])
	if err != nil {
		app.console.LogWarning("%v; using the current month", err)
		month = now.Month()
	}
	args.Month = month

	args.Year = now.Year()
	if len(positional) > 1 {
		year, err := parseYear(positional[1])
		if err != nil {
			return nil, err
		}
		args.Year = year
	}

	return args, nil
}

// mergeConfig preenche campos vazios com os valores do arquivo de
// configuração; flags e ambiente têm precedência.
func (app *CLIApp) mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if args.Provider == "" {
		args.Provider = cfg.Provider
	}
	if args.BaseURL == "" {
		args.BaseURL = cfg.BaseURL
	}
	if args.UserID == "" {
		args.UserID = cfg.UserID
	}
	if args.EmployeeID == "" {
		args.EmployeeID = cfg.EmployeeID
	}
	if args.FlashUsername == "" {
		args.FlashUsername = cfg.FlashUsername
	}
	if args.FlashCompanyID == "" {
		args.FlashCompanyID = cfg.FlashCompanyID
	}
	if args.OutputFile == "" {
		args.OutputFile = cfg.Output
	}
	if !args.ReportPDF {
		args.ReportPDF = cfg.ReportPDF
	}
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, positional []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	// O .env entra antes da resolução de flags/ambiente.
	if err := app.configRepo.LoadEnv(); err != nil {
		return err
	}

	args, err := app.parseArgs(positional)
	if err != nil {
		return err
	}

	if args.ConfigFile != "" {
		cfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		app.mergeConfig(args, cfg)
	}

	if args.Provider == "" {
		args.Provider = "flash"
	}

	ctx := context.Background()
	return app.statementUseCase.Run(ctx, args)
}

// parseYear valida o ano posicional.
func parseYear(raw string) (int, error) {
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 {
		return 0, fmt.Errorf("invalid year: %q", raw)
	}
	return year, nil
}

// SetStatementUseCase sets the statement use case for the CLI app.
func (app *CLIApp) SetStatementUseCase(useCase *usecase.StatementUseCase) {
	app.statementUseCase = useCase
}

// SetConfigRepository sets the config repository for the CLI app.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}

// SetConsole sets the console for the CLI app.
func (app *CLIApp) SetConsole(console types.ConsoleInterface) {
	app.console = console
}
