package repository

import (
	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)

	// LoadEnv carrega um arquivo .env do diretório atual, quando presente.
	LoadEnv() error
}
