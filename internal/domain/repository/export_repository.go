package repository

import (
	"github.com/rcardoso/beneficio-ofx-go/internal/domain/entity"
)

// ExportRepository renders the canonical statement and routes the result to
// its destination.
type ExportRepository interface {
	// RenderOFX serializes the statement into the OFX document text.
	RenderOFX(statement *entity.Statement) (string, error)

	// ExportToOFX writes the rendered document to the named file, or to
	// stdout when filename is empty. Returns the absolute path written,
	// or "" for stdout.
	ExportToOFX(statement *entity.Statement, filename string) (string, error)

	// ExportToPDF writes a human-readable statement report.
	ExportToPDF(statement *entity.Statement, filename string, outputDir string) (string, error)
}
