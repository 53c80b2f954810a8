package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/rcardoso/beneficio-ofx-go/internal/domain/entity"
	"github.com/rcardoso/beneficio-ofx-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// RenderOFX serializes the statement into OFX text.
func (r *ExportRepositoryImpl) RenderOFX(statement *entity.Statement) (string, error) {
	return Render(statement)
}

// ExportToOFX escreve o documento no arquivo indicado, ou em stdout quando o
// nome está vazio.
func (r *ExportRepositoryImpl) ExportToOFX(statement *entity.Statement, filename string) (string, error) {
	data, err := Render(statement)
	if err != nil {
		return "", err
	}

	if filename == "" {
		if _, err := os.Stdout.WriteString(data); err != nil {
			return "", fmt.Errorf("error writing OFX to stdout: %w", err)
		}
		return "", nil
	}

	if err := os.WriteFile(filename, []byte(data), 0644); err != nil {
		return "", fmt.Errorf("error writing OFX file: %w", err)
	}
	return filepath.Abs(filename)
}

// ExportToPDF escreve um relatório legível do extrato.
func (r *ExportRepositoryImpl) ExportToPDF(statement *entity.Statement, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Extrato %s", statement.AccountLabel)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	period := fmt.Sprintf("  Período: %s a %s (%s)",
		statement.PeriodStart.Format("02/01/2006"),
		statement.PeriodEnd.Format("02/01/2006"),
		statement.Currency,
	)
	pdf.CellFormat(0, 8, tr(period), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(30, 7, "Data", "B", 0, "L", false, 0, "")
	pdf.CellFormat(120, 7, tr("Descrição"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Valor", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, txn := range statement.Transactions {
		description := txn.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		pdf.CellFormat(30, 6, txn.Date.Format("02/01/2006"), "", 0, "L", false, 0, "")
		pdf.CellFormat(120, 6, tr(description), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, txn.Amount(), "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	if base == "" {
		base = "extrato"
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
