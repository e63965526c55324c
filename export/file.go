package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"prototype-creator/utils"
)

// RenderPDF converts prototype HTML into PDF bytes using wkhtmltopdf. The
// HTML is prepared for static rendering first.
func RenderPDF(html string) ([]byte, error) {
	prepared := PrepareForPDF(html)

	pdf, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("pdf converter not available: %w", err)
	}
	pdf.PageSize.Set(wkhtmltopdf.PageSizeA4)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(prepared))
	page.DisableJavascript.Set(true)
	pdf.AddPage(page)

	if err := pdf.Create(); err != nil {
		return nil, fmt.Errorf("pdf conversion failed: %w", err)
	}

	return pdf.Bytes(), nil
}

// FileExporter writes exports straight into a directory without any dialog.
// The UI layer wraps it with a save dialog; headless callers use it as-is.
type FileExporter struct {
	dir    string
	logger *utils.Logger
}

// NewFileExporter creates an exporter targeting the given directory. An
// empty dir falls back to the user's Downloads directory.
func NewFileExporter(dir string, logger *utils.Logger) *FileExporter {
	if dir == "" {
		dir = DefaultExportDir()
	}
	return &FileExporter{dir: dir, logger: logger}
}

// DefaultExportDir returns the user's Downloads directory, or the working
// directory when the home directory cannot be determined.
func DefaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// ExportHTML writes the prototype HTML verbatim.
func (e *FileExporter) ExportHTML(html, name string) Result {
	path := filepath.Join(e.dir, Filename(name, FormatHTML))
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return Errorf("failed to create export directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		e.logger.Error("HTML export failed: %v", err)
		return Errorf("failed to write file: %v", err)
	}
	e.logger.Info("Exported HTML to %s", path)
	return Success(path)
}

// ExportPDF converts the prototype HTML to a paginated A4 PDF.
func (e *FileExporter) ExportPDF(html, name string) Result {
	path := filepath.Join(e.dir, Filename(name, FormatPDF))
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return Errorf("failed to create export directory: %v", err)
	}

	data, err := RenderPDF(html)
	if err != nil {
		e.logger.Error("PDF export failed: %v", err)
		return Errorf("%v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.logger.Error("PDF write failed: %v", err)
		return Errorf("failed to write file: %v", err)
	}

	e.logger.Info("Exported PDF to %s", path)
	return Success(path)
}
