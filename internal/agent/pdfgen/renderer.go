// Package pdfgen renders dossier and contract PDFs for devacia-os.
package pdfgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Renderer writes generated PDFs into a single output directory.
type Renderer struct {
	outputDir string
}

// NewRenderer creates a renderer writing into outputDir.
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir}
}

// RenderDossier writes a research dossier PDF and returns its path.
func (r *Renderer) RenderDossier(clientName, report string) (string, error) {
	title := "Research Dossier: " + clientName
	body := []string{
		"Prepared " + time.Now().Format("January 2, 2006"),
		"",
		report,
	}
	return r.render(title, body, "dossier_"+sanitize(clientName)+".pdf")
}

// RenderContract writes a service contract PDF and returns its path.
func (r *Renderer) RenderContract(clientName, serviceName, price string) (string, error) {
	title := "Service Agreement"
	body := []string{
		"This agreement is made between Devacia and " + clientName + ".",
		"",
		"Scope of work: " + serviceName,
		"Total fee: " + price,
		"",
		"Payment is due within 14 days of invoice. Either party may terminate " +
			"with 30 days written notice.",
		"",
		"Signed: ______________________    Date: " + time.Now().Format("2006-01-02"),
	}
	return r.render(title, body, "contract_"+sanitize(clientName)+".pdf")
}

// DocumentPath returns where a rendered document of the given kind
// ("dossier" or "contract") for the client lives. The file may not exist yet.
func (r *Renderer) DocumentPath(kind, clientName string) string {
	return filepath.Join(r.outputDir, sanitize(kind)+"_"+sanitize(clientName)+".pdf")
}

// render writes a one-page title + paragraphs document.
func (r *Renderer) render(title string, paragraphs []string, filename string) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 10, title, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, p := range paragraphs {
		if p == "" {
			pdf.Ln(5)
			continue
		}
		pdf.MultiCell(0, 6, p, "", "L", false)
	}

	path := filepath.Join(r.outputDir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}

// sanitize makes a client name safe for a filename.
func sanitize(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", "..", "_")
	out := replacer.Replace(name)
	if out == "" {
		out = "client"
	}
	return out
}
