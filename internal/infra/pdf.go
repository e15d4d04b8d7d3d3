package infra

// pdf.go — menu export using go-pdf/fpdf. Generates an A4 menu with the bar
// header, a Comidas section and a Bebidas section (alcoholic drinks included),
// one line per item with name, description and price.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/acero08/RutaCervezera-sub000/internal/model"
)

// GenerarMenuPDF writes the bar's menu to storagePath/menu_{barID}.pdf and
// returns the absolute path to the generated file.
func GenerarMenuPDF(bar *model.Bar, food, drink []model.Item, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("menu_%s.pdf", bar.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	// core fonts are cp1252; names and descriptions carry accented Spanish
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, tr(bar.Nombre), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr(bar.Direccion+", "+bar.Ciudad), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	seccion(pdf, tr, contentW, "Comidas", food)
	pdf.Ln(4)
	seccion(pdf, tr, contentW, "Bebidas", drink)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Precios sujetos a cambio sin previo aviso", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

func seccion(pdf *fpdf.Fpdf, tr func(string) string, contentW float64, titulo string, items []model.Item) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 8, titulo, "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	if len(items) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 6, "Sin items por el momento", "", 1, "L", false, 0, "")
		return
	}

	col1 := contentW * 0.78
	col2 := contentW * 0.22

	for _, it := range items {
		if !it.Disponible {
			continue
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(col1, 6, tr(it.Nombre), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, "$"+it.Precio.StringFixed(2), "", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(contentW, 4, tr(recortar(it.Descripcion, 110)), "", 1, "L", false, 0, "")
		pdf.Ln(1)
	}
}

// recortar shortens s to at most max runes, never splitting a multibyte
// character, and marks the cut with an ellipsis.
func recortar(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
