package compras

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in millimeters, on A4 portrait. An item line whose y
// position would pass pageBreakY starts a new page instead, so a line
// never splits across pages and never overflows the bottom margin.
const (
	pdfMargin   = 20.0
	lineHeight  = 8.0
	pageBreakY  = 250.0
	footerY     = 290.0
	contentTopY = 30.0
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// PDFFileName derives the export file name from the list name, replacing
// every character outside the safe set with a hyphen.
func PDFFileName(listName string) string {
	return fmt.Sprintf("lista-compras-%s.pdf", unsafeFileChars.ReplaceAllString(listName, "-"))
}

// RenderPDF renders one fixed list as a paginated PDF document. The
// generation date in the header is taken from now, rendered
// day/month/year. An empty list still yields one page with an explicit
// empty-state line.
func RenderPDF(list FixedList, now time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)

	// "{nb}" is patched to the real page count on Close, which is how
	// every footer can carry the final total.
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pageW, _ := pdf.GetPageSize()
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		footer := tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo()))
		pdf.Text(pageW-pdfMargin-pdf.GetStringWidth(footer), footerY, footer)
	})

	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()
	y := contentTopY

	pdf.SetFont("Helvetica", "B", 20)
	title := "LISTA DE COMPRAS"
	pdf.Text((pageW-pdf.GetStringWidth(title))/2, y, title)
	y += 15

	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(pdfMargin, y, tr(fmt.Sprintf("Lista: %s", list.Nome)))
	y += 10

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(pdfMargin, y, tr(fmt.Sprintf("Data: %s", now.Format("02/01/2006"))))
	y += 20

	pdf.SetLineWidth(0.5)
	pdf.Line(pdfMargin, y, pageW-pdfMargin, y)
	y += 15

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(pdfMargin, y, "ITENS:")
	y += 10

	pdf.SetFont("Helvetica", "", 12)

	if len(list.Itens) == 0 {
		pdf.Text(pdfMargin, y, tr("Nenhum item na lista"))
		return pdf
	}

	for i, item := range list.Itens {
		if y > pageBreakY {
			pdf.AddPage()
			y = contentTopY
			pdf.SetFont("Helvetica", "", 12)
		}

		line := tr(fmt.Sprintf("%d. %s (%d %s)", i+1, item.Nome, item.Quantidade, item.Unidade))
		pdf.Text(pdfMargin, y, line)

		if item.Comprado {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(0, 128, 0)
			pdf.Text(pdfMargin+pdf.GetStringWidth(line)+5, y, tr(" • COMPRADO"))
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 12)
		}
		y += lineHeight
	}
	return pdf
}

// ExportPDF renders the list and writes it to dir, returning the full
// path of the written file.
func ExportPDF(list FixedList, dir string, now time.Time) (string, error) {
	pdf := RenderPDF(list, now)
	path := filepath.Join(dir, PDFFileName(list.Nome))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write pdf %s: %w", path, err)
	}
	return path, nil
}
