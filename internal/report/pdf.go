package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin   = 15.0
	pdfRowH     = 6.0
	pdfHeaderH  = 7.0
	pdfFontSize = 9.0
)

// WritePDF writes the tables as an A4 document, repeating the header row
// when a table spans pages.
func WritePDF(w io.Writer, title string, tables ...Table) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pdfMargin
	pdf.CellFormat(contentW, 12, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(contentW, 6, tr("Gerado em "+time.Now().Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, t := range tables {
		writeTable(pdf, tr, contentW, t)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func writeTable(pdf *fpdf.Fpdf, tr func(string) string, contentW float64, t Table) {
	if len(t.Headers) == 0 {
		return
	}
	colW := contentW / float64(len(t.Headers))

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(contentW, 9, tr(t.Title), "", 1, "L", false, 0, "")

	header := func() {
		pdf.SetFont("Arial", "B", pdfFontSize)
		pdf.SetFillColor(230, 236, 245)
		for _, h := range t.Headers {
			pdf.CellFormat(colW, pdfHeaderH, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", pdfFontSize)
	}
	header()

	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for i, row := range t.Rows {
		if pdf.GetY()+pdfRowH > pageH-bottom {
			pdf.AddPage()
			header()
		}
		fill := i%2 == 1
		pdf.SetFillColor(247, 249, 252)
		for c, cell := range row {
			align := "R"
			if c == 0 {
				align = "L"
			}
			pdf.CellFormat(colW, pdfRowH, tr(cell), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "I", 8)
	for _, n := range t.Notes {
		pdf.MultiCell(contentW, 5, tr(n), "", "L", false)
	}
	pdf.Ln(4)
}
