package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// WritePDF writes the table as a landscape A4 PDF: title, generated date
// in the header, striped rows, repeated column headers on each page.
func WritePDF(w io.Writer, t Table, generated string) error {
	doc := fpdf.New("L", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 20)

	const (
		pageWidth = 297.0
		marginX   = 10.0
	)
	usable := pageWidth - 2*marginX
	colWidth := usable / float64(len(t.Headers))

	header := func() {
		doc.SetFont("Helvetica", "B", 14)
		doc.SetTextColor(0, 128, 128)
		doc.Text(marginX, 15, t.Title)
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(120, 120, 120)
		doc.Text(pageWidth-marginX-doc.GetStringWidth("Generated: "+generated), 15, "Generated: "+generated)

		doc.SetXY(marginX, 20)
		doc.SetFont("Helvetica", "B", 8)
		doc.SetFillColor(0, 128, 128)
		doc.SetTextColor(255, 255, 255)
		for _, h := range t.Headers {
			doc.CellFormat(colWidth, 7, h, "", 0, "L", true, 0, "")
		}
		doc.Ln(-1)
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(60, 60, 60)
	}

	doc.SetHeaderFunc(header)
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(usable/2, 10, "Benbol Pharmacy", "", 0, "L", false, 0, "")
		doc.CellFormat(usable/2, 10, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "R", false, 0, "")
	})

	doc.AddPage()

	for i, row := range t.Rows {
		fill := i%2 == 1
		doc.SetFillColor(245, 245, 245)
		doc.SetX(marginX)
		for _, cell := range row {
			doc.CellFormat(colWidth, 6, truncate(doc, cell, colWidth-2), "", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
	}
	if len(t.Rows) == 0 {
		doc.SetX(marginX)
		doc.CellFormat(usable, 6, "No records.", "", 1, "L", false, 0, "")
	}

	return doc.Output(w)
}

// truncate shortens a cell value with an ellipsis so it fits its column.
func truncate(doc *fpdf.Fpdf, s string, width float64) string {
	if doc.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && doc.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
