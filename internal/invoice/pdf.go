package invoice

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// Brand palette shared with the exported record tables.
var (
	teal      = [3]int{0, 128, 128}
	lightGray = [3]int{240, 240, 240}
	darkGray  = [3]int{60, 60, 60}
)

// Core PDF fonts have no glyph for the naira sign, so amounts carry a
// textual currency prefix instead.
const currency = "NGN "

// RenderPDF lays out the invoice as an A4 document: header band, bill-to
// block, itemized table, totals block, notes, footer. Purely formatting;
// all arithmetic comes from the Invoice methods.
func (inv Invoice) RenderPDF(w io.Writer) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 25)
	doc.AddPage()

	// Header band
	doc.SetFillColor(teal[0], teal[1], teal[2])
	doc.Rect(0, 0, 210, 40, "F")

	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 28)
	doc.Text(20, 25, "INVOICE")
	doc.SetFont("Helvetica", "", 10)
	doc.Text(20, 32, "Benbol Pharmacy & Digital Services")

	doc.SetTextColor(darkGray[0], darkGray[1], darkGray[2])
	doc.Text(150, 25, "Invoice #: "+inv.Number)
	doc.Text(150, 31, "Date: "+inv.Date)

	// Bill-to block
	doc.SetFillColor(lightGray[0], lightGray[1], lightGray[2])
	doc.Rect(20, 50, 170, 25, "F")
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(25, 58, "BILL TO:")
	doc.SetFont("Helvetica", "", 10)
	doc.Text(25, 65, inv.ClientName)

	tableY := 80.0
	if inv.ClientAddress != "" {
		doc.SetXY(25, 67)
		doc.MultiCell(160, 4.5, inv.ClientAddress, "", "L", false)
		tableY = 85
	}

	// Item table
	doc.SetXY(20, tableY)
	doc.SetFont("Helvetica", "B", 11)
	doc.SetFillColor(teal[0], teal[1], teal[2])
	doc.SetTextColor(255, 255, 255)
	doc.CellFormat(90, 8, "Description", "", 0, "L", true, 0, "")
	doc.CellFormat(20, 8, "Qty", "", 0, "C", true, 0, "")
	doc.CellFormat(30, 8, "Rate", "", 0, "R", true, 0, "")
	doc.CellFormat(30, 8, "Amount", "", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(darkGray[0], darkGray[1], darkGray[2])
	for i, it := range inv.Items {
		fill := i%2 == 1
		doc.SetFillColor(250, 250, 250)
		doc.SetX(20)
		doc.CellFormat(90, 7, it.Description, "", 0, "L", fill, 0, "")
		doc.CellFormat(20, 7, formatAmount(float64(it.Quantity)), "", 0, "C", fill, 0, "")
		doc.CellFormat(30, 7, formatAmount(it.Rate), "", 0, "R", fill, 0, "")
		doc.CellFormat(30, 7, formatAmount(it.Amount()), "", 1, "R", fill, 0, "")
	}

	// Totals block
	summaryY := doc.GetY() + 10
	doc.SetFillColor(lightGray[0], lightGray[1], lightGray[2])
	doc.Rect(125, summaryY-5, 65, 30, "F")

	doc.SetFont("Helvetica", "", 10)
	doc.Text(130, summaryY, "Subtotal:")
	rightAlignedText(doc, 185, summaryY, currency+formatAmount(inv.Subtotal()))

	summaryY += 7
	doc.Text(130, summaryY, "VAT (7.5%):")
	rightAlignedText(doc, 185, summaryY, currency+formatAmount(inv.Tax()))

	summaryY += 10
	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(teal[0], teal[1], teal[2])
	doc.Text(130, summaryY, "TOTAL:")
	rightAlignedText(doc, 185, summaryY, currency+formatAmount(inv.Total()))

	// Notes
	if inv.Notes != "" {
		doc.SetTextColor(darkGray[0], darkGray[1], darkGray[2])
		doc.SetFont("Helvetica", "B", 10)
		doc.Text(20, summaryY+15, "Notes:")
		doc.SetFont("Helvetica", "", 9)
		doc.SetXY(20, summaryY+18)
		doc.MultiCell(170, 4.5, inv.Notes, "", "L", false)
	}

	// Footer
	doc.SetDrawColor(teal[0], teal[1], teal[2])
	doc.SetLineWidth(0.5)
	doc.Line(20, 280, 190, 280)

	doc.SetFont("Helvetica", "I", 8)
	doc.SetTextColor(120, 120, 120)
	centeredText(doc, 285, "Thank you for your business!")
	centeredText(doc, 290, "Benbol Pharmacy | Vickie's Plaza, Lekki-Epe Expressway, Sangotedo, Lagos")
	centeredText(doc, 295, "Phone: 09167858304 | Email: benbolglobal@gmail.com")

	return doc.Output(w)
}

func rightAlignedText(doc *fpdf.Fpdf, right, y float64, s string) {
	doc.Text(right-doc.GetStringWidth(s), y, s)
}

func centeredText(doc *fpdf.Fpdf, y float64, s string) {
	doc.Text(105-doc.GetStringWidth(s)/2, y, s)
}
