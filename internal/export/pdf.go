package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PlaceholderDash fills PDF cells without a value
const PlaceholderDash = "-"

type rgb struct{ r, g, b int }

var (
	colorAccent   = rgb{0x66, 0x7e, 0xea}
	colorSubtitle = rgb{0x4a, 0x55, 0x68}
	colorFooter   = rgb{0x64, 0x74, 0x8b}
	colorGrid     = rgb{0xe2, 0xe8, 0xf0}
	colorStripe   = rgb{0xf8, 0xfa, 0xfc}
	colorWhite    = rgb{0xff, 0xff, 0xff}
	colorText     = rgb{0x1a, 0x20, 0x2c}
)

const (
	pdfMargin    = 20.0
	pdfLineH     = 4.5
	pdfCellPadY  = 1.5
	pdfFontTable = 8.0
)

// pdfTable is the header and body of one month's table
type pdfTable struct {
	headers []string
	widths  []float64
	rows    [][]string
}

// monthTable builds the table for a month. Months containing a Tuesday get all role
// columns; Wednesday-only months get just the supply column.
func monthTable(g MonthGroup, usable float64) pdfTable {
	t := pdfTable{}
	if g.HasTuesday() {
		t.headers = []string{"Date", "Day"}
		for _, c := range roleColumns {
			t.headers = append(t.headers, c.Short)
		}
		dateW, dayW := 14.0, 20.0
		roleW := (usable - dateW - dayW) / float64(len(roleColumns))
		t.widths = []float64{dateW, dayW}
		for range roleColumns {
			t.widths = append(t.widths, roleW)
		}
	} else {
		t.headers = []string{"Date", "Day", roleColumns[len(roleColumns)-1].Short}
		t.widths = []float64{24, 36, usable - 60}
	}

	for _, r := range g.Rows {
		cells := []string{r.Date.Format("02/01"), r.Weekday.Label()}
		if len(t.headers) == 3 {
			cells = append(cells, dash(r.Supply))
		} else {
			for _, c := range roleColumns {
				if c.Role.AppliesTo(r.Weekday) {
					cells = append(cells, dash(r.Value(c.Role)))
				} else {
					cells = append(cells, PlaceholderDash)
				}
			}
		}
		t.rows = append(t.rows, cells)
	}
	return t
}

func dash(s string) string {
	if s == "" {
		return PlaceholderDash
	}
	return s
}

// RenderPDF produces an A4 document with one table per month
func RenderPDF(doc *Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin/2)
	pdf.SetTitle(doc.FullTitle(), true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	usable := pageW - 2*pdfMargin

	pdf.SetFont("Helvetica", "B", 18)
	setText(pdf, colorAccent)
	pdf.CellFormat(0, 10, tr(doc.FullTitle()), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	for _, group := range GroupByMonth(doc.Rows) {
		pdf.SetFont("Helvetica", "B", 14)
		setText(pdf, colorSubtitle)
		pdf.CellFormat(0, 8, tr(group.Heading()), "", 1, "L", false, 0, "")
		pdf.Ln(2)

		table := monthTable(group, usable)

		pdf.SetFont("Helvetica", "B", 10)
		setFill(pdf, colorAccent)
		setText(pdf, colorWhite)
		drawRow(pdf, tr, table.widths, table.headers, true)

		pdf.SetFont("Helvetica", "", pdfFontTable)
		setText(pdf, colorText)
		for i, cells := range table.rows {
			if i%2 == 0 {
				setFill(pdf, colorWhite)
			} else {
				setFill(pdf, colorStripe)
			}
			drawRow(pdf, tr, table.widths, cells, true)
		}
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 8)
	setText(pdf, colorFooter)
	pdf.CellFormat(0, 5, tr(doc.Footer()), "", 1, "C", false, 0, "")

	if pdf.Err() {
		return nil, fmt.Errorf("render pdf: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawRow draws one table row, wrapping long cell text onto extra lines
func drawRow(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, cells []string, fill bool) {
	wrapped := make([][][]byte, len(cells))
	lines := 1
	for i, c := range cells {
		wrapped[i] = pdf.SplitLines([]byte(tr(c)), widths[i]-2)
		if len(wrapped[i]) > lines {
			lines = len(wrapped[i])
		}
	}
	h := float64(lines)*pdfLineH + 2*pdfCellPadY

	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+h > pageH-bottom {
		pdf.AddPage()
	}

	style := "D"
	if fill {
		style = "FD"
	}
	setDraw(pdf, colorGrid)

	x, y := pdf.GetXY()
	for i, w := range widths {
		pdf.Rect(x, y, w, h, style)
		for j, line := range wrapped[i] {
			pdf.SetXY(x, y+pdfCellPadY+float64(j)*pdfLineH)
			pdf.CellFormat(w, pdfLineH, string(line), "", 0, "C", false, 0, "")
		}
		x += w
	}
	left, _, _, _ := pdf.GetMargins()
	pdf.SetXY(left, y+h)
}

func setText(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setFill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func setDraw(pdf *fpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }
