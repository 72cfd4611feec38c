package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/quotation"
	"github.com/jung-kurt/gofpdf"
)

// page layout in mm, A4 portrait.
const (
	pageHeight   = 297.0
	margin       = 10.0
	bottomMargin = 15.0
	contentWidth = 210.0 - 2*margin
	lineHeight   = 5.0
	cellPadding  = 1.0
)

// columnWidths of the item table, in the order of tableHeader. They sum to contentWidth.
var columnWidths = []float64{10, 40, 18, 14, 22, 20, 26, 40}

// columnAligns of the item table, in the order of tableHeader.
var columnAligns = []string{"C", "L", "L", "R", "R", "R", "R", "L"}

// PDF renders the quotation as an A4 PDF document.
func PDF(w io.Writer, q *quotation.Quotation) error {
	pdf := newPDF(q, true)
	return pdf.Output(w)
}

// pdfWriter draws a quotation on a gofpdf document.
type pdfWriter struct {
	*gofpdf.Fpdf
	q  *quotation.Quotation
	tr func(string) string // UTF-8 to the core fonts code page
}

// newPDF lays out the whole document. Errors are accumulated in the returned Fpdf.
func newPDF(q *quotation.Quotation, compress bool) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.AliasNbPages("")
	pdf.SetTitle(fmt.Sprintf("%s %s", q.Seller.Title, q.Reference), true)
	pdf.SetAuthor(q.Seller.Name, true)
	pdf.SetCreator("quote", false)

	p := &pdfWriter{Fpdf: pdf, q: q, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetHeaderFunc(p.header)
	pdf.SetFooterFunc(p.footer)

	pdf.AddPage()
	p.client()
	p.table()
	p.totals()
	p.terms()
	return pdf
}

// header is drawn at the top of every page.
func (p *pdfWriter) header() {
	s := p.q.Seller
	p.SetFont("Helvetica", "B", 16)
	p.CellFormat(0, 8, p.tr(s.Name), "", 1, "C", false, 0, "")
	p.SetFont("Helvetica", "", 9)
	if s.Address != "" {
		p.CellFormat(0, lineHeight, p.tr(s.Address), "", 1, "C", false, 0, "")
	}
	if contact := s.Contact(); contact != "" {
		p.CellFormat(0, lineHeight, p.tr(contact), "", 1, "C", false, 0, "")
	}
	y := p.GetY() + 2
	p.Line(margin, y, margin+contentWidth, y)
	p.SetY(y + 2)

	p.SetFont("Helvetica", "B", 14)
	p.CellFormat(0, 8, p.tr(s.Title), "", 1, "C", false, 0, "")
	p.SetFont("Helvetica", "", 10)
	p.CellFormat(contentWidth/2, lineHeight, p.q.Date.Long(), "", 0, "L", false, 0, "")
	if !p.q.Reference.IsZero() {
		p.CellFormat(contentWidth/2, lineHeight, "Ref: "+p.q.Reference.String(), "", 0, "R", false, 0, "")
	}
	p.Ln(lineHeight + 4)
}

// footer is drawn at the bottom of every page.
func (p *pdfWriter) footer() {
	p.SetY(-bottomMargin + 3)
	p.SetFont("Helvetica", "I", 8)
	p.CellFormat(0, lineHeight, fmt.Sprintf("Page %d of {nb}", p.PageNo()), "", 0, "C", false, 0, "")
}

func (p *pdfWriter) client() {
	rows := [][2]string{
		{"Client Name:", quotation.OrNA(p.q.Client.Name)},
		{"Contact Number:", quotation.OrNA(p.q.Client.Phone)},
	}
	for _, r := range rows {
		p.SetFont("Helvetica", "B", 10)
		p.CellFormat(35, 6, r[0], "", 0, "L", false, 0, "")
		p.SetFont("Helvetica", "", 10)
		p.CellFormat(0, 6, p.tr(r[1]), "", 1, "L", false, 0, "")
	}
	p.Ln(4)
}

func (p *pdfWriter) drawTableHeader() {
	p.SetFont("Helvetica", "B", 9)
	p.SetFillColor(230, 230, 230)
	for i, h := range tableHeader {
		p.CellFormat(columnWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	p.Ln(-1)
	p.SetFont("Helvetica", "", 9)
}

// table draws the item table. Rows never split across pages and the header
// is drawn again at the top of each new page.
func (p *pdfWriter) table() {
	// rows are placed by hand, automatic breaks would split them.
	p.SetAutoPageBreak(false, bottomMargin)
	defer p.SetAutoPageBreak(true, bottomMargin)

	p.drawTableHeader()
	for i, it := range p.q.Items {
		cells := itemRow(i, it)
		for j := range cells {
			cells[j] = p.tr(cells[j])
		}
		height := p.rowHeight(cells)
		if p.GetY()+height > pageHeight-bottomMargin {
			p.AddPage()
			p.drawTableHeader()
		}

		x, y := p.GetXY()
		for j, c := range cells {
			w := columnWidths[j]
			p.Rect(x, y, w, height, "D")
			p.SetXY(x+cellPadding, y+cellPadding/2)
			p.MultiCell(w-2*cellPadding, lineHeight, c, "", columnAligns[j], false)
			x += w
			p.SetXY(x, y)
		}
		p.SetXY(margin, y+height)
	}
}

// rowHeight returns the height of the tallest cell once its text is wrapped.
func (p *pdfWriter) rowHeight(cells []string) float64 {
	lines := 1
	for j, c := range cells {
		lines = max(lines, len(p.SplitLines([]byte(c), columnWidths[j]-2*cellPadding)))
	}
	return float64(lines)*lineHeight + cellPadding
}

func (p *pdfWriter) totals() {
	p.Ln(3)
	label := sum(columnWidths[:6])
	p.SetFont("Helvetica", "B", 11)
	p.CellFormat(label, 8, "Total Cost", "", 0, "R", false, 0, "")
	p.CellFormat(contentWidth-label, 8, p.q.Total.Currency()+" "+p.q.Total.Amount(), "", 1, "L", false, 0, "")
	p.Ln(4)
}

func (p *pdfWriter) terms() {
	if len(p.q.Seller.Terms) == 0 {
		return
	}
	p.SetFont("Helvetica", "B", 10)
	p.CellFormat(0, 6, "Terms and Conditions:", "", 1, "L", false, 0, "")
	p.SetFont("Helvetica", "", 9)
	for _, t := range p.q.Seller.Terms {
		p.MultiCell(0, lineHeight, p.tr("- "+strings.TrimSpace(t)), "", "L", false)
	}
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}
