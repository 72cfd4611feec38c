package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/quotation"
	"github.com/etnz/quotation/date"
	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// newQuotation builds a quotation on 2026-10-17 from drafts.
func newQuotation(t *testing.T, client quotation.ClientDetails, drafts ...quotation.Draft) *quotation.Quotation {
	t.Helper()
	s := quotation.NewSession("INR")
	s.Client = client
	for _, d := range drafts {
		if _, err := s.Ledger.Add(d); err != nil {
			t.Fatalf("Add(%+v) unexpected error: %v", d, err)
		}
	}
	return s.Quote(quotation.DefaultSeller(), date.New(2026, 10, 17))
}

var (
	tileA = quotation.Draft{Name: "Tile A", Size: "2x2", Boxes: "10", Area: "100", Rate: "50"}
	tileB = quotation.Draft{Name: "Tile B", Size: "1x1", Boxes: "5", Rate: "20", Remarks: "glossy"}
)

// tableRows parses the markdown and returns the cells of the first table, header included.
func tableRows(t *testing.T, src string) [][]string {
	t.Helper()
	source := []byte(src)
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	doc := parser.Parse(text.NewReader(source))

	var rows [][]string
	var found bool
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case extast.KindTable:
			if found {
				return ast.WalkSkipChildren, nil
			}
			found = true
		case extast.KindTableHeader, extast.KindTableRow:
			var row []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				row = append(row, inlineText(c, source))
			}
			rows = append(rows, row)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if !found {
		t.Fatalf("no table in markdown:\n%s", src)
	}
	return rows
}

// inlineText concatenates the text segments below n.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func TestMarkdown_Table(t *testing.T) {
	q := newQuotation(t, quotation.ClientDetails{Name: "Anil"}, tileA, tileB)
	got := tableRows(t, Markdown(q))
	want := [][]string{
		{"SR.", "Item Name", "Size", "Box", "Area (sqft)", "Rate", "Total", "Remarks"},
		{"1", "Tile A", "2x2", "10", "100", "50", "5000.00", "N/A"},
		{"2", "Tile B", "1x1", "5", "N/A", "20", "100.00", "glossy"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkdown_TableCellsAreEscaped(t *testing.T) {
	odd := quotation.Draft{Name: "Tile | A", Size: "2x2", Boxes: "1", Rate: "10", Remarks: "a|b\nsecond line"}
	q := newQuotation(t, quotation.ClientDetails{}, odd)

	listing := Listing(q.Items, q.Total)
	for name, src := range map[string]string{"Markdown": Markdown(q), "Listing": listing} {
		rows := tableRows(t, src)
		if len(rows) != 2 {
			t.Fatalf("%s: table has %d rows, want 2:\n%s", name, len(rows), src)
		}
		row := rows[1]
		if len(row) != len(rows[0]) {
			t.Fatalf("%s: row has %d cells under %d columns:\n%s", name, len(row), len(rows[0]), src)
		}
		// goldmark may keep the escape in the text segment.
		unescape := strings.NewReplacer(`\|`, "|")
		if got := unescape.Replace(row[1]); got != "Tile | A" {
			t.Errorf("%s: name cell = %q, want %q", name, got, "Tile | A")
		}
		if got := unescape.Replace(row[7]); got != "a|b second line" {
			t.Errorf("%s: remarks cell = %q, want %q", name, got, "a|b second line")
		}
	}
}

func TestMarkdown_Content(t *testing.T) {
	q := newQuotation(t, quotation.ClientDetails{Name: "Anil"}, tileA, tileB)
	got := Markdown(q)
	for _, want := range []string{
		"# Our Own Marble House",
		"## Proforma Invoice",
		"Saturday, October 17, 2026",
		q.Reference.String(),
		"Anil",
		"**Contact Number:** N/A",
		"**Total Cost:** ₹5,100.00",
		"## Terms and Conditions",
		"Prices valid for 30 days",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestMarkdown_NoTerms(t *testing.T) {
	q := newQuotation(t, quotation.ClientDetails{})
	q.Seller.Terms = nil
	got := Markdown(q)
	if strings.Contains(got, "Terms and Conditions") {
		t.Errorf("Markdown() prints a terms section without terms:\n%s", got)
	}
	if rows := tableRows(t, got); len(rows) != 1 {
		t.Errorf("empty quotation table has %d rows, want only the header", len(rows))
	}
	if !strings.Contains(got, "₹0.00") {
		t.Errorf("empty quotation total is not zero:\n%s", got)
	}
}

// pdfText renders q without compression so the page content can be searched.
func pdfText(t *testing.T, q *quotation.Quotation) (string, int) {
	t.Helper()
	pdf := newPDF(q, false)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("Output() unexpected error: %v", err)
	}
	return buf.String(), pdf.PageCount()
}

func TestPDF(t *testing.T) {
	q := newQuotation(t, quotation.ClientDetails{Name: "Anil", Phone: "+91 98470 00000"}, tileA, tileB)

	var buf bytes.Buffer
	if err := PDF(&buf, q); err != nil {
		t.Fatalf("PDF() unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("PDF() output does not start with a PDF header: %q", buf.Bytes()[:min(16, buf.Len())])
	}

	got, pages := pdfText(t, q)
	if pages != 1 {
		t.Errorf("PageCount() = %d, want 1", pages)
	}
	for _, want := range []string{
		"Our Own Marble House",
		"Proforma Invoice",
		"Saturday, October 17, 2026",
		"Ref: " + q.Reference.String(),
		"Client Name:",
		"Anil",
		"Area \\(sqft\\)",
		"Tile A",
		"5000.00",
		"N/A",
		"Total Cost",
		"INR 5,100.00",
		"Terms and Conditions:",
		"Page 1 of 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PDF content does not contain %q", want)
		}
	}
}

func TestPDF_PageBreakRepeatsHeader(t *testing.T) {
	var drafts []quotation.Draft
	for i := range 80 {
		drafts = append(drafts, quotation.Draft{
			Name:  fmt.Sprintf("Tile %d", i+1),
			Size:  "2x2",
			Boxes: "1",
			Rate:  "10",
		})
	}
	q := newQuotation(t, quotation.ClientDetails{}, drafts...)

	got, pages := pdfText(t, q)
	if pages < 2 {
		t.Fatalf("PageCount() = %d, want more than one page", pages)
	}
	if n := strings.Count(got, "(Item Name)"); n != pages {
		t.Errorf("table header drawn %d times, want once per page (%d)", n, pages)
	}
	if n := strings.Count(got, "(Our Own Marble House)"); n != pages {
		t.Errorf("page header drawn %d times, want %d", n, pages)
	}
	if want := fmt.Sprintf("Page %d of %d", pages, pages); !strings.Contains(got, want) {
		t.Errorf("PDF content does not contain %q", want)
	}
	if !strings.Contains(got, "(Tile 80)") {
		t.Errorf("last row is missing")
	}
}

func TestExport(t *testing.T) {
	q := newQuotation(t, quotation.ClientDetails{}, tileA, tileB)
	dir := filepath.Join(t.TempDir(), "out")

	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			path, err := Export(dir, format, q)
			if err != nil {
				t.Fatalf("Export(%q) unexpected error: %v", format, err)
			}
			if want := filepath.Join(dir, "quotation-2026-10-17."+format); path != want {
				t.Errorf("Export(%q) = %q, want %q", format, path, want)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("exported file: %v", err)
			}
			if info.Size() == 0 {
				t.Errorf("exported file %s is empty", path)
			}
		})
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	q := newQuotation(t, quotation.ClientDetails{}, tileA)
	dir := t.TempDir()

	_, err := Export(dir, "docx", q)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Export(docx) error = %v, want ErrUnknownFormat", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Export(docx) wrote %d files, want none", len(entries))
	}
}

func TestListing(t *testing.T) {
	l := quotation.NewLedger("INR")
	for _, d := range []quotation.Draft{tileA, tileB} {
		if _, err := l.Add(d); err != nil {
			t.Fatal(err)
		}
	}
	l.Remove(1)
	got := Listing(l.Snapshot(), l.Total())

	want := [][]string{
		{"ID", "Item", "Size", "Box", "Sqft", "Rate", "Total", "Remarks"},
		{"#2", "Tile B", "1x1", "5", "", "20.00", "100.00", "glossy"},
	}
	if diff := cmp.Diff(want, tableRows(t, got)); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
	for _, want := range []string{"Total Items: 1", "**Grand Total:** ₹100.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("Listing() does not contain %q:\n%s", want, got)
		}
	}

	empty := Listing(nil, quotation.M(0, "INR"))
	for _, want := range []string{"No items yet.", "Total Items: 0", "₹0.00"} {
		if !strings.Contains(empty, want) {
			t.Errorf("empty Listing() does not contain %q:\n%s", want, empty)
		}
	}
}
