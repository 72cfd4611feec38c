package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/quotation"
	md "github.com/nao1215/markdown"
)

// tableHeader is the column header of the item table, shared by every format.
var tableHeader = []string{"SR.", "Item Name", "Size", "Box", "Area (sqft)", "Rate", "Total", "Remarks"}

// itemRow returns the table cells of the i-th item (0-based), total shown with the currency fraction digits.
func itemRow(i int, it quotation.LineItem) []string {
	return []string{
		strconv.Itoa(i + 1),
		it.Name(),
		it.Size(),
		it.Boxes().String(),
		quotation.AreaText(it),
		it.Rate().Decimal().String(),
		it.Total().Fixed(),
		quotation.OrNA(it.Remarks()),
	}
}

// tableOptions keeps headers as written and each row on a single line.
var tableOptions = md.TableOptions{AutoWrapText: false, AutoFormatHeaders: false}

// tableCell escapes a cell of a markdown table: a pipe would end the cell
// and a line break the row.
var tableCell = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

// tableCells escapes the cells of a markdown table row in place.
func tableCells(row []string) []string {
	for i, c := range row {
		row[i] = tableCell.Replace(c)
	}
	return row
}

// Markdown renders the quotation as a Markdown document.
func Markdown(q *quotation.Quotation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(q.Seller.Name)
	paragraph(doc, q.Seller.Address)
	paragraph(doc, q.Seller.Contact())

	doc.H2(q.Seller.Title)
	paragraph(doc, fmt.Sprintf("%s %s", md.Bold("Date:"), q.Date.Long()))
	if !q.Reference.IsZero() {
		paragraph(doc, fmt.Sprintf("%s %s", md.Bold("Reference:"), q.Reference))
	}
	paragraph(doc, fmt.Sprintf("%s %s", md.Bold("Client Name:"), quotation.OrNA(q.Client.Name)))
	paragraph(doc, fmt.Sprintf("%s %s", md.Bold("Contact Number:"), quotation.OrNA(q.Client.Phone)))

	table := md.TableSet{
		Header: tableHeader,
		Rows:   [][]string{},
	}
	for i, it := range q.Items {
		table.Rows = append(table.Rows, tableCells(itemRow(i, it)))
	}
	doc.CustomTable(table, tableOptions)
	doc.PlainText("")
	paragraph(doc, fmt.Sprintf("%s %s", md.Bold("Total Cost:"), q.Total))

	if len(q.Seller.Terms) > 0 {
		doc.H2("Terms and Conditions")
		doc.BulletList(q.Seller.Terms...)
	}
	return doc.String()
}

// paragraph adds s followed by a blank line, nothing when s is empty.
func paragraph(doc *md.Markdown, s string) {
	if s == "" {
		return
	}
	doc.PlainText(s)
	doc.PlainText("")
}
