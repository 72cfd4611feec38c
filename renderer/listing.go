package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/quotation"
	md "github.com/nao1215/markdown"
)

// Listing renders the items of a ledger with their ids, as printed by `quote ls`.
func Listing(items []quotation.LineItem, total quotation.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(items) == 0 {
		doc.PlainText("No items yet.")
		doc.PlainText("")
	} else {
		table := md.TableSet{
			Header: []string{"ID", "Item", "Size", "Box", "Sqft", "Rate", "Total", "Remarks"},
			Rows:   [][]string{},
		}
		for _, it := range items {
			area := ""
			if a, ok := it.Area(); ok {
				area = a.String()
			}
			table.Rows = append(table.Rows, tableCells([]string{
				"#" + it.ID().String(),
				it.Name(),
				it.Size(),
				it.Boxes().String(),
				area,
				it.Rate().Amount(),
				it.Total().Amount(),
				it.Remarks(),
			}))
		}
		doc.CustomTable(table, tableOptions)
		doc.PlainText("")
	}

	paragraph(doc, fmt.Sprintf("Total Items: %d", len(items)))
	paragraph(doc, fmt.Sprintf("%s %s", md.Bold("Grand Total:"), total))
	return doc.String()
}
