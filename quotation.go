package quotation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/quotation/date"
)

// ClientDetails are the optional name and phone of the client, kept apart
// from the ledger.
type ClientDetails struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// IsZero reports whether no client detail was given.
func (c ClientDetails) IsZero() bool { return c == ClientDetails{} }

// Quotation is a read-only snapshot of a ledger ready to be rendered.
//
// It owns a copy of the items so rendering can never observe a later change
// to the ledger, and retrying a failed export renders the same document.
type Quotation struct {
	Reference Reference
	Date      date.Date
	Seller    Seller
	Client    ClientDetails
	Items     []LineItem
	Total     Money
}

// NewQuotation takes a snapshot of the ledger.
func NewQuotation(ref Reference, on date.Date, seller Seller, client ClientDetails, l *Ledger) *Quotation {
	seller.Terms = slices.Clone(seller.Terms)
	return &Quotation{
		Reference: ref,
		Date:      on,
		Seller:    seller,
		Client:    client,
		Items:     l.Snapshot(),
		Total:     l.Total(),
	}
}

// Count returns the number of line items.
func (q *Quotation) Count() int { return len(q.Items) }

// Filename returns the deterministic file name of the exported document,
// e.g. "quotation-2026-10-17.pdf".
func (q *Quotation) Filename(ext string) string {
	return fmt.Sprintf("quotation-%s.%s", q.Date, strings.TrimPrefix(ext, "."))
}

// OrNA returns s, or "N/A" when s is blank.
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// AreaText returns the area column text: the area, or "N/A" when absent.
func AreaText(it LineItem) string {
	if a, ok := it.Area(); ok {
		return a.String()
	}
	return "N/A"
}
