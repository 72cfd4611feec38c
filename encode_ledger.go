package quotation

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/quotation/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Session is the state of one quotation being built: its reference, the
// client details and the ledger of items.
type Session struct {
	Reference Reference
	Client    ClientDetails
	Ledger    *Ledger
}

// NewSession starts an empty quotation priced in currency.
func NewSession(currency string) *Session {
	return &Session{
		Reference: NewReference(),
		Ledger:    NewLedger(currency),
	}
}

// Quote takes a snapshot of the session for rendering.
func (s *Session) Quote(seller Seller, on date.Date) *Quotation {
	return NewQuotation(s.Reference, on, seller, s.Client, s.Ledger)
}

// line kinds in a session file.
const (
	kindQuotation = "quotation"
	kindItem      = "item"
)

// EncodeSession writes the session as JSONL: a header line followed by one line per item.
func EncodeSession(w io.Writer, s *Session) error {
	var h jsonObjectWriter
	h.Append("kind", kindQuotation)
	h.Optional("reference", s.Reference.String())
	h.Append("currency", s.Ledger.Currency())
	h.Optional("last_id", s.Ledger.last)
	h.Optional("client", s.Client)
	if err := writeLine(w, &h); err != nil {
		return err
	}
	for _, it := range s.Ledger.Items() {
		if err := EncodeItem(w, it); err != nil {
			return err
		}
	}
	return nil
}

// EncodeItem writes a single item as a JSON line.
func EncodeItem(w io.Writer, it LineItem) error {
	var o jsonObjectWriter
	o.Append("kind", kindItem)
	o.Append("id", it.id)
	o.Append("name", it.name)
	o.Append("size", it.size)
	o.Append("box", it.boxes)
	if it.hasArea {
		o.Append("sqft", it.area)
	}
	o.Append("rate", it.rate)
	o.Append("total", it.total)
	o.Optional("remarks", it.remarks)
	return writeLine(w, &o)
}

func writeLine(w io.Writer, o *jsonObjectWriter) error {
	data, err := o.MarshalJSON()
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// itemLine is the decoding form of an item line.
type itemLine struct {
	ID      ID               `json:"id"`
	Name    string           `json:"name"`
	Size    string           `json:"size"`
	Box     decimal.Decimal  `json:"box"`
	Sqft    *decimal.Decimal `json:"sqft"`
	Rate    decimal.Decimal  `json:"rate"`
	Total   decimal.Decimal  `json:"total"`
	Remarks string           `json:"remarks"`
}

func (l itemLine) item(currency string) (LineItem, error) {
	it := LineItem{
		id:      l.ID,
		name:    strings.TrimSpace(l.Name),
		size:    strings.TrimSpace(l.Size),
		boxes:   Quantity{value: l.Box},
		rate:    Money{value: l.Rate, cur: currency},
		total:   Money{value: l.Total, cur: currency},
		remarks: l.Remarks,
	}
	if l.Sqft != nil {
		it.area, it.hasArea = Quantity{value: *l.Sqft}, true
	}

	var errs []error
	if it.name == "" {
		errs = append(errs, &FieldError{Field: "name", Err: ErrMissing})
	}
	if it.size == "" {
		errs = append(errs, &FieldError{Field: "size", Err: ErrMissing})
	}
	if l.Box.IsNegative() {
		errs = append(errs, &FieldError{Field: "box", Value: l.Box.String(), Err: ErrNegative})
	}
	if it.hasArea && it.area.IsNegative() {
		errs = append(errs, &FieldError{Field: "sqft", Value: it.area.String(), Err: ErrNegative})
	}
	if l.Rate.IsNegative() {
		errs = append(errs, &FieldError{Field: "rate", Value: l.Rate.String(), Err: ErrNegative})
	}
	return it, errors.Join(errs...)
}

// DecodeSession reads a session written by EncodeSession.
//
// Every stored total is checked against the total derived from its line, and
// new items get ids after both the highest id read and the header's last_id,
// so ids of removed items are not given again.
func DecodeSession(r io.Reader) (*Session, error) {
	s := &Session{Ledger: NewLedger(DefaultCurrency)}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify kind in %q: %w", n, string(lineBytes), err)
		}

		switch identifier.Kind {
		case kindQuotation:
			if s.Ledger.Len() > 0 {
				return nil, fmt.Errorf("line %d: quotation header after items", n)
			}
			var h struct {
				Reference Reference     `json:"reference"`
				Currency  string        `json:"currency"`
				LastID    ID            `json:"last_id"`
				Client    ClientDetails `json:"client"`
			}
			if err := json.Unmarshal(lineBytes, &h); err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			if h.Currency != "" {
				if err := CheckCurrency(h.Currency); err != nil {
					return nil, fmt.Errorf("line %d: %w", n, err)
				}
			}
			s.Reference = h.Reference
			s.Client = h.Client
			s.Ledger.currency = h.Currency
			s.Ledger.last = h.LastID
		case kindItem:
			var l itemLine
			if err := json.Unmarshal(lineBytes, &l); err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			it, err := l.item(s.Ledger.Currency())
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid item: %w", n, err)
			}
			if err := s.Ledger.restore(it); err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown kind %q", n, identifier.Kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if s.Reference.IsZero() {
		s.Reference = NewReference()
	}
	return s, nil
}
