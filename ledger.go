package quotation

import (
	"fmt"
	"iter"
	"log"
	"slices"
)

// Ledger represents the ordered list of line items of a quotation.
//
// Items are kept in insertion order. A Ledger only grows by Add and shrinks by
// Remove, items are never edited in place. The zero value is an empty ledger
// in DefaultCurrency.
type Ledger struct {
	items    []LineItem
	last     ID     // last issued id
	currency string // ISO code for rates and totals
}

// NewLedger creates an empty ledger priced in currency.
func NewLedger(currency string) *Ledger {
	return &Ledger{
		items:    make([]LineItem, 0),
		currency: currency,
	}
}

// Currency returns the ISO code of the ledger's rates and totals.
func (l *Ledger) Currency() string {
	if l.currency == "" {
		return DefaultCurrency
	}
	return l.currency
}

// Add validates the draft, computes the line total, and appends the new item
// at the end of the ledger.
//
// If any field is invalid the ledger is left unchanged and the returned error
// joins one *FieldError per failing field.
func (l *Ledger) Add(d Draft) (LineItem, error) {
	item, err := d.parse(l.Currency())
	if err != nil {
		return LineItem{}, fmt.Errorf("invalid item: %w", err)
	}
	l.last++
	item.id = l.last
	item.total = item.derivedTotal()
	l.items = append(l.items, item)
	log.Printf("add %v", item)
	return item, nil
}

// Remove deletes the item with that id. It reports whether an item was
// removed; an unknown id leaves the ledger unchanged.
func (l *Ledger) Remove(id ID) bool {
	i := slices.IndexFunc(l.items, func(it LineItem) bool { return it.id == id })
	if i < 0 {
		return false
	}
	log.Printf("remove %v", l.items[i])
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// Total returns the grand total, the sum of all the item totals.
// It is zero for an empty ledger.
func (l *Ledger) Total() Money {
	total := M(0, l.Currency())
	for _, it := range l.items {
		total = total.Add(it.total)
	}
	return total
}

// Len returns the number of items.
func (l *Ledger) Len() int { return len(l.items) }

// Item returns the item with that id.
func (l *Ledger) Item(id ID) (LineItem, bool) {
	i := slices.IndexFunc(l.items, func(it LineItem) bool { return it.id == id })
	if i < 0 {
		return LineItem{}, false
	}
	return l.items[i], true
}

// Items returns an iterator that yields each item with its position, in insertion order.
func (l *Ledger) Items() iter.Seq2[int, LineItem] {
	return func(yield func(int, LineItem) bool) {
		for i, it := range l.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the items, later changes to the ledger do not affect it.
func (l *Ledger) Snapshot() []LineItem {
	return slices.Clone(l.items)
}

// restore appends an item read back from a session file. The stored total
// must match the one derived from the item's fields.
func (l *Ledger) restore(item LineItem) error {
	if item.id == 0 {
		return ErrInvalidID
	}
	if _, exists := l.Item(item.id); exists {
		return fmt.Errorf("%w: %v", ErrDuplicateID, item.id)
	}
	if want := item.derivedTotal(); !want.Equal(item.total) {
		return fmt.Errorf("%w: item %v has %s, want %s", ErrInconsistentTotal, item.id, item.total.Fixed(), want.Fixed())
	}
	l.items = append(l.items, item)
	l.last = max(l.last, item.id)
	return nil
}
