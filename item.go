package quotation

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
)

// ID identifies a line item inside its ledger. IDs are issued in increasing
// order starting at 1 and are never reused, even after a removal.
type ID uint64

func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// ParseID parses an item id as printed by ID.String, a leading '#' is accepted.
func ParseID(s string) (ID, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID(v), nil
}

// Draft holds the values of a prospective line item exactly as the user typed them.
type Draft struct {
	Name    string // required
	Size    string // required
	Boxes   string // required, number of boxes
	Area    string // optional, area in square feet
	Rate    string // required, price per square foot, or per box when there is no area
	Remarks string
}

// LineItem is one row of a quotation.
//
// A LineItem is immutable, its total is computed once when the ledger
// accepts the draft.
type LineItem struct {
	id      ID
	name    string
	size    string
	boxes   Quantity
	area    Quantity
	hasArea bool
	rate    Money
	total   Money
	remarks string
}

func (it LineItem) ID() ID                 { return it.id }
func (it LineItem) Name() string           { return it.name }
func (it LineItem) Size() string           { return it.size }
func (it LineItem) Boxes() Quantity        { return it.boxes }
func (it LineItem) Rate() Money            { return it.rate }
func (it LineItem) Total() Money           { return it.total }
func (it LineItem) Remarks() string        { return it.remarks }
func (it LineItem) Area() (Quantity, bool) { return it.area, it.hasArea }

// PricedByArea reports whether the total was computed from the area rather than the box count.
func (it LineItem) PricedByArea() bool { return it.hasArea && !it.area.IsZero() }

// lineTotal is area*rate when the area is set and not zero, boxes*rate otherwise.
func lineTotal(boxes, area Quantity, hasArea bool, rate Money) Money {
	if hasArea && !area.IsZero() {
		return rate.Mul(area)
	}
	return rate.Mul(boxes)
}

func (it LineItem) derivedTotal() Money {
	return lineTotal(it.boxes, it.area, it.hasArea, it.rate)
}

func (it LineItem) String() string {
	area := "-"
	if it.hasArea {
		area = it.area.String()
	}
	return fmt.Sprintf("#%v %s %s box=%v sqft=%s rate=%v total=%v", it.id, it.name, it.size, it.boxes, area, it.rate.Fixed(), it.total.Fixed())
}

// parse validates the draft and returns an item with no id and no total.
// All failing fields are reported at once.
func (d Draft) parse(currency string) (LineItem, error) {
	var errs []error
	item := LineItem{
		name:    strings.TrimSpace(d.Name),
		size:    strings.TrimSpace(d.Size),
		remarks: strings.TrimSpace(d.Remarks),
	}

	if item.name == "" {
		errs = append(errs, &FieldError{Field: "name", Err: ErrMissing})
	}
	if item.size == "" {
		errs = append(errs, &FieldError{Field: "size", Err: ErrMissing})
	}

	boxes, err := parseQuantity("box", d.Boxes, true)
	if err != nil {
		errs = append(errs, err)
	}
	item.boxes = boxes

	// an area that is not a non-negative number is absent, the item is priced by box.
	if area, err := parseQuantity("sqft", d.Area, false); err != nil {
		log.Printf("ignoring area: %v", err)
	} else if strings.TrimSpace(d.Area) != "" {
		item.area, item.hasArea = area, true
	}

	rate, err := parseQuantity("rate", d.Rate, true)
	if err != nil {
		errs = append(errs, err)
	}
	item.rate = Money{value: rate.value, cur: currency}

	if len(errs) > 0 {
		return LineItem{}, errors.Join(errs...)
	}
	return item, nil
}

// parseQuantity parses a non-negative number.
func parseQuantity(field, raw string, required bool) (Quantity, error) {
	if strings.TrimSpace(raw) == "" {
		if required {
			return Quantity{}, &FieldError{Field: field, Err: ErrMissing}
		}
		return Quantity{}, nil
	}
	v, err := parseDecimal(raw)
	if err != nil {
		return Quantity{}, &FieldError{Field: field, Value: raw, Err: ErrNotANumber}
	}
	if v.IsNegative() {
		return Quantity{}, &FieldError{Field: field, Value: raw, Err: ErrNegative}
	}
	return Quantity{value: v}, nil
}
