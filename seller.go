package quotation

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Seller is the business issuing the quotation, printed in the document header.
type Seller struct {
	Name     string   `json:"name"`
	Address  string   `json:"address,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Email    string   `json:"email,omitempty"`
	Title    string   `json:"title,omitempty"`    // document title, e.g. "Proforma Invoice"
	Currency string   `json:"currency,omitempty"` // ISO code of rates and totals
	Terms    []string `json:"terms,omitempty"`    // terms and conditions, in order
}

// DefaultTerms are printed when the seller profile does not define any.
var DefaultTerms = []string{
	"All prices are inclusive of taxes",
	"Payment terms: 50% advance, remaining before delivery",
	"Delivery within 2-3 weeks from confirmation",
	"Prices valid for 30 days",
}

// DefaultSeller returns the built-in seller profile.
func DefaultSeller() Seller {
	return Seller{
		Name:     "Our Own Marble House",
		Address:  "Thrissur Road, Irinjalakuda, Thrissur, Kerala 680121",
		Phone:    "+91 70349 03099",
		Email:    "ourownmarbles@gmail.com",
		Title:    "Proforma Invoice",
		Currency: DefaultCurrency,
		Terms:    slices.Clone(DefaultTerms),
	}
}

// Contact returns the phone and email as a single line, e.g. "Phone: +91 ... | Email: ...".
func (s Seller) Contact() string {
	var parts []string
	if s.Phone != "" {
		parts = append(parts, "Phone: "+s.Phone)
	}
	if s.Email != "" {
		parts = append(parts, "Email: "+s.Email)
	}
	return strings.Join(parts, " | ")
}

// DecodeSeller reads a JSON seller profile. Missing title, currency and terms
// are filled from DefaultSeller.
func DecodeSeller(r io.Reader) (Seller, error) {
	var s Seller
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Seller{}, fmt.Errorf("invalid seller profile: %w", err)
	}
	if strings.TrimSpace(s.Name) == "" {
		return Seller{}, fmt.Errorf("invalid seller profile: %w", &FieldError{Field: "name", Err: ErrMissing})
	}
	def := DefaultSeller()
	if s.Title == "" {
		s.Title = def.Title
	}
	if s.Currency == "" {
		s.Currency = def.Currency
	}
	if err := CheckCurrency(s.Currency); err != nil {
		return Seller{}, fmt.Errorf("invalid seller profile: %w", err)
	}
	if len(s.Terms) == 0 {
		s.Terms = def.Terms
	}
	return s, nil
}
