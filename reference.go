package quotation

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

// referencePrefix is the TypeID prefix of quotation references.
const referencePrefix = "quo"

// Reference identifies one quotation session, e.g. "quo_01h2xcejqtf2nbrexx3vqjhp41".
// It is printed on the document so a client can quote it back.
type Reference struct {
	inner typeid.TypeID
	valid bool
}

// NewReference generates a new, globally unique reference.
func NewReference() Reference {
	tid, err := typeid.Generate(referencePrefix)
	if err != nil {
		panic(fmt.Sprintf("quotation: invalid reference prefix %q: %v", referencePrefix, err))
	}
	return Reference{inner: tid, valid: true}
}

// ParseReference parses a reference as printed by Reference.String.
func ParseReference(s string) (Reference, error) {
	tid, err := typeid.Parse(s)
	if err != nil {
		return Reference{}, fmt.Errorf("reference %q: %w", s, err)
	}
	if tid.Prefix() != referencePrefix {
		return Reference{}, fmt.Errorf("reference %q: expected prefix %q, got %q", s, referencePrefix, tid.Prefix())
	}
	return Reference{inner: tid, valid: true}, nil
}

// IsZero reports whether r is the zero Reference.
func (r Reference) IsZero() bool { return !r.valid }

func (r Reference) String() string {
	if !r.valid {
		return ""
	}
	return r.inner.String()
}

// MarshalText implements encoding.TextMarshaler.
func (r Reference) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reference) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*r = Reference{}
		return nil
	}
	v, err := ParseReference(string(data))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
