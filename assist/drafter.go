// Package assist turns a free text description of an item into a quotation
// draft using a Gemini model.
package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/quotation"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// ErrNoDraft is returned when the model answer does not describe an item.
var ErrNoDraft = errors.New("no item in the answer")

const instruction = `You help a tile and marble shop fill in quotations.
The user describes one item in free text, possibly with typos, units or a mix of languages.
Answer with a single JSON object and nothing else, with these fields:
  "name":    the item name (string)
  "size":    the tile size as written by the shop, e.g. "2x2" or "600x600" (string)
  "box":     the number of boxes (number)
  "sqft":    the area in square feet, or null when the item is priced per box (number or null)
  "rate":    the price per square foot, or per box when sqft is null (number)
  "remarks": anything else worth printing, or "" (string)
Never compute totals. Leave a field empty rather than guessing it.
When the user refers to an item already in the quotation, call list_items first.
If the text does not describe an item, answer {}.`

// Drafter converts free text into a quotation.Draft.
type Drafter struct {
	expert *Expert
}

// NewDrafter creates a Drafter using model. items returns the current items of
// the quotation, it may be nil.
func NewDrafter(model string, items func() []quotation.LineItem) *Drafter {
	if model == "" {
		model = DefaultModel
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}
	e := &Expert{Name: "drafter", ModelName: model, Config: config}
	if items != nil {
		// the JSON response type cannot be combined with tools.
		list := ListItems(items)
		config.Tools = Tools(list)
		e.Library = NewLibrary(list)
	} else {
		config.ResponseMIMEType = "application/json"
	}
	return &Drafter{expert: e}
}

// Start opens the chat. client is usually created with genai.NewClient(ctx, nil),
// which reads the API key from the environment.
func (d *Drafter) Start(ctx context.Context, client *genai.Client) error {
	return d.expert.Start(ctx, client)
}

// Draft asks the model to read text. The draft is not validated, adding it
// to a ledger does.
func (d *Drafter) Draft(ctx context.Context, text string) (quotation.Draft, error) {
	answer, err := d.expert.Ask(ctx, &genai.Part{Text: text})
	if err != nil {
		return quotation.Draft{}, err
	}
	return ParseDraft(answer)
}

// field accepts a JSON string, number or null.
type field string

func (f *field) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		*f = ""
	case string:
		*f = field(v)
	case json.Number:
		*f = field(v.String())
	default:
		return fmt.Errorf("unexpected %T", v)
	}
	return nil
}

// ParseDraft reads a model answer. Markdown code fences around the JSON object are ignored.
func ParseDraft(answer string) (quotation.Draft, error) {
	s := strings.TrimSpace(answer)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var v struct {
		Name    field `json:"name"`
		Size    field `json:"size"`
		Box     field `json:"box"`
		Sqft    field `json:"sqft"`
		Rate    field `json:"rate"`
		Remarks field `json:"remarks"`
	}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return quotation.Draft{}, fmt.Errorf("invalid answer %q: %w", answer, err)
	}
	d := quotation.Draft{
		Name:    string(v.Name),
		Size:    string(v.Size),
		Boxes:   string(v.Box),
		Area:    string(v.Sqft),
		Rate:    string(v.Rate),
		Remarks: string(v.Remarks),
	}
	if d == (quotation.Draft{}) {
		return d, ErrNoDraft
	}
	return d, nil
}
