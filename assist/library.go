package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/quotation"
	"google.golang.org/genai"
)

// Library answers the function calls of a model.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is a tool the model can call.
type Function interface {
	Declaration() *genai.FunctionDeclaration
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary dispatches calls to functions by name.
func NewLibrary(functions ...Function) Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		for _, f := range functions {
			if f.Declaration().Name == call.Name {
				return f.Call(ctx, call.ID, call.Args)
			}
		}
		return &genai.FunctionResponse{
			ID:   call.ID,
			Name: call.Name,
			Response: map[string]any{
				"error": fmt.Sprintf("unknown function %s", call.Name),
			},
		}
	}
}

// Tools declares functions to the model.
func Tools(functions ...Function) []*genai.Tool {
	decls := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		decls = append(decls, f.Declaration())
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

// ListItems lets the model read the items already in the quotation, so a
// request like "same tile as #2 but 4 boxes" can be resolved.
type ListItems func() []quotation.LineItem

func (ListItems) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "list_items",
		Description: "Lists the items already in the quotation, one per line, with their id, name, size, boxes, area in sqft, rate and remarks.",
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The items, or an empty string when the quotation is empty.",
		},
	}
}

func (f ListItems) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	var b strings.Builder
	for _, it := range f() {
		fmt.Fprintf(&b, "#%v name=%q size=%q box=%v sqft=%s rate=%v remarks=%q\n",
			it.ID(), it.Name(), it.Size(), it.Boxes(), quotation.AreaText(it), it.Rate().Decimal(), it.Remarks())
	}
	return &genai.FunctionResponse{
		ID:       id,
		Name:     "list_items",
		Response: map[string]any{"output": b.String()},
	}
}
