// Package toolloop implements a single-turn function-calling agent. Tool
// definitions are advertised to the model inside the system prompt, the
// model's reply is parsed for at most one structured call, the matching tool
// runs, and its result is sent back to the model to produce the final answer.
package toolloop

import "context"

// ToolFunc is the shape every tool conforms to: a pure request/response
// function over keyword-style arguments. A ToolFunc may return an error; the
// dispatcher converts it to a structured error payload instead of letting it
// crash the run.
type ToolFunc func(ctx context.Context, args map[string]any) (any, error)

// ToolDefinition is the metadata advertised to the model for one tool.
// Immutable after NewTool returns. Description is a pointer so an
// undocumented tool serializes with "description": null.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Parameters  map[string]any `json:"parameters"`
	Returns     map[string]any `json:"returns"`
}

// Tool pairs a callable with its definition. The registry holds Tools, not
// separate descriptor objects, so the metadata travels with the function.
type Tool struct {
	def     ToolDefinition
	aliases map[string]string
	fn      ToolFunc
}

// ToolOption configures a Tool at construction time.
type ToolOption func(*Tool)

// WithParameters declares the tool's parameter schema, a mapping of
// parameter name to schema descriptor. See ParameterSchema for deriving it
// from a struct.
func WithParameters(params map[string]any) ToolOption {
	return func(t *Tool) {
		t.def.Parameters = params
	}
}

// WithReturns declares the tool's return schema.
func WithReturns(returns map[string]any) ToolOption {
	return func(t *Tool) {
		t.def.Returns = returns
	}
}

// WithAliases declares alternate argument names the model is known to use
// for this tool, mapped onto the real parameter names, e.g.
// {"num1": "x", "num2": "y"}. Tools without aliases receive the model's
// arguments untouched.
func WithAliases(aliases map[string]string) ToolOption {
	return func(t *Tool) {
		t.aliases = aliases
	}
}

// NewTool attaches a definition to fn without altering how fn is invoked.
// Construction never fails: an empty description yields a definition whose
// description serializes as null, and undeclared schemas stay as empty
// mappings.
func NewTool(name, description string, fn ToolFunc, opts ...ToolOption) *Tool {
	t := &Tool{
		def: ToolDefinition{
			Name:       name,
			Parameters: map[string]any{},
			Returns:    map[string]any{},
		},
		fn: fn,
	}
	if description != "" {
		t.def.Description = &description
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tool) Name() string {
	return t.def.Name
}

func (t *Tool) Description() string {
	if t.def.Description == nil {
		return ""
	}
	return *t.def.Description
}

// Definition returns the metadata advertised to the model.
func (t *Tool) Definition() ToolDefinition {
	return t.def
}

// Execute invokes the underlying function with the given arguments.
func (t *Tool) Execute(ctx context.Context, args map[string]any) (any, error) {
	return t.fn(ctx, args)
}
