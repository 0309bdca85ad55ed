package toolloop

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/sjson"
)

// ToolResult is the outcome of one tool invocation: either the tool's value
// or the error it raised, never both.
type ToolResult struct {
	Value any
	Err   error
}

// Failed reports whether the invocation raised an error. A tool that caught
// its own downstream failure and returned an in-band {"error": ...} value is
// a successful invocation, not a failed one.
func (r ToolResult) Failed() bool {
	return r.Err != nil
}

// JSON serializes the result the way it is shown to the model: the value
// itself on success, {"error": "<message>"} on failure.
func (r ToolResult) JSON() string {
	if r.Err != nil {
		payload, err := sjson.Set("{}", "error", r.Err.Error())
		if err != nil {
			return `{"error":"tool execution failed"}`
		}
		return payload
	}
	raw, err := json.Marshal(r.Value)
	if err != nil {
		payload, serr := sjson.Set("{}", "error", fmt.Sprintf("serialize result: %v", err))
		if serr != nil {
			return `{"error":"tool execution failed"}`
		}
		return payload
	}
	return string(raw)
}

// Dispatch looks the requested tool up by name and invokes it with the
// reconciled arguments. An unknown name yields (zero, false) with no
// invocation. A tool error or panic is captured into the result rather than
// propagated; a failing tool must never crash the agent loop.
func (r *Registry) Dispatch(ctx context.Context, call *ToolCall) (result ToolResult, invoked bool) {
	tool, ok := r.Get(call.Name)
	if !ok {
		return ToolResult{}, false
	}
	args := ReconcileArguments(tool, call.Arguments)

	invoked = true
	defer func() {
		if p := recover(); p != nil {
			result = ToolResult{Err: fmt.Errorf("tool %s panicked: %v", call.Name, p)}
		}
	}()

	value, err := tool.Execute(ctx, args)
	if err != nil {
		return ToolResult{Err: err}, true
	}
	return ToolResult{Value: value}, true
}
