package toolloop

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// ToolCall is one structured invocation request parsed from the model's
// reply. It exists only within one orchestration step.
type ToolCall struct {
	Name      string
	Arguments map[string]any
}

const (
	toolCallOpenTag  = "<tool_call>"
	toolCallCloseTag = "</tool_call>"
)

var toolCallTagPattern = regexp.MustCompile(`</?tool_call>`)

// ParseToolCall extracts a tool call from the model's raw reply text. The
// reply must carry the <tool_call> delimiter and, once the tags are
// stripped, decode as a JSON object with a string "name". Anything else
// means the reply is a plain answer, reported as (nil, false) — absence of a
// call is a normal outcome, never an error.
func ParseToolCall(reply string) (*ToolCall, bool) {
	if !strings.Contains(reply, toolCallOpenTag) {
		return nil, false
	}
	clean := strings.TrimSpace(toolCallTagPattern.ReplaceAllString(reply, ""))
	if !gjson.Valid(clean) {
		return nil, false
	}
	parsed := gjson.Parse(clean)
	if !parsed.IsObject() {
		return nil, false
	}
	name := parsed.Get("name")
	if name.Type != gjson.String || name.Str == "" {
		return nil, false
	}

	call := &ToolCall{Name: name.Str, Arguments: map[string]any{}}
	if args, ok := parsed.Get("arguments").Value().(map[string]any); ok {
		call.Arguments = args
	}
	return call, true
}
