package toolloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolCall(t *testing.T) {
	tests := []struct {
		name   string
		reply  string
		want   *ToolCall
		parsed bool
	}{
		{
			name:  "well-formed tagged call",
			reply: `<tool_call>{"name":"add","arguments":{"num1":5,"num2":3}}</tool_call>`,
			want: &ToolCall{
				Name:      "add",
				Arguments: map[string]any{"num1": float64(5), "num2": float64(3)},
			},
			parsed: true,
		},
		{
			name:  "surrounding whitespace",
			reply: "<tool_call>\n{\"name\": \"fetch_weather\", \"arguments\": {\"city\": \"Arlington\"}}\n</tool_call>",
			want: &ToolCall{
				Name:      "fetch_weather",
				Arguments: map[string]any{"city": "Arlington"},
			},
			parsed: true,
		},
		{
			name:  "missing arguments defaults to empty map",
			reply: `<tool_call>{"name":"add"}</tool_call>`,
			want: &ToolCall{
				Name:      "add",
				Arguments: map[string]any{},
			},
			parsed: true,
		},
		{
			name:   "plain answer without tags",
			reply:  "The capital of France is Paris.",
			parsed: false,
		},
		{
			name:   "bare JSON without tags is a plain answer",
			reply:  `{"name":"add","arguments":{"num1":5,"num2":3}}`,
			parsed: false,
		},
		{
			name:   "malformed JSON inside tags",
			reply:  `<tool_call>{"name":"add","arguments":</tool_call>`,
			parsed: false,
		},
		{
			name:   "truncated reply",
			reply:  `<tool_call>{"name":"add"`,
			parsed: false,
		},
		{
			name:   "non-object payload",
			reply:  `<tool_call>["add"]</tool_call>`,
			parsed: false,
		},
		{
			name:   "missing name",
			reply:  `<tool_call>{"arguments":{"x":1}}</tool_call>`,
			parsed: false,
		},
		{
			name:   "prose around the tagged call",
			reply:  `Sure, let me do that. <tool_call>{"name":"add","arguments":{}}</tool_call>`,
			parsed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, ok := ParseToolCall(tt.reply)
			if !tt.parsed {
				assert.False(t, ok)
				assert.Nil(t, call)
				return
			}
			require.True(t, ok)
			require.NotNil(t, call)
			assert.Equal(t, tt.want.Name, call.Name)
			assert.Equal(t, tt.want.Arguments, call.Arguments)
		})
	}
}
