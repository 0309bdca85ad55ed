package toolloop

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

const toolSystemPromptTemplate = `You are a function-calling AI model. You are provided with function signatures
within <tools></tools> XML tags.
You may call one or more functions to assist with the user query. Don't make
assumptions about what values to plug into functions.
For each function call return a json object with function name and arguments
within <tool_call></tool_call> XML tags as follows:

<tool_call>
{"name": "<function-name>", "arguments": <args-dict>}
</tool_call>

Here are the available tools:

<tools>
{{.Tools}}
</tools>
`

var toolSystemPrompt = template.Must(template.New("toolSystemPrompt").Parse(toolSystemPromptTemplate))

// BuildSystemPrompt assembles the tool-calling system prompt: instructions,
// the expected call shape, and every tool definition serialized as JSON, one
// per line in registry order inside the <tools> tags. The string is static
// for the lifetime of one run and is always the first message sent.
func BuildSystemPrompt(registry *Registry) (string, error) {
	lines := make([]string, 0, registry.Len())
	for _, def := range registry.Definitions() {
		raw, err := json.Marshal(def)
		if err != nil {
			return "", fmt.Errorf("marshal definition for %s: %w", def.Name, err)
		}
		lines = append(lines, string(raw))
	}

	var prompt bytes.Buffer
	err := toolSystemPrompt.Execute(&prompt, map[string]string{"Tools": strings.Join(lines, "\n")})
	if err != nil {
		return "", fmt.Errorf("render system prompt: %w", err)
	}
	return prompt.String(), nil
}
