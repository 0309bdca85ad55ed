package toolloop

import (
	"sync/atomic"

	"github.com/openai/openai-go"
)

type TokenRates struct {
	Input  float64
	Output float64
}

// ModelPricings maps model names to their pricing in dollars per million
// tokens.
var ModelPricings = map[string]TokenRates{
	"llama-3.3-70b-versatile": {Input: 0.59, Output: 0.79},
	"llama-3.1-8b-instant":    {Input: 0.05, Output: 0.08},
	"gpt-4o":                  {Input: 2.5, Output: 10.0},
	"gpt-4o-mini":             {Input: 0.15, Output: 0.60},
	"o3-mini":                 {Input: 1.10, Output: 4.40},
}

// CostDetails represents accumulated token usage and cost for an agent.
type CostDetails struct {
	InputTokens  int64
	OutputTokens int64
	TotalCost    float64
}

// usageCounter accumulates token usage across completions. Atomics because
// concurrent runs may share one agent.
type usageCounter struct {
	inputTokens  atomic.Int64
	outputTokens atomic.Int64
}

func (u *usageCounter) add(usage openai.CompletionUsage) {
	u.inputTokens.Add(usage.PromptTokens)
	u.outputTokens.Add(usage.CompletionTokens)
}

// Cost returns the accumulated cost of all runs so far, priced from the
// agent's model. The second return is false when the model has no pricing
// entry.
func (a *Agent) Cost() (*CostDetails, bool) {
	pricing, exists := ModelPricings[a.model]
	if !exists {
		return nil, false
	}

	inputTokens := a.usage.inputTokens.Load()
	outputTokens := a.usage.outputTokens.Load()
	inputCost := float64(inputTokens) * pricing.Input / 1000000
	outputCost := float64(outputTokens) * pricing.Output / 1000000

	return &CostDetails{
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		TotalCost:    inputCost + outputCost,
	}, true
}
