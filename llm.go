package toolloop

import (
	"context"

	"github.com/openai/openai-go"
)

// LLM defines the minimal contract required by the agent to interact with a
// language-model provider. The provider is an opaque request/response
// service: ordered role-tagged messages in, one text reply out. Streaming is
// deliberately absent; the tool-call protocol here is two blocking
// round-trips per run at most.
type LLM interface {
	// New issues a non-streaming chat completion request.
	New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}
