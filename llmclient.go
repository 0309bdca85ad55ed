package toolloop

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultBaseURL is Groq's OpenAI-compatible chat-completions endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

var _ LLM = &Client{}

// Client is an OpenAI-compatible chat completion client. The API key is read
// once at construction; an absent key is not validated here and fails at the
// first model call.
type Client struct {
	apiKey  string
	baseURL string
	client  openai.Client
}

// NewClient builds a Client for the given endpoint. An empty baseURL selects
// DefaultBaseURL.
func NewClient(apiKey string, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

func (c *Client) New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}
