package toolkit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openai/openai-go"

	"github.com/stackmason/toolloop"
)

// scriptedLLM replays canned replies in order.
type scriptedLLM struct {
	replies []string
	calls   int
}

func (m *scriptedLLM) New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	if m.calls >= len(m.replies) {
		return nil, fmt.Errorf("unexpected model call %d", m.calls+1)
	}
	reply := m.replies[m.calls]
	m.calls++
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: reply}},
		},
	}, nil
}

func TestSearchHackerNews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "anthropic" {
			t.Errorf("Unexpected query: %q", got)
		}
		fmt.Fprint(w, `{"hits":[
			{"title":"Story A","url":"https://a.example","points":120},
			{"title":"No URL","url":"","points":90},
			{"title":"Story B","url":"https://b.example","points":45}
		]}`)
	}))
	defer server.Close()

	tool := SearchHackerNews(server.Client(), server.URL)
	result, err := tool.Execute(context.Background(), map[string]any{"query": "anthropic", "limit": float64(2)})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	articles, ok := result.([]map[string]any)
	if !ok {
		t.Fatalf("Unexpected result type %T", result)
	}
	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(articles))
	}
	if articles[0]["title"] != "Story A" || articles[0]["score"] != 120 {
		t.Fatalf("Unexpected first article: %+v", articles[0])
	}
	if articles[1]["title"] != "Story B" {
		t.Fatalf("Articles without a URL should be skipped: %+v", articles[1])
	}
}

func TestSearchHackerNewsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	tool := SearchHackerNews(server.Client(), server.URL)
	result, err := tool.Execute(context.Background(), map[string]any{"query": "anything"})
	if err != nil {
		t.Fatalf("Upstream failures must be reported in-band, got error: %v", err)
	}

	articles, ok := result.([]map[string]any)
	if !ok || len(articles) != 1 {
		t.Fatalf("Expected a single in-band error entry, got %+v", result)
	}
	msg, _ := articles[0]["error"].(string)
	if !strings.HasPrefix(msg, "Failed to fetch articles:") {
		t.Fatalf("Unexpected error message: %q", msg)
	}
}

func TestProcessData(t *testing.T) {
	tool := ProcessData()
	data := []any{
		map[string]any{"score": float64(10)},
		map[string]any{"score": float64(20)},
		map[string]any{"score": float64(30)},
	}

	t.Run("Average", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]any{"data": data, "operation": "average"})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		got := result.(map[string]any)
		if got["average_score"] != float64(20) {
			t.Fatalf("Expected average_score 20, got %v", got["average_score"])
		}
	})

	t.Run("Count", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]any{"data": data, "operation": "count"})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		got := result.(map[string]any)
		if got["count"] != 3 {
			t.Fatalf("Expected count 3, got %v", got["count"])
		}
	})

	t.Run("Max", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]any{"data": data, "operation": "max"})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		got := result.(map[string]any)
		best, ok := got["max_score_article"].(map[string]any)
		if !ok || best["score"] != float64(30) {
			t.Fatalf("Expected the 30-score article, got %+v", got)
		}
	})

	t.Run("InvalidOperation", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]any{"data": data, "operation": "median"})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		got := result.(map[string]any)
		if got["error"] != "Invalid operation" {
			t.Fatalf("Expected in-band invalid operation error, got %+v", got)
		}
	})

	t.Run("DefaultsToCount", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]any{"data": data})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		got := result.(map[string]any)
		if got["count"] != 3 {
			t.Fatalf("Expected count 3, got %v", got["count"])
		}
	})
}

func TestFetchWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "Arlington" || q.Get("units") != "metric" || q.Get("appid") != "test-key" {
			t.Errorf("Unexpected query: %v", q)
		}
		fmt.Fprint(w, `{"name":"Arlington","main":{"temp":22.5,"humidity":60},"weather":[{"description":"clear sky"}],"wind":{"speed":3.1}}`)
	}))
	defer server.Close()

	tool := FetchWeather(server.Client(), server.URL, "test-key")
	result, err := tool.Execute(context.Background(), map[string]any{"city": "Arlington"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	got := result.(map[string]any)
	if got["city"] != "Arlington" || got["temperature"] != 22.5 || got["weather"] != "clear sky" {
		t.Fatalf("Unexpected weather payload: %+v", got)
	}
}

func TestFetchWeatherUpstreamUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	tool := FetchWeather(http.DefaultClient, server.URL, "test-key")
	result, err := tool.Execute(context.Background(), map[string]any{"city": "Arlington"})
	if err != nil {
		t.Fatalf("Upstream failures must be reported in-band, got error: %v", err)
	}

	got := result.(map[string]any)
	msg, _ := got["error"].(string)
	if !strings.HasPrefix(msg, "Failed to fetch weather data:") {
		t.Fatalf("Unexpected error message: %q", msg)
	}
}

// The aggregation scenario end to end: the model asks for an average over
// inline data and narrates the result.
func TestAgentWithProcessData(t *testing.T) {
	llm := &scriptedLLM{replies: []string{
		`<tool_call>{"name":"process_data","arguments":{"data":[{"score":10},{"score":20},{"score":30}],"operation":"average"}}</tool_call>`,
		"The average score is 20.",
	}}
	agent := toolloop.NewAgent(llm, "llama-3.3-70b-versatile", ProcessData())

	answer, err := agent.Run(context.Background(), "What is the average score of these articles?")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(answer, "20") {
		t.Fatalf("Expected the average in the final answer, got %q", answer)
	}
}

// The weather-outage scenario end to end: the tool reports its failure
// in-band, the orchestrator forwards it, and the model narrates it.
func TestAgentWithUnreachableWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	llm := &scriptedLLM{replies: []string{
		`<tool_call>{"name":"fetch_weather","arguments":{"city":"Arlington"}}</tool_call>`,
		"Sorry, I could not fetch the weather right now.",
	}}
	agent := toolloop.NewAgent(llm, "llama-3.3-70b-versatile",
		FetchWeather(http.DefaultClient, server.URL, "test-key"))

	answer, err := agent.Run(context.Background(), "What's the weather in Arlington?")
	if err != nil {
		t.Fatalf("Run must not fail when the upstream is unreachable: %v", err)
	}
	if answer != "Sorry, I could not fetch the weather right now." {
		t.Fatalf("Expected the model's narration, got %q", answer)
	}
	if llm.calls != 2 {
		t.Fatalf("Expected the error to be forwarded in a second model call, got %d calls", llm.calls)
	}
}

func TestAddTool(t *testing.T) {
	registry := toolloop.NewRegistry(Add())

	result, invoked := registry.Dispatch(context.Background(), &toolloop.ToolCall{
		Name:      "add",
		Arguments: map[string]any{"num1": float64(5), "num2": float64(3)},
	})
	if !invoked {
		t.Fatalf("Expected the add tool to be invoked")
	}
	if result.Failed() {
		t.Fatalf("Unexpected failure: %v", result.Err)
	}
	if result.JSON() != "8" {
		t.Fatalf("Expected 8, got %s", result.JSON())
	}

	result, invoked = registry.Dispatch(context.Background(), &toolloop.ToolCall{
		Name:      "add",
		Arguments: map[string]any{"num1": "five", "num2": float64(3)},
	})
	if !invoked || !result.Failed() {
		t.Fatalf("Expected a captured execution error, got %+v", result)
	}
}
