// Package toolkit ships the demo tools the agent is exercised with: a
// HackerNews search, a list aggregator, an OpenWeatherMap fetch, and an
// addition tool. Each tool is a pure request/response function; tools that
// talk to an upstream service report fetch failures in-band as
// {"error": ...} values so the model can narrate them.
package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// stringArg reads a string argument, falling back when absent or not a
// string. Model-supplied arguments arrive as decoded JSON, so every access
// goes through a type assertion.
func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func intArg(args map[string]any, key string, fallback int) int {
	if n, ok := toNumber(args[key]); ok {
		return int(n)
	}
	return fallback
}

// toNumber accepts the numeric shapes a decoded JSON value can take.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
