package toolkit

import (
	"context"

	"github.com/stackmason/toolloop"
)

type processDataArgs struct {
	Data      []map[string]any `json:"data" jsonschema:"description=List of articles to process"`
	Operation string           `json:"operation,omitempty" jsonschema:"description=Operation to perform,enum=count,enum=average,enum=max,default=count"`
}

// ProcessData returns a tool that aggregates a list of articles: count them,
// average their scores, or pick the highest-scoring one. An unknown
// operation is reported in-band, not raised.
func ProcessData() *toolloop.Tool {
	fn := func(ctx context.Context, args map[string]any) (any, error) {
		data, _ := args["data"].([]any)
		operation := stringArg(args, "operation", "count")

		switch operation {
		case "count":
			return map[string]any{"count": len(data)}, nil
		case "average":
			var sum float64
			var scored int
			for _, item := range data {
				article, ok := item.(map[string]any)
				if !ok {
					continue
				}
				if score, ok := toNumber(article["score"]); ok {
					sum += score
					scored++
				}
			}
			average := 0.0
			if scored > 0 {
				average = sum / float64(scored)
			}
			return map[string]any{"average_score": average}, nil
		case "max":
			var best map[string]any
			bestScore := 0.0
			for _, item := range data {
				article, ok := item.(map[string]any)
				if !ok {
					continue
				}
				score, _ := toNumber(article["score"])
				if best == nil || score > bestScore {
					best = article
					bestScore = score
				}
			}
			if best == nil {
				return map[string]any{}, nil
			}
			return map[string]any{"max_score_article": best}, nil
		default:
			return map[string]any{"error": "Invalid operation"}, nil
		}
	}

	return toolloop.NewTool(
		"process_data",
		"Process a list of articles with basic operations (count, average, max).",
		fn,
		toolloop.WithParameters(toolloop.ParameterSchema[processDataArgs]()),
	)
}
