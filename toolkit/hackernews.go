package toolkit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/stackmason/toolloop"
)

const defaultHackerNewsBaseURL = "http://hn.algolia.com/api/v1"

const defaultSearchLimit = 5

type hackerNewsArgs struct {
	Query string `json:"query" jsonschema:"description=Keyword to search articles for"`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Maximum number of articles to return,default=5"`
}

type hackerNewsHit struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Points int    `json:"points"`
}

type hackerNewsResponse struct {
	Hits []hackerNewsHit `json:"hits"`
}

// SearchHackerNews returns a tool that searches HackerNews articles by
// keyword through the Algolia API, keeping only linked articles with more
// than 10 points. A nil client or empty baseURL selects the defaults.
func SearchHackerNews(client *http.Client, baseURL string) *toolloop.Tool {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultHackerNewsBaseURL
	}

	fn := func(ctx context.Context, args map[string]any) (any, error) {
		query := stringArg(args, "query", "")
		limit := intArg(args, "limit", defaultSearchLimit)
		if limit <= 0 {
			limit = defaultSearchLimit
		}

		endpoint := fmt.Sprintf("%s/search?query=%s&numericFilters=points>10", baseURL, url.QueryEscape(query))
		var payload hackerNewsResponse
		if err := getJSON(ctx, client, endpoint, &payload); err != nil {
			return []map[string]any{{"error": fmt.Sprintf("Failed to fetch articles: %v", err)}}, nil
		}

		articles := make([]map[string]any, 0, limit)
		for _, hit := range payload.Hits {
			if hit.URL == "" {
				continue
			}
			articles = append(articles, map[string]any{
				"title": hit.Title,
				"url":   hit.URL,
				"score": hit.Points,
			})
			if len(articles) == limit {
				break
			}
		}
		return articles, nil
	}

	return toolloop.NewTool(
		"search_hackernews",
		"Search HackerNews articles by keyword.",
		fn,
		toolloop.WithParameters(toolloop.ParameterSchema[hackerNewsArgs]()),
	)
}
