package toolkit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/stackmason/toolloop"
)

const defaultWeatherBaseURL = "http://api.openweathermap.org/data/2.5"

type fetchWeatherArgs struct {
	City  string `json:"city" jsonschema:"description=City name to fetch the weather for"`
	Units string `json:"units,omitempty" jsonschema:"description=Units of measurement,enum=metric,enum=imperial,default=metric"`
}

type weatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// FetchWeather returns a tool that fetches current conditions for a city
// from OpenWeatherMap. An unreachable or failing upstream is reported
// in-band as {"error": ...} so the run keeps going and the model narrates
// the failure.
func FetchWeather(client *http.Client, baseURL string, apiKey string) *toolloop.Tool {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultWeatherBaseURL
	}

	fn := func(ctx context.Context, args map[string]any) (any, error) {
		city := stringArg(args, "city", "")
		units := stringArg(args, "units", "metric")

		endpoint := fmt.Sprintf("%s/weather?q=%s&units=%s&appid=%s", baseURL, url.QueryEscape(city), units, apiKey)
		var payload weatherResponse
		if err := getJSON(ctx, client, endpoint, &payload); err != nil {
			return map[string]any{"error": fmt.Sprintf("Failed to fetch weather data: %v", err)}, nil
		}

		description := ""
		if len(payload.Weather) > 0 {
			description = payload.Weather[0].Description
		}
		return map[string]any{
			"city":        payload.Name,
			"temperature": payload.Main.Temp,
			"weather":     description,
			"humidity":    payload.Main.Humidity,
			"wind_speed":  payload.Wind.Speed,
		}, nil
	}

	return toolloop.NewTool(
		"fetch_weather",
		"Fetch the current weather for a specified city.",
		fn,
		toolloop.WithParameters(toolloop.ParameterSchema[fetchWeatherArgs]()),
	)
}
