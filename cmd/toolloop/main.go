package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/stackmason/toolloop"
	"github.com/stackmason/toolloop/toolkit"
)

var demoQueries = []string{
	"Please help me search for articles about Anthropic Company and tell me the highest scoring of them.",
	"Please help me with my search for the current weather in Arlington, Virginia.",
}

func main() {
	runCmd := flag.NewFlagSet("run", flag.ExitOnError)

	configPath := runCmd.String("config", "", "Path to an optional YAML config file")
	storeDSN := runCmd.String("store", "", "Transcript store DSN (sqlite file path or postgres:// URI)")
	message := runCmd.String("message", "", "User message to run; the demo queries run when omitted")
	showCost := runCmd.Bool("cost", false, "Print accumulated token cost after the run")

	if len(os.Args) < 2 {
		fmt.Println("Expected 'run' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runCmd.Parse(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		fmt.Println("Expected 'run' subcommand")
		os.Exit(1)
	}

	cfg, err := toolloop.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	client := toolloop.NewClient(cfg.APIKey, cfg.BaseURL)
	agent := toolloop.NewAgent(client, cfg.Model,
		toolkit.SearchHackerNews(nil, ""),
		toolkit.ProcessData(),
		toolkit.FetchWeather(nil, "", cfg.WeatherAPIKey),
		toolkit.Add(),
	)

	dsn := *storeDSN
	if dsn == "" {
		dsn = cfg.StoreDSN
	}
	if dsn != "" {
		store, err := toolloop.NewRunStore(dsn)
		if err != nil {
			fmt.Printf("Error opening transcript store: %v\n", err)
			os.Exit(1)
		}
		agent.SetStore(store)
	}

	queries := demoQueries
	if *message != "" {
		queries = []string{*message}
	}

	ctx := context.Background()
	for _, query := range queries {
		answer, err := agent.Run(ctx, query)
		if err != nil {
			fmt.Printf("Error running agent: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Final Answer:", answer)
	}

	if *showCost {
		if details, ok := agent.Cost(); ok {
			fmt.Printf("Tokens: %d in / %d out, cost $%.6f\n", details.InputTokens, details.OutputTokens, details.TotalCost)
		}
	}
}
