package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"smartphones/config"
	"smartphones/console"
	"smartphones/services"
	"smartphones/services/agent"
	"smartphones/services/llm"
)

func main() {
	os.Exit(run(context.Background(), os.Stdin, os.Stdout))
}

func run(ctx context.Context, in io.Reader, out io.Writer) int {
	cfg := config.Load()

	restoreLogs, err := cfg.SetupLogging()
	if err != nil {
		fmt.Fprintf(out, "Failed to open log file %s: %v\n", cfg.LogFile, err)
		return 1
	}
	defer restoreLogs()

	model, err := llm.NewModel(cfg)
	if err != nil {
		log.Printf("[ERROR] Failed to initialize chat model: %v", err)
		fmt.Fprintf(out, "An unexpected error occurred while starting: %v\n", err)
		return 1
	}

	catalog := services.OpenCatalog(ctx, cfg)
	assistant := agent.NewService(model, cfg.ChatUserID, agent.NewSmartphoneInfoTool(catalog))

	return chat(ctx, in, out, assistant)
}

func chat(ctx context.Context, in io.Reader, out io.Writer, chatter console.Chatter) int {
	if err := console.Run(ctx, in, out, chatter); err != nil {
		log.Printf("[ERROR] Conversation loop failed: %v", err)
		fmt.Fprintf(out, "An unexpected error occurred in the main loop: %v\n", err)
		return 1
	}
	return 0
}
