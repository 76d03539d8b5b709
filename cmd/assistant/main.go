package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	endpoint := streamEndpoint(firstEnv("MCP_URL", "http://localhost:5000"))

	apiKey := firstEnv("GEMINI_API_KEY", os.Getenv("AI_API_KEY"))
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY or AI_API_KEY environment variable must be set")
	}
	model := firstEnv("AI_MODEL", "gemini-2.5-flash")
	sheetsID := os.Getenv("GOOGLE_SHEETS_ID")

	agent, err := NewAgent(ctx, endpoint, apiKey, model, sheetsID)
	if err != nil {
		log.Fatalf("Failed to start assistant: %v", err)
	}
	defer func() { _ = agent.Close() }()

	fmt.Printf("Connected to %s (session %s), model %s\n", endpoint, agent.SessionID(), model)
	for _, tool := range agent.Tools() {
		fmt.Printf("  - %s\n", tool.Name)
	}

	if len(os.Args) > 1 {
		answer, err := agent.Ask(ctx, strings.Join(os.Args[1:], " "))
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Println(answer)
		return
	}

	fmt.Println("\nType a request, or 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			return
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit", "q":
			return
		}

		answer, err := agent.Ask(ctx, input)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Println(answer)
	}
}

// streamEndpoint appends the MCP stream path to a bare server URL
func streamEndpoint(base string) string {
	if strings.HasSuffix(base, "/mcp/stream") {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/mcp/stream"
}

func firstEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
