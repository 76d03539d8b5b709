package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("url", "http://localhost:5000/mcp/stream", "MCP streamable endpoint")
	role := flag.String("role", "Intern", "role for job_search")
	location := flag.String("location", "Remote", "location for job_search")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "gradnex-smoke",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: *endpoint}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	names := listTools(ctx, session)
	if names["job_search"] {
		testJobSearch(ctx, session, *role, *location)
	}
	if names["resume_optimize"] {
		testResumeOptimize(ctx, session)
	}
	if names["search_history"] {
		testSearchHistory(ctx, session, *role)
	}

	fmt.Println("\nAll checks completed")
}

func listTools(ctx context.Context, session *mcp.ClientSession) map[string]bool {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("list tools failed: %v", err)
	}

	names := make(map[string]bool, len(res.Tools))
	for _, tool := range res.Tools {
		names[tool.Name] = true
		fmt.Printf("  %s - %s\n", tool.Name, strings.ReplaceAll(tool.Description, "\n", " "))
	}
	return names
}

func testJobSearch(ctx context.Context, session *mcp.ClientSession, role, location string) {
	fmt.Println("\nTEST: job_search")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "job_search",
		Arguments: map[string]any{"role": role, "location": location, "type": "any"},
	})
	if err != nil {
		log.Printf("job_search failed: %v", err)
		return
	}
	printResult(result)

	fmt.Println("\nTEST: job_search with blank role")
	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "job_search",
		Arguments: map[string]any{"role": ""},
	})
	if err != nil {
		log.Printf("job_search (blank) failed: %v", err)
		return
	}
	if !result.IsError {
		log.Printf("job_search (blank) should report a tool error")
		return
	}
	printResult(result)
	fmt.Println("job_search passed")
}

func testResumeOptimize(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: resume_optimize")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "resume_optimize",
		Arguments: map[string]any{
			"text": "built a small REST API in Go for a college project",
			"kind": "project",
		},
	})
	if err != nil {
		log.Printf("resume_optimize failed: %v", err)
		return
	}
	printResult(result)
	fmt.Println("resume_optimize passed")
}

func testSearchHistory(ctx context.Context, session *mcp.ClientSession, role string) {
	fmt.Println("\nTEST: search_history")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "search_history",
		Arguments: map[string]any{"role": role, "limit": 5},
	})
	if err != nil {
		log.Printf("search_history failed: %v", err)
		return
	}
	printResult(result)
	fmt.Println("search_history passed")
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
