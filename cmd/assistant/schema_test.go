package main

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestToGenaiSchema(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"role"},
		"properties": map[string]any{
			"role":  map[string]any{"type": "string", "description": "Job title"},
			"limit": map[string]any{"type": "integer"},
			"jobs": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object", "properties": map[string]any{"logo": map[string]any{"type": []any{"null", "string"}}}},
			},
		},
	}

	got := toGenaiSchema(schema)

	if got.Type != genai.TypeObject || len(got.Required) != 1 || got.Required[0] != "role" {
		t.Fatalf("root = %+v", got)
	}
	if role := got.Properties["role"]; role.Type != genai.TypeString || role.Description != "Job title" {
		t.Errorf("role = %+v", role)
	}
	if got.Properties["limit"].Type != genai.TypeInteger {
		t.Errorf("limit type = %v", got.Properties["limit"].Type)
	}
	jobs := got.Properties["jobs"]
	if jobs.Type != genai.TypeArray || jobs.Items == nil || jobs.Items.Properties["logo"].Type != genai.TypeString {
		t.Errorf("jobs = %+v", jobs)
	}
}

func TestToGenaiSchemaFallsBackToObject(t *testing.T) {
	if got := toGenaiSchema(nil); got.Type != genai.TypeObject {
		t.Errorf("nil schema type = %v", got.Type)
	}
	if got := toGenaiSchema(struct {
		Type string `json:"type"`
	}{Type: "string"}); got.Type != genai.TypeString {
		t.Errorf("struct schema type = %v", got.Type)
	}
}

func TestStreamEndpoint(t *testing.T) {
	cases := map[string]string{
		"http://localhost:5000":         "http://localhost:5000/mcp/stream",
		"http://localhost:5000/":        "http://localhost:5000/mcp/stream",
		"https://gw.example/mcp/stream": "https://gw.example/mcp/stream",
	}
	for in, want := range cases {
		if got := streamEndpoint(in); got != want {
			t.Errorf("streamEndpoint(%q) = %q, want %q", in, got, want)
		}
	}
}
