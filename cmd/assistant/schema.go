package main

import (
	"encoding/json"

	"github.com/google/generative-ai-go/genai"
)

// toGenaiSchema converts a JSON schema, as advertised by an MCP tool, into
// the subset Gemini function declarations understand
func toGenaiSchema(schema any) *genai.Schema {
	m, ok := asMap(schema)
	if !ok {
		return &genai.Schema{Type: genai.TypeObject}
	}

	out := &genai.Schema{Type: genaiType(m["type"])}
	if desc, ok := m["description"].(string); ok {
		out.Description = desc
	}

	if required, ok := m["required"].([]any); ok {
		for _, r := range required {
			if s, ok := r.(string); ok {
				out.Required = append(out.Required, s)
			}
		}
	}

	if props, ok := m["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, prop := range props {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}

	if items, ok := m["items"]; ok {
		out.Items = toGenaiSchema(items)
	}

	return out
}

// genaiType maps a JSON schema type. Nullable unions like ["null","string"]
// resolve to their first non-null member.
func genaiType(v any) genai.Type {
	switch t := v.(type) {
	case string:
		switch t {
		case "string":
			return genai.TypeString
		case "integer":
			return genai.TypeInteger
		case "number":
			return genai.TypeNumber
		case "boolean":
			return genai.TypeBoolean
		case "array":
			return genai.TypeArray
		}
	case []any:
		for _, member := range t {
			if s, ok := member.(string); ok && s != "null" {
				return genaiType(s)
			}
		}
	}
	return genai.TypeObject
}

// asMap accepts either a decoded map or any value that marshals to a JSON
// object, such as *jsonschema.Schema
func asMap(v any) (map[string]any, bool) {
	if v == nil {
		return nil, false
	}
	if m, ok := v.(map[string]any); ok {
		return m, true
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}
