package mcp

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// StringSchema creates an object schema whose properties are all required strings.
func StringSchema(descriptions map[string]string) *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, len(descriptions))
	required := make([]string, 0, len(descriptions))

	for name, description := range descriptions {
		properties[name] = &jsonschema.Schema{Type: "string", Description: description}
		required = append(required, name)
	}

	slices.Sort(required)

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// NewTool creates an mcp.Tool with the given parameters.
func NewTool(name, description string, inputSchema *jsonschema.Schema) *mcp.Tool {
	return &mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema,
	}
}

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// ErrorResult creates a CallToolResult indicating an error.
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

// ParseArguments unmarshals CallToolRequest arguments into a map.
func ParseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return make(map[string]any), nil
	}

	var args map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("failed to unmarshal arguments: %w", err)
	}

	return args, nil
}

// stringArgs extracts the named string arguments, all of which are required.
func stringArgs(req *mcp.CallToolRequest, names ...string) ([]string, error) {
	args, err := ParseArguments(req)
	if err != nil {
		return nil, err
	}

	values := make([]string, len(names))

	for i, name := range names {
		v, ok := args[name].(string)
		if !ok {
			return nil, fmt.Errorf("missing string argument %q", name)
		}

		values[i] = v
	}

	return values, nil
}
