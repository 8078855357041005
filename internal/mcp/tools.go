package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/shell-session-go/internal/result"
)

// Tool names.
const (
	ToolExecute          = "shell_execute"
	ToolExecutePiped     = "shell_execute_piped"
	ToolExecutePipedEcho = "shell_execute_piped_echo"
)

// Executor is the part of a shell session the tools need.
type Executor interface {
	Execute(ctx context.Context, command string) (*result.Result, error)
	ExecutePiped(ctx context.Context, producer, consumer string) (*result.Result, error)
	ExecutePipedEcho(ctx context.Context, message, consumer string) (*result.Result, error)
}

// RegisterShellTools adds the shell tools backed by exec to r.
func RegisterShellTools(r *Registry, exec Executor) {
	r.AddTool(
		NewTool(ToolExecute,
			"Runs a command in a persistent shell session. Working directory, environment "+
				"and shell variables carry over between calls. Returns the command's stdout "+
				"and stderr lines as JSON.",
			StringSchema(map[string]string{"command": "command line to run"}),
		),
		func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, err := stringArgs(req, "command")
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			return resultOf(exec.Execute(ctx, args[0]))
		},
	)

	r.AddTool(
		NewTool(ToolExecutePiped,
			"Runs \"producer | consumer\" in the persistent shell session.",
			StringSchema(map[string]string{
				"producer": "command whose stdout is piped",
				"consumer": "command reading the piped input",
			}),
		),
		func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, err := stringArgs(req, "producer", "consumer")
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			return resultOf(exec.ExecutePiped(ctx, args[0], args[1]))
		},
	)

	r.AddTool(
		NewTool(ToolExecutePipedEcho,
			"Pipes a single-quoted message into a command in the persistent shell session. "+
				"The message must not contain single quotes.",
			StringSchema(map[string]string{
				"message":  "text to echo, without single quotes",
				"consumer": "command reading the message",
			}),
		),
		func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, err := stringArgs(req, "message", "consumer")
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			return resultOf(exec.ExecutePipedEcho(ctx, args[0], args[1]))
		},
	)
}

// resultOf converts a command outcome into a tool result.
func resultOf(res *result.Result, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return ErrorResult(err.Error()), nil
	}

	data, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}

	return TextResult(string(data)), nil
}
