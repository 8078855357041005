package shellsession

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/wagiedev/shell-session-go/internal/mcp"
)

// MCP tool names served by NewMCPServer.
const (
	MCPToolExecute          = internalmcp.ToolExecute
	MCPToolExecutePiped     = internalmcp.ToolExecutePiped
	MCPToolExecutePipedEcho = internalmcp.ToolExecutePipedEcho
)

// NewMCPServer returns an MCP server that exposes session as the tools
// shell_execute, shell_execute_piped and shell_execute_piped_echo.
// Tool results carry the command Result as JSON.
//
// The server does not own the session; terminate it after the server stops:
//
//	server := shellsession.NewMCPServer(session, "shell", "1.0.0")
//	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
//	    log.Fatal(err)
//	}
func NewMCPServer(session Session, name, version string) *mcp.Server {
	return newMCPRegistry(session, name, version).Server()
}

// CallMCPTool invokes one of the session's MCP tools without a transport.
func CallMCPTool(ctx context.Context, session Session, name string, input map[string]any) (*mcp.CallToolResult, error) {
	return newMCPRegistry(session, "shell", "").CallTool(ctx, name, input)
}

func newMCPRegistry(session Session, name, version string) *internalmcp.Registry {
	registry := internalmcp.NewRegistry(name, version)
	internalmcp.RegisterShellTools(registry, session)

	return registry
}
