// Package mcp exposes a shell session as Model Context Protocol tools.
//
// The Registry holds tool definitions and handlers. It can invoke tools
// directly (CallTool) or build an official MCP SDK server that serves them
// over any MCP transport (Server).
//
// ShellTools returns the tools for one executor: shell_execute,
// shell_execute_piped and shell_execute_piped_echo. Their results carry the
// command result encoded as JSON.
package mcp
