// Package server exposes the explorer client as MCP tools over stdio.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Mohsinsiddi/escan-mcp/internal/etherscan"
)

// Server wires the MCP protocol to the explorer client.
type Server struct {
	mcpServer      *mcpserver.MCPServer
	client         *etherscan.Client
	defaultChainID string
	log            *slog.Logger
	version        string
}

// NewServer creates the MCP server and registers all tools.
func NewServer(client *etherscan.Client, defaultChainID, version string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		client:         client,
		defaultChainID: defaultChainID,
		log:            log,
		version:        version,
	}
	s.mcpServer = mcpserver.NewMCPServer("escan-mcp", version,
		mcpserver.WithToolHandlerMiddleware(s.logCalls),
	)
	s.registerTools()
	return s
}

// logCalls logs every tool invocation with its duration.
func (s *Server) logCalls(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		res, err := next(ctx, request)
		s.log.Info("tool call",
			"tool", request.Params.Name,
			"chain", s.chainID(request),
			"duration", time.Since(start).Round(time.Millisecond),
			"is_error", err != nil || (res != nil && res.IsError),
		)
		return res, err
	}
}

// MCPServer returns the underlying MCP server for in-process transport.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the server over stdin/stdout until the client hangs up.
func (s *Server) ServeStdio() error {
	s.log.Info("serving MCP over stdio", "version", s.version, "default_chain", s.defaultChainID)
	return mcpserver.ServeStdio(s.mcpServer)
}

// chainID resolves the chain for a request; tools fall back to the
// configured default chain when the argument is omitted.
func (s *Server) chainID(request mcp.CallToolRequest) string {
	return request.GetString("chainID", s.defaultChainID)
}

// jsonResult marshals a tool result payload for the MCP text response.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("error serializing result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
