package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	analysissvc "github.com/alanyang/redraft/internal/service/analysis"
	promptssvc "github.com/alanyang/redraft/internal/service/prompts"
	rewritesvc "github.com/alanyang/redraft/internal/service/rewrite"
)

// Server wraps the mark3labs/mcp-go MCPServer and its StreamableHTTPServer so
// agent clients can drive the rewriter over MCP. Tools are registered in
// tools.go, the rewrite prompt in prompts.go.
type Server struct {
	httpSrv *mcpserver.StreamableHTTPServer
}

func New(
	promptsSvc *promptssvc.Service,
	rewriteSvc *rewritesvc.Service,
	analysisSvc *analysissvc.Service,
) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		"redraft",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithPromptCapabilities(true),
	)

	RegisterTools(mcpSrv, promptsSvc, rewriteSvc, analysisSvc)
	RegisterPrompts(mcpSrv, promptsSvc)

	return &Server{httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv)}
}

// Handler returns an http.Handler that serves the MCP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}
