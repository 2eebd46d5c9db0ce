package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	domainprompt "github.com/alanyang/redraft/internal/domain/prompt"
	analysissvc "github.com/alanyang/redraft/internal/service/analysis"
	promptssvc "github.com/alanyang/redraft/internal/service/prompts"
	rewritesvc "github.com/alanyang/redraft/internal/service/rewrite"
)

// RegisterTools registers all MCP tools on the server.
func RegisterTools(
	s *mcpserver.MCPServer,
	promptsSvc *promptssvc.Service,
	rewriteSvc *rewritesvc.Service,
	analysisSvc *analysissvc.Service,
) {
	s.AddTool(mcpmcp.NewTool("rewrite_email",
		mcpmcp.WithDescription("Rewrite an email in the requested tone using the configured base prompt and tone instructions. Returns {original, rewritten, tone}."),
		mcpmcp.WithString("email", mcpmcp.Required(), mcpmcp.Description("The email text to rewrite")),
		mcpmcp.WithString("tone", mcpmcp.Description("Tone keyword, e.g. professional, friendly, concise, action-oriented. Defaults to professional.")),
	), rewriteEmailHandler(rewriteSvc))

	s.AddTool(mcpmcp.NewTool("list_tones",
		mcpmcp.WithDescription("List the active tones with their keywords, labels and instruction text."),
	), listTonesHandler(promptsSvc))

	s.AddTool(mcpmcp.NewTool("get_base_prompt",
		mcpmcp.WithDescription("Return the currently active base prompt text, or the built-in default if none is configured."),
	), getBasePromptHandler(promptsSvc))

	s.AddTool(mcpmcp.NewTool("analyse_prompts",
		mcpmcp.WithDescription("Run a meta-analysis of the rewrite history and return structured suggestions for improving the prompt configuration. Suggestions are proposals only — nothing is applied."),
	), analysePromptsHandler(analysisSvc))
}

func rewriteEmailHandler(rewriteSvc *rewritesvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		email := mcpmcp.ParseString(req, "email", "")
		if email == "" {
			return mcpmcp.NewToolResultText("error: email is required"), nil
		}
		tone := mcpmcp.ParseString(req, "tone", "professional")

		res, err := rewriteSvc.Rewrite(ctx, email, tone)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		data, _ := json.Marshal(res)
		return mcpmcp.NewToolResultText(string(data)), nil
	}
}

func listTonesHandler(promptsSvc *promptssvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		tones, err := promptsSvc.ActiveTones(ctx)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		data, _ := json.Marshal(tones)
		return mcpmcp.NewToolResultText(string(data)), nil
	}
}

func getBasePromptHandler(promptsSvc *promptssvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		p, err := promptsSvc.ActiveBasePrompt(ctx)
		if err != nil {
			if errors.Is(err, domainprompt.ErrNoActiveBasePrompt) {
				return mcpmcp.NewToolResultText(domainprompt.DefaultBasePrompt), nil
			}
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return mcpmcp.NewToolResultText(p.Content), nil
	}
}

func analysePromptsHandler(analysisSvc *analysissvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		report, err := analysisSvc.Analyze(ctx)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		data, _ := json.Marshal(report)
		return mcpmcp.NewToolResultText(string(data)), nil
	}
}
