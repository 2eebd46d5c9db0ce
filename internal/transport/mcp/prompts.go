package mcp

import (
	"context"
	"fmt"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	promptssvc "github.com/alanyang/redraft/internal/service/prompts"
)

// RegisterPrompts registers the rewrite MCP prompt: the fully composed
// generation prompt for a given tone and email, identical to what the rewrite
// endpoint sends to the model.
func RegisterPrompts(s *mcpserver.MCPServer, promptsSvc *promptssvc.Service) {
	s.AddPrompt(
		mcpmcp.NewPrompt("rewrite",
			mcpmcp.WithPromptDescription("The composed rewrite prompt for a tone and email, built from the active base prompt and tone instructions."),
			mcpmcp.WithArgument("tone",
				mcpmcp.ArgumentDescription("Tone keyword. An unknown keyword omits the tone guidance section."),
			),
			mcpmcp.WithArgument("email",
				mcpmcp.ArgumentDescription("The email text to frame for rewriting."),
				mcpmcp.RequiredArgument(),
			),
		),
		rewritePromptHandler(promptsSvc),
	)
}

func rewritePromptHandler(promptsSvc *promptssvc.Service) mcpserver.PromptHandlerFunc {
	return func(ctx context.Context, req mcpmcp.GetPromptRequest) (*mcpmcp.GetPromptResult, error) {
		tone := req.Params.Arguments["tone"]
		email := req.Params.Arguments["email"]
		if email == "" {
			return nil, fmt.Errorf("email argument is required")
		}

		composed, err := promptsSvc.Compose(ctx, tone, email)
		if err != nil {
			return nil, fmt.Errorf("compose rewrite prompt: %w", err)
		}

		return mcpmcp.NewGetPromptResult(
			"Composed rewrite prompt",
			[]mcpmcp.PromptMessage{
				mcpmcp.NewPromptMessage(
					mcpmcp.RoleUser,
					mcpmcp.TextContent{
						Type: "text",
						Text: composed,
					},
				),
			},
		), nil
	}
}
