package transport

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/alanyang/redraft/internal/domain/event"
	porteventbus "github.com/alanyang/redraft/internal/port/eventbus"
	analysissvc "github.com/alanyang/redraft/internal/service/analysis"
	promptssvc "github.com/alanyang/redraft/internal/service/prompts"
	rewritesvc "github.com/alanyang/redraft/internal/service/rewrite"

	analysishandler "github.com/alanyang/redraft/internal/transport/analysis"
	mcptransport "github.com/alanyang/redraft/internal/transport/mcp"
	promptshandler "github.com/alanyang/redraft/internal/transport/prompts"
	rewritehandler "github.com/alanyang/redraft/internal/transport/rewrite"
	wshandler "github.com/alanyang/redraft/internal/transport/ws"
)

func NewRouter(
	ctx context.Context,
	rewriteSvc *rewritesvc.Service,
	promptsSvc *promptssvc.Service,
	analysisSvc *analysissvc.Service,
	mcpServer *mcptransport.Server,
	eventBus porteventbus.EventBus,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	rewritehandler.Register(r.Group(""), rewriteSvc)
	analysishandler.Register(r.Group(""), analysisSvc)
	promptshandler.Register(r.Group("/prompts"), promptsSvc)

	if mcpServer != nil {
		h := gin.WrapH(mcpServer.Handler())
		r.Any("/mcp", h)
		r.Any("/mcp/*path", h)
	}

	hub := wshandler.NewHub()
	hub.Register(r.Group("/ws"))

	// Bridge: one subscription per domain channel. Every event in a channel is
	// forwarded to WS clients; event.Type in the payload lets the client filter.
	for _, ch := range []event.Channel{
		event.ChannelPrompt,
		event.ChannelRewrite,
	} {
		c := ch
		if _, err := eventBus.Subscribe(ctx, c, func(_ context.Context, e event.Event) {
			hub.Broadcast(e)
		}); err != nil {
			slog.Error("failed to subscribe channel to WS hub", "channel", c, "error", err)
		}
	}

	return r
}
