package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alanyang/redraft/internal/adapter/gemini"
	"github.com/alanyang/redraft/internal/adapter/jsonfile"
	"github.com/alanyang/redraft/internal/adapter/memory"
	"github.com/alanyang/redraft/internal/adapter/openai"
	pgdb "github.com/alanyang/redraft/internal/adapter/postgres"
	pgeventbus "github.com/alanyang/redraft/internal/adapter/postgres/eventbus"
	pgpromptstore "github.com/alanyang/redraft/internal/adapter/postgres/promptstore"
	"github.com/alanyang/redraft/internal/config"
	"github.com/alanyang/redraft/internal/domain/event"

	analysissvc "github.com/alanyang/redraft/internal/service/analysis"
	promptssvc "github.com/alanyang/redraft/internal/service/prompts"
	rewritesvc "github.com/alanyang/redraft/internal/service/rewrite"

	"github.com/alanyang/redraft/internal/transport"
	mcptransport "github.com/alanyang/redraft/internal/transport/mcp"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Pool   *pgxpool.Pool
	Server *http.Server
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies. cfg is constructed once in main — no component
// reads the environment itself.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	// ── Database ─────────────────────────────────────────────────────────────
	pool, err := pgdb.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pgdb.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	// ── Adapters ─────────────────────────────────────────────────────────────
	promptRepo := pgpromptstore.New(pool)
	if err := promptRepo.Seed(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("seeding prompt store: %w", err)
	}

	eventBus := pgeventbus.New(pool)
	rewriteLog := jsonfile.New(cfg.RewriteLogPath)
	generator := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	chat := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// The rewrite path reads the base prompt and a tone on every request;
	// cache those reads, dropping the cache whenever another replica publishes
	// a prompt change.
	promptCache := memory.NewPromptCache(promptRepo, cfg.PromptCacheTTL)
	if _, err := eventBus.Subscribe(ctx, event.ChannelPrompt, func(context.Context, event.Event) {
		promptCache.Invalidate()
	}); err != nil {
		pool.Close()
		return nil, fmt.Errorf("subscribing prompt cache: %w", err)
	}

	// ── Services ─────────────────────────────────────────────────────────────
	promptsSvcInstance := promptssvc.NewService(promptCache, eventBus, cfg.StrictToneUpdates)
	rewriteSvcInstance := rewritesvc.NewService(promptsSvcInstance, generator, rewriteLog, eventBus)
	analysisSvcInstance := analysissvc.NewService(promptCache, rewriteLog, chat, eventBus)

	mcpServer := mcptransport.New(promptsSvcInstance, rewriteSvcInstance, analysisSvcInstance)

	// ── Transport ────────────────────────────────────────────────────────────
	router := transport.NewRouter(
		ctx,
		rewriteSvcInstance,
		promptsSvcInstance,
		analysisSvcInstance,
		mcpServer,
		eventBus,
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	slog.Info("application wired", "port", cfg.Port)

	return &App{
		Pool:   pool,
		Server: server,
	}, nil
}
