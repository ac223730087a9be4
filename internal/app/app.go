package app

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/ticketflow/ticketflow/internal/api/http"
	"github.com/ticketflow/ticketflow/internal/api/http/handlers"
	"github.com/ticketflow/ticketflow/internal/auth"
	"github.com/ticketflow/ticketflow/internal/config"
	"github.com/ticketflow/ticketflow/internal/events"
	"github.com/ticketflow/ticketflow/internal/navigation"
	"github.com/ticketflow/ticketflow/internal/notify"
	"github.com/ticketflow/ticketflow/internal/observability"
	"github.com/ticketflow/ticketflow/internal/persistence"
	"github.com/ticketflow/ticketflow/internal/service"
	"github.com/ticketflow/ticketflow/internal/session"
	"github.com/ticketflow/ticketflow/internal/state"
	"github.com/ticketflow/ticketflow/internal/worker"
)

// App is the composition root: it owns the state container and every
// component that reads or mutates it.
type App struct {
	Fiber    *fiber.App
	Store    *state.Store
	Notifier *notify.Notifier
	Metrics  *observability.Metrics
	Auth     *service.AuthService
	Tickets  *service.TicketService
}

// Options carries the collaborators that differ between production and tests.
type Options struct {
	Storage persistence.Storage
	Logger  *zap.Logger
	Clock   notify.Clock
	NewID   service.IDGenerator
}

// New wires the application and restores the persisted session.
func New(ctx context.Context, cfg config.Config, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.StartActivityWorker(service.NewActivityService(dispatcher, logger))

	storeDeps := state.StoreDependencies{
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	}
	if opts.Clock != nil {
		storeDeps.Now = opts.Clock.Now
	}
	store := state.NewStore(state.Initial(false), storeDeps)
	notifier := notify.NewNotifier(opts.Clock, cfg.Notification.TTL(), logger)
	guard := navigation.NewGuard(store, notifier, logger)
	sessions := session.NewStore(opts.Storage, logger)

	authService := service.NewAuthService(service.AuthDependencies{
		Sessions:     sessions,
		Guard:        guard,
		Store:        store,
		Notifier:     notifier,
		TokenManager: auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer),
		Logger:       logger,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		Store:    store,
		Notifier: notifier,
		NewID:    opts.NewID,
	})

	authService.Boot(ctx)

	fiberApp := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
		// request strings end up in the state store and must outlive the request buffer
		Immutable: true,
	})
	httptransport.RegisterMiddlewares(fiberApp, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(fiberApp, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, opts.Storage),
		Auth:              handlers.NewAuthHandler(authService, notifier),
		Navigation:        handlers.NewNavigationHandler(store, guard, notifier),
		Tickets:           handlers.NewTicketsHandler(ticketService),
		SessionMiddleware: auth.NewSessionMiddleware(store, notifier),
	})

	return &App{
		Fiber:    fiberApp,
		Store:    store,
		Notifier: notifier,
		Metrics:  metrics,
		Auth:     authService,
		Tickets:  ticketService,
	}
}
