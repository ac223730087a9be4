package navigation

import (
	"context"

	"go.uber.org/zap"

	"github.com/ticketflow/ticketflow/internal/domain"
	"github.com/ticketflow/ticketflow/internal/state"
)

// Notice texts emitted by the guard.
const (
	AccessDeniedText   = "Access denied. Please log in first."
	SessionExpiredText = "Your session has expired. Please log in again."
)

// Notifier shows transient notices.
type Notifier interface {
	Show(text string, kind domain.NoticeKind) domain.Notice
}

// Guard is the only place that keeps route and authentication consistent.
type Guard struct {
	store    *state.Store
	notifier Notifier
	logger   *zap.Logger
}

// NewGuard builds a guard over store.
func NewGuard(store *state.Store, notifier Notifier, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{store: store, notifier: notifier, logger: logger.Named("navigation")}
}

// RequestNavigate moves to target, or to login when target is protected and
// there is no session. It returns the route actually applied.
func (g *Guard) RequestNavigate(ctx context.Context, target domain.Route) domain.Route {
	if !target.Public() && !g.store.Snapshot().IsAuthenticated {
		g.logger.Info("navigation denied", zap.String("target", string(target)))
		g.notifier.Show(AccessDeniedText, domain.NoticeError)
		target = domain.RouteLogin
	}
	g.store.Dispatch(ctx, state.SetRoute{Route: target})
	return target
}

// SetAuthenticated records the new authentication flag and reconciles the
// current route with it.
func (g *Guard) SetAuthenticated(ctx context.Context, authenticated bool) state.State {
	g.store.Dispatch(ctx, state.SetAuth{Authenticated: authenticated})
	return g.Reconcile(ctx)
}

// Reconcile sends authenticated users away from auth-only screens and
// unauthenticated users away from protected ones.
func (g *Guard) Reconcile(ctx context.Context) state.State {
	current := g.store.Snapshot()
	switch {
	case current.IsAuthenticated && current.Route.Public():
		return g.store.Dispatch(ctx, state.SetRoute{Route: domain.RouteDashboard})
	case !current.IsAuthenticated && !current.Route.Public():
		g.logger.Info("session expired", zap.String("route", string(current.Route)))
		next := g.store.Dispatch(ctx, state.SetRoute{Route: domain.RouteHome})
		g.notifier.Show(SessionExpiredText, domain.NoticeError)
		return next
	}
	return current
}
