package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ticketflow/ticketflow/internal/domain"
	"github.com/ticketflow/ticketflow/internal/navigation"
	"github.com/ticketflow/ticketflow/internal/state"
	apperrors "github.com/ticketflow/ticketflow/pkg/util"
)

// SessionMiddleware rejects requests for protected screens while there is
// no session.
type SessionMiddleware struct {
	store    *state.Store
	notifier navigation.Notifier
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(store *state.Store, notifier navigation.Notifier) *SessionMiddleware {
	return &SessionMiddleware{store: store, notifier: notifier}
}

// Handle enforces authentication for protected routes.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	if !m.store.Snapshot().IsAuthenticated {
		m.notifier.Show(navigation.AccessDeniedText, domain.NoticeError)
		return apperrors.NewUnauthorized("session required")
	}
	return c.Next()
}
