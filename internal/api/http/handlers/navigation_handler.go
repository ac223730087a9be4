package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ticketflow/ticketflow/internal/api/dto"
	"github.com/ticketflow/ticketflow/internal/domain"
	"github.com/ticketflow/ticketflow/internal/navigation"
	"github.com/ticketflow/ticketflow/internal/notify"
	"github.com/ticketflow/ticketflow/internal/state"
	apperrors "github.com/ticketflow/ticketflow/pkg/util"
)

// NavigationHandler serves the state snapshot, route changes and the notice slot.
type NavigationHandler struct {
	store    *state.Store
	guard    *navigation.Guard
	notifier *notify.Notifier
}

// NewNavigationHandler constructs handler.
func NewNavigationHandler(store *state.Store, guard *navigation.Guard, notifier *notify.Notifier) *NavigationHandler {
	return &NavigationHandler{store: store, guard: guard, notifier: notifier}
}

// State handles GET /api/state.
func (h *NavigationHandler) State(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": stateResponse(h.store.Snapshot(), h.notifier)})
}

// Navigate handles POST /api/navigate.
func (h *NavigationHandler) Navigate(c *fiber.Ctx) error {
	var req dto.NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	h.guard.RequestNavigate(c.UserContext(), domain.ParseRoute(req.Route))
	return c.JSON(fiber.Map{"data": stateResponse(h.store.Snapshot(), h.notifier)})
}

// Notice handles GET /api/notice.
func (h *NavigationHandler) Notice(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": noticeResponse(h.notifier)})
}

// DismissNotice handles DELETE /api/notice.
func (h *NavigationHandler) DismissNotice(c *fiber.Ctx) error {
	h.notifier.Dismiss()
	return c.SendStatus(fiber.StatusNoContent)
}

func stateResponse(s state.State, notifier *notify.Notifier) dto.StateResponse {
	return dto.StateResponse{
		Route:           s.Route,
		IsAuthenticated: s.IsAuthenticated,
		Notice:          noticeResponse(notifier),
	}
}

func noticeResponse(notifier *notify.Notifier) *dto.NoticeResponse {
	notice, ok := notifier.Current()
	if !ok {
		return nil
	}
	return &dto.NoticeResponse{Text: notice.Text, Kind: notice.Kind, ExpiresAt: notice.ExpiresAt}
}
