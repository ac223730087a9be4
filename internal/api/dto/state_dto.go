package dto

import (
	"time"

	"github.com/ticketflow/ticketflow/internal/domain"
)

// NavigateRequest asks for a route change.
type NavigateRequest struct {
	Route string `json:"route"`
}

// NoticeResponse is the visible transient notice.
type NoticeResponse struct {
	Text      string            `json:"text"`
	Kind      domain.NoticeKind `json:"kind"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// StateResponse is the snapshot the front end renders from.
type StateResponse struct {
	Route           domain.Route    `json:"route"`
	IsAuthenticated bool            `json:"is_authenticated"`
	Notice          *NoticeResponse `json:"notice"`
}
