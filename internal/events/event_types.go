package events

import (
	"time"

	"github.com/ticketflow/ticketflow/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRouteChanged  EventType = "route_changed"
	EventAuthChanged   EventType = "auth_changed"
	EventTicketAdded   EventType = "ticket_added"
	EventTicketUpdated EventType = "ticket_updated"
	EventTicketDeleted EventType = "ticket_deleted"
)

// Event represents a state transition published by the state store.
type Event struct {
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
	// Applied is false when the reducer absorbed the action as a no-op.
	Applied bool `json:"applied"`
}

// RouteChangedPayload payload.
type RouteChangedPayload struct {
	From domain.Route `json:"from"`
	To   domain.Route `json:"to"`
}

// AuthChangedPayload payload.
type AuthChangedPayload struct {
	Authenticated bool `json:"authenticated"`
}

// TicketPayload payload.
type TicketPayload struct {
	Title    string                `json:"title"`
	Status   domain.TicketStatus   `json:"status"`
	Priority domain.TicketPriority `json:"priority"`
}
