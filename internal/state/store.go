package state

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ticketflow/ticketflow/internal/events"
	"github.com/ticketflow/ticketflow/internal/observability"
)

// Store owns the application state. All mutation goes through Dispatch.
type Store struct {
	mu         sync.RWMutex
	state      State
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// StoreDependencies bundles optional collaborators of the store.
type StoreDependencies struct {
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	Now        func() time.Time
}

// NewStore builds a store holding initial.
func NewStore(initial State, deps StoreDependencies) *Store {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		state:      initial.Clone(),
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		now:        now,
	}
}

// Dispatch reduces action into the held state and returns the new snapshot.
func (s *Store) Dispatch(ctx context.Context, action Action) State {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, action)
	s.state = next
	s.mu.Unlock()

	applied := wasApplied(prev, next, action)
	s.metrics.RecordAction(action.Kind(), applied)
	if !applied {
		s.logger.Debug("action absorbed", zap.String("action", action.Kind()))
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, s.eventFor(prev, action, applied))
	}
	return next.Clone()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func wasApplied(prev, next State, action Action) bool {
	switch a := action.(type) {
	case AddTicket, DeleteTicket:
		return len(prev.Tickets) != len(next.Tickets)
	case UpdateTicket:
		_, found := prev.Ticket(a.Ticket.ID)
		return found
	default:
		return true
	}
}

func (s *Store) eventFor(prev State, action Action, applied bool) events.Event {
	event := events.Event{Timestamp: s.now(), Applied: applied}
	switch a := action.(type) {
	case SetRoute:
		event.Type = events.EventRouteChanged
		event.Payload = events.RouteChangedPayload{From: prev.Route, To: a.Route}
	case SetAuth:
		event.Type = events.EventAuthChanged
		event.Payload = events.AuthChangedPayload{Authenticated: a.Authenticated}
	case AddTicket:
		event.Type = events.EventTicketAdded
		event.TicketID = a.Ticket.ID
		event.Payload = events.TicketPayload{Title: a.Ticket.Title, Status: a.Ticket.Status, Priority: a.Ticket.Priority}
	case UpdateTicket:
		event.Type = events.EventTicketUpdated
		event.TicketID = a.Ticket.ID
		event.Payload = events.TicketPayload{Title: a.Ticket.Title, Status: a.Ticket.Status, Priority: a.Ticket.Priority}
	case DeleteTicket:
		event.Type = events.EventTicketDeleted
		event.TicketID = a.ID
	}
	return event
}
