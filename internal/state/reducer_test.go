package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketflow/ticketflow/internal/domain"
)

func ticket(id string) domain.Ticket {
	return domain.Ticket{
		ID:          id,
		Title:       "Ticket " + id,
		Description: "desc " + id,
		Status:      domain.TicketStatusOpen,
		Priority:    domain.TicketPriorityMedium,
	}
}

func TestReduceSetRouteAndAuth(t *testing.T) {
	s := Reduce(State{}, SetRoute{Route: domain.RouteTickets})
	assert.Equal(t, domain.RouteTickets, s.Route)

	s = Reduce(s, SetAuth{Authenticated: true})
	assert.True(t, s.IsAuthenticated)
	assert.Equal(t, domain.RouteTickets, s.Route, "reducer does not enforce route policy")
}

func TestReduceAddTicketsPreservesOrderAndFields(t *testing.T) {
	s := State{}
	const n = 25
	for i := 0; i < n; i++ {
		s = Reduce(s, AddTicket{Ticket: ticket(fmt.Sprintf("id-%d", i))})
	}
	require.Len(t, s.Tickets, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("id-%d", i)
		assert.Equal(t, id, s.Tickets[i].ID)
		got, ok := s.Ticket(id)
		require.True(t, ok)
		assert.Equal(t, ticket(id), got)
	}
}

func TestReduceAddDuplicateIDIsNoop(t *testing.T) {
	s := Reduce(State{}, AddTicket{Ticket: ticket("a")})
	dup := ticket("a")
	dup.Title = "Another title"
	next := Reduce(s, AddTicket{Ticket: dup})
	assert.Equal(t, s.Tickets, next.Tickets)
}

func TestReduceUpdateTicket(t *testing.T) {
	s := Initial(true)
	updated := s.Tickets[1]
	updated.Status = domain.TicketStatusClosed
	updated.Title = "Documentation for v2 shipped"

	next := Reduce(s, UpdateTicket{Ticket: updated})
	require.Len(t, next.Tickets, len(s.Tickets))
	assert.Equal(t, updated, next.Tickets[1])
	assert.Equal(t, s.Tickets[0], next.Tickets[0])
	assert.Equal(t, domain.TicketStatusInProgress, s.Tickets[1].Status, "input state must not be mutated")
}

func TestReduceUpdateUnknownIDIsNoop(t *testing.T) {
	s := Initial(true)
	before := s.Clone()
	next := Reduce(s, UpdateTicket{Ticket: ticket("missing")})
	assert.Equal(t, before.Tickets, next.Tickets)
}

func TestReduceDeleteTicket(t *testing.T) {
	s := Initial(true)
	next := Reduce(s, DeleteTicket{ID: "2"})
	require.Len(t, next.Tickets, len(s.Tickets)-1)
	_, found := next.Ticket("2")
	assert.False(t, found)
	assert.Equal(t, []string{"1", "3"}, ids(next))
	assert.Equal(t, []string{"1", "2", "3"}, ids(s), "input state must not be mutated")
}

func TestReduceDeleteUnknownIDIsNoop(t *testing.T) {
	s := Initial(true)
	next := Reduce(s, DeleteTicket{ID: "missing"})
	assert.Equal(t, s.Tickets, next.Tickets)
}

func TestReduceIsDeterministic(t *testing.T) {
	actions := []Action{
		SetAuth{Authenticated: true},
		AddTicket{Ticket: ticket("x")},
		UpdateTicket{Ticket: ticket("1")},
		DeleteTicket{ID: "3"},
		SetRoute{Route: domain.RouteDashboard},
	}
	run := func() State {
		s := Initial(false)
		for _, a := range actions {
			s = Reduce(s, a)
		}
		return s
	}
	assert.Equal(t, run(), run())
}

func TestInitialRoute(t *testing.T) {
	assert.Equal(t, domain.RouteHome, Initial(false).Route)
	assert.Equal(t, domain.RouteDashboard, Initial(true).Route)
	assert.Len(t, Initial(false).Tickets, 3)
}

func ids(s State) []string {
	out := make([]string, 0, len(s.Tickets))
	for _, t := range s.Tickets {
		out = append(out, t.ID)
	}
	return out
}
