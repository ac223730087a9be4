package state

import "github.com/ticketflow/ticketflow/internal/domain"

// State is the application state snapshot.
type State struct {
	IsAuthenticated bool
	Route           domain.Route
	Tickets         []domain.Ticket
}

// Initial returns the state a fresh process starts with.
func Initial(authenticated bool) State {
	route := domain.RouteHome
	if authenticated {
		route = domain.RouteDashboard
	}
	return State{
		IsAuthenticated: authenticated,
		Route:           route,
		Tickets:         domain.SeedTickets(),
	}
}

// Clone returns a copy that shares no ticket storage with s.
func (s State) Clone() State {
	out := s
	out.Tickets = append([]domain.Ticket(nil), s.Tickets...)
	return out
}

// Ticket looks up a ticket by id.
func (s State) Ticket(id string) (domain.Ticket, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.Tickets[i], true
	}
	return domain.Ticket{}, false
}

// CountByStatus counts tickets with the given status.
func (s State) CountByStatus(status domain.TicketStatus) int {
	n := 0
	for _, t := range s.Tickets {
		if t.Status == status {
			n++
		}
	}
	return n
}

func (s State) indexOf(id string) int {
	for i, t := range s.Tickets {
		if t.ID == id {
			return i
		}
	}
	return -1
}
