package state

import "github.com/ticketflow/ticketflow/internal/domain"

// Reduce applies action to s and returns the resulting state. It never
// mutates s. Updates and deletes that name an unknown id, and adds that
// repeat an existing id, return s unchanged.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetRoute:
		s.Route = a.Route
		return s
	case SetAuth:
		s.IsAuthenticated = a.Authenticated
		return s
	case AddTicket:
		if s.indexOf(a.Ticket.ID) >= 0 {
			return s
		}
		tickets := make([]domain.Ticket, len(s.Tickets), len(s.Tickets)+1)
		copy(tickets, s.Tickets)
		s.Tickets = append(tickets, a.Ticket)
		return s
	case UpdateTicket:
		i := s.indexOf(a.Ticket.ID)
		if i < 0 {
			return s
		}
		tickets := append([]domain.Ticket(nil), s.Tickets...)
		tickets[i] = a.Ticket
		s.Tickets = tickets
		return s
	case DeleteTicket:
		i := s.indexOf(a.ID)
		if i < 0 {
			return s
		}
		tickets := make([]domain.Ticket, 0, len(s.Tickets)-1)
		tickets = append(tickets, s.Tickets[:i]...)
		s.Tickets = append(tickets, s.Tickets[i+1:]...)
		return s
	default:
		return s
	}
}
