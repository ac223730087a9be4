package state

import "github.com/ticketflow/ticketflow/internal/domain"

// Action is a state transition request. The set of actions is closed: only
// the types in this file implement it.
type Action interface {
	// Kind names the action for logs and metrics.
	Kind() string
	isAction()
}

// SetRoute replaces the current route.
type SetRoute struct {
	Route domain.Route
}

// SetAuth replaces the authentication flag.
type SetAuth struct {
	Authenticated bool
}

// AddTicket appends a ticket. The id must not already be present.
type AddTicket struct {
	Ticket domain.Ticket
}

// UpdateTicket replaces the ticket with the same id.
type UpdateTicket struct {
	Ticket domain.Ticket
}

// DeleteTicket removes the ticket with the given id.
type DeleteTicket struct {
	ID string
}

func (SetRoute) Kind() string     { return "SET_ROUTE" }
func (SetAuth) Kind() string      { return "SET_AUTH" }
func (AddTicket) Kind() string    { return "ADD_TICKET" }
func (UpdateTicket) Kind() string { return "UPDATE_TICKET" }
func (DeleteTicket) Kind() string { return "DELETE_TICKET" }

func (SetRoute) isAction()     {}
func (SetAuth) isAction()      {}
func (AddTicket) isAction()    {}
func (UpdateTicket) isAction() {}
func (DeleteTicket) isAction() {}
