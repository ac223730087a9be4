package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ticketflow/ticketflow/internal/domain"
	"github.com/ticketflow/ticketflow/internal/navigation"
	"github.com/ticketflow/ticketflow/internal/state"
	apperrors "github.com/ticketflow/ticketflow/pkg/util"
)

// User-visible texts of the ticket flows.
const (
	TicketCreatedText   = "New ticket created successfully."
	TicketUpdatedText   = "Ticket updated successfully."
	TicketDeletedText   = "Ticket successfully deleted."
	ValidationErrorText = "Please correct the validation errors."
)

// StatusFilter selects tickets by status; FilterAll matches every ticket.
type StatusFilter string

const FilterAll StatusFilter = "all"

// Filters lists the filters in the order the ticket screen shows them.
var Filters = []StatusFilter{
	FilterAll,
	StatusFilter(domain.TicketStatusOpen),
	StatusFilter(domain.TicketStatusInProgress),
	StatusFilter(domain.TicketStatusClosed),
}

// Matches reports whether t passes the filter.
func (f StatusFilter) Matches(t domain.Ticket) bool {
	return f == FilterAll || f == "" || domain.TicketStatus(f) == t.Status
}

// TicketList is a filtered listing with the count behind every filter.
type TicketList struct {
	Filter  StatusFilter
	Tickets []domain.Ticket
	Counts  map[StatusFilter]int
}

// DashboardStats aggregates ticket counts.
type DashboardStats struct {
	Total      int
	Open       int
	InProgress int
	Closed     int
}

// TicketInput describes a create or update form submission.
type TicketInput struct {
	Title       string
	Description string
	Status      domain.TicketStatus
	Priority    domain.TicketPriority
}

// IDGenerator returns a new unique ticket id.
type IDGenerator func() string

// NewTimeOrderedID returns a UUIDv7 string; ids sort by creation time.
func NewTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// TicketService coordinates ticket workflows.
type TicketService struct {
	store    *state.Store
	notifier navigation.Notifier
	newID    IDGenerator
}

// TicketDependencies bundles collaborators of the ticket service.
type TicketDependencies struct {
	Store    *state.Store
	Notifier navigation.Notifier
	NewID    IDGenerator
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	newID := deps.NewID
	if newID == nil {
		newID = NewTimeOrderedID
	}
	return &TicketService{store: deps.Store, notifier: deps.Notifier, newID: newID}
}

// ParseStatusFilter accepts all or a ticket status.
func ParseStatusFilter(raw string) (StatusFilter, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FilterAll, true
	}
	for _, f := range Filters {
		if string(f) == raw {
			return f, true
		}
	}
	return "", false
}

// List returns tickets matching filter in insertion order.
func (s *TicketService) List(filter StatusFilter) TicketList {
	snapshot := s.store.Snapshot()
	list := TicketList{
		Filter:  filter,
		Tickets: make([]domain.Ticket, 0, len(snapshot.Tickets)),
		Counts:  make(map[StatusFilter]int, len(Filters)),
	}
	for _, t := range snapshot.Tickets {
		if filter.Matches(t) {
			list.Tickets = append(list.Tickets, t)
		}
		for _, f := range Filters {
			if f.Matches(t) {
				list.Counts[f]++
			}
		}
	}
	return list
}

// Get returns a ticket by id.
func (s *TicketService) Get(id string) (domain.Ticket, bool) {
	return s.store.Snapshot().Ticket(id)
}

// Stats returns the dashboard counts.
func (s *TicketService) Stats() DashboardStats {
	snapshot := s.store.Snapshot()
	return DashboardStats{
		Total:      len(snapshot.Tickets),
		Open:       snapshot.CountByStatus(domain.TicketStatusOpen),
		InProgress: snapshot.CountByStatus(domain.TicketStatusInProgress),
		Closed:     snapshot.CountByStatus(domain.TicketStatusClosed),
	}
}

// Create validates input and adds a ticket under a fresh id.
func (s *TicketService) Create(ctx context.Context, input TicketInput) (domain.Ticket, error) {
	fields, err := s.validate(input)
	if err != nil {
		return domain.Ticket{}, err
	}
	id, err := s.freshID()
	if err != nil {
		return domain.Ticket{}, err
	}
	ticket := fields.Ticket(id)
	s.store.Dispatch(ctx, state.AddTicket{Ticket: ticket})
	s.notifier.Show(TicketCreatedText, domain.NoticeSuccess)
	return ticket, nil
}

// Update replaces the ticket with id. An unknown id is absorbed silently: it
// returns false, no error and no notice.
func (s *TicketService) Update(ctx context.Context, id string, input TicketInput) (domain.Ticket, bool, error) {
	fields, err := s.validate(input)
	if err != nil {
		return domain.Ticket{}, false, err
	}
	ticket := fields.Ticket(id)
	next := s.store.Dispatch(ctx, state.UpdateTicket{Ticket: ticket})
	got, found := next.Ticket(id)
	if found {
		s.notifier.Show(TicketUpdatedText, domain.NoticeSuccess)
	}
	return got, found, nil
}

// Delete removes the ticket with id. It reports whether a ticket was removed.
func (s *TicketService) Delete(ctx context.Context, id string) bool {
	_, existed := s.Get(id)
	s.store.Dispatch(ctx, state.DeleteTicket{ID: id})
	if existed {
		s.notifier.Show(TicketDeletedText, domain.NoticeSuccess)
	}
	return existed
}

// maxIDAttempts bounds how many taken ids Create skips before giving up.
const maxIDAttempts = 8

func (s *TicketService) freshID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if _, taken := s.Get(id); !taken {
			return id, nil
		}
	}
	return "", apperrors.NewInternalError(fmt.Errorf("no free ticket id after %d attempts", maxIDAttempts))
}

func (s *TicketService) validate(input TicketInput) (domain.TicketFields, error) {
	fields := domain.TicketFields{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
	}.WithDefaults()
	if err := fields.Validate(); err != nil {
		s.notifier.Show(ValidationErrorText, domain.NoticeError)
		return domain.TicketFields{}, err
	}
	return fields, nil
}
