package domain

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/ticketflow/ticketflow/pkg/util"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// Valid reports whether s is a known status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "Low"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityHigh   TicketPriority = "High"
)

// Valid reports whether p is a known priority.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

const (
	TitleMinLength       = 5
	DescriptionMaxLength = 500
)

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
}

// TicketFields holds the user-editable part of a ticket.
type TicketFields struct {
	Title       string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
}

// WithDefaults fills an empty status or priority.
func (f TicketFields) WithDefaults() TicketFields {
	if f.Status == "" {
		f.Status = TicketStatusOpen
	}
	if f.Priority == "" {
		f.Priority = TicketPriorityMedium
	}
	return f
}

// Validate checks the fields the ticket form enforces.
func (f TicketFields) Validate() error {
	errs := apperrors.FieldErrors{}
	if utf8.RuneCountInString(strings.TrimSpace(f.Title)) < TitleMinLength {
		errs.Add("title", "Title must be at least 5 characters long.")
	}
	if utf8.RuneCountInString(f.Description) > DescriptionMaxLength {
		errs.Add("description", "Description cannot exceed 500 characters.")
	}
	if !f.Status.Valid() {
		errs.Add("status", "Invalid status selected.")
	}
	if !f.Priority.Valid() {
		errs.Add("priority", "Invalid priority selected.")
	}
	return errs.Err()
}

// Ticket builds a ticket with the given id.
func (f TicketFields) Ticket(id string) Ticket {
	return Ticket{
		ID:          id,
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status,
		Priority:    f.Priority,
	}
}

// SeedTickets returns the sample tickets every fresh state starts with.
func SeedTickets() []Ticket {
	return []Ticket{
		{
			ID:          "1",
			Title:       "Database connection error in production",
			Description: "The primary service failed to connect to the SQL database after the latest deployment.",
			Status:      TicketStatusOpen,
			Priority:    TicketPriorityHigh,
		},
		{
			ID:          "2",
			Title:       "Update documentation for API endpoint v2",
			Description: "Need to reflect changes in the response schema in the developer guide.",
			Status:      TicketStatusInProgress,
			Priority:    TicketPriorityMedium,
		},
		{
			ID:          "3",
			Title:       "UI alignment issue on mobile",
			Description: "The header logo is misaligned on screens smaller than 400px.",
			Status:      TicketStatusClosed,
			Priority:    TicketPriorityLow,
		},
	}
}
