package dto

import (
	"github.com/ticketflow/ticketflow/internal/domain"
)

// TicketRequest payload for create and update.
type TicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      domain.TicketStatus   `json:"status"`
	Priority    domain.TicketPriority `json:"priority"`
}

// TicketResponse represents a ticket.
type TicketResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      domain.TicketStatus   `json:"status"`
	Priority    domain.TicketPriority `json:"priority"`
}

// TicketListResponse is a filtered listing.
type TicketListResponse struct {
	Filter  string           `json:"filter"`
	Tickets []TicketResponse `json:"tickets"`
	Counts  map[string]int   `json:"counts"`
}

// DashboardResponse aggregates ticket counts.
type DashboardResponse struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Closed     int `json:"closed"`
}
