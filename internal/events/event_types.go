package events

import (
	"time"

	"github.com/campbellos/backend/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketRouted        EventType = "ticket_routed"
	EventTicketCommented     EventType = "ticket_commented"
	EventClockEventQueued    EventType = "clock_event_queued"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID   string                `json:"ticketId"`
	OfficeID   string                `json:"officeId"`
	Priority   domain.TicketPriority `json:"priority"`
	Title      string                `json:"title"`
	AssignedTo string                `json:"assignedTo"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketID  string              `json:"ticketId"`
	OldStatus domain.TicketStatus `json:"oldStatus"`
	NewStatus domain.TicketStatus `json:"newStatus"`
}

// TicketRoutedPayload payload.
type TicketRoutedPayload struct {
	TicketID   string `json:"ticketId"`
	AssignedTo string `json:"assignedTo"`
}

// TicketCommentedPayload payload.
type TicketCommentedPayload struct {
	TicketID string `json:"ticketId"`
	Comment  string `json:"comment"`
}

// ClockEventQueuedPayload payload.
type ClockEventQueuedPayload struct {
	EmployeeADPID string                `json:"employeeAdpId"`
	EventType     domain.ClockEventType `json:"eventType"`
}
