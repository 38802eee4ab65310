package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "New"
	TicketStatusAssigned   TicketStatus = "Assigned"
	TicketStatusInProgress TicketStatus = "In progress"
	TicketStatusClosed     TicketStatus = "Closed"
)

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "Low"
	TicketPriorityMedium   TicketPriority = "Medium"
	TicketPriorityHigh     TicketPriority = "High"
	TicketPriorityCritical TicketPriority = "Critical"
)

// StampLayout is the human-readable timestamp format the dashboard client
// renders as-is (en-US month/day/year with 12-hour clock).
const StampLayout = "01/02/2006, 3:04 PM"

// Stamp formats t for ticket and history timestamps.
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// HistoryEntry is one immutable audit-log line attached to a ticket.
// Entries are only ever appended, never edited or removed.
type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	User      string `json:"user"`
	Comment   string `json:"comment"`
}

// Ticket is the aggregate for office issue/request records. JSON field names
// are part of the wire contract with the dashboard client.
type Ticket struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    TicketPriority `json:"priority"`
	Status      TicketStatus   `json:"status"`
	OfficeID    string         `json:"officeId"`
	OfficeName  string         `json:"officeName"`
	Room        string         `json:"room"`
	Type        string         `json:"type"`
	OpenedBy    string         `json:"openedBy"`
	AssignedTo  string         `json:"assignedTo"`
	Time        string         `json:"time"`
	History     []HistoryEntry `json:"history"`
}

// Clone returns a deep copy so callers can mutate without aliasing the
// stored record's history slice.
func (t *Ticket) Clone() *Ticket {
	copied := *t
	copied.History = make([]HistoryEntry, len(t.History))
	copy(copied.History, t.History)
	return &copied
}
