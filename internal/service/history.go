package service

import "github.com/campbellos/backend/internal/domain"

// ticketChanges summarizes one update call for the audit rules.
type ticketChanges struct {
	StatusChanged   bool
	NewStatus       domain.TicketStatus
	AssigneeChanged bool
	NewAssignee     string
	Comment         string
}

// historyRule maps a change pattern to the audit action it produces.
// Evaluated in order; the first match wins so an update that changes both
// status and assignee records only the status action.
type historyRule func(ticketChanges) (string, bool)

var historyRules = []historyRule{
	func(ch ticketChanges) (string, bool) {
		if !ch.StatusChanged {
			return "", false
		}
		if ch.NewStatus == domain.TicketStatusClosed {
			return "Ticket closed", true
		}
		return "Status changed to " + string(ch.NewStatus), true
	},
	func(ch ticketChanges) (string, bool) {
		if !ch.AssigneeChanged {
			return "", false
		}
		return "Ticket routed to " + ch.NewAssignee, true
	},
	func(ch ticketChanges) (string, bool) {
		if ch.Comment == "" {
			return "", false
		}
		return "Progress update", true
	},
}

// historyAction returns the single audit action for an update, or false when
// the update is a pure field edit that leaves no trail.
func historyAction(ch ticketChanges) (string, bool) {
	for _, rule := range historyRules {
		if action, ok := rule(ch); ok {
			return action, true
		}
	}
	return "", false
}
