package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campbellos/backend/internal/domain"
)

func TestHistoryAction(t *testing.T) {
	tests := []struct {
		name    string
		changes ticketChanges
		action  string
		ok      bool
	}{
		{
			name:    "status change",
			changes: ticketChanges{StatusChanged: true, NewStatus: domain.TicketStatusInProgress},
			action:  "Status changed to In progress",
			ok:      true,
		},
		{
			name:    "status change to closed",
			changes: ticketChanges{StatusChanged: true, NewStatus: domain.TicketStatusClosed},
			action:  "Ticket closed",
			ok:      true,
		},
		{
			name:    "assignee change",
			changes: ticketChanges{AssigneeChanged: true, NewAssignee: "Manny (IT)"},
			action:  "Ticket routed to Manny (IT)",
			ok:      true,
		},
		{
			name:    "comment only",
			changes: ticketChanges{Comment: "checking the cabling"},
			action:  "Progress update",
			ok:      true,
		},
		{
			name: "status wins over assignee and comment",
			changes: ticketChanges{
				StatusChanged:   true,
				NewStatus:       domain.TicketStatusAssigned,
				AssigneeChanged: true,
				NewAssignee:     "Manny (IT)",
				Comment:         "mine now",
			},
			action: "Status changed to Assigned",
			ok:     true,
		},
		{
			name: "assignee wins over comment",
			changes: ticketChanges{
				AssigneeChanged: true,
				NewAssignee:     "Facilities",
				Comment:         "not an IT issue",
			},
			action: "Ticket routed to Facilities",
			ok:     true,
		},
		{
			name:    "no change no trail",
			changes: ticketChanges{},
			ok:      false,
		},
		{
			name:    "whitespace comment still counts",
			changes: ticketChanges{Comment: " "},
			action:  "Progress update",
			ok:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, ok := historyAction(tc.changes)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.action, action)
		})
	}
}
