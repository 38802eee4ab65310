package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campbellos/backend/internal/directory"
	"github.com/campbellos/backend/internal/domain"
	"github.com/campbellos/backend/internal/events"
	"github.com/campbellos/backend/internal/repository"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

// TicketService owns the ticket collection, its status/routing transitions
// and the append-only audit history.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher}
}

// TicketCreateInput describes the creation payload. Every field is optional;
// empties take the documented defaults.
type TicketCreateInput struct {
	Title       string
	Description string
	Priority    domain.TicketPriority
	Status      domain.TicketStatus
	OfficeID    string
	Room        string
	Type        string
	OpenedBy    string
	AssignedTo  string
}

// TicketUpdateInput describes a merge-update. Nil pointers mean "keep the
// existing value"; pointers to empty strings are applied as-is.
type TicketUpdateInput struct {
	Title       *string
	Description *string
	Priority    *domain.TicketPriority
	Status      *domain.TicketStatus
	OfficeID    *string
	Room        *string
	Type        *string
	OpenedBy    *string
	AssignedTo  *string
	UpdatedBy   string
	Comment     string
}

// List returns tickets newest-created-first, filtered by office when
// officeID is non-empty.
func (s *TicketService) List(ctx context.Context, officeID string) ([]domain.Ticket, error) {
	return s.tickets.List(ctx, officeID)
}

// Get returns one ticket by id.
func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errorutil.NewNotFound("Ticket", nil)
	}
	return ticket, err
}

// Create assigns the next id, resolves the office display name and seeds the
// two-entry history before inserting at the front of the collection.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	officeID := input.OfficeID
	if officeID == "" {
		officeID = directory.DefaultOfficeID
	}

	openedBy := defaultString(input.OpenedBy, "Unknown")
	assignedTo := defaultString(input.AssignedTo, "IT Queue")
	createdAt := domain.Stamp(time.Now())

	ticket := &domain.Ticket{
		Title:       defaultString(input.Title, "Untitled ticket"),
		Description: input.Description,
		Priority:    domain.TicketPriority(defaultString(string(input.Priority), string(domain.TicketPriorityMedium))),
		Status:      domain.TicketStatus(defaultString(string(input.Status), string(domain.TicketStatusNew))),
		OfficeID:    officeID,
		OfficeName:  directory.DisplayName(officeID),
		Room:        input.Room,
		Type:        defaultString(input.Type, "IT"),
		OpenedBy:    openedBy,
		AssignedTo:  assignedTo,
		Time:        createdAt,
		History: []domain.HistoryEntry{
			{Timestamp: createdAt, Action: "Ticket created", User: openedBy, Comment: input.Description},
			{Timestamp: createdAt, Action: "Ticket routed to " + assignedTo, User: "System", Comment: ""},
		},
	}

	if err := s.tickets.Insert(ctx, ticket); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:  events.EventTicketCreated,
		Actor: openedBy,
		Payload: events.TicketCreatedPayload{
			TicketID:   ticket.ID,
			OfficeID:   ticket.OfficeID,
			Priority:   ticket.Priority,
			Title:      ticket.Title,
			AssignedTo: ticket.AssignedTo,
		},
	})
	return ticket, nil
}

// Update merges the supplied fields over the stored record and appends at
// most one history entry per the audit rules. The merge-and-append runs
// atomically inside the repository, so concurrent updates serialize and
// every acknowledged history entry survives; racing field edits still
// resolve last-write-wins.
func (s *TicketService) Update(ctx context.Context, id string, input TicketUpdateInput) (*domain.Ticket, error) {
	updatedBy := defaultString(input.UpdatedBy, "Unknown")

	var changes ticketChanges
	var oldStatus domain.TicketStatus
	ticket, err := s.tickets.Update(ctx, id, func(ticket *domain.Ticket) error {
		oldStatus = ticket.Status
		oldAssignee := ticket.AssignedTo

		applyString(&ticket.Title, input.Title)
		applyString(&ticket.Description, input.Description)
		applyString(&ticket.Room, input.Room)
		applyString(&ticket.Type, input.Type)
		applyString(&ticket.OpenedBy, input.OpenedBy)
		applyString(&ticket.AssignedTo, input.AssignedTo)
		if input.Priority != nil {
			ticket.Priority = *input.Priority
		}
		if input.Status != nil {
			ticket.Status = *input.Status
		}
		if input.OfficeID != nil && *input.OfficeID != ticket.OfficeID {
			ticket.OfficeID = *input.OfficeID
			ticket.OfficeName = directory.DisplayName(ticket.OfficeID)
		}

		changes = ticketChanges{
			StatusChanged:   ticket.Status != oldStatus,
			NewStatus:       ticket.Status,
			AssigneeChanged: ticket.AssignedTo != oldAssignee,
			NewAssignee:     ticket.AssignedTo,
			Comment:         input.Comment,
		}
		if action, ok := historyAction(changes); ok {
			ticket.History = append(ticket.History, domain.HistoryEntry{
				Timestamp: domain.Stamp(time.Now()),
				Action:    action,
				User:      updatedBy,
				Comment:   input.Comment,
			})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errorutil.NewNotFound("Ticket", nil)
		}
		return nil, err
	}

	if changes.StatusChanged {
		s.publish(ctx, events.Event{
			Type:  events.EventTicketStatusChanged,
			Actor: updatedBy,
			Payload: events.TicketStatusChangedPayload{
				TicketID:  ticket.ID,
				OldStatus: oldStatus,
				NewStatus: ticket.Status,
			},
		})
	} else if changes.AssigneeChanged {
		s.publish(ctx, events.Event{
			Type:    events.EventTicketRouted,
			Actor:   updatedBy,
			Payload: events.TicketRoutedPayload{TicketID: ticket.ID, AssignedTo: ticket.AssignedTo},
		})
	}
	return ticket, nil
}

// AddComment appends a "Progress update" history entry without touching any
// ticket field. The ticket must exist; empty or whitespace-only comments are
// rejected.
func (s *TicketService) AddComment(ctx context.Context, id, user, comment string) (*domain.Ticket, error) {
	ticket, err := s.tickets.Update(ctx, id, func(ticket *domain.Ticket) error {
		if strings.TrimSpace(comment) == "" {
			return errorutil.NewValidationError("Comment is required", nil)
		}
		ticket.History = append(ticket.History, domain.HistoryEntry{
			Timestamp: domain.Stamp(time.Now()),
			Action:    "Progress update",
			User:      defaultString(user, "Unknown"),
			Comment:   comment,
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errorutil.NewNotFound("Ticket", nil)
		}
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:    events.EventTicketCommented,
		Actor:   user,
		Payload: events.TicketCommentedPayload{TicketID: ticket.ID, Comment: comment},
	})
	return ticket, nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func defaultString(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
