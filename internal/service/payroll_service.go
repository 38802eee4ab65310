package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campbellos/backend/internal/domain"
	"github.com/campbellos/backend/internal/events"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

// PayrollService queues time punches for the simulated ADP integration.
// Real mode would push each event to ADP's API; the demo accumulates them
// until an operator clears the queue ("synced").
type PayrollService struct {
	mu         sync.Mutex
	queue      []domain.ClockEvent
	nextID     int
	dispatcher events.Dispatcher
}

// NewPayrollService constructs the service.
func NewPayrollService(dispatcher events.Dispatcher) *PayrollService {
	return &PayrollService{nextID: 1, dispatcher: dispatcher}
}

// ClockInput describes one punch.
type ClockInput struct {
	EmployeeADPID string
	EmployeeName  string
	EventType     domain.ClockEventType
	Timestamp     string
}

// QueueClockEvent validates and appends a punch to the queue.
func (s *PayrollService) QueueClockEvent(ctx context.Context, input ClockInput) (*domain.ClockEvent, error) {
	if input.EmployeeADPID == "" || input.EventType == "" {
		return nil, errorutil.NewValidationError("employeeAdpId and eventType are required", nil)
	}
	if !domain.ValidClockEventType(input.EventType) {
		return nil, errorutil.NewValidationError("unknown eventType", map[string]any{"eventType": input.EventType})
	}

	timestamp := input.Timestamp
	if timestamp == "" {
		timestamp = time.Now().Format(time.RFC3339)
	}

	s.mu.Lock()
	event := domain.ClockEvent{
		ID:            s.nextID,
		EmployeeADPID: input.EmployeeADPID,
		EmployeeName:  input.EmployeeName,
		EventType:     input.EventType,
		Timestamp:     timestamp,
	}
	s.nextID++
	s.queue = append(s.queue, event)
	s.mu.Unlock()

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventClockEventQueued,
			Actor:     input.EmployeeName,
			Timestamp: time.Now(),
			Payload: events.ClockEventQueuedPayload{
				EmployeeADPID: event.EmployeeADPID,
				EventType:     event.EventType,
			},
		})
	}
	return &event, nil
}

// PendingEvents returns everything queued since the last clear, in punch
// order.
func (s *PayrollService) PendingEvents(_ context.Context) []domain.ClockEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ClockEvent{}, s.queue...)
}

// ClearQueue drops all queued events, simulating a successful sync to ADP.
func (s *PayrollService) ClearQueue(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = nil
}
