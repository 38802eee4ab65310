package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campbellos/backend/internal/domain"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

func TestQueueClockEvent(t *testing.T) {
	svc := NewPayrollService(nil)
	ctx := context.Background()

	event, err := svc.QueueClockEvent(ctx, ClockInput{
		EmployeeADPID: "A100001",
		EmployeeName:  "Carolina",
		EventType:     domain.ClockIn,
		Timestamp:     "2026-08-28T08:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, event.ID)
	assert.Equal(t, "A100001", event.EmployeeADPID)
	assert.Equal(t, domain.ClockIn, event.EventType)
	assert.Equal(t, "2026-08-28T08:00:00Z", event.Timestamp)

	pending := svc.PendingEvents(ctx)
	require.Len(t, pending, 1)
	assert.Equal(t, *event, pending[0])
}

func TestQueueClockEventValidation(t *testing.T) {
	svc := NewPayrollService(nil)
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.QueueClockEvent(ctx, ClockInput{EmployeeName: "Carolina"})
		require.Error(t, err)
		domainErr := errorutil.ToDomainError(err)
		assert.Equal(t, 400, domainErr.HTTPStatus)
		assert.Equal(t, "employeeAdpId and eventType are required", domainErr.Message)
	})

	t.Run("unknown event type", func(t *testing.T) {
		_, err := svc.QueueClockEvent(ctx, ClockInput{
			EmployeeADPID: "A100001",
			EventType:     domain.ClockEventType("BREAK_START"),
		})
		require.Error(t, err)
		assert.Equal(t, 400, errorutil.ToDomainError(err).HTTPStatus)
	})

	assert.Empty(t, svc.PendingEvents(ctx))
}

func TestQueueClockEventDefaultsTimestamp(t *testing.T) {
	svc := NewPayrollService(nil)

	event, err := svc.QueueClockEvent(context.Background(), ClockInput{
		EmployeeADPID: "A100002",
		EventType:     domain.LunchStart,
	})
	require.NoError(t, err)

	parsed, err := time.Parse(time.RFC3339, event.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}

func TestClockQueueOrderAndClear(t *testing.T) {
	svc := NewPayrollService(nil)
	ctx := context.Background()

	types := []domain.ClockEventType{domain.ClockIn, domain.LunchStart, domain.LunchEnd, domain.ClockOut}
	for _, et := range types {
		_, err := svc.QueueClockEvent(ctx, ClockInput{EmployeeADPID: "A100003", EventType: et})
		require.NoError(t, err)
	}

	pending := svc.PendingEvents(ctx)
	require.Len(t, pending, 4)
	for i, et := range types {
		assert.Equal(t, i+1, pending[i].ID)
		assert.Equal(t, et, pending[i].EventType)
	}

	svc.ClearQueue(ctx)
	assert.Empty(t, svc.PendingEvents(ctx))

	// ids keep counting after a clear
	event, err := svc.QueueClockEvent(ctx, ClockInput{EmployeeADPID: "A100003", EventType: domain.ClockIn})
	require.NoError(t, err)
	assert.Equal(t, 5, event.ID)
}
