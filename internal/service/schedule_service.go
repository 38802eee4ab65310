package service

import (
	"context"
	"errors"

	"github.com/campbellos/backend/internal/directory"
	"github.com/campbellos/backend/internal/domain"
	"github.com/campbellos/backend/internal/repository"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

// ScheduleService maintains the front-desk appointment list.
type ScheduleService struct {
	appts repository.AppointmentRepository
}

// NewScheduleService constructs the service.
func NewScheduleService(appts repository.AppointmentRepository) *ScheduleService {
	return &ScheduleService{appts: appts}
}

// AppointmentCreateInput describes a new schedule row.
type AppointmentCreateInput struct {
	Time     string
	Patient  string
	Reason   string
	Badge    string
	Status   string
	OfficeID string
}

// AppointmentUpdateInput describes a merge-update; nil keeps the existing
// value.
type AppointmentUpdateInput struct {
	Time    *string
	Patient *string
	Reason  *string
	Badge   *string
	Status  *string
}

// List returns appointments, filtered by office when officeID is non-empty.
func (s *ScheduleService) List(ctx context.Context, officeID string) ([]domain.Appointment, error) {
	return s.appts.List(ctx, officeID)
}

// Create adds a schedule row.
func (s *ScheduleService) Create(ctx context.Context, input AppointmentCreateInput) (*domain.Appointment, error) {
	if input.Patient == "" {
		return nil, errorutil.NewValidationError("Patient is required", nil)
	}
	appt := &domain.Appointment{
		Time:     input.Time,
		Patient:  input.Patient,
		Reason:   input.Reason,
		Badge:    input.Badge,
		Status:   defaultString(input.Status, "Confirmed"),
		OfficeID: defaultString(input.OfficeID, directory.DefaultOfficeID),
	}
	if err := s.appts.Insert(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Update merges the supplied fields over one row atomically.
func (s *ScheduleService) Update(ctx context.Context, id int, input AppointmentUpdateInput) (*domain.Appointment, error) {
	appt, err := s.appts.Update(ctx, id, func(appt *domain.Appointment) error {
		applyString(&appt.Time, input.Time)
		applyString(&appt.Patient, input.Patient)
		applyString(&appt.Reason, input.Reason)
		applyString(&appt.Badge, input.Badge)
		applyString(&appt.Status, input.Status)
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errorutil.NewNotFound("Appointment", nil)
		}
		return nil, err
	}
	return appt, nil
}
