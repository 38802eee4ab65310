package repository

import (
	"context"
	"sync"

	"github.com/campbellos/backend/internal/domain"
)

// AppointmentRepository stores the front-desk schedule. Insert assigns the
// next integer id. Update applies mutate with the store locked.
type AppointmentRepository interface {
	List(ctx context.Context, officeID string) ([]domain.Appointment, error)
	Get(ctx context.Context, id int) (*domain.Appointment, error)
	Insert(ctx context.Context, appt *domain.Appointment) error
	Update(ctx context.Context, id int, mutate func(*domain.Appointment) error) (*domain.Appointment, error)
}

type memoryAppointmentRepository struct {
	mu     sync.Mutex
	appts  []domain.Appointment
	nextID int
}

// NewMemoryAppointmentRepository builds the in-memory schedule store.
func NewMemoryAppointmentRepository(seed []domain.Appointment) AppointmentRepository {
	repo := &memoryAppointmentRepository{nextID: 1}
	for _, a := range seed {
		repo.appts = append(repo.appts, a)
		if a.ID >= repo.nextID {
			repo.nextID = a.ID + 1
		}
	}
	return repo
}

func (r *memoryAppointmentRepository) List(_ context.Context, officeID string) ([]domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Appointment, 0, len(r.appts))
	for _, a := range r.appts {
		if officeID != "" && a.OfficeID != officeID {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *memoryAppointmentRepository) Get(_ context.Context, id int) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appts {
		if r.appts[i].ID == id {
			appt := r.appts[i]
			return &appt, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryAppointmentRepository) Insert(_ context.Context, appt *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt.ID = r.nextID
	r.nextID++
	r.appts = append(r.appts, *appt)
	return nil
}

func (r *memoryAppointmentRepository) Update(_ context.Context, id int, mutate func(*domain.Appointment) error) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appts {
		if r.appts[i].ID == id {
			appt := r.appts[i]
			if err := mutate(&appt); err != nil {
				return nil, err
			}
			r.appts[i] = appt
			return &appt, nil
		}
	}
	return nil, ErrNotFound
}
