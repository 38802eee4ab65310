package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/campbellos/backend/internal/domain"
)

// EmployeeRepository stores the HR roster. Employee records with OfficeID
// "all" belong to every office and are returned for any office filter.
// Update applies mutate with the store locked.
type EmployeeRepository interface {
	List(ctx context.Context, officeID string) ([]domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Insert(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, id string, mutate func(*domain.Employee) error) (*domain.Employee, error)
}

type memoryEmployeeRepository struct {
	mu        sync.Mutex
	employees []domain.Employee
	nextID    int
}

// NewMemoryEmployeeRepository builds the in-memory roster store.
func NewMemoryEmployeeRepository(seed []domain.Employee) EmployeeRepository {
	repo := &memoryEmployeeRepository{nextID: 1}
	for _, e := range seed {
		repo.employees = append(repo.employees, e)
		if raw, found := strings.CutPrefix(e.ID, "emp-"); found {
			if n, err := strconv.Atoi(raw); err == nil && n >= repo.nextID {
				repo.nextID = n + 1
			}
		}
	}
	return repo
}

func (r *memoryEmployeeRepository) List(_ context.Context, officeID string) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if officeID != "" && e.OfficeID != officeID && e.OfficeID != "all" {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (r *memoryEmployeeRepository) Get(_ context.Context, id string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		if r.employees[i].ID == id {
			emp := r.employees[i]
			return &emp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryEmployeeRepository) Insert(_ context.Context, emp *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp.ID = fmt.Sprintf("emp-%d", r.nextID)
	r.nextID++
	r.employees = append(r.employees, *emp)
	return nil
}

func (r *memoryEmployeeRepository) Update(_ context.Context, id string, mutate func(*domain.Employee) error) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		if r.employees[i].ID == id {
			emp := r.employees[i]
			if err := mutate(&emp); err != nil {
				return nil, err
			}
			r.employees[i] = emp
			return &emp, nil
		}
	}
	return nil, ErrNotFound
}
