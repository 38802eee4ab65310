package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/campbellos/backend/internal/domain"
)

// ErrNotFound signals a missing record. Implementations translate their own
// sentinel (pgx.ErrNoRows) to this.
var ErrNotFound = errors.New("record not found")

// TicketRepository encapsulates ticket storage. Insert assigns the next
// sequential id and places the ticket at the front of the collection; List
// returns newest-created-first. Update applies mutate to the stored record
// atomically: the record is locked for the whole read-modify-write, so
// concurrent mutations serialize and every appended history entry survives.
type TicketRepository interface {
	List(ctx context.Context, officeID string) ([]domain.Ticket, error)
	Get(ctx context.Context, id string) (*domain.Ticket, error)
	Insert(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, id string, mutate func(*domain.Ticket) error) (*domain.Ticket, error)
}

type memoryTicketRepository struct {
	mu      sync.Mutex
	tickets []domain.Ticket
	nextID  int
}

// NewMemoryTicketRepository builds the in-memory store, optionally seeded.
// Seed tickets keep their ids; numbering continues after the highest one.
func NewMemoryTicketRepository(seed []domain.Ticket) TicketRepository {
	repo := &memoryTicketRepository{nextID: 1}
	for _, t := range seed {
		repo.tickets = append(repo.tickets, *t.Clone())
		if n, ok := parseTicketID(t.ID); ok && n >= repo.nextID {
			repo.nextID = n + 1
		}
	}
	return repo
}

func parseTicketID(id string) (int, bool) {
	raw, found := strings.CutPrefix(id, "T-")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r *memoryTicketRepository) List(_ context.Context, officeID string) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Ticket, 0, len(r.tickets))
	for i := range r.tickets {
		if officeID != "" && r.tickets[i].OfficeID != officeID {
			continue
		}
		result = append(result, *r.tickets[i].Clone())
	}
	return result, nil
}

func (r *memoryTicketRepository) Get(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tickets {
		if r.tickets[i].ID == id {
			return r.tickets[i].Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryTicketRepository) Insert(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket.ID = fmt.Sprintf("T-%d", r.nextID)
	r.nextID++
	r.tickets = append([]domain.Ticket{*ticket.Clone()}, r.tickets...)
	return nil
}

func (r *memoryTicketRepository) Update(_ context.Context, id string, mutate func(*domain.Ticket) error) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tickets {
		if r.tickets[i].ID == id {
			ticket := r.tickets[i].Clone()
			if err := mutate(ticket); err != nil {
				return nil, err
			}
			r.tickets[i] = *ticket.Clone()
			return ticket, nil
		}
	}
	return nil, ErrNotFound
}
