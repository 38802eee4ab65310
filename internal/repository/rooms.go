package repository

import (
	"context"
	"sync"

	"github.com/campbellos/backend/internal/domain"
)

// RoomRepository stores the clinical room board. Update applies mutate with
// the store locked so concurrent merge-updates serialize.
type RoomRepository interface {
	List(ctx context.Context, officeID string) ([]domain.Room, error)
	Get(ctx context.Context, id string) (*domain.Room, error)
	Insert(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, id string, mutate func(*domain.Room) error) (*domain.Room, error)
}

type memoryRoomRepository struct {
	mu    sync.Mutex
	rooms []domain.Room
}

// NewMemoryRoomRepository builds the in-memory room store.
func NewMemoryRoomRepository(seed []domain.Room) RoomRepository {
	return &memoryRoomRepository{rooms: append([]domain.Room{}, seed...)}
}

func (r *memoryRoomRepository) List(_ context.Context, officeID string) ([]domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if officeID != "" && room.OfficeID != officeID {
			continue
		}
		result = append(result, room)
	}
	return result, nil
}

func (r *memoryRoomRepository) Get(_ context.Context, id string) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rooms {
		if r.rooms[i].ID == id {
			room := r.rooms[i]
			return &room, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRoomRepository) Insert(_ context.Context, room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms = append(r.rooms, *room)
	return nil
}

func (r *memoryRoomRepository) Update(_ context.Context, id string, mutate func(*domain.Room) error) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rooms {
		if r.rooms[i].ID == id {
			room := r.rooms[i]
			if err := mutate(&room); err != nil {
				return nil, err
			}
			r.rooms[i] = room
			return &room, nil
		}
	}
	return nil, ErrNotFound
}
