package service

import (
	"context"
	"errors"
	"time"

	"github.com/campbellos/backend/internal/directory"
	"github.com/campbellos/backend/internal/domain"
	"github.com/campbellos/backend/internal/repository"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

// RoomService maintains the clinical room board.
type RoomService struct {
	rooms repository.RoomRepository
}

// NewRoomService constructs the service.
func NewRoomService(rooms repository.RoomRepository) *RoomService {
	return &RoomService{rooms: rooms}
}

// RoomCreateInput describes a new operatory.
type RoomCreateInput struct {
	ID          string
	OfficeID    string
	PatientName string
	Provider    string
	Assistant   string
	Hygienist   string
	Status      domain.RoomStatus
	TVStatus    string
	Notes       string
}

// RoomUpdateInput describes a merge-update; nil keeps the existing value.
type RoomUpdateInput struct {
	PatientName *string
	Provider    *string
	Assistant   *string
	Hygienist   *string
	Status      *domain.RoomStatus
	TVStatus    *string
	Notes       *string
	LastEvent   *string
}

// List returns rooms, filtered by office and/or status when given.
func (s *RoomService) List(ctx context.Context, officeID string, status domain.RoomStatus) ([]domain.Room, error) {
	rooms, err := s.rooms.List(ctx, officeID)
	if err != nil || status == "" {
		return rooms, err
	}
	filtered := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Status == status {
			filtered = append(filtered, room)
		}
	}
	return filtered, nil
}

// Create registers an operatory on the board.
func (s *RoomService) Create(ctx context.Context, input RoomCreateInput) (*domain.Room, error) {
	if input.ID == "" {
		return nil, errorutil.NewValidationError("Room id is required", nil)
	}
	if existing, err := s.rooms.Get(ctx, input.ID); err == nil && existing != nil {
		return nil, errorutil.NewValidationError("Room already exists", map[string]any{"id": input.ID})
	}

	officeID := defaultString(input.OfficeID, directory.DefaultOfficeID)
	room := &domain.Room{
		ID:          input.ID,
		OfficeID:    officeID,
		OfficeName:  directory.DisplayName(officeID),
		PatientName: input.PatientName,
		Provider:    input.Provider,
		Assistant:   input.Assistant,
		Hygienist:   input.Hygienist,
		Status:      domain.RoomStatus(defaultString(string(input.Status), string(domain.RoomStatusEmpty))),
		TVStatus:    defaultString(input.TVStatus, "Off"),
		Notes:       input.Notes,
		LastEvent:   "Room added",
		LastUpdated: domain.Stamp(time.Now()),
	}
	if err := s.rooms.Insert(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// Update merges the supplied fields and refreshes the lastUpdated stamp.
// The merge runs atomically inside the repository.
func (s *RoomService) Update(ctx context.Context, id string, input RoomUpdateInput) (*domain.Room, error) {
	room, err := s.rooms.Update(ctx, id, func(room *domain.Room) error {
		applyString(&room.PatientName, input.PatientName)
		applyString(&room.Provider, input.Provider)
		applyString(&room.Assistant, input.Assistant)
		applyString(&room.Hygienist, input.Hygienist)
		applyString(&room.TVStatus, input.TVStatus)
		applyString(&room.Notes, input.Notes)
		applyString(&room.LastEvent, input.LastEvent)
		if input.Status != nil {
			room.Status = *input.Status
		}
		room.LastUpdated = domain.Stamp(time.Now())
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errorutil.NewNotFound("Room", nil)
		}
		return nil, err
	}
	return room, nil
}
