package service

import (
	"context"

	"github.com/campbellos/backend/internal/domain"
)

// DashboardStats are the stat-card counts on the landing page.
type DashboardStats struct {
	OpenTickets      int `json:"openTickets"`
	RoomsInTreatment int `json:"roomsInTreatment"`
	Appointments     int `json:"appointments"`
	ActiveEmployees  int `json:"activeEmployees"`
}

// DashboardService aggregates counts across the other services.
type DashboardService struct {
	tickets  *TicketService
	rooms    *RoomService
	schedule *ScheduleService
	hr       *HRService
}

// NewDashboardService constructs the service.
func NewDashboardService(tickets *TicketService, rooms *RoomService, schedule *ScheduleService, hr *HRService) *DashboardService {
	return &DashboardService{tickets: tickets, rooms: rooms, schedule: schedule, hr: hr}
}

// Stats computes the counts for one office, or all offices when officeID is
// empty.
func (s *DashboardService) Stats(ctx context.Context, officeID string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	tickets, err := s.tickets.List(ctx, officeID)
	if err != nil {
		return nil, err
	}
	for _, t := range tickets {
		if t.Status != domain.TicketStatusClosed {
			stats.OpenTickets++
		}
	}

	rooms, err := s.rooms.List(ctx, officeID, domain.RoomStatusInTreatment)
	if err != nil {
		return nil, err
	}
	stats.RoomsInTreatment = len(rooms)

	appts, err := s.schedule.List(ctx, officeID)
	if err != nil {
		return nil, err
	}
	stats.Appointments = len(appts)

	employees, err := s.hr.List(ctx, officeID)
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		if e.Status == domain.EmployeeStatusActive {
			stats.ActiveEmployees++
		}
	}

	return stats, nil
}
