// Package seed provides the demo fixtures the dashboard ships with. They
// populate the in-memory stores at boot so the UI has data before anyone
// creates records.
package seed

import (
	"time"

	"go.uber.org/zap"

	"github.com/campbellos/backend/internal/auth"
	"github.com/campbellos/backend/internal/directory"
	"github.com/campbellos/backend/internal/domain"
)

// Tickets returns the three demo tickets.
func Tickets() []domain.Ticket {
	now := domain.Stamp(time.Now())
	return []domain.Ticket{
		{
			ID:          "T-1",
			Title:       "X-ray sensor not detecting in OP-3",
			Description: "Sensor intermittently not detected by PC. Happens mostly in the morning.",
			Priority:    domain.TicketPriorityHigh,
			Status:      domain.TicketStatusNew,
			OfficeID:    "campbell",
			OfficeName:  directory.DisplayName("campbell"),
			Room:        "OP-3",
			Type:        "Clinical",
			OpenedBy:    "Jessica (RDH)",
			AssignedTo:  "IT Queue",
			Time:        now,
			History: []domain.HistoryEntry{
				{Timestamp: now, Action: "Ticket created", User: "Jessica (RDH)", Comment: "Sensor intermittently not detected by PC."},
				{Timestamp: now, Action: "Ticket routed to IT Queue", User: "System", Comment: ""},
			},
		},
		{
			ID:          "T-2",
			Title:       "Front desk computer restarting randomly",
			Description: "Reboots 2-3 times per day while checking in patients.",
			Priority:    domain.TicketPriorityMedium,
			Status:      domain.TicketStatusInProgress,
			OfficeID:    "vernor",
			OfficeName:  directory.DisplayName("vernor"),
			Room:        "Front Desk",
			Type:        "IT",
			OpenedBy:    "Lorena (FD)",
			AssignedTo:  "Manny (IT)",
			Time:        now,
			History: []domain.HistoryEntry{
				{Timestamp: now, Action: "Ticket created", User: "Lorena (FD)", Comment: "Reboots multiple times per day."},
				{Timestamp: now, Action: "Ticket routed to Manny (IT)", User: "Office Manager", Comment: "Please prioritize before weekend."},
				{Timestamp: now, Action: "Status changed to In progress", User: "Manny (IT)", Comment: "Running hardware diagnostics."},
			},
		},
		{
			ID:          "T-3",
			Title:       "Chair pedal not responding",
			Description: "Chair does not move when foot pedal is pressed. Lights still work.",
			Priority:    domain.TicketPriorityLow,
			Status:      domain.TicketStatusNew,
			OfficeID:    "allenwood",
			OfficeName:  directory.DisplayName("allenwood"),
			Room:        "OP-2",
			Type:        "Maintenance",
			OpenedBy:    "David (DA)",
			AssignedTo:  "Facilities",
			Time:        now,
			History: []domain.HistoryEntry{
				{Timestamp: now, Action: "Ticket created", User: "David (DA)", Comment: "Foot pedal dead, lights OK."},
				{Timestamp: now, Action: "Ticket routed to Facilities", User: "System", Comment: ""},
			},
		},
	}
}

// Rooms returns the demo clinical room board.
func Rooms() []domain.Room {
	now := domain.Stamp(time.Now())
	room := func(id, officeID, patient, provider, assistant, hygienist string, status domain.RoomStatus, tv, notes, lastEvent string) domain.Room {
		return domain.Room{
			ID: id, OfficeID: officeID, OfficeName: directory.DisplayName(officeID),
			PatientName: patient, Provider: provider, Assistant: assistant, Hygienist: hygienist,
			Status: status, TVStatus: tv, Notes: notes, LastEvent: lastEvent, LastUpdated: now,
		}
	}
	return []domain.Room{
		room("OP-1", "campbell", "Juan Martinez", "Dr. G. Ghannam", "Ashley", "", domain.RoomStatusInTreatment, "Netflix", "MO composite #30", "Provider entered room"),
		room("OP-2", "campbell", "Leila Hassan", "", "Brittany", "Sara RDH", domain.RoomStatusWaitingOnProvider, "Tubi", "Prophy + exam", "Hygiene completed, waiting for doctor check"),
		room("OP-3", "campbell", "", "", "", "", domain.RoomStatusCleaning, "Off", "Turnover: used for extractions", "Assistant started room cleaning"),
		room("OP-4", "vernor", "Emily Rogers", "Dr. Patel", "Chris", "", domain.RoomStatusReadyForPatient, "Welcome screen", "Emergency block", "Room prepped, instruments ready"),
		room("OP-5", "allenwood", "", "", "", "", domain.RoomStatusEmpty, "Off", "Available", "No recent activity"),
		room("OP-6", "allenwood", "David Nguyen", "Dr. Kim", "Laura", "", domain.RoomStatusInTreatment, "Disney+", "Crown seat #14", "Assistant seated patient"),
	}
}

// Appointments returns the demo front-desk schedule.
func Appointments() []domain.Appointment {
	return []domain.Appointment{
		{ID: 1, Time: "9:00 AM", Patient: "Maria G.", Reason: "New patient exam", Badge: "New", Status: "Arrived", OfficeID: "campbell"},
		{ID: 2, Time: "9:30 AM", Patient: "James P.", Reason: "Emergency - toothache", Badge: "Emergency", Status: "On the way", OfficeID: "campbell"},
		{ID: 3, Time: "10:15 AM", Patient: "Leah C.", Reason: "6-month recall cleaning", Badge: "Recall", Status: "Confirmed", OfficeID: "campbell"},
		{ID: 4, Time: "8:45 AM", Patient: "Oscar R.", Reason: "Fillings - upper left", Badge: "Tx", Status: "Seated", OfficeID: "vernor"},
		{ID: 5, Time: "9:20 AM", Patient: "Nadia S.", Reason: "Consult - ortho", Badge: "Consult", Status: "Checked in", OfficeID: "vernor"},
		{ID: 6, Time: "9:10 AM", Patient: "Brian T.", Reason: "Crown seat - #30", Badge: "Seat", Status: "In lobby", OfficeID: "allenwood"},
		{ID: 7, Time: "10:00 AM", Patient: "Chloe A.", Reason: "New patient exam & cleaning", Badge: "New", Status: "Confirmed", OfficeID: "allenwood"},
	}
}

// Employees returns the demo HR roster.
func Employees() []domain.Employee {
	return []domain.Employee{
		{
			ID: "emp-1", BadgeID: "CB-100001", Name: "Carolina Gomez", PreferredName: "Carolina",
			Role: "Registered Dental Hygienist", OfficeID: "campbell", OfficeName: "Campbell Dental & Orthodontics",
			LicenseType: "Registered Dental Hygienist", ClinicallyLicensed: true,
			Status: domain.EmployeeStatusActive, LastVerified: "2025-10-01",
			CertCPR:          domain.Certification{Held: true, Expires: "2026-03-15"},
			EmploymentStatus: "Full time", PayType: "Hourly", ADPID: "A100001",
		},
		{
			ID: "emp-2", BadgeID: "CB-200001", Name: "Dr. G. Ghannam", PreferredName: "Dr. Ghannam",
			Role: "Dentist", OfficeID: "campbell", OfficeName: "Campbell Dental & Orthodontics",
			LicenseType: "Dentist", ClinicallyLicensed: true,
			Status: domain.EmployeeStatusActive, LastVerified: "2025-09-18",
			EmploymentStatus: "Full time", PayType: "Salary",
		},
		{
			ID: "emp-3", BadgeID: "CB-300001", Name: "Ashley", PreferredName: "Ashley",
			Role: "Dental Assistant", OfficeID: "campbell", OfficeName: "Campbell Dental & Orthodontics",
			LicenseType: "Clinical - No license", ClinicallyLicensed: false,
			Status: domain.EmployeeStatusActive, LastVerified: "2025-09-30",
			CertXray:         domain.Certification{Held: true, Expires: "2026-06-30"},
			EmploymentStatus: "Full time", PayType: "Hourly", ADPID: "A100002",
		},
		{
			ID: "emp-4", BadgeID: "CB-400001", Name: "Manny Gomez", PreferredName: "Manny",
			Role: "Operations / IT", OfficeID: "all", OfficeName: "All offices",
			LicenseType: "Admin - No clinical license", ClinicallyLicensed: false,
			Status: domain.EmployeeStatusActive, LastVerified: "2025-10-05",
			EmploymentStatus: "Full time", PayType: "Salary", ADPID: "A100003",
		},
	}
}

// Users returns the demo login accounts. Passwords are hashed at boot; the
// plaintexts are demo-only and printed nowhere.
func Users(bcryptCost int, logger *zap.Logger) []domain.User {
	accounts := []struct {
		user     domain.User
		password string
	}{
		{domain.User{ID: "u-1", Name: "Carolina Gomez", Email: "carolina@campbellos.com", Role: domain.RoleAdmin}, "campbell123"},
		{domain.User{ID: "u-2", Name: "Manny Gomez", Email: "manny@campbellos.com", Role: domain.RoleOps}, "vernor123"},
		{domain.User{ID: "u-3", Name: "Jessica", Email: "jessica@campbellos.com", Role: domain.RoleStaff}, "allenwood123"},
	}

	users := make([]domain.User, 0, len(accounts))
	for _, a := range accounts {
		hash, err := auth.HashPassword(a.password, bcryptCost)
		if err != nil {
			logger.Error("failed to hash demo password", zap.String("email", a.user.Email), zap.Error(err))
			continue
		}
		a.user.PasswordHash = hash
		users = append(users, a.user)
	}
	return users
}
