// Package dto defines the JSON request bodies accepted by the HTTP layer.
package dto

import "github.com/campbellos/backend/internal/domain"

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	DeviceType string `json:"deviceType"`
}

// CreateTicketRequest is the body of POST /api/tickets. All fields are
// optional; empties take defaults.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Priority    domain.TicketPriority `json:"priority"`
	Status      domain.TicketStatus   `json:"status"`
	OfficeID    string                `json:"officeId"`
	Room        string                `json:"room"`
	Type        string                `json:"type"`
	OpenedBy    string                `json:"openedBy"`
	AssignedTo  string                `json:"assignedTo"`
}

// UpdateTicketRequest is the body of PUT /api/tickets/:id. Absent fields
// keep their stored values.
type UpdateTicketRequest struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Priority    *domain.TicketPriority `json:"priority"`
	Status      *domain.TicketStatus   `json:"status"`
	OfficeID    *string                `json:"officeId"`
	Room        *string                `json:"room"`
	Type        *string                `json:"type"`
	OpenedBy    *string                `json:"openedBy"`
	AssignedTo  *string                `json:"assignedTo"`
	UpdatedBy   string                 `json:"updatedBy"`
	Comment     string                 `json:"comment"`
}

// AddCommentRequest is the body of POST /api/tickets/:id/comments.
type AddCommentRequest struct {
	User    string `json:"user"`
	Comment string `json:"comment"`
}

// ClockEventRequest is the body of POST /api/adp-demo/clock.
type ClockEventRequest struct {
	EmployeeADPID string                `json:"employeeAdpId"`
	EmployeeName  string                `json:"employeeName"`
	EventType     domain.ClockEventType `json:"eventType"`
	Timestamp     string                `json:"timestamp"`
}

// CreateRoomRequest is the body of POST /api/rooms.
type CreateRoomRequest struct {
	ID          string            `json:"id"`
	OfficeID    string            `json:"officeId"`
	PatientName string            `json:"patientName"`
	Provider    string            `json:"provider"`
	Assistant   string            `json:"assistant"`
	Hygienist   string            `json:"hygienist"`
	Status      domain.RoomStatus `json:"status"`
	TVStatus    string            `json:"tvStatus"`
	Notes       string            `json:"notes"`
}

// UpdateRoomRequest is the body of PUT /api/rooms/:id.
type UpdateRoomRequest struct {
	PatientName *string            `json:"patientName"`
	Provider    *string            `json:"provider"`
	Assistant   *string            `json:"assistant"`
	Hygienist   *string            `json:"hygienist"`
	Status      *domain.RoomStatus `json:"status"`
	TVStatus    *string            `json:"tvStatus"`
	Notes       *string            `json:"notes"`
	LastEvent   *string            `json:"lastEvent"`
}

// CreateAppointmentRequest is the body of POST /api/appointments.
type CreateAppointmentRequest struct {
	Time     string `json:"time"`
	Patient  string `json:"patient"`
	Reason   string `json:"reason"`
	Badge    string `json:"badge"`
	Status   string `json:"status"`
	OfficeID string `json:"officeId"`
}

// UpdateAppointmentRequest is the body of PUT /api/appointments/:id.
type UpdateAppointmentRequest struct {
	Time    *string `json:"time"`
	Patient *string `json:"patient"`
	Reason  *string `json:"reason"`
	Badge   *string `json:"badge"`
	Status  *string `json:"status"`
}

// CreateEmployeeRequest is the body of POST /api/hr/employees.
type CreateEmployeeRequest struct {
	Name             string               `json:"name"`
	PreferredName    string               `json:"preferredName"`
	Role             string               `json:"role"`
	OfficeID         string               `json:"officeId"`
	LicenseType      string               `json:"licenseType"`
	LicenseID        string               `json:"licenseId"`
	Expires          string               `json:"expires"`
	LastVerified     string               `json:"lastVerified"`
	CertCPR          domain.Certification `json:"certCpr"`
	CertXray         domain.Certification `json:"certXray"`
	CertOSHA         domain.Certification `json:"certOsha"`
	EmploymentStatus string               `json:"employmentStatus"`
	PayType          string               `json:"payType"`
	ADPID            string               `json:"adpId"`
}

// UpdateEmployeeRequest is the body of PUT /api/hr/employees/:id.
type UpdateEmployeeRequest struct {
	Name             *string                `json:"name"`
	PreferredName    *string                `json:"preferredName"`
	Role             *string                `json:"role"`
	OfficeID         *string                `json:"officeId"`
	LicenseType      *string                `json:"licenseType"`
	LicenseID        *string                `json:"licenseId"`
	Expires          *string                `json:"expires"`
	Status           *domain.EmployeeStatus `json:"status"`
	LastVerified     *string                `json:"lastVerified"`
	CertCPR          *domain.Certification  `json:"certCpr"`
	CertXray         *domain.Certification  `json:"certXray"`
	CertOSHA         *domain.Certification  `json:"certOsha"`
	EmploymentStatus *string                `json:"employmentStatus"`
	PayType          *string                `json:"payType"`
	ADPID            *string                `json:"adpId"`
}
