package domain

// ClockEventType enumerates the punch kinds the ADP integration accepts.
type ClockEventType string

const (
	ClockIn    ClockEventType = "CLOCK_IN"
	ClockOut   ClockEventType = "CLOCK_OUT"
	LunchStart ClockEventType = "LUNCH_START"
	LunchEnd   ClockEventType = "LUNCH_END"
)

// ValidClockEventType reports whether t is a known punch kind.
func ValidClockEventType(t ClockEventType) bool {
	switch t {
	case ClockIn, ClockOut, LunchStart, LunchEnd:
		return true
	}
	return false
}

// ClockEvent is one queued time punch. In real mode these would be pushed to
// ADP; the demo integration only accumulates them until cleared.
type ClockEvent struct {
	ID            int            `json:"id"`
	EmployeeADPID string         `json:"employeeAdpId"`
	EmployeeName  string         `json:"employeeName"`
	EventType     ClockEventType `json:"eventType"`
	Timestamp     string         `json:"timestamp"`
}
