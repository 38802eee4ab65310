package domain

// RoomStatus enumerates operatory states shown on the clinical board.
type RoomStatus string

const (
	RoomStatusInTreatment       RoomStatus = "In treatment"
	RoomStatusWaitingOnProvider RoomStatus = "Waiting on provider"
	RoomStatusReadyForPatient   RoomStatus = "Ready for patient"
	RoomStatusCleaning          RoomStatus = "Cleaning in progress"
	RoomStatusEmpty             RoomStatus = "Empty"
)

// Room is one operatory on the clinical room board.
type Room struct {
	ID          string     `json:"id"`
	OfficeID    string     `json:"officeId"`
	OfficeName  string     `json:"officeName"`
	PatientName string     `json:"patientName"`
	Provider    string     `json:"provider"`
	Assistant   string     `json:"assistant"`
	Hygienist   string     `json:"hygienist"`
	Status      RoomStatus `json:"status"`
	TVStatus    string     `json:"tvStatus"`
	Notes       string     `json:"notes"`
	LastEvent   string     `json:"lastEvent"`
	LastUpdated string     `json:"lastUpdated"`
}
