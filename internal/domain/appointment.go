package domain

// Appointment is one front-desk schedule row.
type Appointment struct {
	ID       int    `json:"id"`
	Time     string `json:"time"`
	Patient  string `json:"patient"`
	Reason   string `json:"reason"`
	Badge    string `json:"badge"`
	Status   string `json:"status"`
	OfficeID string `json:"officeId"`
}
