package domain

// Office is a practice location. Tickets, rooms, appointments and HR records
// are partitioned by OfficeID.
type Office struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	City      string `json:"city"`
}
