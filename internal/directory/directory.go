// Package directory holds the static office lookup table. The practice list
// changes rarely enough that it ships with the binary.
package directory

import "github.com/campbellos/backend/internal/domain"

// UnknownOffice is the display fallback for unrecognized office ids.
const UnknownOffice = "Unknown office"

// DefaultOfficeID is used when a caller omits the office on create.
const DefaultOfficeID = "campbell"

var offices = []domain.Office{
	{ID: "campbell", Name: "Campbell Dental & Orthodontics", ShortName: "Campbell Dental", City: "Detroit"},
	{ID: "vernor", Name: "Vernor Dental Care", ShortName: "Vernor Dental", City: "Detroit"},
	{ID: "allenwood", Name: "Allenwood Dental - Woodhaven", ShortName: "Allenwood Dental", City: "Woodhaven"},
}

// List returns every office in display order.
func List() []domain.Office {
	out := make([]domain.Office, len(offices))
	copy(out, offices)
	return out
}

// Get returns the office with the given id.
func Get(id string) (domain.Office, bool) {
	for _, o := range offices {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Office{}, false
}

// DisplayName resolves an office id to its short display name, falling back
// to UnknownOffice for ids not in the table.
func DisplayName(id string) string {
	if o, ok := Get(id); ok {
		return o.ShortName
	}
	return UnknownOffice
}

// Known reports whether id is in the table.
func Known(id string) bool {
	_, ok := Get(id)
	return ok
}
