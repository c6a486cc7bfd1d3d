package analytics

import (
	"time"

	"eventstats/models"
)

// PersonRow is a row of the people table with the derived age.
type PersonRow struct {
	models.RegistrationRecord
	Age *int `json:"age"`
}

// People lists the registered row-set, or only the attendees.
func People(rows []models.RegistrationRecord, attendedOnly bool, now time.Time) []PersonRow {
	out := make([]PersonRow, 0, len(rows))
	for _, r := range rows {
		if attendedOnly && !r.Attended() {
			continue
		}
		row := PersonRow{RegistrationRecord: r}
		if age, ok := r.Age(now); ok {
			row.Age = &age
		}
		out = append(out, row)
	}
	return out
}
