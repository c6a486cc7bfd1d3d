package analytics

import (
	"fmt"

	"eventstats/models"
)

// Slice is one wedge of the registered-vs-attended pie.
type Slice struct {
	Label      string  `json:"label"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

type AttendanceView struct {
	TotalRegistered int `json:"total_registered"`
	TotalAttended   int `json:"total_attended"`
	TotalAbsent     int `json:"total_absent"`
	// AttendancePct is nil when nobody registered.
	AttendancePct *float64 `json:"attendance_pct"`
	Slices        []Slice  `json:"slices"`
	Badge         string   `json:"badge"`
}

func Attendance(rows []models.RegistrationRecord) AttendanceView {
	registered := len(rows)
	attended := len(PeopleWhoAttended(rows))
	absent := registered - attended

	v := AttendanceView{
		TotalRegistered: registered,
		TotalAttended:   attended,
		TotalAbsent:     absent,
		Slices: []Slice{
			{Label: "Asistieron", Value: attended, Percentage: percent(attended, registered), Color: "green"},
			{Label: "No asistieron", Value: absent, Percentage: percent(absent, registered), Color: "red"},
		},
	}

	if registered == 0 {
		v.Badge = "Aún no hay gente inscrita en el evento."
		return v
	}

	pct := percent(attended, registered)
	v.AttendancePct = &pct
	v.Badge = fmt.Sprintf("Por lo tanto, el porcentaje de asistencia es del %.2f%%", pct)
	return v
}
