package analytics

import (
	"time"

	"eventstats/models"
)

type Filters struct {
	Ages  Range
	Hours Range
}

func DefaultFilters() Filters {
	return Filters{Ages: DefaultAgeRange, Hours: DefaultHourRange}
}

type ReportInput struct {
	EventID    int64
	Rows       []models.RegistrationRecord
	CrossEvent []models.CrossEventRegistration
	Filters    Filters
	// Staff is nil unless the calculator is requested. A zero
	// ExpectedRegistrations is replaced by the number of registrants.
	Staff *StaffParams
	Now   time.Time
}

type Report struct {
	Attendance   AttendanceView `json:"attendance"`
	Ages         AgeView        `json:"ages"`
	Genders      GenderView     `json:"genders"`
	CrossEvent   CrossEventView `json:"cross_event"`
	ArrivalHours HourView       `json:"arrival_hours"`
	Reactions    ReactionView   `json:"reactions"`
	Staff        *StaffEstimate `json:"staff,omitempty"`
}

// BuildReport computes every dashboard view over one row-set. The only error
// is ErrInvalidStaffParams.
func BuildReport(in ReportInput) (Report, error) {
	rep := Report{
		Attendance: Attendance(in.Rows),
		Ages:       Ages(in.Rows, in.Filters.Ages, in.Now),
		Genders:    Genders(in.Rows),
		CrossEvent: CrossEventView{
			Companions: len(CompanionIDs(in.Rows)),
			Count:      CrossEventCount(in.EventID, in.CrossEvent),
		},
		ArrivalHours: ArrivalHours(in.Rows, in.Filters.Hours),
		Reactions:    Reactions(in.Rows),
	}

	if in.Staff != nil {
		p := *in.Staff
		if p.ExpectedRegistrations == 0 {
			p.ExpectedRegistrations = min(max(1, len(in.Rows)), MaxExpectedRegistrations)
		}
		est, err := StaffNeeded(p)
		if err != nil {
			return Report{}, err
		}
		rep.Staff = &est
	}
	return rep, nil
}
