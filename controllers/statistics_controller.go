package controllers

import (
	"github.com/gofiber/fiber/v2"

	"eventstats/analytics"
	"eventstats/logging"
	"eventstats/metrics"
)

// StatisticsQuery holds the dashboard filters and the staff calculator
// inputs. Absent parameters keep their defaults.
type StatisticsQuery struct {
	AgeMin  int `query:"age_min" validate:"min=0,max=150"`
	AgeMax  int `query:"age_max" validate:"min=0,max=150,gtefield=AgeMin"`
	HourMin int `query:"hour_min" validate:"min=0,max=24"`
	HourMax int `query:"hour_max" validate:"min=0,max=24,gtefield=HourMin"`

	// Staff turns the calculator on; its inputs are read into a StaffQuery.
	Staff bool `query:"staff"`
}

// StaffQuery mirrors analytics.StaffParams. ExpectedRegistrations 0 means
// the number of registrants.
type StaffQuery struct {
	NumerRegistration     int `query:"numer_registration" validate:"min=1,max=10000"`
	DenomRegistration     int `query:"denom_registration" validate:"min=1,max=10000"`
	NumerActivities       int `query:"numer_activities" validate:"min=1,max=10000"`
	DenomActivities       int `query:"denom_activities" validate:"min=1,max=10000"`
	StaffUnforeseen       int `query:"staff_unforeseen" validate:"min=0,max=10000"`
	AdditionalStaff       int `query:"additional_staff" validate:"min=0,max=10000"`
	ExpectedRegistrations int `query:"expected_registrations" validate:"min=0,max=1000000"`
}

func defaultStaffQuery() StaffQuery {
	p := analytics.DefaultStaffParams(0)
	return StaffQuery{
		NumerRegistration: p.NumerRegistration,
		DenomRegistration: p.DenomRegistration,
		NumerActivities:   p.NumerActivities,
		DenomActivities:   p.DenomActivities,
		StaffUnforeseen:   p.StaffUnforeseen,
		AdditionalStaff:   p.AdditionalStaff,
	}
}

func (q StaffQuery) params() analytics.StaffParams {
	return analytics.StaffParams{
		NumerRegistration:     q.NumerRegistration,
		DenomRegistration:     q.DenomRegistration,
		NumerActivities:       q.NumerActivities,
		DenomActivities:       q.DenomActivities,
		StaffUnforeseen:       q.StaffUnforeseen,
		AdditionalStaff:       q.AdditionalStaff,
		ExpectedRegistrations: q.ExpectedRegistrations,
	}
}

func defaultStatisticsQuery() StatisticsQuery {
	return StatisticsQuery{
		AgeMin:  analytics.DefaultAgeRange.Min,
		AgeMax:  analytics.DefaultAgeRange.Max,
		HourMin: analytics.DefaultHourRange.Min,
		HourMax: analytics.DefaultHourRange.Max,
	}
}

// GetEventStatistics builds every dashboard view for one event date.
func (ctl *Controller) GetEventStatistics(c *fiber.Ctx) error {
	q := defaultStatisticsQuery()
	if err := parseQuery(c, &q); err != nil {
		return fail(c, err, "Event")
	}
	var staff *analytics.StaffParams
	if q.Staff {
		sq := defaultStaffQuery()
		if err := parseQuery(c, &sq); err != nil {
			return fail(c, err, "Event")
		}
		p := sq.params()
		staff = &p
	}
	day, err := ctl.parseDate(c)
	if err != nil {
		return fail(c, err, "Event")
	}
	event, err := ctl.findEvent(c)
	if err != nil {
		return fail(c, err, "Event")
	}

	ctx := c.UserContext()
	rows, err := ctl.store.FetchRegistrationsForEventDate(ctx, event.ID, day)
	if err != nil {
		return fail(c, err, "Event")
	}
	cross, err := ctl.store.FetchCrossEventRegistrations(ctx, analytics.CompanionIDs(rows), event.ID)
	if err != nil {
		return fail(c, err, "Event")
	}

	in := analytics.ReportInput{
		EventID:    event.ID,
		Rows:       rows,
		CrossEvent: cross,
		Filters: analytics.Filters{
			Ages:  analytics.Range{Min: q.AgeMin, Max: q.AgeMax},
			Hours: analytics.Range{Min: q.HourMin, Max: q.HourMax},
		},
		Staff: staff,
		Now:   ctl.now(),
	}

	report, err := analytics.BuildReport(in)
	if err != nil {
		return fail(c, err, "Event")
	}
	metrics.ObserveReport(len(rows))
	logging.Debug().
		Int64("event_id", event.ID).
		Str("date", day.String()).
		Int("rows", len(rows)).
		Msg("statistics report built")

	return c.JSON(fiber.Map{
		"message": "Success",
		"event":   event,
		"date":    day,
		"data":    report,
	})
}

// GetStaffEstimate runs the staff calculator on its own.
func (ctl *Controller) GetStaffEstimate(c *fiber.Ctx) error {
	q := defaultStaffQuery()
	if err := parseQuery(c, &q); err != nil {
		return fail(c, err, "Event")
	}
	if q.ExpectedRegistrations < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": map[string]string{"ExpectedRegistrations": "Invalid required"},
		})
	}

	est, err := analytics.StaffNeeded(q.params())
	if err != nil {
		return fail(c, err, "Event")
	}
	return c.JSON(fiber.Map{
		"message": "Success",
		"data":    est,
	})
}
