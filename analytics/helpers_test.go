package analytics

import (
	"math"
	"testing"
	"time"

	"eventstats/models"
)

var testNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

type recordOpt func(*models.RegistrationRecord)

func newRecord(id int64, opts ...recordOpt) models.RegistrationRecord {
	r := models.RegistrationRecord{
		RegistrationID: id,
		EventID:        1,
		CompanionID:    100 + id,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func arrivedAt(h, m int) recordOpt {
	return func(r *models.RegistrationRecord) {
		r.ArrivalTime = &models.TimeOfDay{Hours: h, Minutes: m}
	}
}

func aged(age int) recordOpt {
	return func(r *models.RegistrationRecord) {
		dob := models.NewDate(time.Date(testNow.Year()-age, time.March, 15, 0, 0, 0, 0, time.UTC))
		r.DateOfBirth = &dob
	}
}

func gender(g models.Gender) recordOpt {
	return func(r *models.RegistrationRecord) {
		r.Gender = &g
	}
}

func reaction(re models.Reaction) recordOpt {
	return func(r *models.RegistrationRecord) {
		r.Reaction = &re
	}
}

func companion(id int64) recordOpt {
	return func(r *models.RegistrationRecord) {
		r.CompanionID = id
	}
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
