package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// TimeOfDay is a MySQL TIME value. Hours may exceed 23 for TIME columns
// holding elapsed time; Hour folds them into a day.
type TimeOfDay struct {
	Hours   int
	Minutes int
	Seconds int
}

// ParseTimeOfDay accepts HH:MM, HH:MM:SS and HH:MM:SS.ffffff.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}

	var t TimeOfDay
	var err error
	if t.Hours, err = strconv.Atoi(parts[0]); err != nil || t.Hours < 0 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q", s)
	}
	if t.Minutes, err = strconv.Atoi(parts[1]); err != nil || t.Minutes < 0 || t.Minutes > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q", s)
	}
	if len(parts) == 3 {
		sec, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || sec < 0 || sec >= 60 {
			return TimeOfDay{}, fmt.Errorf("invalid second in %q", s)
		}
		t.Seconds = int(sec)
	}
	return t, nil
}

// Hour is the hour-of-day component.
func (t TimeOfDay) Hour() int {
	return t.Hours % 24
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
