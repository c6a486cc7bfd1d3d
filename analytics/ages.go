package analytics

import (
	"math"
	"sort"
	"time"

	"eventstats/models"
)

type AgeSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
}

type Boxplot struct {
	Q1    float64 `json:"q1"`
	Q2    float64 `json:"q2"`
	Q3    float64 `json:"q3"`
	IQR   float64 `json:"iqr"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// AgeView describes the attendees' ages. Bars honour Range; Summary and
// Boxplot are computed over every attendee regardless of Range and are nil
// when no attendee has a date of birth.
type AgeView struct {
	Range   Range       `json:"range"`
	Bars    []Bar       `json:"bars"`
	Summary *AgeSummary `json:"summary"`
	Boxplot *Boxplot    `json:"boxplot"`
}

// AttendedAges returns the ages of the attendees that have a date of birth.
func AttendedAges(rows []models.RegistrationRecord, now time.Time) []int {
	var ages []int
	for _, r := range rows {
		if !r.Attended() {
			continue
		}
		if age, ok := r.Age(now); ok {
			ages = append(ages, age)
		}
	}
	return ages
}

func Ages(rows []models.RegistrationRecord, r Range, now time.Time) AgeView {
	ages := AttendedAges(rows, now)
	v := AgeView{
		Range: r,
		Bars:  distribution(ages, r, "blue"),
	}
	if len(ages) == 0 {
		return v
	}

	sorted := make([]float64, len(ages))
	for i, a := range ages {
		sorted[i] = float64(a)
	}
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	v.Summary = &AgeSummary{
		Mean:   mean(sorted),
		Median: quantile(sorted, 0.5),
		Min:    int(lo),
		Max:    int(hi),
	}

	q1 := quantile(sorted, 0.25)
	q2 := quantile(sorted, 0.5)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1
	v.Boxplot = &Boxplot{
		Q1:    q1,
		Q2:    q2,
		Q3:    q3,
		IQR:   iqr,
		Lower: math.Max(lo, q1-1.5*iqr),
		Upper: math.Min(hi, q3+1.5*iqr),
	}
	return v
}
