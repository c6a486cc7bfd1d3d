package analytics

import (
	"fmt"

	"eventstats/models"
)

// HourView is the arrival-hour distribution. MeanHour and ModeHour ignore
// Range and are nil, with Available false, when no arrival time is usable.
type HourView struct {
	Range       Range    `json:"range"`
	Bars        []Bar    `json:"bars"`
	Available   bool     `json:"available"`
	MeanHour    *float64 `json:"mean_hour"`
	ModeHour    *int     `json:"mode_hour"`
	MeanDisplay string   `json:"mean_display"`
	ModeDisplay string   `json:"mode_display"`
}

// ArrivalHoursOf returns the hour of day of every row with an arrival time.
func ArrivalHoursOf(rows []models.RegistrationRecord) []int {
	var hours []int
	for _, r := range rows {
		if r.ArrivalTime != nil {
			hours = append(hours, r.ArrivalTime.Hour())
		}
	}
	return hours
}

func ArrivalHours(rows []models.RegistrationRecord, r Range) HourView {
	hours := ArrivalHoursOf(rows)
	v := HourView{
		Range:       r,
		Bars:        distribution(hours, r, "blue"),
		MeanDisplay: unavailable,
		ModeDisplay: unavailable,
	}
	if len(hours) == 0 {
		return v
	}

	counts := make(map[int]int)
	sum := 0
	for _, h := range hours {
		counts[h]++
		sum += h
	}

	// lowest hour wins a tie
	mode, best := 0, 0
	for h := 0; h < 24; h++ {
		if counts[h] > best {
			mode, best = h, counts[h]
		}
	}

	avg := float64(sum) / float64(len(hours))
	v.Available = true
	v.MeanHour = &avg
	v.ModeHour = &mode
	v.MeanDisplay = fmt.Sprintf("%.2f", avg)
	v.ModeDisplay = fmt.Sprint(mode)
	return v
}
