// Package analytics turns the people_registered row-set of one event date into
// the statistics shown on the event dashboard. Every view is a pure function of
// its input rows; nothing here talks to the database or keeps state between calls.
package analytics

import (
	"fmt"
	"sort"

	"eventstats/models"
)

const unavailable = "No disponible"

// Range is an inclusive [Min, Max] filter used by the bar charts.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var (
	DefaultAgeRange  = Range{Min: 0, Max: 150}
	DefaultHourRange = Range{Min: 0, Max: 24}
)

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Bar is one bar of a distribution chart.
type Bar struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// CategoryCount is one bar of a fixed-category chart with its share of the total.
type CategoryCount struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	Display    string  `json:"display"`
}

// PeopleWhoAttended keeps the rows with an arrival time.
func PeopleWhoAttended(rows []models.RegistrationRecord) []models.RegistrationRecord {
	attended := make([]models.RegistrationRecord, 0, len(rows))
	for _, r := range rows {
		if r.Attended() {
			attended = append(attended, r)
		}
	}
	return attended
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func countDisplay(count int, pct float64) string {
	return fmt.Sprintf("%d (%.2f%%)", count, pct)
}

// distribution counts each value that falls inside r, ascending by value.
func distribution(values []int, r Range, color string) []Bar {
	counts := make(map[int]int)
	for _, v := range values {
		if r.Contains(v) {
			counts[v]++
		}
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	bars := make([]Bar, 0, len(keys))
	for _, k := range keys {
		bars = append(bars, Bar{
			Label: fmt.Sprint(k),
			Value: k,
			Count: counts[k],
			Color: color,
		})
	}
	return bars
}

// categories builds the fixed category bars; shares are taken over the sum of
// the listed categories only.
func categories(counts map[string]int, keys, labels, colors []string) []CategoryCount {
	total := 0
	for _, k := range keys {
		total += counts[k]
	}

	items := make([]CategoryCount, len(keys))
	for i, k := range keys {
		pct := percent(counts[k], total)
		items[i] = CategoryCount{
			Key:        k,
			Label:      labels[i],
			Count:      counts[k],
			Percentage: pct,
			Color:      colors[i],
			Display:    countDisplay(counts[k], pct),
		}
	}
	return items
}
