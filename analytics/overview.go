package analytics

import "eventstats/models"

type EventSummary struct {
	EventID       int64    `json:"event_id"`
	Name          string   `json:"name"`
	Capacity      int      `json:"capacity"`
	Cancelled     bool     `json:"cancelled"`
	Published     bool     `json:"published"`
	Dates         int      `json:"dates"`
	Registered    int      `json:"registered"`
	Attended      int      `json:"attended"`
	AttendancePct *float64 `json:"attendance_pct"`
	CapacityPct   *float64 `json:"capacity_pct"`
	Likes         int      `json:"likes"`
	Dislikes      int      `json:"dislikes"`
}

type OverviewView struct {
	Events          []EventSummary `json:"events"`
	TotalEvents     int            `json:"total_events"`
	TotalRegistered int            `json:"total_registered"`
	TotalAttended   int            `json:"total_attended"`
	AttendancePct   *float64       `json:"attendance_pct"`
}

// Overview summarises every event for the all-events page.
func Overview(rows []models.EventOverviewRow) OverviewView {
	v := OverviewView{
		Events:      make([]EventSummary, 0, len(rows)),
		TotalEvents: len(rows),
	}

	for _, r := range rows {
		s := EventSummary{
			EventID:    r.EventID,
			Name:       r.Name,
			Capacity:   r.Capacity,
			Cancelled:  r.IsCancelled,
			Published:  r.IsPublished,
			Dates:      r.Dates,
			Registered: r.Registered,
			Attended:   r.Attended,
			Likes:      r.Likes,
			Dislikes:   r.Dislikes,
		}
		s.AttendancePct = optionalPercent(r.Attended, r.Registered)
		s.CapacityPct = optionalPercent(r.Registered, r.Capacity)

		v.TotalRegistered += r.Registered
		v.TotalAttended += r.Attended
		v.Events = append(v.Events, s)
	}

	v.AttendancePct = optionalPercent(v.TotalAttended, v.TotalRegistered)
	return v
}

func optionalPercent(part, total int) *float64 {
	if total <= 0 {
		return nil
	}
	pct := percent(part, total)
	return &pct
}
