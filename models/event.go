package models

// Event is one entry of the event selector.
type Event struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// EventDate is one scheduled occurrence of a multi-date event.
type EventDate struct {
	ID        int64      `json:"id"`
	EventID   int64      `json:"event_id"`
	DayDate   Date       `json:"day_date"`
	StartTime *TimeOfDay `json:"start_time"`
	EndTime   *TimeOfDay `json:"end_time"`
}

// EventOverviewRow carries the per-event counters behind the all-events page.
type EventOverviewRow struct {
	EventID     int64
	Name        string
	Capacity    int
	IsCancelled bool
	IsPublished bool
	Dates       int
	Registered  int
	Attended    int
	Likes       int
	Dislikes    int
}

// CrossEventRegistration is a registration of a companion for some other event.
type CrossEventRegistration struct {
	CompanionID int64 `json:"companion_id"`
	EventID     int64 `json:"event_id"`
}
