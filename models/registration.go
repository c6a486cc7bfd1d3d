package models

import "time"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type Reaction string

const (
	ReactionLike    Reaction = "LIKE"
	ReactionDislike Reaction = "DISLIKE"
	ReactionNone    Reaction = "NO_REACTION"
)

// RegistrationRecord is one row of the people_registered join: a registration,
// its companion (user + assistant profile) and at most one attendance for the
// analyzed event date. Nil pointers are NULL columns.
type RegistrationRecord struct {
	RegistrationID        int64      `json:"registration_id"`
	EventID               int64      `json:"event_id"`
	AssistantID           int64      `json:"assistant_id"`
	CompanionID           int64      `json:"companion_id"`
	CompanionType         string     `json:"companion_type"`
	RegistrationCreatedAt *time.Time `json:"registration_created_at"`
	Reaction              *Reaction  `json:"reaction"`
	ReactionDate          *time.Time `json:"reaction_date"`
	UserCreatedAt         *time.Time `json:"user_created_at"`
	Email                 string     `json:"email"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	IsActive              bool       `json:"is_active"`
	Role                  string     `json:"role"`
	IDNumber              string     `json:"id_number"`
	IDNumberType          string     `json:"id_number_type"`
	Phone                 string     `json:"phone"`
	Gender                *Gender    `json:"gender"`
	DateOfBirth           *Date      `json:"date_of_birth"`
	ArrivalTime           *TimeOfDay `json:"arrival_time"`
	DayDate               *Date      `json:"day_date"`
}

// Attended reports whether the registrant checked in on the analyzed date.
func (r RegistrationRecord) Attended() bool {
	return r.ArrivalTime != nil
}

// Age is the coarse yearly age: now's year minus the birth year.
func (r RegistrationRecord) Age(now time.Time) (int, bool) {
	if r.DateOfBirth == nil {
		return 0, false
	}
	return now.Year() - r.DateOfBirth.Year(), true
}
