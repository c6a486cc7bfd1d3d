package analytics

import (
	"errors"
	"fmt"
)

var ErrInvalidStaffParams = errors.New("invalid staff calculator parameters")

// Upper bounds of the calculator inputs. They keep every product of the
// formula well inside int.
const (
	MaxExpectedRegistrations = 1_000_000
	MaxStaffTerm             = 10_000
)

// StaffParams are the editable terms of the staffing formula:
//
//	ceil(expected / DenomRegistration * NumerRegistration) + StaffUnforeseen
//	  + ceil(expected / DenomActivities * NumerActivities) + AdditionalStaff
type StaffParams struct {
	NumerRegistration     int `json:"numer_registration"`
	DenomRegistration     int `json:"denom_registration"`
	NumerActivities       int `json:"numer_activities"`
	DenomActivities       int `json:"denom_activities"`
	StaffUnforeseen       int `json:"staff_unforeseen"`
	AdditionalStaff       int `json:"additional_staff"`
	ExpectedRegistrations int `json:"expected_registrations"`
}

// DefaultStaffParams: one person per 100 registrations for check-in, one per
// 40 for activities and ten for the unforeseen.
func DefaultStaffParams(totalRegistered int) StaffParams {
	return StaffParams{
		NumerRegistration:     1,
		DenomRegistration:     100,
		NumerActivities:       1,
		DenomActivities:       40,
		StaffUnforeseen:       10,
		AdditionalStaff:       0,
		ExpectedRegistrations: max(1, totalRegistered),
	}
}

func (p StaffParams) Validate() error {
	switch {
	case p.NumerRegistration < 1:
		return fmt.Errorf("%w: numer_registration must be at least 1", ErrInvalidStaffParams)
	case p.DenomRegistration < 1:
		return fmt.Errorf("%w: denom_registration must be at least 1", ErrInvalidStaffParams)
	case p.NumerActivities < 1:
		return fmt.Errorf("%w: numer_activities must be at least 1", ErrInvalidStaffParams)
	case p.DenomActivities < 1:
		return fmt.Errorf("%w: denom_activities must be at least 1", ErrInvalidStaffParams)
	case p.StaffUnforeseen < 0:
		return fmt.Errorf("%w: staff_unforeseen must not be negative", ErrInvalidStaffParams)
	case p.AdditionalStaff < 0:
		return fmt.Errorf("%w: additional_staff must not be negative", ErrInvalidStaffParams)
	case p.ExpectedRegistrations < 1:
		return fmt.Errorf("%w: expected_registrations must be at least 1", ErrInvalidStaffParams)
	case p.ExpectedRegistrations > MaxExpectedRegistrations:
		return fmt.Errorf("%w: expected_registrations must be at most %d", ErrInvalidStaffParams, MaxExpectedRegistrations)
	case max(p.NumerRegistration, p.DenomRegistration, p.NumerActivities, p.DenomActivities,
		p.StaffUnforeseen, p.AdditionalStaff) > MaxStaffTerm:
		return fmt.Errorf("%w: staff terms must be at most %d", ErrInvalidStaffParams, MaxStaffTerm)
	}
	return nil
}

type StaffEstimate struct {
	Params            StaffParams `json:"params"`
	RegistrationStaff int         `json:"registration_staff"`
	ActivitiesStaff   int         `json:"activities_staff"`
	UnforeseenStaff   int         `json:"unforeseen_staff"`
	AdditionalStaff   int         `json:"additional_staff"`
	Total             int         `json:"total"`
	Badge             string      `json:"badge"`
}

func StaffNeeded(p StaffParams) (StaffEstimate, error) {
	if err := p.Validate(); err != nil {
		return StaffEstimate{}, err
	}

	est := StaffEstimate{
		Params:            p,
		RegistrationStaff: ceilDiv(p.ExpectedRegistrations*p.NumerRegistration, p.DenomRegistration),
		ActivitiesStaff:   ceilDiv(p.ExpectedRegistrations*p.NumerActivities, p.DenomActivities),
		UnforeseenStaff:   p.StaffUnforeseen,
		AdditionalStaff:   p.AdditionalStaff,
	}
	est.Total = est.RegistrationStaff + est.UnforeseenStaff + est.ActivitiesStaff + est.AdditionalStaff
	est.Badge = fmt.Sprintf("El número total de staff recomendado para el evento es de %d personas", est.Total)
	return est, nil
}

// ceilDiv is ceil(a/b) for a >= 0, b > 0, exact in integers.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
