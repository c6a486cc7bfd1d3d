package analytics

import (
	"sort"

	"eventstats/models"
)

type CrossEventView struct {
	Companions int `json:"companions"`
	Count      int `json:"count"`
}

// CompanionIDs returns the distinct companion ids of rows, ascending.
func CompanionIDs(rows []models.RegistrationRecord) []int64 {
	seen := make(map[int64]struct{}, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.CompanionID]; ok {
			continue
		}
		seen[r.CompanionID] = struct{}{}
		ids = append(ids, r.CompanionID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CrossEventCount is the number of distinct companions holding a registration
// for an event other than eventID.
func CrossEventCount(eventID int64, regs []models.CrossEventRegistration) int {
	seen := make(map[int64]struct{})
	for _, reg := range regs {
		if reg.EventID == eventID {
			continue
		}
		seen[reg.CompanionID] = struct{}{}
	}
	return len(seen)
}
