package analytics

import "eventstats/models"

var (
	genderKeys   = []string{string(models.GenderMale), string(models.GenderFemale), string(models.GenderOther)}
	genderLabels = []string{"HOMBRE", "MUJER", "OTRO"}
	genderColors = []string{"blue", "pink", "gray"}
)

type GenderView struct {
	Total int             `json:"total"`
	Items []CategoryCount `json:"items"`
	// Unknown counts registrants with no gender on file; they are left out of Total.
	Unknown int `json:"unknown"`
}

// Genders counts every registrant, attended or not.
func Genders(rows []models.RegistrationRecord) GenderView {
	counts := make(map[string]int)
	unknown := 0
	for _, r := range rows {
		if r.Gender == nil {
			unknown++
			continue
		}
		counts[string(*r.Gender)]++
	}

	items := categories(counts, genderKeys, genderLabels, genderColors)
	total := 0
	for _, it := range items {
		total += it.Count
	}
	return GenderView{Total: total, Items: items, Unknown: unknown}
}
