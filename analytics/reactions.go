package analytics

import "eventstats/models"

var (
	reactionKeys   = []string{string(models.ReactionLike), string(models.ReactionDislike), string(models.ReactionNone)}
	reactionLabels = []string{"LIKE", "DISLIKE", "SIN REACCIÓN"}
	reactionColors = []string{"green", "red", "gray"}
)

// ReactionView counts post-event feedback. Total only includes LIKE and
// DISLIKE since NO_REACTION means the person has not reacted yet. A NULL
// reaction is reported in Missing and never counted as NO_REACTION.
type ReactionView struct {
	Total   int             `json:"total"`
	Items   []CategoryCount `json:"items"`
	Missing int             `json:"missing"`
}

func Reactions(rows []models.RegistrationRecord) ReactionView {
	counts := make(map[string]int)
	missing := 0
	for _, r := range rows {
		if r.Reaction == nil {
			missing++
			continue
		}
		counts[string(*r.Reaction)]++
	}

	return ReactionView{
		Total:   counts[string(models.ReactionLike)] + counts[string(models.ReactionDislike)],
		Items:   categories(counts, reactionKeys, reactionLabels, reactionColors),
		Missing: missing,
	}
}
