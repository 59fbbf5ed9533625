package match

import (
	"strings"

	"github.com/hackmatch/teamforge/internal/participant"
)

// splitByObjective partitions the roster into the competitive and
// social cohorts. A participant is competitive when any keyword
// appears, case-insensitively, in their objective text; everyone else,
// including participants with an empty objective, is social. Order
// within each cohort preserves roster order, and every participant
// lands in exactly one cohort.
func splitByObjective(roster []participant.Participant, keywords []string) (competitive, social []participant.Participant) {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	for i := range roster {
		objective := strings.ToLower(roster[i].Objective)
		if containsAny(objective, lowered) {
			competitive = append(competitive, roster[i])
		} else {
			social = append(social, roster[i])
		}
	}
	return competitive, social
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
