package match

import (
	"github.com/hackmatch/teamforge/internal/participant"
)

// filterAvailability splits a cohort into participants who satisfy at
// least minSlots of the required slots and those who do not. Missing
// slot keys count as unavailable. Both result slices preserve cohort
// order. Only the competitive cohort is ever filtered.
func filterAvailability(cohort []participant.Participant, slots []string, minSlots int) (kept, dropped []participant.Participant) {
	for i := range cohort {
		if cohort[i].AvailableCount(slots) >= minSlots {
			kept = append(kept, cohort[i])
		} else {
			dropped = append(dropped, cohort[i])
		}
	}
	return kept, dropped
}
