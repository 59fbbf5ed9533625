package match

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hackmatch/teamforge/internal/errors"
	"github.com/hackmatch/teamforge/internal/participant"
)

// capTeam enforces the hard size cap. Overflow members return to the
// front of the pool in their assignment order, so the first overflow
// member seeds the next team and nobody is lost.
func capTeam(members []participant.Participant, maxSize int, p *pool) []participant.Participant {
	if len(members) <= maxSize {
		return members
	}
	p.pushFront(members[maxSize:])
	return members[:maxSize]
}

// mostFrequentInterest returns the interest appearing most often
// across the team, ties broken by first-seen order. An interest held
// by a single member does not count as shared.
func mostFrequentInterest(members []participant.Participant) (string, bool) {
	counts := make(map[string]int)
	var order []string
	for i := range members {
		for _, interest := range members[i].Interests {
			if counts[interest] == 0 {
				order = append(order, interest)
			}
			counts[interest]++
		}
	}

	best, bestCount := "", 0
	for _, interest := range order {
		if counts[interest] > bestCount {
			best, bestCount = interest, counts[interest]
		}
	}
	if bestCount < 2 {
		return "", false
	}
	return best, true
}

// singletonTeam wraps an availability-filtered competitive participant
// into a team of one, so the partition stays total.
func singletonTeam(p participant.Participant) Team {
	team := Team{Members: []participant.Participant{p}, Cohort: CohortCompetitive}
	team.Rationale.Add(ReasonGeneralCompatibility,
		"they could not be grouped on the competitive track due to limited availability")
	return team
}

// verifyPartition checks that the output teams cover the roster
// exactly: no participant missing, duplicated, or invented. A failure
// here is a bug in the grouping passes, not an input problem.
func verifyPartition(roster []participant.Participant, teams []Team) error {
	seen := make(map[uuid.UUID]bool, len(roster))
	for _, team := range teams {
		for i := range team.Members {
			id := team.Members[i].ID
			if seen[id] {
				return errors.NewMatchError(
					fmt.Sprintf("participant %s assigned to more than one team", id),
					errors.ErrParticipantLost).
					WithCohort(team.Cohort.String())
			}
			seen[id] = true
		}
	}

	for i := range roster {
		if !seen[roster[i].ID] {
			return errors.NewMatchError(
				fmt.Sprintf("participant %s missing from every team", roster[i].ID),
				errors.ErrParticipantLost)
		}
	}

	total := 0
	for _, team := range teams {
		total += team.Size()
	}
	if total != len(roster) {
		return errors.NewMatchError(
			fmt.Sprintf("teams hold %d members, roster has %d", total, len(roster)),
			errors.ErrParticipantLost)
	}
	return nil
}
