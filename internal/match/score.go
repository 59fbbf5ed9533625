package match

import (
	"github.com/hackmatch/teamforge/internal/participant"
)

// sameTierBonus is the affinity contribution of a matching experience
// tier. Shared interests and shared skill names contribute one point
// each.
const sameTierBonus = 3

// Affinity scores how compatible two participants are. The score is
// symmetric and deterministic: a matching experience tier is worth
// sameTierBonus, plus one point per shared interest and one per shared
// skill name. Skill overlap compares keys only, not proficiency.
func Affinity(a, b *participant.Participant) int {
	score := 0
	if a.ExperienceLevel == b.ExperienceLevel {
		score += sameTierBonus
	}
	score += len(sharedInterests(a, b))
	score += sharedSkillCount(a, b)
	return score
}

// sharedInterests returns the interests both participants listed, in
// a's declaration order.
func sharedInterests(a, b *participant.Participant) []string {
	theirs := make(map[string]bool, len(b.Interests))
	for _, interest := range b.Interests {
		theirs[interest] = true
	}

	var shared []string
	for _, interest := range a.Interests {
		if theirs[interest] {
			shared = append(shared, interest)
		}
	}
	return shared
}

func sharedSkillCount(a, b *participant.Participant) int {
	count := 0
	for skill := range a.ProgrammingSkills {
		if _, ok := b.ProgrammingSkills[skill]; ok {
			count++
		}
	}
	return count
}

// interestsOverlap reports whether the two participants share at least
// one interest.
func interestsOverlap(a, b *participant.Participant) bool {
	return len(sharedInterests(a, b)) > 0
}
