package match

import (
	"sort"

	"github.com/google/uuid"

	"github.com/hackmatch/teamforge/internal/participant"
)

// groupCompetitive runs the competitive strategy over the filtered
// competitive cohort. After seeding and friend resolution it runs a
// balance pass: candidates are ranked by descending affinity to the
// seed (pool order breaks ties) and accepted only while the deltas
// they introduce stay within the configured tolerances. Because
// weights are non-negative, the delta a candidate introduces into each
// running sum is that candidate's own weight.
func (e *Engine) groupCompetitive(cohort []participant.Participant) []Team {
	p := newPool(cohort)
	log := e.log.WithCohort(CohortCompetitive.String())

	var teams []Team
	for {
		seed, ok := p.popFront()
		if !ok {
			break
		}
		members := []participant.Participant{seed}
		expSum := seed.ExperienceLevel.Weight()
		skillSum := seed.SkillWeight()

		for _, friendID := range seed.FriendRegistration {
			if friend, taken := p.take(friendID); taken {
				members = append(members, friend)
				expSum += friend.ExperienceLevel.Weight()
				skillSum += friend.SkillWeight()
			}
		}

		balanced := make(map[uuid.UUID]bool)
		for _, candidate := range rankByAffinity(&seed, p.remaining()) {
			expDelta := candidate.ExperienceLevel.Weight()
			skillDelta := candidate.SkillWeight()
			if expDelta > e.cfg.ExperienceTolerance || skillDelta > e.cfg.SkillTolerance {
				continue
			}
			if added, taken := p.take(candidate.ID); taken {
				members = append(members, added)
				expSum += expDelta
				skillSum += skillDelta
				balanced[added.ID] = true
			}
		}

		members = capTeam(members, e.cfg.MaxTeamSize, p)

		team := Team{Members: members, Cohort: CohortCompetitive}
		team.Rationale = e.competitiveRationale(&seed, members, balanced)
		teams = append(teams, team)

		log.Debug("team formed",
			"team", len(teams),
			"seed", seed.Name,
			"size", len(members),
			"experience_sum", expSum,
			"skill_sum", skillSum,
			"remaining", p.size())
	}
	return teams
}

// rankByAffinity orders candidates by descending affinity to the seed.
// The sort is stable, so equal scores keep pool order and the pass
// stays deterministic.
func rankByAffinity(seed *participant.Participant, candidates []participant.Participant) []participant.Participant {
	ranked := make([]participant.Participant, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Affinity(seed, &ranked[i]) > Affinity(seed, &ranked[j])
	})
	return ranked
}

func (e *Engine) competitiveRationale(seed *participant.Participant, members []participant.Participant, balanced map[uuid.UUID]bool) Rationale {
	var r Rationale
	r.Add(ReasonAvailabilityMatch, "")

	for i := 1; i < len(members); i++ {
		if seed.HasFriend(members[i].ID) {
			r.Add(ReasonFriendJoin, "")
			break
		}
	}
	for i := 1; i < len(members); i++ {
		if balanced[members[i].ID] {
			r.Add(ReasonExperienceBalance, "")
			r.Add(ReasonSkillBalance, "")
			break
		}
	}
	if interest, ok := mostFrequentInterest(members); ok {
		r.Add(ReasonSharedInterest, interest)
	} else {
		r.Add(ReasonGeneralCompatibility, "")
	}
	return r
}
