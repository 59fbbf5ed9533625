package match

import (
	"github.com/hackmatch/teamforge/internal/participant"
)

// groupSocial runs the social strategy over its cohort. Each pass pops
// a seed, pulls in the seed's declared friends still in the pool, then
// extends the team with any remaining participant whose interests
// overlap the seed's. Friend links are traversed only outward from the
// seed; a request is honored even when not reciprocated.
func (e *Engine) groupSocial(cohort []participant.Participant) []Team {
	p := newPool(cohort)
	log := e.log.WithCohort(CohortSocial.String())

	var teams []Team
	for {
		seed, ok := p.popFront()
		if !ok {
			break
		}
		members := []participant.Participant{seed}

		for _, friendID := range seed.FriendRegistration {
			if friend, taken := p.take(friendID); taken {
				members = append(members, friend)
			}
		}

		for _, candidate := range p.remaining() {
			if interestsOverlap(&seed, &candidate) {
				if added, taken := p.take(candidate.ID); taken {
					members = append(members, added)
				}
			}
		}

		members = capTeam(members, e.cfg.MaxTeamSize, p)

		team := Team{Members: members, Cohort: CohortSocial}
		team.Rationale = e.socialRationale(&seed, members)
		teams = append(teams, team)

		log.Debug("team formed",
			"team", len(teams),
			"seed", seed.Name,
			"size", len(members),
			"remaining", p.size())
	}
	return teams
}

// socialRationale derives the rationale from the finalized membership,
// so truncated members never justify a team they are not on.
func (e *Engine) socialRationale(seed *participant.Participant, members []participant.Participant) Rationale {
	var r Rationale

	for i := 1; i < len(members); i++ {
		if seed.HasFriend(members[i].ID) {
			r.Add(ReasonFriendJoin, "")
			break
		}
	}
	if interest, ok := mostFrequentInterest(members); ok {
		r.Add(ReasonSharedInterest, interest)
	}
	if len(r.Reasons()) == 0 {
		r.Add(ReasonGeneralCompatibility, "")
	}
	return r
}
