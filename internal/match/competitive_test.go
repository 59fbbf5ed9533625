package match

import (
	"testing"

	"github.com/hackmatch/teamforge/internal/participant"
	"github.com/hackmatch/teamforge/internal/testutil"
)

func competitor(name string, skillSum int, opts ...testutil.Option) participant.Participant {
	base := []testutil.Option{
		testutil.WithObjective("win the prize"),
		testutil.WithSkills(map[string]int{"Python": skillSum}),
		testutil.WithExperience(participant.ExperienceIntermediate),
	}
	return testutil.NewParticipant(name, append(base, opts...)...)
}

func TestGroupCompetitive_BalancedSkillsFormOneTeam(t *testing.T) {
	// Identical tier, skill sums 2/3/4/5, tolerance 5: every addition
	// introduces a delta within tolerance, so all four end up together.
	roster := []participant.Participant{
		competitor("a", 2),
		competitor("b", 3),
		competitor("c", 4),
		competitor("d", 5),
	}

	cfg := DefaultConfig()
	cfg.SkillTolerance = 5
	e := newTestEngine(t, cfg)

	teams := e.groupCompetitive(roster)
	if len(teams) != 1 {
		t.Fatalf("got %d teams, want 1", len(teams))
	}
	if teams[0].Size() != 4 {
		t.Errorf("team size = %d, want 4", teams[0].Size())
	}
	if !teams[0].Rationale.Has(ReasonSkillBalance) || !teams[0].Rationale.Has(ReasonExperienceBalance) {
		t.Errorf("rationale should include both balance reasons, got %v", teams[0].Rationale.Reasons())
	}
	if !teams[0].Rationale.Has(ReasonAvailabilityMatch) {
		t.Errorf("competitive teams passed the availability filter, got %v", teams[0].Rationale.Reasons())
	}
}

func TestGroupCompetitive_RejectsOutOfToleranceCandidates(t *testing.T) {
	roster := []participant.Participant{
		competitor("a", 2),
		competitor("heavy", 40),
		competitor("b", 3),
	}

	cfg := DefaultConfig()
	cfg.SkillTolerance = 5
	e := newTestEngine(t, cfg)

	teams := e.groupCompetitive(roster)
	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2", len(teams))
	}
	// heavy is rejected from a's team and later seeds their own.
	if teams[0].Size() != 2 {
		t.Errorf("first team size = %d, want 2 (a and b)", teams[0].Size())
	}
	if teams[1].Members[0].Name != "heavy" {
		t.Errorf("second team seed = %q, want heavy", teams[1].Members[0].Name)
	}
}

func TestGroupCompetitive_ExperienceToleranceIndependent(t *testing.T) {
	// Candidate passes the skill check but an Advanced weight of 6
	// exceeds an experience tolerance of 5.
	roster := []participant.Participant{
		competitor("a", 2),
		competitor("b", 3, testutil.WithExperience(participant.ExperienceAdvanced)),
	}

	cfg := DefaultConfig()
	cfg.ExperienceTolerance = 5
	e := newTestEngine(t, cfg)

	teams := e.groupCompetitive(roster)
	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2: both checks must hold independently", len(teams))
	}
}

func TestGroupCompetitive_FriendsBypassBalanceChecks(t *testing.T) {
	roster := []participant.Participant{
		competitor("a", 2, testutil.WithFriends("heavy")),
		competitor("heavy", 40),
	}

	cfg := DefaultConfig()
	cfg.SkillTolerance = 5
	e := newTestEngine(t, cfg)

	teams := e.groupCompetitive(roster)
	if len(teams) != 1 {
		t.Fatalf("got %d teams, want 1", len(teams))
	}
	if teams[0].Size() != 2 {
		t.Errorf("team size = %d, want 2: declared friends join before the balance pass", teams[0].Size())
	}
	if !teams[0].Rationale.Has(ReasonFriendJoin) {
		t.Errorf("rationale should include friend_join, got %v", teams[0].Rationale.Reasons())
	}
}

func TestGroupCompetitive_AffinityRanksCandidates(t *testing.T) {
	// Both candidates pass the balance checks but only one slot is
	// left; the higher-affinity candidate gets it.
	cfg := DefaultConfig()
	cfg.MaxTeamSize = 2
	e := newTestEngine(t, cfg)

	roster := []participant.Participant{
		competitor("seed", 3, testutil.WithInterests("AI", "Robotics")),
		competitor("stranger", 3, testutil.WithInterests("Music"),
			testutil.WithExperience(participant.ExperienceBeginner)),
		competitor("kindred", 3, testutil.WithInterests("AI", "Robotics")),
	}

	teams := e.groupCompetitive(roster)
	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2", len(teams))
	}
	if teams[0].Members[1].Name != "kindred" {
		t.Errorf("seed's teammate = %q, want kindred (higher affinity)", teams[0].Members[1].Name)
	}
}

func TestGroupCompetitive_ReplayBalanceBound(t *testing.T) {
	// Re-verify the balance bound post hoc by replaying additions in
	// assembly order on the final teams.
	var roster []participant.Participant
	skills := []int{2, 9, 4, 7, 1, 10, 3, 6}
	for i, s := range skills {
		roster = append(roster, competitor(string(rune('a'+i)), s))
	}

	cfg := DefaultConfig()
	e := newTestEngine(t, cfg)

	for _, team := range e.groupCompetitive(roster) {
		seed := team.Members[0]
		for _, member := range team.Members[1:] {
			if seed.HasFriend(member.ID) {
				continue
			}
			if d := member.ExperienceLevel.Weight(); d > cfg.ExperienceTolerance {
				t.Errorf("member %s introduced experience delta %d > %d", member.Name, d, cfg.ExperienceTolerance)
			}
			if d := member.SkillWeight(); d > cfg.SkillTolerance {
				t.Errorf("member %s introduced skill delta %d > %d", member.Name, d, cfg.SkillTolerance)
			}
		}
	}
}
