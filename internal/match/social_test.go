package match

import (
	"testing"

	"github.com/hackmatch/teamforge/internal/logging"
	"github.com/hackmatch/teamforge/internal/participant"
	"github.com/hackmatch/teamforge/internal/testutil"
)

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, logging.NopLogger())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

func TestGroupSocial_FriendsJoinRegardlessOfInterests(t *testing.T) {
	// A and B are mutual friends with nothing else in common.
	roster := []participant.Participant{
		testutil.NewParticipant("a",
			testutil.WithFriends("b"),
			testutil.WithInterests("AI")),
		testutil.NewParticipant("b",
			testutil.WithFriends("a"),
			testutil.WithInterests("Robotics")),
		testutil.NewParticipant("c", testutil.WithInterests("Gaming")),
		testutil.NewParticipant("d", testutil.WithInterests("Music")),
		testutil.NewParticipant("e", testutil.WithInterests("Cooking")),
	}

	e := newTestEngine(t, DefaultConfig())
	teams := e.groupSocial(roster)

	var aTeam *Team
	for i := range teams {
		for _, member := range teams[i].Members {
			if member.Name == "a" {
				aTeam = &teams[i]
			}
		}
	}
	if aTeam == nil {
		t.Fatal("a is not on any team")
	}

	foundB := false
	for _, member := range aTeam.Members {
		if member.Name == "b" {
			foundB = true
		}
	}
	if !foundB {
		t.Error("a's team must include b via the friend link")
	}
	if !aTeam.Rationale.Has(ReasonFriendJoin) {
		t.Errorf("rationale should include friend_join, got %v", aTeam.Rationale.Reasons())
	}
}

func TestGroupSocial_UnreciprocatedFriendRequestHonored(t *testing.T) {
	// Only a declares the friendship; it is still honored from a's side.
	roster := []participant.Participant{
		testutil.NewParticipant("a", testutil.WithFriends("b"), testutil.WithInterests("AI")),
		testutil.NewParticipant("b", testutil.WithInterests("Robotics")),
	}

	e := newTestEngine(t, DefaultConfig())
	teams := e.groupSocial(roster)

	if len(teams) != 1 {
		t.Fatalf("got %d teams, want 1", len(teams))
	}
	if teams[0].Size() != 2 {
		t.Errorf("team size = %d, want 2", teams[0].Size())
	}
}

func TestGroupSocial_InterestExtension(t *testing.T) {
	roster := []participant.Participant{
		testutil.NewParticipant("a", testutil.WithInterests("AI", "Web")),
		testutil.NewParticipant("b", testutil.WithInterests("Robotics")),
		testutil.NewParticipant("c", testutil.WithInterests("AI")),
	}

	e := newTestEngine(t, DefaultConfig())
	teams := e.groupSocial(roster)

	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2", len(teams))
	}
	// Seed a picks up c through the shared AI interest; b seeds its own team.
	first := teams[0]
	if first.Size() != 2 || first.Members[0].Name != "a" || first.Members[1].Name != "c" {
		t.Errorf("first team = %v", teamNames(&first))
	}
	if !first.Rationale.Has(ReasonSharedInterest) {
		t.Errorf("rationale should include shared_interest, got %v", first.Rationale.Reasons())
	}
	if teams[1].Size() != 1 || teams[1].Members[0].Name != "b" {
		t.Errorf("second team = %v", teamNames(&teams[1]))
	}
	if !teams[1].Rationale.Has(ReasonGeneralCompatibility) {
		t.Errorf("singleton rationale should be general compatibility, got %v", teams[1].Rationale.Reasons())
	}
}

func TestGroupSocial_OverflowSeedsNextTeam(t *testing.T) {
	// Six participants all sharing one interest, cap 4: the two overflow
	// members return to the pool and form the next team.
	var roster []participant.Participant
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		roster = append(roster, testutil.NewParticipant(name, testutil.WithInterests("AI")))
	}

	e := newTestEngine(t, DefaultConfig())
	teams := e.groupSocial(roster)

	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2", len(teams))
	}
	if teams[0].Size() != 4 {
		t.Errorf("first team size = %d, want 4", teams[0].Size())
	}
	if teams[1].Size() != 2 {
		t.Errorf("second team size = %d, want 2", teams[1].Size())
	}
	if teams[1].Members[0].Name != "e" || teams[1].Members[1].Name != "f" {
		t.Errorf("overflow team = %v, want [e f]", teamNames(&teams[1]))
	}
}

func teamNames(team *Team) []string {
	names := make([]string, len(team.Members))
	for i := range team.Members {
		names[i] = team.Members[i].Name
	}
	return names
}
