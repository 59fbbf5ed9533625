package match

import (
	"testing"

	"github.com/hackmatch/teamforge/internal/participant"
	"github.com/hackmatch/teamforge/internal/testutil"
)

func TestSplitByObjective(t *testing.T) {
	keywords := []string{"win", "competition", "prize"}

	tests := []struct {
		name      string
		objective string
		cohort    Cohort
	}{
		{"win keyword", "I want to WIN this hackathon", CohortCompetitive},
		{"competition keyword", "the Competition is what drives me", CohortCompetitive},
		{"prize keyword", "going for the grand prize", CohortCompetitive},
		{"keyword inside a word", "winning is everything", CohortCompetitive},
		{"learning objective", "learn new technologies and have fun", CohortSocial},
		{"empty objective", "", CohortSocial},
		{"whitespace objective", "   ", CohortSocial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := []participant.Participant{
				testutil.NewParticipant("solo", testutil.WithObjective(tt.objective)),
			}
			competitive, social := splitByObjective(roster, keywords)

			gotCompetitive := len(competitive) == 1
			if gotCompetitive != (tt.cohort == CohortCompetitive) {
				t.Errorf("objective %q classified competitive=%v, want cohort %s",
					tt.objective, gotCompetitive, tt.cohort)
			}
			if len(competitive)+len(social) != 1 {
				t.Errorf("participant must land in exactly one cohort, got %d+%d",
					len(competitive), len(social))
			}
		})
	}
}

func TestSplitByObjective_Exclusivity(t *testing.T) {
	roster := []participant.Participant{
		testutil.NewParticipant("a", testutil.WithObjective("win it all")),
		testutil.NewParticipant("b", testutil.WithObjective("learn and enjoy")),
		testutil.NewParticipant("c", testutil.WithObjective("")),
		testutil.NewParticipant("d", testutil.WithObjective("take the PRIZE home")),
	}

	competitive, social := splitByObjective(roster, []string{"win", "competition", "prize"})

	if len(competitive)+len(social) != len(roster) {
		t.Fatalf("cohorts cover %d participants, want %d", len(competitive)+len(social), len(roster))
	}

	seen := make(map[string]int)
	for i := range competitive {
		seen[competitive[i].Name]++
	}
	for i := range social {
		seen[social[i].Name]++
	}
	for name, count := range seen {
		if count != 1 {
			t.Errorf("participant %s appears in %d cohorts, want 1", name, count)
		}
	}
}

func TestSplitByObjective_PreservesRosterOrder(t *testing.T) {
	roster := []participant.Participant{
		testutil.NewParticipant("a", testutil.WithObjective("win")),
		testutil.NewParticipant("b", testutil.WithObjective("learn")),
		testutil.NewParticipant("c", testutil.WithObjective("win big")),
		testutil.NewParticipant("d", testutil.WithObjective("fun")),
	}

	competitive, social := splitByObjective(roster, []string{"win"})

	if competitive[0].Name != "a" || competitive[1].Name != "c" {
		t.Errorf("competitive order = [%s %s], want [a c]", competitive[0].Name, competitive[1].Name)
	}
	if social[0].Name != "b" || social[1].Name != "d" {
		t.Errorf("social order = [%s %s], want [b d]", social[0].Name, social[1].Name)
	}
}
