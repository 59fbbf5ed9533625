package match

import (
	"testing"

	"github.com/hackmatch/teamforge/internal/participant"
	"github.com/hackmatch/teamforge/internal/testutil"
)

func TestFilterAvailability(t *testing.T) {
	slots := []string{"Saturday morning", "Saturday afternoon", "Saturday night",
		"Sunday morning", "Sunday afternoon"}

	tests := []struct {
		name         string
		availability map[string]bool
		kept         bool
	}{
		{
			name:         "fully available",
			availability: testutil.FullAvailability(slots),
			kept:         true,
		},
		{
			name: "exactly at the minimum",
			availability: map[string]bool{
				"Saturday morning":   true,
				"Saturday afternoon": true,
				"Sunday morning":     true,
			},
			kept: true,
		},
		{
			name: "one below the minimum",
			availability: map[string]bool{
				"Saturday morning": true,
				"Sunday morning":   true,
			},
			kept: false,
		},
		{
			name:         "missing all keys",
			availability: map[string]bool{},
			kept:         false,
		},
		{
			name:         "nil availability",
			availability: nil,
			kept:         false,
		},
		{
			name: "explicit false does not count",
			availability: map[string]bool{
				"Saturday morning":   true,
				"Saturday afternoon": true,
				"Saturday night":     false,
				"Sunday morning":     false,
			},
			kept: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cohort := []participant.Participant{
				testutil.NewParticipant("solo", testutil.WithAvailability(tt.availability)),
			}
			kept, dropped := filterAvailability(cohort, slots, 3)

			if tt.kept && (len(kept) != 1 || len(dropped) != 0) {
				t.Errorf("expected participant kept, got kept=%d dropped=%d", len(kept), len(dropped))
			}
			if !tt.kept && (len(kept) != 0 || len(dropped) != 1) {
				t.Errorf("expected participant dropped, got kept=%d dropped=%d", len(kept), len(dropped))
			}
		})
	}
}

// The filter must never admit anyone below the minimum, whatever the
// minimum is.
func TestFilterAvailability_Monotonicity(t *testing.T) {
	slots := []string{"s1", "s2", "s3", "s4", "s5"}

	var cohort []participant.Participant
	for i := 0; i <= len(slots); i++ {
		availability := make(map[string]bool)
		for j := 0; j < i; j++ {
			availability[slots[j]] = true
		}
		cohort = append(cohort, testutil.NewParticipant(
			string(rune('a'+i)), testutil.WithAvailability(availability)))
	}

	for minSlots := 0; minSlots <= len(slots); minSlots++ {
		kept, dropped := filterAvailability(cohort, slots, minSlots)
		for i := range kept {
			if got := kept[i].AvailableCount(slots); got < minSlots {
				t.Errorf("minSlots=%d admitted participant with %d slots", minSlots, got)
			}
		}
		if len(kept)+len(dropped) != len(cohort) {
			t.Errorf("minSlots=%d lost participants: %d+%d != %d",
				minSlots, len(kept), len(dropped), len(cohort))
		}
	}
}
