package match

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hackmatch/teamforge/internal/errors"
	"github.com/hackmatch/teamforge/internal/participant"
)

// Cohort identifies which half of the objective split a team came from.
type Cohort string

const (
	// CohortCompetitive holds participants whose objective matched a
	// win keyword.
	CohortCompetitive Cohort = "competitive"
	// CohortSocial holds everyone else, including participants with an
	// empty objective.
	CohortSocial Cohort = "social"
)

// String returns the string representation of the cohort
func (c Cohort) String() string {
	return string(c)
}

// IsValid checks if the cohort is one of the known values
func (c Cohort) IsValid() bool {
	return c == CohortCompetitive || c == CohortSocial
}

// ReasonKind tags one criterion that justified a team's membership.
type ReasonKind string

const (
	ReasonFriendJoin           ReasonKind = "friend_join"
	ReasonAvailabilityMatch    ReasonKind = "availability_match"
	ReasonExperienceBalance    ReasonKind = "experience_balance"
	ReasonSkillBalance         ReasonKind = "skill_balance"
	ReasonSharedInterest       ReasonKind = "shared_interest"
	ReasonGeneralCompatibility ReasonKind = "general_compatibility"
)

// Reason is one tagged rationale entry. Detail carries kind-specific
// context, such as the interest name for ReasonSharedInterest.
type Reason struct {
	Kind   ReasonKind
	Detail string
}

// Rationale is the ordered set of reasons attached to a team. Reasons
// stay structured internally; String composes the display sentence at
// the presentation boundary.
type Rationale struct {
	reasons []Reason
}

// Add appends a reason unless one of the same kind is already present.
func (r *Rationale) Add(kind ReasonKind, detail string) {
	for _, existing := range r.reasons {
		if existing.Kind == kind {
			return
		}
	}
	r.reasons = append(r.reasons, Reason{Kind: kind, Detail: detail})
}

// Has reports whether a reason of the given kind is present.
func (r *Rationale) Has(kind ReasonKind) bool {
	for _, reason := range r.reasons {
		if reason.Kind == kind {
			return true
		}
	}
	return false
}

// Reasons returns the reasons in insertion order.
func (r *Rationale) Reasons() []Reason {
	return r.reasons
}

// String composes the display sentence, e.g. "joined because they are
// friends and share interest in robotics".
func (r *Rationale) String() string {
	if len(r.reasons) == 0 {
		return ""
	}

	phrases := make([]string, 0, len(r.reasons))
	for _, reason := range r.reasons {
		phrases = append(phrases, reason.phrase())
	}

	return "joined because " + joinConjunction(phrases)
}

func (re Reason) phrase() string {
	switch re.Kind {
	case ReasonFriendJoin:
		return "they are friends"
	case ReasonAvailabilityMatch:
		return "their availability covers the event"
	case ReasonExperienceBalance:
		return "their experience levels are balanced"
	case ReasonSkillBalance:
		return "their skill totals are balanced"
	case ReasonSharedInterest:
		if re.Detail != "" {
			return fmt.Sprintf("they share interest in %s", re.Detail)
		}
		return "they share interests"
	case ReasonGeneralCompatibility:
		if re.Detail != "" {
			return re.Detail
		}
		return "they are generally compatible"
	}
	return string(re.Kind)
}

// joinConjunction joins phrases with commas and a final "and".
func joinConjunction(phrases []string) string {
	switch len(phrases) {
	case 0:
		return ""
	case 1:
		return phrases[0]
	case 2:
		return phrases[0] + " and " + phrases[1]
	}
	return strings.Join(phrases[:len(phrases)-1], ", ") + " and " + phrases[len(phrases)-1]
}

// Team is the engine's output unit. Members preserve assignment order
// for reproducibility and the team is never mutated after the engine
// returns it.
type Team struct {
	Members   []participant.Participant
	Cohort    Cohort
	Rationale Rationale
}

// Size returns the number of members.
func (t *Team) Size() int {
	return len(t.Members)
}

// IDs returns the member identifiers in assignment order.
func (t *Team) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(t.Members))
	for i := range t.Members {
		ids[i] = t.Members[i].ID
	}
	return ids
}

// Config carries the engine parameters. All values are required; use
// DefaultConfig for the standard profile.
type Config struct {
	// MaxTeamSize is the hard cap on team size.
	MaxTeamSize int
	// RequiredSlots names the time slots the availability filter checks.
	RequiredSlots []string
	// MinSlots is the minimum number of satisfied required slots for
	// the competitive cohort.
	MinSlots int
	// ExperienceTolerance bounds the experience-weight delta a single
	// addition may introduce during the competitive balance pass.
	ExperienceTolerance int
	// SkillTolerance bounds the skill-weight delta a single addition
	// may introduce during the competitive balance pass.
	SkillTolerance int
	// WinKeywords route a participant into the competitive cohort when
	// any of them appears, case-insensitively, in the objective text.
	WinKeywords []string
}

// DefaultConfig returns the standard matching profile.
func DefaultConfig() Config {
	return Config{
		MaxTeamSize: 4,
		RequiredSlots: []string{
			"Saturday morning",
			"Saturday afternoon",
			"Saturday night",
			"Sunday morning",
			"Sunday afternoon",
		},
		MinSlots:            3,
		ExperienceTolerance: 6,
		SkillTolerance:      10,
		WinKeywords:         []string{"win", "competition", "prize"},
	}
}

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	if c.MaxTeamSize < 1 {
		return errors.NewValidationError("max team size must be at least 1").
			WithField("max_team_size").WithValue(c.MaxTeamSize)
	}
	if c.MinSlots < 0 {
		return errors.NewValidationError("minimum slots must not be negative").
			WithField("min_slots").WithValue(c.MinSlots)
	}
	if c.MinSlots > len(c.RequiredSlots) {
		return errors.NewValidationError("minimum slots must not exceed the required slot count").
			WithField("min_slots").WithValue(c.MinSlots)
	}
	if c.ExperienceTolerance < 0 {
		return errors.NewValidationError("experience tolerance must not be negative").
			WithField("experience_tolerance").WithValue(c.ExperienceTolerance)
	}
	if c.SkillTolerance < 0 {
		return errors.NewValidationError("skill tolerance must not be negative").
			WithField("skill_tolerance").WithValue(c.SkillTolerance)
	}
	if len(c.WinKeywords) == 0 {
		return errors.NewValidationError("at least one win keyword is required").
			WithField("win_keywords")
	}
	return nil
}
