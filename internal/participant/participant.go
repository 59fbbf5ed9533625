package participant

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hackmatch/teamforge/internal/errors"
)

// ExperienceLevel represents a participant's self-reported hackathon
// experience tier.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "Beginner"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
	ExperienceAdvanced     ExperienceLevel = "Advanced"
)

// String returns the string representation of the experience level
func (e ExperienceLevel) String() string {
	return string(e)
}

// IsValid checks if the experience level is one of the known tiers
func (e ExperienceLevel) IsValid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

// Weight returns the numeric weight used by the balancing passes.
// Unknown tiers weigh zero; Validate rejects them before matching runs.
func (e ExperienceLevel) Weight() int {
	switch e {
	case ExperienceBeginner:
		return 1
	case ExperienceIntermediate:
		return 3
	case ExperienceAdvanced:
		return 6
	}
	return 0
}

// AllExperienceLevels returns the known tiers in ascending weight order
func AllExperienceLevels() []ExperienceLevel {
	return []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}
}

// Participant is a single roster record as registered for the event.
type Participant struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Email                string          `json:"email"`
	Age                  int             `json:"age"`
	YearOfStudy          string          `json:"year_of_study"`
	ShirtSize            string          `json:"shirt_size"`
	University           string          `json:"university"`
	DietaryRestrictions  string          `json:"dietary_restrictions"`
	ProgrammingSkills    map[string]int  `json:"programming_skills"`
	ExperienceLevel      ExperienceLevel `json:"experience_level"`
	HackathonsDone       int             `json:"hackathons_done"`
	Interests            []string        `json:"interests"`
	PreferredRole        string          `json:"preferred_role"`
	Objective            string          `json:"objective"`
	InterestInChallenges []string        `json:"interest_in_challenges"`
	PreferredLanguages   []string        `json:"preferred_languages"`
	FriendRegistration   []uuid.UUID     `json:"friend_registration"`
	PreferredTeamSize    int             `json:"preferred_team_size"`
	Availability         map[string]bool `json:"availability"`
	Introduction         string          `json:"introduction"`
	TechnicalProject     string          `json:"technical_project"`
	FutureExcitement     string          `json:"future_excitement"`
	FunFact              string          `json:"fun_fact"`
}

// Validate checks that the record carries the fields matching depends on.
// It returns a ValidationError for the first problem found.
func (p *Participant) Validate() error {
	if p.ID == uuid.Nil {
		return errors.NewValidationError("participant id must be set").
			WithField("id")
	}
	if p.Name == "" {
		return errors.NewValidationError("participant name must not be empty").
			WithField("name")
	}
	if !p.ExperienceLevel.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("experience level must be one of: %s, %s, %s",
			ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced)).
			WithField("experience_level").
			WithValue(p.ExperienceLevel.String())
	}
	for skill, level := range p.ProgrammingSkills {
		if level < 0 {
			return errors.NewValidationError("skill levels must not be negative").
				WithField("programming_skills").
				WithValue(fmt.Sprintf("%s=%d", skill, level))
		}
	}
	if p.PreferredTeamSize < 1 {
		return errors.NewValidationError("preferred team size must be at least 1").
			WithField("preferred_team_size").
			WithValue(p.PreferredTeamSize)
	}
	return nil
}

// SkillWeight returns the sum of all programming skill levels.
func (p *Participant) SkillWeight() int {
	total := 0
	for _, level := range p.ProgrammingSkills {
		total += level
	}
	return total
}

// AvailableCount counts how many of the given slots the participant
// marked as available. Missing keys count as unavailable.
func (p *Participant) AvailableCount(slots []string) int {
	count := 0
	for _, slot := range slots {
		if p.Availability[slot] {
			count++
		}
	}
	return count
}

// HasFriend reports whether the participant listed the given id in
// their friend registration. The relation is directed and is not
// required to be mutual.
func (p *Participant) HasFriend(id uuid.UUID) bool {
	for _, friend := range p.FriendRegistration {
		if friend == id {
			return true
		}
	}
	return false
}
