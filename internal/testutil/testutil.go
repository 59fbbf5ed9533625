// Package testutil provides testing utilities for Teamforge tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/hackmatch/teamforge/internal/participant"
)

// ID returns a deterministic UUID derived from the given name, so
// tests can reference participants without hardcoding UUID literals.
func ID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}

// Option mutates a participant under construction.
type Option func(*participant.Participant)

// WithExperience sets the experience level.
func WithExperience(level participant.ExperienceLevel) Option {
	return func(p *participant.Participant) {
		p.ExperienceLevel = level
	}
}

// WithSkills sets the programming skills map.
func WithSkills(skills map[string]int) Option {
	return func(p *participant.Participant) {
		p.ProgrammingSkills = skills
	}
}

// WithObjective sets the objective text.
func WithObjective(objective string) Option {
	return func(p *participant.Participant) {
		p.Objective = objective
	}
}

// WithInterests sets the interest list.
func WithInterests(interests ...string) Option {
	return func(p *participant.Participant) {
		p.Interests = interests
	}
}

// WithFriends registers friends by name, using the same deterministic
// ids that ID produces.
func WithFriends(names ...string) Option {
	return func(p *participant.Participant) {
		p.FriendRegistration = nil
		for _, name := range names {
			p.FriendRegistration = append(p.FriendRegistration, ID(name))
		}
	}
}

// WithAvailability sets the availability map.
func WithAvailability(availability map[string]bool) Option {
	return func(p *participant.Participant) {
		p.Availability = availability
	}
}

// WithTeamSize sets the preferred team size.
func WithTeamSize(size int) Option {
	return func(p *participant.Participant) {
		p.PreferredTeamSize = size
	}
}

// FullAvailability returns an availability map marking every given
// slot as available.
func FullAvailability(slots []string) map[string]bool {
	availability := make(map[string]bool, len(slots))
	for _, slot := range slots {
		availability[slot] = true
	}
	return availability
}

// NewParticipant builds a valid participant with deterministic
// defaults, then applies the given options.
func NewParticipant(name string, opts ...Option) participant.Participant {
	p := participant.Participant{
		ID:                ID(name),
		Name:              name,
		Email:             name + "@example.edu",
		Age:               21,
		YearOfStudy:       "3rd year",
		ShirtSize:         "M",
		University:        "Example University",
		ProgrammingSkills: map[string]int{"Python": 5},
		ExperienceLevel:   participant.ExperienceIntermediate,
		Interests:         []string{"Web Development"},
		PreferredRole:     "Development",
		Objective:         "Learn new technologies and have fun.",
		PreferredTeamSize: 4,
		Availability: map[string]bool{
			"Saturday morning":   true,
			"Saturday afternoon": true,
			"Saturday night":     true,
			"Sunday morning":     true,
			"Sunday afternoon":   true,
		},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WriteRoster marshals the given participants into a roster file under
// a temp directory and returns its path.
func WriteRoster(t *testing.T, participants []participant.Participant) string {
	t.Helper()

	data, err := json.MarshalIndent(participants, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal roster: %v", err)
	}

	path := filepath.Join(t.TempDir(), "roster.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write roster file: %v", err)
	}
	return path
}
