package render

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/hackmatch/teamforge/internal/match"
)

// teamJSON is the machine-readable projection of a team. Member
// display fields pass through; matching internals stay out.
type teamJSON struct {
	Number    int          `json:"number"`
	Cohort    string       `json:"cohort"`
	Rationale string       `json:"rationale"`
	Members   []memberJSON `json:"members"`
}

type memberJSON struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	University      string    `json:"university,omitempty"`
	ExperienceLevel string    `json:"experience_level"`
}

// RenderJSON writes the team listing as an indented JSON array.
func RenderJSON(w io.Writer, teams []match.Team) error {
	out := make([]teamJSON, 0, len(teams))
	for i, team := range teams {
		tj := teamJSON{
			Number:    i + 1,
			Cohort:    team.Cohort.String(),
			Rationale: team.Rationale.String(),
			Members:   make([]memberJSON, 0, team.Size()),
		}
		for j := range team.Members {
			m := &team.Members[j]
			tj.Members = append(tj.Members, memberJSON{
				ID:              m.ID,
				Name:            m.Name,
				Email:           m.Email,
				University:      m.University,
				ExperienceLevel: m.ExperienceLevel.String(),
			})
		}
		out = append(out, tj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
