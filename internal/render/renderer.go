// Package render formats finalized teams for the terminal. The text
// renderer is the default surface; JSON output exists for piping into
// other tooling. Presentation never feeds back into matching.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/hackmatch/teamforge/internal/match"
	"github.com/hackmatch/teamforge/internal/participant"
	"github.com/hackmatch/teamforge/internal/util"
)

const dividerWidth = 50

// maxIntroWidth bounds the free-text introduction line.
const maxIntroWidth = 70

// Renderer writes team listings as styled terminal text.
type Renderer struct {
	styles styles
}

// NewRenderer creates a renderer. Color modes "always" and "never"
// force styling on or off; anything else ("auto") keeps lipgloss's
// terminal detection.
func NewRenderer(colorMode string) *Renderer {
	if colorMode == "never" {
		return &Renderer{styles: plainStyles()}
	}
	return &Renderer{styles: coloredStyles()}
}

// Render writes the full team listing.
func (r *Renderer) Render(w io.Writer, teams []match.Team) error {
	if len(teams) == 0 {
		_, err := fmt.Fprintln(w, "No teams to show: the roster is empty.")
		return err
	}

	divider := r.styles.Divider.Render(strings.Repeat("─", dividerWidth))
	for i, team := range teams {
		if _, err := fmt.Fprintln(w, r.teamHeader(i+1, &team)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, divider); err != nil {
			return err
		}
		for j := range team.Members {
			if _, err := fmt.Fprintln(w, r.memberLine(&team.Members[j])); err != nil {
				return err
			}
		}
		if rationale := team.Rationale.String(); rationale != "" {
			line := r.styles.Rationale.Render("  " + rationale)
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%s formed from %s.",
		util.Pluralize(len(teams), "team", "teams"),
		util.Pluralize(countMembers(teams), "participant", "participants"))
	_, err := fmt.Fprintln(w, summary)
	return err
}

func (r *Renderer) teamHeader(number int, team *match.Team) string {
	title := r.styles.Title.Render(fmt.Sprintf("TEAM %d", number))
	badge := r.cohortBadge(team.Cohort)
	size := r.styles.Contact.Render(util.Pluralize(team.Size(), "member", "members"))
	return fmt.Sprintf("%s %s %s", title, badge, size)
}

func (r *Renderer) cohortBadge(cohort match.Cohort) string {
	if cohort == match.CohortCompetitive {
		return r.styles.Competitive.Render("COMPETITIVE")
	}
	return r.styles.Social.Render("SOCIAL")
}

func (r *Renderer) memberLine(m *participant.Participant) string {
	name := r.styles.Member.Render(m.Name)
	contact := fmt.Sprintf("<%s>", m.Email)
	if m.University != "" {
		contact += " · " + m.University
	}
	line := fmt.Sprintf("  %s %s", name, r.styles.Contact.Render(contact))
	if m.Introduction != "" {
		intro := util.TruncateANSI(m.Introduction, maxIntroWidth)
		line += "\n" + r.styles.Contact.Render("    "+intro)
	}
	return line
}

func countMembers(teams []match.Team) int {
	total := 0
	for i := range teams {
		total += teams[i].Size()
	}
	return total
}
