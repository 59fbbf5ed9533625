package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hackmatch/teamforge/internal/config"
	"github.com/hackmatch/teamforge/internal/errors"
	"github.com/hackmatch/teamforge/internal/match"
	"github.com/hackmatch/teamforge/internal/participant"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Inspect a roster file without forming teams",
}

var rosterValidateCmd = &cobra.Command{
	Use:   "validate <roster.json>",
	Short: "Validate a roster file",
	Long: `Validate a roster file.

Checks that the file loads, that every record carries the fields
matching depends on, and that ids are unique. Friend ids that do not
resolve to a roster record are reported as warnings; matching ignores
them.`,
	Args: cobra.ExactArgs(1),
	RunE: runRosterValidate,
}

var rosterStatsCmd = &cobra.Command{
	Use:   "stats <roster.json>",
	Short: "Show roster composition statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterStats,
}

func init() {
	rosterCmd.AddCommand(rosterValidateCmd)
	rosterCmd.AddCommand(rosterStatsCmd)
	rootCmd.AddCommand(rosterCmd)
}

func runRosterValidate(cmd *cobra.Command, args []string) error {
	roster, err := participant.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Roster OK: %d participants, ids unique.\n", len(roster))

	unresolved := participant.UnresolvedFriends(roster)
	if len(unresolved) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Warnings:")
	for i := range roster {
		ghosts, ok := unresolved[roster[i].ID]
		if !ok {
			continue
		}
		for _, ghost := range ghosts {
			fmt.Fprintf(out, "  %s lists friend %s, who is not on the roster\n",
				roster[i].Name, ghost)
		}
	}
	return nil
}

func runRosterStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	roster, err := participant.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	divider := strings.Repeat("─", 50)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "ROSTER")
	fmt.Fprintln(out, divider)
	fmt.Fprintf(out, "Participants: %d\n", len(roster))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "EXPERIENCE")
	fmt.Fprintln(out, divider)
	tiers := make(map[participant.ExperienceLevel]int)
	for i := range roster {
		tiers[roster[i].ExperienceLevel]++
	}
	for _, level := range participant.AllExperienceLevels() {
		fmt.Fprintf(out, "%-13s %d\n", level.String()+":", tiers[level])
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "COHORTS")
	fmt.Fprintln(out, divider)
	mc := matchConfig(cfg)
	engine, err := match.NewEngine(mc, nil)
	if err != nil {
		return err
	}
	teams, err := engine.Form(roster)
	if err != nil {
		return err
	}
	counts := make(map[match.Cohort]int)
	for _, team := range teams {
		counts[team.Cohort] += team.Size()
	}
	fmt.Fprintf(out, "Competitive:  %d\n", counts[match.CohortCompetitive])
	fmt.Fprintf(out, "Social:       %d\n", counts[match.CohortSocial])
	fmt.Fprintf(out, "Teams:        %d\n", len(teams))

	return nil
}
