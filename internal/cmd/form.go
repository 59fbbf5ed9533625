package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hackmatch/teamforge/internal/config"
	"github.com/hackmatch/teamforge/internal/errors"
	"github.com/hackmatch/teamforge/internal/logging"
	"github.com/hackmatch/teamforge/internal/match"
	"github.com/hackmatch/teamforge/internal/participant"
	"github.com/hackmatch/teamforge/internal/render"
	"github.com/hackmatch/teamforge/internal/tui"
)

var formCmd = &cobra.Command{
	Use:   "form <roster.json>",
	Short: "Form teams from a roster file",
	Long: `Form teams from a roster of participants.

The roster is a JSON array of participant records. Participants whose
objective mentions winning are grouped on the competitive track, which
also requires enough weekend availability; everyone else is grouped by
friend requests and shared interests on the social track.`,
	Args: cobra.ExactArgs(1),
	RunE: runForm,
}

var (
	formTeamSize int  // Override matching.max_team_size
	formStrict   bool // Use the strict skill tolerance
	formMinSlots int  // Override availability.min_slots
	formJSON     bool // Output as JSON
	formTUI      bool // Browse teams interactively
)

func init() {
	formCmd.Flags().IntVar(&formTeamSize, "team-size", 0, "Maximum team size (overrides config)")
	formCmd.Flags().BoolVar(&formStrict, "strict", false, "Use the strict skill-balance tolerance")
	formCmd.Flags().IntVar(&formMinSlots, "min-slots", -1, "Minimum satisfied availability slots (overrides config)")
	formCmd.Flags().BoolVar(&formJSON, "json", false, "Output teams as JSON")
	formCmd.Flags().BoolVar(&formTUI, "tui", false, "Browse teams in an interactive viewer")
	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	log := newLogger(cfg)
	defer log.Close()

	roster, err := participant.Load(args[0])
	if err != nil {
		return err
	}
	log.WithRoster(args[0]).Info("roster loaded", "participants", len(roster))

	engine, err := match.NewEngine(matchConfig(cfg), log)
	if err != nil {
		return err
	}
	teams, err := engine.Form(roster)
	if err != nil {
		return err
	}

	switch {
	case formJSON:
		return render.RenderJSON(cmd.OutOrStdout(), teams)
	case formTUI:
		return tui.Run(teams, cfg.Output.Color)
	default:
		return render.NewRenderer(cfg.Output.Color).Render(cmd.OutOrStdout(), teams)
	}
}

// matchConfig projects the loaded configuration and the form flags
// onto engine parameters.
func matchConfig(cfg *config.Config) match.Config {
	mc := match.Config{
		MaxTeamSize:         cfg.Matching.MaxTeamSize,
		RequiredSlots:       cfg.Availability.RequiredSlots,
		MinSlots:            cfg.Availability.MinSlots,
		ExperienceTolerance: cfg.Matching.ExperienceTolerance,
		SkillTolerance:      cfg.Matching.SkillTolerance,
		WinKeywords:         cfg.Matching.WinKeywords,
	}
	if formStrict {
		mc.SkillTolerance = cfg.Matching.StrictSkillTolerance
	}
	if formTeamSize > 0 {
		mc.MaxTeamSize = formTeamSize
	}
	if formMinSlots >= 0 {
		mc.MinSlots = formMinSlots
	}
	return mc
}

// newLogger builds the configured logger. Logging must never block
// matching, so setup failures fall back to a no-op logger.
func newLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	log, err := logging.NewLogger(cfg.Logging.File, logging.ParseLevel(cfg.Logging.Level))
	if err != nil {
		return logging.NopLogger()
	}
	return log
}
