package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hackmatch/teamforge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View Teamforge configuration",
	Long: `View Teamforge configuration.

Without arguments, displays the current configuration.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "matching:")
	fmt.Fprintf(out, "  max_team_size: %d\n", cfg.Matching.MaxTeamSize)
	fmt.Fprintf(out, "  experience_tolerance: %d\n", cfg.Matching.ExperienceTolerance)
	fmt.Fprintf(out, "  skill_tolerance: %d\n", cfg.Matching.SkillTolerance)
	fmt.Fprintf(out, "  strict_skill_tolerance: %d\n", cfg.Matching.StrictSkillTolerance)
	fmt.Fprintf(out, "  win_keywords: %s\n", strings.Join(cfg.Matching.WinKeywords, ", "))

	fmt.Fprintln(out, "availability:")
	fmt.Fprintf(out, "  required_slots: %s\n", strings.Join(cfg.Availability.RequiredSlots, ", "))
	fmt.Fprintf(out, "  min_slots: %d\n", cfg.Availability.MinSlots)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  file: %s\n", cfg.Logging.File)

	fmt.Fprintln(out, "output:")
	fmt.Fprintf(out, "  color: %s\n", cfg.Output.Color)

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), config.ConfigFile())
	return nil
}
