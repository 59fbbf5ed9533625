package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete Teamforge configuration
type Config struct {
	Matching     MatchingConfig     `mapstructure:"matching"`
	Availability AvailabilityConfig `mapstructure:"availability"`
	Logging      LoggingConfig      `mapstructure:"logging"`
	Output       OutputConfig       `mapstructure:"output"`
}

// MatchingConfig controls the team-formation engine
type MatchingConfig struct {
	// MaxTeamSize is the hard cap on team size; a participant's
	// preferred_team_size never overrides it (default: 4)
	MaxTeamSize int `mapstructure:"max_team_size"`
	// ExperienceTolerance is the maximum change in a team's running
	// experience-weight sum a single addition may introduce (default: 6)
	ExperienceTolerance int `mapstructure:"experience_tolerance"`
	// SkillTolerance is the maximum change in a team's running skill-weight
	// sum a single addition may introduce (default: 10)
	SkillTolerance int `mapstructure:"skill_tolerance"`
	// StrictSkillTolerance is the skill tolerance used when --strict is set (default: 5)
	StrictSkillTolerance int `mapstructure:"strict_skill_tolerance"`
	// WinKeywords are matched case-insensitively against each participant's
	// objective text to select the competitive cohort
	WinKeywords []string `mapstructure:"win_keywords"`
}

// AvailabilityConfig controls the competitive-cohort availability filter
type AvailabilityConfig struct {
	// RequiredSlots are the named time slots participants are checked against
	RequiredSlots []string `mapstructure:"required_slots"`
	// MinSlots is the minimum number of satisfied required slots (default: 3)
	MinSlots int `mapstructure:"min_slots"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// File is the log file path; empty writes to stderr
	File string `mapstructure:"file"`
}

// OutputConfig controls how teams are rendered
type OutputConfig struct {
	// Color controls ANSI styling: "auto", "always", "never" (default: "auto")
	Color string `mapstructure:"color"`
}

// DefaultRequiredSlots returns the five weekend slots the availability
// filter checks by default.
func DefaultRequiredSlots() []string {
	return []string{
		"Saturday morning",
		"Saturday afternoon",
		"Saturday night",
		"Sunday morning",
		"Sunday afternoon",
	}
}

// DefaultWinKeywords returns the keywords that route a participant into
// the competitive cohort.
func DefaultWinKeywords() []string {
	return []string{"win", "competition", "prize"}
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Matching: MatchingConfig{
			MaxTeamSize:          4,
			ExperienceTolerance:  6,
			SkillTolerance:       10,
			StrictSkillTolerance: 5,
			WinKeywords:          DefaultWinKeywords(),
		},
		Availability: AvailabilityConfig{
			RequiredSlots: DefaultRequiredSlots(),
			MinSlots:      3,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			File:    "", // Empty means stderr
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Matching defaults
	viper.SetDefault("matching.max_team_size", defaults.Matching.MaxTeamSize)
	viper.SetDefault("matching.experience_tolerance", defaults.Matching.ExperienceTolerance)
	viper.SetDefault("matching.skill_tolerance", defaults.Matching.SkillTolerance)
	viper.SetDefault("matching.strict_skill_tolerance", defaults.Matching.StrictSkillTolerance)
	viper.SetDefault("matching.win_keywords", defaults.Matching.WinKeywords)

	// Availability defaults
	viper.SetDefault("availability.required_slots", defaults.Availability.RequiredSlots)
	viper.SetDefault("availability.min_slots", defaults.Availability.MinSlots)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)

	// Output defaults
	viper.SetDefault("output.color", defaults.Output.Color)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teamforge")
	}
	// Fall back to ~/.config/teamforge
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teamforge"
	}
	return filepath.Join(home, ".config", "teamforge")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidColorModes returns the list of valid output.color values
func ValidColorModes() []string {
	return []string{"auto", "always", "never"}
}

// IsValidColorMode checks if the given color mode is valid
func IsValidColorMode(mode string) bool {
	for _, valid := range ValidColorModes() {
		if mode == valid {
			return true
		}
	}
	return false
}
