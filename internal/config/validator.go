package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "matching.max_team_size")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateMatching()...)
	errors = append(errors, c.validateAvailability()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateOutput()...)

	return errors
}

func (c *Config) validateMatching() []ValidationError {
	var errors []ValidationError

	if c.Matching.MaxTeamSize < 1 {
		errors = append(errors, ValidationError{
			Field:   "matching.max_team_size",
			Value:   c.Matching.MaxTeamSize,
			Message: "must be at least 1",
		})
	}
	if c.Matching.MaxTeamSize > 100 {
		errors = append(errors, ValidationError{
			Field:   "matching.max_team_size",
			Value:   c.Matching.MaxTeamSize,
			Message: "must be at most 100",
		})
	}
	if c.Matching.ExperienceTolerance < 0 {
		errors = append(errors, ValidationError{
			Field:   "matching.experience_tolerance",
			Value:   c.Matching.ExperienceTolerance,
			Message: "must not be negative",
		})
	}
	if c.Matching.SkillTolerance < 0 {
		errors = append(errors, ValidationError{
			Field:   "matching.skill_tolerance",
			Value:   c.Matching.SkillTolerance,
			Message: "must not be negative",
		})
	}
	if c.Matching.StrictSkillTolerance < 0 {
		errors = append(errors, ValidationError{
			Field:   "matching.strict_skill_tolerance",
			Value:   c.Matching.StrictSkillTolerance,
			Message: "must not be negative",
		})
	}
	if c.Matching.StrictSkillTolerance > c.Matching.SkillTolerance {
		errors = append(errors, ValidationError{
			Field:   "matching.strict_skill_tolerance",
			Value:   c.Matching.StrictSkillTolerance,
			Message: "must not exceed matching.skill_tolerance",
		})
	}
	if len(c.Matching.WinKeywords) == 0 {
		errors = append(errors, ValidationError{
			Field:   "matching.win_keywords",
			Value:   c.Matching.WinKeywords,
			Message: "must contain at least one keyword",
		})
	}
	for _, kw := range c.Matching.WinKeywords {
		if strings.TrimSpace(kw) == "" {
			errors = append(errors, ValidationError{
				Field:   "matching.win_keywords",
				Value:   kw,
				Message: "keywords must not be blank",
			})
		}
	}

	return errors
}

func (c *Config) validateAvailability() []ValidationError {
	var errors []ValidationError

	if len(c.Availability.RequiredSlots) == 0 {
		errors = append(errors, ValidationError{
			Field:   "availability.required_slots",
			Value:   c.Availability.RequiredSlots,
			Message: "must contain at least one slot",
		})
	}
	if c.Availability.MinSlots < 0 {
		errors = append(errors, ValidationError{
			Field:   "availability.min_slots",
			Value:   c.Availability.MinSlots,
			Message: "must not be negative",
		})
	}
	if c.Availability.MinSlots > len(c.Availability.RequiredSlots) {
		errors = append(errors, ValidationError{
			Field:   "availability.min_slots",
			Value:   c.Availability.MinSlots,
			Message: fmt.Sprintf("must not exceed the %d required slots", len(c.Availability.RequiredSlots)),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateOutput() []ValidationError {
	var errors []ValidationError

	if !IsValidColorMode(c.Output.Color) {
		errors = append(errors, ValidationError{
			Field:   "output.color",
			Value:   c.Output.Color,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidColorModes(), ", ")),
		})
	}

	return errors
}
