// Package errors provides centralized error definitions and error handling
// utilities for the Teamforge codebase. It defines domain-specific errors,
// semantic error types, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - RosterError: errors related to loading and validating the roster file
//   - MatchError: errors related to team formation
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//
// # Usage
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewRosterError("failed to load roster", errors.ErrRosterNotFound)
//
//	// With context wrapping
//	err := errors.NewRosterError("bad record", errors.ErrInvalidRecord).WithPath("r.json").WithRecord(3)
//
// Checking errors:
//
//	// Check for specific sentinel errors
//	if errors.Is(err, errors.ErrRosterNotFound) { ... }
//
//	// Check for error types
//	var rosterErr *errors.RosterError
//	if errors.As(err, &rosterErr) { ... }
//
//	// Use classification helpers
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Roster-related sentinel errors
var (
	// ErrRosterNotFound indicates that the roster file does not exist.
	ErrRosterNotFound = New("roster file not found")
	// ErrRosterFormat indicates that the roster path is not a .json file.
	ErrRosterFormat = New("roster file is not a JSON file")
	// ErrInvalidRecord indicates a malformed or incomplete participant record.
	ErrInvalidRecord = New("invalid participant record")
	// ErrDuplicateID indicates two participant records share an identifier.
	ErrDuplicateID = New("duplicate participant id")
)

// Matching-related sentinel errors
var (
	// ErrInvalidConfig indicates that the matching configuration is invalid.
	ErrInvalidConfig = New("invalid matching configuration")
	// ErrParticipantLost indicates the pipeline dropped a participant.
	// This is an invariant violation and always a programming bug.
	ErrParticipantLost = New("participant lost during grouping")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// TeamforgeError is the base interface for all Teamforge errors.
// It extends the standard error interface with additional methods for
// error handling and classification.
type TeamforgeError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	// This is used by errors.Is() for error comparison.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// RosterError represents errors related to loading and validating the
// roster file.
//
// Example:
//
//	err := errors.NewRosterError("failed to load roster", errors.ErrRosterNotFound)
//	err = err.WithPath("participants.json").WithRecord(7)
//	fmt.Println(err) // "roster error [path=participants.json, record=7]: failed to load roster: roster file not found"
type RosterError struct {
	baseError
	Path   string
	Record int // Index of the offending record; -1 when not set
}

// NewRosterError creates a new RosterError.
func NewRosterError(message string, cause error) *RosterError {
	return &RosterError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
		Record: -1, // -1 indicates not set
	}
}

// WithPath adds the roster file path to the error context.
func (e *RosterError) WithPath(path string) *RosterError {
	e.Path = path
	return e
}

// WithRecord adds the zero-based record index to the error context.
func (e *RosterError) WithRecord(idx int) *RosterError {
	e.Record = idx
	return e
}

// WithSeverity sets the error severity.
func (e *RosterError) WithSeverity(s Severity) *RosterError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *RosterError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	if e.Record >= 0 {
		parts = append(parts, fmt.Sprintf("record=%d", e.Record))
	}

	prefix := "roster error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("roster error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *RosterError) Is(target error) bool {
	if _, ok := target.(*RosterError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// MatchError represents errors related to team formation.
//
// Example:
//
//	err := errors.NewMatchError("grouping failed", errors.ErrParticipantLost)
//	err = err.WithCohort("competitive").WithTeamIndex(2)
type MatchError struct {
	baseError
	Cohort    string
	TeamIndex int // Index of the team being formed; -1 when not set
}

// NewMatchError creates a new MatchError.
func NewMatchError(message string, cause error) *MatchError {
	return &MatchError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
		TeamIndex: -1, // -1 indicates not set
	}
}

// WithCohort adds the cohort name to the error context.
func (e *MatchError) WithCohort(cohort string) *MatchError {
	e.Cohort = cohort
	return e
}

// WithTeamIndex adds the team index to the error context.
func (e *MatchError) WithTeamIndex(idx int) *MatchError {
	e.TeamIndex = idx
	return e
}

// WithSeverity sets the error severity.
func (e *MatchError) WithSeverity(s Severity) *MatchError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *MatchError) Error() string {
	var parts []string
	if e.Cohort != "" {
		parts = append(parts, fmt.Sprintf("cohort=%s", e.Cohort))
	}
	if e.TeamIndex >= 0 {
		parts = append(parts, fmt.Sprintf("team=%d", e.TeamIndex))
	}

	prefix := "match error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("match error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *MatchError) Is(target error) bool {
	if _, ok := target.(*MatchError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("participant", "3f2a…")
//	fmt.Println(err) // "participant '3f2a…' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("experience level is not recognized")
//	err = err.WithField("experience_level").WithValue("Expert")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end
// users. Input errors (bad roster path, malformed records) are user-facing;
// invariant violations are not.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    fmt.Fprintln(os.Stderr, err)
//	} else {
//	    fmt.Fprintln(os.Stderr, "An internal error occurred")
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	// Check if error implements TeamforgeError
	var tfErr TeamforgeError
	if As(err, &tfErr) {
		return tfErr.IsUserFacing()
	}

	// Semantic errors are always user-facing
	var notFound *NotFoundError
	var validation *ValidationError

	if As(err, &notFound) || As(err, &validation) {
		return true
	}

	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement TeamforgeError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var tfErr TeamforgeError
	if As(err, &tfErr) {
		return tfErr.Severity()
	}

	// Default to Error severity for unknown errors
	return SeverityError
}

// IsInputError returns true if the error stems from bad user input: a
// missing or misnamed roster file, or a malformed participant record.
func IsInputError(err error) bool {
	if err == nil {
		return false
	}
	return Is(err, ErrRosterNotFound) || Is(err, ErrRosterFormat) ||
		Is(err, ErrInvalidRecord) || Is(err, ErrDuplicateID) ||
		Is(err, ErrInvalidInput)
}

// IsDomainError returns true if the error is a domain-specific error
// (RosterError or MatchError).
func IsDomainError(err error) bool {
	if err == nil {
		return false
	}

	var rosterErr *RosterError
	var matchErr *MatchError

	return As(err, &rosterErr) || As(err, &matchErr)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to form teams")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "failed to load roster %s", path)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
