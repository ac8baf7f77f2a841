package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a unique-constraint violation caught before the write
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// CapacityExceededError is returned when a slot role already holds its maximum number of people
type CapacityExceededError struct {
	Role  string
	Limit int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("role %s has reached the limit of %d people", e.Role, e.Limit)
}

// AlreadyInitializedError is returned by one-time seeding operations when data already exists
type AlreadyInitializedError struct {
	Entity string
}

func (e *AlreadyInitializedError) Error() string {
	return fmt.Sprintf("%s already initialized", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyInitializedError
func (e *AlreadyInitializedError) Is(target error) bool {
	t, ok := target.(*AlreadyInitializedError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// Entity Not Found Errors
var (
	ErrPersonNotFound     = &NotFoundError{Entity: "person"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrSlotNotFound       = &NotFoundError{Entity: "slot"}
	ErrAssignmentNotFound = &NotFoundError{Entity: "assignment"}
	ErrNoSlotsToExport    = &NotFoundError{Entity: "slots to export"}
)

// Already Exists Errors
var (
	ErrPersonExists     = &AlreadyExistsError{Entity: "person", Context: "with this name"}
	ErrTeamExists       = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrSlotExists       = &AlreadyExistsError{Entity: "slot", Context: "for this date"}
	ErrAssignmentExists = &AlreadyExistsError{Entity: "assignment", Context: "for this person and role"}
)

// Seeding Errors
var (
	ErrSlotsAlreadyInitialized = &AlreadyInitializedError{Entity: "slots"}
	ErrTeamsAlreadyInitialized = &AlreadyInitializedError{Entity: "teams"}
)

// Business Logic Errors
var (
	ErrInvalidRole        = &ValidationError{Field: "role", Message: "unknown role"}
	ErrInvalidWeekday     = &ValidationError{Field: "weekday", Message: "must be tuesday or wednesday"}
	ErrInvalidDate        = &ValidationError{Field: "date", Message: "must be formatted as YYYY-MM-DD"}
	ErrInvalidExportKind  = &ValidationError{Field: "format", Message: "unsupported export format"}
	ErrRoleNotApplicable  = &ValidationError{Field: "role", Message: "not applicable to this weekday"}
	ErrInvalidMonthFilter = &ValidationError{Field: "month", Message: "must be between 1 and 12"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsCapacityExceeded checks if an error is a CapacityExceededError
func IsCapacityExceeded(err error) bool {
	var capErr *CapacityExceededError
	return errors.As(err, &capErr)
}

// IsAlreadyInitialized checks if an error is an AlreadyInitializedError
func IsAlreadyInitialized(err error) bool {
	var initErr *AlreadyInitializedError
	return errors.As(err, &initErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewCapacityExceededError creates a new CapacityExceededError
func NewCapacityExceededError(role string, limit int) error {
	return &CapacityExceededError{Role: role, Limit: limit}
}
