package errors

import (
	"errors"
	"fmt"
)

// FieldErrorCode identifies which form rule a field failed
type FieldErrorCode string

const (
	FieldRequired           FieldErrorCode = "FieldRequired"
	FieldTooShort           FieldErrorCode = "FieldTooShort"
	FieldTooLong            FieldErrorCode = "FieldTooLong"
	FieldInvalidCharacters  FieldErrorCode = "FieldInvalidCharacters"
	FieldWordCaseInvalid    FieldErrorCode = "FieldWordCaseInvalid"
	FieldWordCountExceeded  FieldErrorCode = "FieldWordCountExceeded"
	FieldDuplicate          FieldErrorCode = "FieldDuplicate"
	FieldEmailFormatInvalid FieldErrorCode = "FieldEmailFormatInvalid"
	FieldInvalidCoach       FieldErrorCode = "FieldInvalidCoach"
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

// ValidationError represents a single field validation failure
type ValidationError struct {
	Field   string
	Code    FieldErrorCode
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// CapacityExceededError is returned when the member list has reached the configured limit
type CapacityExceededError struct {
	Limit int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("Maximum number of members (%d) has been reached.", e.Limit)
}

// NetworkError wraps a transport failure talking to the members API
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("members api %s %s: network error: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is returned when the members API answers with a non-2xx status
type HTTPStatusError struct {
	Op         string
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("members api %s %s failed: status=%d body=%s", e.Op, e.URL, e.StatusCode, e.Body)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrMemberNotFound = &NotFoundError{Entity: "member"}
)

// Business Logic Errors
var (
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
	ErrTreeCycle            = errors.New("member cannot be moved under itself or one of its descendants")
	ErrMemberHasChildren    = errors.New("member still has children in the coach tree")
	ErrEmptyUpdate          = errors.New("update must set at least one field")
	ErrInvalidMemberID      = errors.New("invalid member id")
)

// Configuration Errors
var (
	ErrMembersAPIBaseURLMissing = &ConfigurationError{Message: "MEMBERS_API_BASE_URL is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
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

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsHTTPStatus checks if an error is an HTTPStatusError
func IsHTTPStatus(err error) bool {
	var statusErr *HTTPStatusError
	return errors.As(err, &statusErr)
}

// IsUpstream reports whether err came from talking to the members API
func IsUpstream(err error) bool {
	return IsNetwork(err) || IsHTTPStatus(err)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// StatusCode returns the upstream status code carried by err, or 0
func StatusCode(err error) int {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, code FieldErrorCode, message string) error {
	return &ValidationError{Field: field, Code: code, Message: message}
}

// NewCapacityExceededError creates a new CapacityExceededError
func NewCapacityExceededError(limit int) error {
	return &CapacityExceededError{Limit: limit}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
