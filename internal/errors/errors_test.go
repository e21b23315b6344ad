package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "member"}
		assert.Equal(t, "member not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "member"}
		err2 := &NotFoundError{Entity: "member"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "member"}
		err2 := &NotFoundError{Entity: "coach"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrMemberNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrMemberNotFound)))
		assert.False(t, IsNotFound(ErrTreeCycle))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := NewValidationError("name", FieldRequired, "The name field is required")
		assert.Equal(t, "validation error: name - The name field is required", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad input"}
		assert.Equal(t, "validation error: bad input", err.Error())
	})
}

func TestCapacityExceededError(t *testing.T) {
	err := NewCapacityExceededError(2)
	assert.Equal(t, "Maximum number of members (2) has been reached.", err.Error())
	assert.True(t, IsCapacityExceeded(err))
	assert.False(t, IsCapacityExceeded(ErrTreeCycle))
}

func TestUpstreamErrors(t *testing.T) {
	t.Run("NetworkError unwraps cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &NetworkError{Op: "GET", URL: "http://api/members", Err: cause}
		assert.True(t, errors.Is(err, cause))
		assert.True(t, IsNetwork(err))
		assert.True(t, IsUpstream(err))
		assert.False(t, IsHTTPStatus(err))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("HTTPStatusError carries status", func(t *testing.T) {
		err := fmt.Errorf("create: %w", &HTTPStatusError{Op: "POST", URL: "http://api/members", StatusCode: 500, Body: "boom"})
		assert.True(t, IsHTTPStatus(err))
		assert.True(t, IsUpstream(err))
		assert.Equal(t, 500, StatusCode(err))
		assert.Contains(t, err.Error(), "status=500")
	})

	t.Run("StatusCode of unrelated error", func(t *testing.T) {
		assert.Equal(t, 0, StatusCode(ErrEmptyUpdate))
	})
}

func TestConfigurationError(t *testing.T) {
	assert.True(t, IsConfiguration(ErrMembersAPIBaseURLMissing))
	assert.Equal(t, "MEMBERS_API_BASE_URL is not configured", ErrMembersAPIBaseURLMissing.Error())
	assert.True(t, IsConfiguration(NewConfigurationError("x")))
}
