package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	// Test without cause
	err := New(CodeCaptionFetch, "Test error")
	assert.Equal(t, "[1102] Test error", err.Error())

	// Test with cause
	cause := errors.New("underlying error")
	errWithCause := Wrap(CodeCaptionFetch, "Test error", cause)
	assert.Contains(t, errWithCause.Error(), "underlying error")
	assert.Contains(t, errWithCause.Error(), "1102")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(CodeUpstreamAPI, "Search failed", cause)

	// Test Unwrap
	assert.Equal(t, cause, err.Unwrap())

	// Test errors.Is
	assert.True(t, errors.Is(err, cause))
}

func TestIs(t *testing.T) {
	err := New(CodeCaptionsDisabled, "Captions disabled")

	assert.True(t, Is(err, CodeCaptionsDisabled))
	assert.False(t, Is(err, CodeCaptionNotFound))

	// Test with regular error
	regularErr := errors.New("regular error")
	assert.False(t, Is(regularErr, CodeCaptionsDisabled))
}

func TestGetCode(t *testing.T) {
	// AppError
	appErr := New(CodeInvalidParams, "Bad segment length")
	assert.Equal(t, CodeInvalidParams, GetCode(appErr))

	// Regular error returns CodeUnknown
	regularErr := errors.New("regular error")
	assert.Equal(t, CodeUnknown, GetCode(regularErr))
}

func TestGetMessage(t *testing.T) {
	// AppError
	appErr := New(CodeCaptionNotFound, "No caption track for requested language")
	assert.Equal(t, "No caption track for requested language", GetMessage(appErr))

	// Regular error returns error message
	regularErr := errors.New("regular error message")
	assert.Equal(t, "regular error message", GetMessage(regularErr))
}

func TestWrapWithDetail(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapWithDetail(CodeUpstreamAPI, "Search failed", "query: golang tutorial", cause)

	assert.Equal(t, CodeUpstreamAPI, err.Code)
	assert.Equal(t, "Search failed", err.Message)
	assert.Equal(t, "query: golang tutorial", err.Detail)
	assert.Equal(t, cause, err.Cause)
}

func TestPredefinedErrors(t *testing.T) {
	// Verify predefined errors have correct codes
	assert.Equal(t, CodeInvalidParams, ErrInvalidParams.Code)
	assert.Equal(t, CodeCaptionsDisabled, ErrCaptionsDisabled.Code)
	assert.Equal(t, CodeCaptionNotFound, ErrCaptionNotFound.Code)
	assert.Equal(t, CodeUpstreamAPI, ErrUpstreamAPI.Code)
	assert.Equal(t, CodeFileWriteError, ErrFileWrite.Code)
}
