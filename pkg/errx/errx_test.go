package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "thing not found")

	assert.Equal(t, Code("TEST_NOT_FOUND"), code)

	err := reg.New(code)
	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "TEST_NOT_FOUND: thing not found", err.Error())
}

func TestRegistry_UnregisteredCode(t *testing.T) {
	reg := NewRegistry("TEST")

	err := reg.New(Code("TEST_UNKNOWN"))
	assert.Equal(t, TypeInternal, err.Type)
	assert.Equal(t, 500, err.HTTPStatus)
}

func TestNewWithCause(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("READ_FAILED", TypeInternal, http.StatusInternalServerError, "read failed")
	cause := errors.New("disk on fire")

	err := reg.NewWithCause(code, cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestWithDetail(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("BAD_INPUT", TypeValidation, http.StatusBadRequest, "bad input")

	err := reg.New(code).WithDetail("field", "name").WithDetail("reason", "empty")

	resp := err.ToHTTPResponse()
	require.Contains(t, resp, "details")
	details := resp["details"].(map[string]any)
	assert.Equal(t, "name", details["field"])
	assert.Equal(t, "empty", details["reason"])
}

func TestToHTTPResponse_NoDetails(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("BAD_INPUT", TypeValidation, http.StatusBadRequest, "bad input")

	resp := reg.New(code).ToHTTPResponse()
	assert.Equal(t, "bad input", resp["error"])
	assert.NotContains(t, resp, "details")
}
