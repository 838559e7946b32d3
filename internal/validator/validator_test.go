package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=candidate recruiter counselor"`
	Age   int    `json:"age" validate:"omitempty,gt=0"`
}

func TestValidatePasses(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@example.com", Role: "candidate", Age: 20}))
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Role: "admin"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "This field is required", vErr.Errors["email"])
	assert.Equal(t, "Must be one of: candidate, recruiter, counselor", vErr.Errors["role"])
}

func TestValidateEmailFormat(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "not-an-email"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}
