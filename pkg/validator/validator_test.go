package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"userType" validate:"required,oneof=patient doctor"`
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&signUpRequest{Name: "A", Email: "nope", Password: "123", UserType: "admin"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "password must be at least 6 characters", errs["password"])
	assert.Equal(t, "userType must be one of: patient doctor", errs["userType"])
}

func TestFirstErrorFollowsDeclarationOrder(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&signUpRequest{Email: "a@b.co", Password: "secret1"})
	require.Error(t, err)

	field, msg := v.FirstError(err)
	assert.Equal(t, "name", field)
	assert.Equal(t, "name is required", msg)
}

func TestValidPayload(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&signUpRequest{Name: "A", Email: "a@b.co", Password: "secret1", UserType: "doctor"}))

	field, msg := v.FirstError(nil)
	assert.Empty(t, field)
	assert.Empty(t, msg)
}
