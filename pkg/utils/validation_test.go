package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type validationSample struct {
	Email    string  `validate:"required,email"`
	Username string  `validate:"required,min=3,max=30"`
	Rating   int     `validate:"omitempty,min=1,max=5"`
	Lat      float64 `validate:"omitempty,latitude"`
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(&validationSample{
		Email:    "ana@example.com",
		Username: "ana",
		Rating:   4,
		Lat:      52.52,
	})
	assert.Nil(t, errs)
}

func TestValidateStructReportsFields(t *testing.T) {
	errs := ValidateStruct(&validationSample{
		Email:    "not-an-email",
		Username: "ab",
		Lat:      123.0,
	})

	assert.Len(t, errs, 3)
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Minimum length is 3", errs["Username"])
	assert.Equal(t, "Must be a valid latitude", errs["Lat"])
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"Email": "Invalid email format"})
	assert.Equal(t, "Email: Invalid email format", out)

	assert.Empty(t, FormatValidationErrors(nil))
}
