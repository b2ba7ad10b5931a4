package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttb/internal/domain"
)

func TestSessionValidator_ValidateProjectName(t *testing.T) {
	tests := []struct {
		name        string
		projectName string
		expectError bool
	}{
		{name: "should accept a simple name", projectName: "Alpha", expectError: false},
		{name: "should accept a name with spaces", projectName: "Website redesign", expectError: false},
		{name: "should reject an empty name", projectName: "", expectError: true},
		{name: "should reject a whitespace-only name", projectName: "   \t", expectError: true},
	}

	validator := NewSessionValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateProjectName(tt.projectName)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionValidator_ValidateRate(t *testing.T) {
	tests := []struct {
		name        string
		rate        float64
		expectError bool
	}{
		{name: "should accept a positive rate", rate: 400, expectError: false},
		{name: "should accept a fractional rate", rate: 250.5, expectError: false},
		{name: "should reject zero", rate: 0, expectError: true},
		{name: "should reject a negative rate", rate: -100, expectError: true},
	}

	validator := NewSessionValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateRate(tt.rate)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionValidator_ValidateSessionStart(t *testing.T) {
	tests := []struct {
		name        string
		project     string
		rate        float64
		currency    domain.Currency
		expectError bool
		errorCount  int
	}{
		{
			name:     "should accept valid parameters",
			project:  "Alpha",
			rate:     400,
			currency: domain.CurrencyUSD,
		},
		{
			name:        "should reject empty project",
			project:     "",
			rate:        400,
			currency:    domain.CurrencyUSD,
			expectError: true,
			errorCount:  1,
		},
		{
			name:        "should reject non-positive rate",
			project:     "Alpha",
			rate:        0,
			currency:    domain.CurrencyUSD,
			expectError: true,
			errorCount:  1,
		},
		{
			name:        "should reject unsupported currency",
			project:     "Alpha",
			rate:        400,
			currency:    domain.Currency("CHF"),
			expectError: true,
			errorCount:  1,
		},
		{
			name:        "should collect all failures at once",
			project:     " ",
			rate:        -1,
			currency:    domain.Currency(""),
			expectError: true,
			errorCount:  3,
		},
	}

	validator := NewSessionValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateSessionStart(tt.project, tt.rate, tt.currency)

			if tt.expectError {
				require.Error(t, err)
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Len(t, validationErr.Errors, tt.errorCount)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionValidator_GetValidProjectName(t *testing.T) {
	validator := NewSessionValidator()

	name, err := validator.GetValidProjectName("  Alpha  ")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", name)

	_, err = validator.GetValidProjectName("   ")
	assert.Error(t, err)
}
