package validation

import (
	"strings"

	"ttb/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidProjectNameLength checks if a project name length is within configured limits
func (v *Validator) IsValidProjectNameLength(name string) bool {
	length := len(strings.TrimSpace(name))
	return length >= 1 && length <= v.getProjectNameMaxLength()
}

// IsValidRate checks if a rate value is positive
func (v *Validator) IsValidRate(rate float64) bool {
	return rate > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getProjectNameMaxLength returns configured maximum project name length or default
func (v *Validator) getProjectNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.ProjectNameMaxLength
	}
	return 255 // Default maximum
}
