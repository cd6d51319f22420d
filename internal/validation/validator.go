package validation

import (
	"strings"

	"github.com/jerrytigerxu/go-projects/internal/config"
	"github.com/jerrytigerxu/go-projects/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{config: nil} // Use defaults
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidDescriptionLength checks if a description length is within
// configured limits. Content is not restricted: descriptions may contain
// quotes, backslashes, and control characters, which the storage layer
// escapes.
func (v *Validator) IsValidDescriptionLength(s string) bool {
	length := len(s)
	return length >= v.getDescriptionMinLength() && length <= v.getDescriptionMaxLength()
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// IsValidStatusName checks if a string names one of the three statuses
func (v *Validator) IsValidStatusName(s string) bool {
	return domain.IsKnownStatus(s)
}

// getDescriptionMinLength returns configured minimum description length or default
func (v *Validator) getDescriptionMinLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMinLength
	}
	return 1 // Default minimum
}

// getDescriptionMaxLength returns configured maximum description length or default
func (v *Validator) getDescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 1024 // Default maximum
}
