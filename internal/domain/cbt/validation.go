package cbt

import (
	"fmt"
	"strings"
)

// ValidateFrustrationLevel accepts integers in the closed range [1, 10].
func ValidateFrustrationLevel(level int) error {
	if level < 1 || level > 10 {
		return fmt.Errorf("%w: frustration_level must be between 1 and 10, got %d", ErrValidation, level)
	}
	return nil
}

// ValidateNonEmpty rejects values that are empty after trimming whitespace
// and returns the trimmed value. Callers must use the returned string so
// padded input never reaches results. The field name is included in the
// error so callers can surface it verbatim.
func ValidateNonEmpty(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s must be a non-empty string", ErrValidation, field)
	}
	return trimmed, nil
}
