package validation

import (
	"errors"
	"strings"
)

// ValidateTitle validates a quest title
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if len(trimmed) > 100 {
		return errors.New("title is too long (max 100 characters)")
	}

	return nil
}
