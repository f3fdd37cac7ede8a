package validation

import (
	"errors"

	"github.com/focusquest/focusquest/internal/model"
)

// ValidateJournalEntry validates a check-in or fail note
func ValidateJournalEntry(text, mood string) error {
	if len(text) > 1000 {
		return errors.New("journal text is too long (max 1000 characters)")
	}

	if !model.ValidMood(mood) {
		return errors.New("invalid mood")
	}

	return nil
}
