package engine

import "errors"

var (
	// ErrQuestNotFound indicates an operation on an unknown quest id.
	ErrQuestNotFound = errors.New("quest not found")
	// ErrAlreadyLoggedToday indicates a second check-in or fail on the same
	// quest within the same calendar day.
	ErrAlreadyLoggedToday = errors.New("already logged today")
	// ErrInvalidState indicates a transition attempted on a completed or
	// penalized quest.
	ErrInvalidState = errors.New("quest is no longer active")
	// ErrInsufficientFunds indicates a purchase the user cannot afford.
	ErrInsufficientFunds = errors.New("insufficient xp")
	// ErrUnknownItem indicates a purchase of an item the store does not sell.
	ErrUnknownItem = errors.New("unknown store item")
	// ErrStorageUnavailable indicates the persistence collaborator failed.
	// The operation was aborted and no state changed.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
