package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInsufficientData = errors.New("not enough translations to build options")
	ErrStorage          = errors.New("storage failure")
	ErrEmptyTranslation = errors.New("empty translation")
	ErrInvalidInput     = errors.New("invalid input")

	// ErrMissingTranslation is an ErrNotFound for a word without a
	// translation in the learner's language.
	ErrMissingTranslation = fmt.Errorf("missing translation: %w", ErrNotFound)
)
