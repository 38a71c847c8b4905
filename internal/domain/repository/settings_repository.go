// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
)

// ErrLanguageNotSet is returned when no UI language has been persisted yet.
var ErrLanguageNotSet = errors.New("language not set")

// SettingsRepository owns small device-level preference entries.
type SettingsRepository interface {
	// Language returns the persisted two-letter UI language code, or
	// ErrLanguageNotSet.
	Language(ctx context.Context) (string, error)

	// SetLanguage persists the UI language code.
	SetLanguage(ctx context.Context, code string) error
}
