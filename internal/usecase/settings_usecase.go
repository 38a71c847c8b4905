// Package usecase contains the application-specific business rules.
package usecase

import "context"

// SettingsUsecase owns device-level preferences that survive logout.
type SettingsUsecase interface {
	// Language returns the stored UI language code, or the default "id"
	// when none has been chosen yet.
	Language(ctx context.Context) (string, error)

	// SetLanguage stores a two-letter lowercase language code.
	SetLanguage(ctx context.Context, code string) error
}
