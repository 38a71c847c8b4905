// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	domainerrors "lokabumi/internal/domain/errors"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultLanguage is the UI language before the user picks one.
const defaultLanguage = "id"

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
	Logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: params.SettingsRepo,
		logger:       params.Logger,
	}
}

// Language returns the stored UI language, falling back to the default.
func (srv *settingsService) Language(ctx context.Context) (string, error) {
	code, err := srv.settingsRepo.Language(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrLanguageNotSet) {
			return defaultLanguage, nil
		}

		return "", errors.Wrap(err, "failed to load language")
	}

	return code, nil
}

// SetLanguage stores a two-letter lowercase language code.
func (srv *settingsService) SetLanguage(ctx context.Context, code string) error {
	if !validLanguageCode(code) {
		return domainerrors.ErrValidationFailed.WithDetails("language must be a two-letter lowercase code")
	}

	if err := srv.settingsRepo.SetLanguage(ctx, code); err != nil {
		return errors.Wrap(err, "failed to store language")
	}

	srv.logger.Info("Language changed", slog.String("language", code))

	return nil
}

func validLanguageCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return false
		}
	}

	return true
}
