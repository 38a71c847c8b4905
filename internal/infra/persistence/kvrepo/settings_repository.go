package kvrepo

import (
	"context"

	domainerrors "lokabumi/internal/domain/errors"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/infra/persistence/kv"

	"github.com/pkg/errors"
)

// settingsRepository implements repository.SettingsRepository. The
// language code is stored as a bare string, not JSON.
type settingsRepository struct {
	store kv.Store
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(store kv.Store) repository.SettingsRepository {
	return &settingsRepository{store: store}
}

func (repo *settingsRepository) Language(ctx context.Context) (string, error) {
	code, err := repo.store.Get(ctx, keyLanguage)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return "", repository.ErrLanguageNotSet
		}

		return "", domainerrors.NewStorageExecuteError(err, "load language")
	}

	return code, nil
}

func (repo *settingsRepository) SetLanguage(ctx context.Context, code string) error {
	if err := repo.store.Set(ctx, keyLanguage, code); err != nil {
		return domainerrors.NewStorageExecuteError(err, "persist language")
	}

	return nil
}
