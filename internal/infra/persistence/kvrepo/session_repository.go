package kvrepo

import (
	"context"
	"encoding/json"

	"lokabumi/internal/domain/entity"
	domainerrors "lokabumi/internal/domain/errors"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/infra/persistence/kv"

	"github.com/pkg/errors"
)

// sessionRepository implements repository.SessionRepository. The session
// is a single JSON object entry, present only while someone is logged in.
type sessionRepository struct {
	store kv.Store
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store kv.Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

func (repo *sessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	raw, err := repo.store.Get(ctx, keySession)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, domainerrors.NewStorageExecuteError(err, "load session")
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}

	return &session, nil
}

func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	if err := repo.store.Set(ctx, keySession, string(raw)); err != nil {
		return domainerrors.NewStorageExecuteError(err, "persist session")
	}

	return nil
}

func (repo *sessionRepository) Clear(ctx context.Context) error {
	if err := repo.store.Remove(ctx, keySession); err != nil {
		return domainerrors.NewStorageExecuteError(err, "clear session")
	}

	return nil
}
