package kvrepo

import (
	"context"
	"strings"

	"lokabumi/internal/domain/entity"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/infra/persistence/kv"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository over the key-value
// store. The whole registered-users table is one JSON array entry.
type userRepository struct {
	store kv.Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store kv.Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Credential, error) {
	creds, err := getCollection[*entity.Credential](ctx, repo.store, keyUsers)
	if err != nil {
		return nil, err
	}

	for _, cred := range creds {
		if cred.ID == id {
			return cred, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	creds, err := getCollection[*entity.Credential](ctx, repo.store, keyUsers)
	if err != nil {
		return nil, err
	}

	for _, cred := range creds {
		if strings.EqualFold(cred.Email, email) {
			return cred, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) Create(ctx context.Context, cred *entity.Credential) error {
	creds, err := getCollection[*entity.Credential](ctx, repo.store, keyUsers)
	if err != nil {
		return err
	}

	for _, existing := range creds {
		if strings.EqualFold(existing.Email, cred.Email) {
			return repository.ErrEmailExists
		}
	}

	creds = append(creds, cred)

	return putCollection(ctx, repo.store, keyUsers, creds)
}

func (repo *userRepository) Update(ctx context.Context, cred *entity.Credential) error {
	creds, err := getCollection[*entity.Credential](ctx, repo.store, keyUsers)
	if err != nil {
		return err
	}

	for i, existing := range creds {
		if existing.ID == cred.ID {
			creds[i] = cred

			return putCollection(ctx, repo.store, keyUsers, creds)
		}
	}

	return repository.ErrUserNotFound
}

func (repo *userRepository) List(ctx context.Context) ([]*entity.Credential, error) {
	return getCollection[*entity.Credential](ctx, repo.store, keyUsers)
}
