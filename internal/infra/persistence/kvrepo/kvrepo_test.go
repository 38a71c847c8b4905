package kvrepo

import (
	"context"
	"testing"
	"time"

	"lokabumi/internal/domain/entity"
	domainerrors "lokabumi/internal/domain/errors"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/infra/persistence/kv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredential(email string) *entity.Credential {
	return &entity.Credential{
		User: entity.User{
			ID:        uuid.New(),
			Email:     email,
			FullName:  "Pak Budi",
			Phone:     "+62812000111",
			UserType:  entity.UserTypeOwner,
			CreatedAt: time.Now().UTC(),
		},
		PasswordHash: "$2a$04$fakefakefakefakefakefake",
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	cred := testCredential("budi@example.com")
	require.NoError(t, repo.Create(ctx, cred))

	byID, err := repo.FindByID(ctx, cred.ID)
	require.NoError(t, err)
	assert.Equal(t, cred.Email, byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.Equal(t, cred.ID, byEmail.ID)
}

func TestUserRepository_FindByEmail_IsCaseInsensitive(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCredential("budi@example.com")))

	found, err := repo.FindByEmail(ctx, "BUDI@EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", found.Email)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCredential("budi@example.com")))

	err := repo.Create(ctx, testCredential("budi@example.com"))
	assert.True(t, errors.Is(err, repository.ErrEmailExists))
}

func TestUserRepository_NotFoundSentinels(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	err = repo.Update(ctx, testCredential("ghost@example.com"))
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_MalformedEntrySurfaces(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "lokabumi:users", "{not json"))

	repo := NewUserRepository(store)

	_, err := repo.List(ctx)
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewSessionRepository(store)
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))

	session := &entity.Session{
		User:    testCredential("budi@example.com").User,
		Token:   "token-value",
		SavedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, loaded.User.ID)
	assert.Equal(t, "token-value", loaded.Token)

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx)) // clearing twice is fine

	_, err = repo.Load(ctx)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}

func TestListingRepository_UpdateAndDeleteNotFound(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewListingRepository(store)
	ctx := context.Background()

	err := repo.Update(ctx, &entity.Listing{ID: "missing"})
	assert.True(t, errors.Is(err, repository.ErrListingNotFound))

	err = repo.Delete(ctx, "missing")
	assert.True(t, errors.Is(err, repository.ErrListingNotFound))
}

func TestListingRepository_InsertionOrderSurvives(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewListingRepository(store)
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Create(ctx, &entity.Listing{ID: id, Name: "Kavling " + id}))
	}

	listings, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, "c", listings[0].ID)
	assert.Equal(t, "a", listings[1].ID)
	assert.Equal(t, "b", listings[2].ID)
}

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	store := kv.NewMemoryStore()
	uow := NewUnitOfWork(store)
	ctx := context.Background()

	cred := testCredential("budi@example.com")
	err := uow.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.Users().Create(ctx, cred); err != nil {
			return err
		}

		return repos.Sessions().Save(ctx, &entity.Session{User: cred.User, Token: "t"})
	})
	require.NoError(t, err)

	_, err = NewUserRepository(store).FindByID(ctx, cred.ID)
	require.NoError(t, err)
	_, err = NewSessionRepository(store).Load(ctx)
	require.NoError(t, err)
}

func TestUnitOfWork_RollsBackEveryWriteOnError(t *testing.T) {
	store := kv.NewMemoryStore()
	uow := NewUnitOfWork(store)
	ctx := context.Background()

	// Pre-existing state that the failed unit must not disturb.
	users := NewUserRepository(store)
	existing := testCredential("siti@example.com")
	require.NoError(t, users.Create(ctx, existing))
	sessions := NewSessionRepository(store)
	require.NoError(t, sessions.Save(ctx, &entity.Session{User: existing.User, Token: "before"}))

	boom := errors.New("boom")
	err := uow.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.Users().Create(ctx, testCredential("budi@example.com")); err != nil {
			return err
		}
		if err := repos.Sessions().Save(ctx, &entity.Session{Token: "after"}); err != nil {
			return err
		}

		return boom
	})
	require.True(t, errors.Is(err, boom))

	// Both stores are back to their pre-unit state.
	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "siti@example.com", all[0].Email)

	session, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "before", session.Token)
}

func TestUnitOfWork_RollbackRemovesKeysAbsentBefore(t *testing.T) {
	store := kv.NewMemoryStore()
	uow := NewUnitOfWork(store)
	ctx := context.Background()

	boom := errors.New("boom")
	err := uow.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.Sessions().Save(ctx, &entity.Session{Token: "ephemeral"}); err != nil {
			return err
		}

		return boom
	})
	require.True(t, errors.Is(err, boom))

	_, err = NewSessionRepository(store).Load(ctx)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}

func TestUnitOfWork_PanicRollsBackAndRepanics(t *testing.T) {
	store := kv.NewMemoryStore()
	uow := NewUnitOfWork(store)
	ctx := context.Background()

	require.Panics(t, func() {
		_ = uow.Execute(ctx, func(repos repository.RepositoryFactory) error {
			if err := repos.Sessions().Save(ctx, &entity.Session{Token: "ephemeral"}); err != nil {
				return err
			}
			panic("boom")
		})
	})

	_, err := NewSessionRepository(store).Load(ctx)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}

var errStoreBroken = errors.New("storage unavailable")

// faultStore wraps a Store and fails every operation once broken,
// standing in for a full or corrupted device store.
type faultStore struct {
	kv.Store
	broken bool
}

func (s *faultStore) Get(ctx context.Context, key string) (string, error) {
	if s.broken {
		return "", errStoreBroken
	}

	return s.Store.Get(ctx, key)
}

func (s *faultStore) Set(ctx context.Context, key, value string) error {
	if s.broken {
		return errStoreBroken
	}

	return s.Store.Set(ctx, key, value)
}

func (s *faultStore) Remove(ctx context.Context, key string) error {
	if s.broken {
		return errStoreBroken
	}

	return s.Store.Remove(ctx, key)
}

func TestRepositories_StorageFailureWrapsStorageError(t *testing.T) {
	store := &faultStore{Store: kv.NewMemoryStore(), broken: true}
	ctx := context.Background()

	_, err := NewUserRepository(store).List(ctx)
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORAGE_EXECUTE_FAILED", appErr.ErrorCode())
	// The underlying storage error stays reachable through Unwrap.
	assert.True(t, errors.Is(err, errStoreBroken))

	err = NewSessionRepository(store).Save(ctx, &entity.Session{Token: "t"})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORAGE_EXECUTE_FAILED", appErr.ErrorCode())

	err = NewSettingsRepository(store).SetLanguage(ctx, "en")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORAGE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestUnitOfWork_RollbackReportsEveryFailedRestore(t *testing.T) {
	store := &faultStore{Store: kv.NewMemoryStore()}
	uow := NewUnitOfWork(store)
	ctx := context.Background()

	boom := errors.New("boom")
	err := uow.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.Sessions().Save(ctx, &entity.Session{Token: "t"}); err != nil {
			return err
		}
		if err := repos.Users().Create(ctx, testCredential("budi@example.com")); err != nil {
			return err
		}

		// Break the store before rollback so every restore fails.
		store.broken = true

		return boom
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `restore key "lokabumi:session"`)
	assert.Contains(t, err.Error(), `restore key "lokabumi:users"`)
}

func TestSettingsRepository_RoundTrip(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewSettingsRepository(store)
	ctx := context.Background()

	_, err := repo.Language(ctx)
	assert.True(t, errors.Is(err, repository.ErrLanguageNotSet))

	require.NoError(t, repo.SetLanguage(ctx, "en"))

	code, err := repo.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", code)
}
