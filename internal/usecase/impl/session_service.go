// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"sync"
	"time"

	"lokabumi/config"
	"lokabumi/internal/domain/entity"
	domainerrors "lokabumi/internal/domain/errors"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/domain/service"
	"lokabumi/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminNamespace anchors the deterministic admin user ID so the admin
// identity is stable across sessions without a users-table record.
const adminNamespace = "lokabumi://admin/"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	uow           repository.UnitOfWork
	userRepo      repository.UserRepository
	sessionRepo   repository.SessionRepository
	hasher        service.PasswordHasher
	tokens        service.SessionTokenService
	validate      *validator.Validate
	adminEmail    string
	adminPassword string
	logger        *slog.Logger

	mu      sync.RWMutex
	current *entity.User
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UnitOfWork  repository.UnitOfWork
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Tokens      service.SessionTokenService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService. It receives all
// dependencies as interfaces.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	adminEmail := ""
	adminPassword := ""
	if params.Config != nil && params.Config.Auth != nil {
		adminEmail = params.Config.Auth.AdminEmail
		adminPassword = params.Config.Auth.AdminPassword
	}

	return &sessionService{
		uow:           params.UnitOfWork,
		userRepo:      params.UserRepo,
		sessionRepo:   params.SessionRepo,
		hasher:        params.Hasher,
		tokens:        params.Tokens,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		logger:        params.Logger,
	}
}

// AdminUserID derives the stable administrator user ID from the configured
// admin email. The admin has no users-table record, so this derivation is
// the one source of its identity everywhere.
func AdminUserID(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(adminNamespace+email))
}

// normalizeEmail canonicalizes an email for matching and storage.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and activates it as the current session.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if !input.UserType.Registrable() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userType must be owner or buyer")
	}
	if !input.Gender.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown gender value")
	}

	email := normalizeEmail(input.Email)
	srv.logger.Info("Registering user", slog.String("email", email), slog.Any("userType", input.UserType))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	cred := &entity.Credential{
		User: entity.User{
			ID:        uuid.New(),
			Email:     email,
			FullName:  input.FullName,
			Phone:     input.Phone,
			UserType:  input.UserType,
			Address:   input.Address,
			Photo:     input.Photo,
			Gender:    input.Gender,
			DOB:       input.DOB,
			Location:  input.Location,
			CreatedAt: time.Now().UTC(),
		},
		PasswordHash: hash,
	}

	token, err := srv.tokens.Issue(cred.ID, cred.UserType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	// The new credential and the activated session land together or not
	// at all.
	err = srv.uow.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.Users().Create(ctx, cred); err != nil {
			if errors.Is(err, repository.ErrEmailExists) {
				return errors.Wrap(domainerrors.ErrEmailTaken, email)
			}

			return errors.Wrap(err, "failed to create credential")
		}

		session := &entity.Session{User: cred.User, Token: token, SavedAt: time.Now().UTC()}
		if err := repos.Sessions().Save(ctx, session); err != nil {
			return errors.Wrap(err, "failed to save session")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.setCurrent(&cred.User)
	srv.logger.Debug("Registration completed", slog.Any("userID", cred.ID))

	return &usecase.AuthOutput{User: srv.Current()}, nil
}

// Login authenticates against the configured admin credentials first, then
// the registered-users table.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	email := normalizeEmail(input.Email)

	if srv.isAdmin(email, input.Password) {
		admin := &entity.User{
			ID:       AdminUserID(srv.adminEmail),
			Email:    srv.adminEmail,
			FullName: "Administrator",
			UserType: entity.UserTypeAdmin,
		}
		if err := srv.activate(ctx, admin); err != nil {
			return nil, err
		}

		srv.logger.Info("Admin logged in", slog.String("email", email))

		return &usecase.AuthOutput{User: srv.Current()}, nil
	}

	cred, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, email)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, cred.PasswordHash) {
		srv.logger.Warn("Login rejected", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, email)
	}

	if err := srv.activate(ctx, &cred.User); err != nil {
		return nil, err
	}

	srv.logger.Info("User logged in", slog.Any("userID", cred.ID))

	return &usecase.AuthOutput{User: srv.Current()}, nil
}

// isAdmin compares both credential halves in constant time so a matching
// email alone is not observable.
func (srv *sessionService) isAdmin(email, password string) bool {
	if srv.adminEmail == "" || srv.adminPassword == "" {
		return false
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(normalizeEmail(srv.adminEmail)))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(srv.adminPassword))

	return emailOK&passwordOK == 1
}

// activate stamps a token, persists the session record and swaps the
// in-memory identity.
func (srv *sessionService) activate(ctx context.Context, user *entity.User) error {
	token, err := srv.tokens.Issue(user.ID, user.UserType)
	if err != nil {
		return errors.Wrap(err, "failed to issue session token")
	}

	session := &entity.Session{User: *user, Token: token, SavedAt: time.Now().UTC()}
	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	srv.setCurrent(user)

	return nil
}

// Logout clears the persisted session and the in-memory identity.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.sessionRepo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	srv.setCurrent(nil)
	srv.logger.Info("Logged out")

	return nil
}

// UpdateProfile merges a partial update into the current identity, keeping
// the session record and the users table in step.
func (srv *sessionService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	current := srv.Current()
	if current == nil {
		return nil, domainerrors.ErrNoActiveSession
	}
	if input.Gender != nil && !input.Gender.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown gender value")
	}

	updated := *current
	applyProfileUpdate(&updated, input)

	if updated.UserType == entity.UserTypeAdmin {
		// The admin identity has no users-table record; only the session
		// carries it.
		if err := srv.saveSessionUser(ctx, srv.sessionRepo, &updated); err != nil {
			return nil, err
		}

		srv.setCurrent(&updated)

		return srv.Current(), nil
	}

	err := srv.uow.Execute(ctx, func(repos repository.RepositoryFactory) error {
		cred, err := repos.Users().FindByID(ctx, updated.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "registered user record missing")
			}

			return errors.Wrap(err, "failed to find user")
		}

		cred.User = updated
		if err := repos.Users().Update(ctx, cred); err != nil {
			return errors.Wrap(err, "failed to update user record")
		}

		return srv.saveSessionUser(ctx, repos.Sessions(), &updated)
	})
	if err != nil {
		srv.logger.Error("Profile update failed", slog.Any("userID", updated.ID), slog.Any("error", err))

		return nil, err
	}

	srv.setCurrent(&updated)
	srv.logger.Debug("Profile updated", slog.Any("userID", updated.ID))

	return srv.Current(), nil
}

// saveSessionUser rewrites the persisted session around a new user value,
// keeping the existing token stamp.
func (srv *sessionService) saveSessionUser(ctx context.Context, sessions repository.SessionRepository, user *entity.User) error {
	session, err := sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrNoActiveSession
		}

		return errors.Wrap(err, "failed to load session")
	}

	session.User = *user
	session.SavedAt = time.Now().UTC()
	if err := sessions.Save(ctx, session); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

// Restore loads the persisted session at startup. Anything short of a
// storage failure degrades to a guest rather than blocking bootstrap.
func (srv *sessionService) Restore(ctx context.Context) (*entity.User, error) {
	session, err := srv.sessionRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(domainerrors.ErrSessionRestoreFailed, err.Error())
	}

	claims, err := srv.tokens.Verify(session.Token)
	if err != nil {
		srv.logger.Warn("Discarding session with invalid token", slog.Any("error", err))

		return nil, srv.discard(ctx)
	}
	if claims.UserID != session.User.ID || claims.UserType != session.User.UserType {
		srv.logger.Warn("Discarding session with mismatched claims", slog.Any("userID", session.User.ID))

		return nil, srv.discard(ctx)
	}

	srv.setCurrent(&session.User)
	srv.logger.Info("Session restored", slog.Any("userID", session.User.ID))

	return srv.Current(), nil
}

// discard clears a session record that failed verification.
func (srv *sessionService) discard(ctx context.Context) error {
	if err := srv.sessionRepo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear invalid session")
	}

	return nil
}

// Current returns a copy of the active identity, or nil for guests.
func (srv *sessionService) Current() *entity.User {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.current == nil {
		return nil
	}
	copied := *srv.current

	return &copied
}

func (srv *sessionService) setCurrent(user *entity.User) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if user == nil {
		srv.current = nil

		return
	}
	copied := *user
	srv.current = &copied
}

// applyProfileUpdate merges the non-nil fields of input into user.
func applyProfileUpdate(user *entity.User, input *usecase.UpdateProfileInput) {
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.Photo != nil {
		user.Photo = *input.Photo
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.DOB != nil {
		user.DOB = *input.DOB
	}
	if input.Location != nil {
		location := *input.Location
		user.Location = &location
	}
}
