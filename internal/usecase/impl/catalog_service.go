// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"lokabumi/config"
	"lokabumi/internal/domain/entity"
	domainerrors "lokabumi/internal/domain/errors"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	validate    *validator.Validate
	adminUserID uuid.UUID
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	UserRepo    repository.UserRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	var adminUserID uuid.UUID
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.AdminEmail != "" {
		adminUserID = AdminUserID(params.Config.Auth.AdminEmail)
	}

	return &catalogService{
		listingRepo: params.ListingRepo,
		userRepo:    params.UserRepo,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		adminUserID: adminUserID,
		logger:      params.Logger,
	}
}

// List returns every listing with owner names resolved.
func (srv *catalogService) List(ctx context.Context) ([]*usecase.ListingView, error) {
	listings, err := srv.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load listings")
	}

	// One pass over the users table covers every owner lookup.
	names, err := srv.ownerNames(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*usecase.ListingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, &usecase.ListingView{
			Listing:   listing,
			OwnerName: srv.resolveOwnerName(names, listing.OwnerID),
		})
	}

	return views, nil
}

// Get returns one listing with its owner name resolved.
func (srv *catalogService) Get(ctx context.Context, id string) (*usecase.ListingView, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	names, err := srv.ownerNames(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.ListingView{
		Listing:   listing,
		OwnerName: srv.resolveOwnerName(names, listing.OwnerID),
	}, nil
}

// Create validates input, assigns a time-ordered ID and appends the listing.
func (srv *catalogService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateListingInput) (*entity.Listing, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown listing type")
	}
	if ownerID == uuid.Nil {
		return nil, domainerrors.ErrNoActiveSession
	}

	listing := &entity.Listing{
		ID:          ksuid.New().String(),
		Name:        input.Name,
		Location:    input.Location,
		Boundary:    input.Boundary,
		Center:      input.Center,
		Images:      input.Images,
		Price:       input.Price,
		Status:      entity.ListingStatusAvailable,
		Type:        input.Type,
		AreaM2:      input.AreaM2,
		OwnerID:     ownerID,
		IsForSale:   input.IsForSale,
		Facilities:  input.Facilities,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.logger.Info("Listing created", slog.String("listingID", listing.ID), slog.Any("ownerID", ownerID))

	return listing, nil
}

// Update merges a partial update into the listing after an ownership check.
func (srv *catalogService) Update(ctx context.Context, ownerID uuid.UUID, id string, input *usecase.UpdateListingInput) (*entity.Listing, error) {
	listing, err := srv.authorize(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown listing status")
	}
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown listing type")
	}

	applyListingUpdate(listing, input)

	if err := srv.listingRepo.Update(ctx, listing); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to update listing")
	}

	srv.logger.Info("Listing updated", slog.String("listingID", id))

	return listing, nil
}

// Delete removes the listing after the same ownership check as Update.
func (srv *catalogService) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	if _, err := srv.authorize(ctx, ownerID, id); err != nil {
		return err
	}

	if err := srv.listingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(domainerrors.ErrListingNotFound, id)
		}

		return errors.Wrap(err, "failed to delete listing")
	}

	srv.logger.Info("Listing deleted", slog.String("listingID", id))

	return nil
}

// authorize loads the listing and checks that the actor owns it. The
// administrator may mutate any listing.
func (srv *catalogService) authorize(ctx context.Context, actorID uuid.UUID, id string) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	if actorID != listing.OwnerID && (srv.adminUserID == uuid.Nil || actorID != srv.adminUserID) {
		srv.logger.Warn("Listing mutation rejected", slog.String("listingID", id), slog.Any("actorID", actorID))

		return nil, errors.Wrap(domainerrors.ErrNotListingOwner, id)
	}

	return listing, nil
}

// ownerNames builds an ID-to-display-name index from the users table.
func (srv *catalogService) ownerNames(ctx context.Context) (map[uuid.UUID]string, error) {
	creds, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	names := make(map[uuid.UUID]string, len(creds))
	for _, cred := range creds {
		names[cred.ID] = cred.FullName
	}

	return names, nil
}

// resolveOwnerName maps an owner ID to its current display name. Admin-owned
// listings and orphaned owners resolve to fixed fallbacks rather than errors.
func (srv *catalogService) resolveOwnerName(names map[uuid.UUID]string, ownerID uuid.UUID) string {
	if name, ok := names[ownerID]; ok {
		return name
	}
	if srv.adminUserID != uuid.Nil && ownerID == srv.adminUserID {
		return "Administrator"
	}

	return ""
}

// applyListingUpdate merges the non-nil fields of input into listing.
func applyListingUpdate(listing *entity.Listing, input *usecase.UpdateListingInput) {
	if input.Name != nil {
		listing.Name = *input.Name
	}
	if input.Location != nil {
		listing.Location = *input.Location
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Price != nil {
		listing.Price = *input.Price
	}
	if input.AreaM2 != nil {
		listing.AreaM2 = *input.AreaM2
	}
	if input.Rating != nil {
		listing.Rating = *input.Rating
	}
	if input.Status != nil {
		listing.Status = *input.Status
	}
	if input.Type != nil {
		listing.Type = *input.Type
	}
	if input.IsForSale != nil {
		listing.IsForSale = *input.IsForSale
	}
	if input.Images != nil {
		listing.Images = input.Images
	}
	if input.Facilities != nil {
		listing.Facilities = input.Facilities
	}
	if input.Center != nil {
		center := *input.Center
		listing.Center = &center
	}
}
