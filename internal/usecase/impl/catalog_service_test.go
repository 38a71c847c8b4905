package impl

import (
	"context"
	"testing"

	"lokabumi/internal/domain/entity"
	domainerrors "lokabumi/internal/domain/errors"
	"lokabumi/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateInput() *usecase.CreateListingInput {
	return &usecase.CreateListingInput{
		Name:      "Kavling Kaliurang",
		Location:  "Sleman, Yogyakarta",
		AreaM2:    450,
		Price:     320_000_000,
		Images:    []string{"data:image/png;base64,xxxx"},
		Type:      entity.ListingTypeLand,
		IsForSale: true,
	}
}

func TestCatalogService_Create_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerOwner(t, env, "budi@example.com")

	listing, err := env.catalog.Create(ctx, owner.ID, validCreateInput())

	require.NoError(t, err)
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, owner.ID, listing.OwnerID)
	assert.Equal(t, entity.ListingStatusAvailable, listing.Status)
	assert.False(t, listing.CreatedAt.IsZero())

	stored, err := env.listings.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kavling Kaliurang", stored.Name)
}

func TestCatalogService_Create_AssignsUniqueIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerOwner(t, env, "budi@example.com")

	first, err := env.catalog.Create(ctx, owner.ID, validCreateInput())
	require.NoError(t, err)
	second, err := env.catalog.Create(ctx, owner.ID, validCreateInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, first.ID, 27) // KSUID string form.
}

func TestCatalogService_Create_MissingRequiredFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerOwner(t, env, "budi@example.com")

	cases := map[string]func(*usecase.CreateListingInput){
		"name":     func(in *usecase.CreateListingInput) { in.Name = "" },
		"location": func(in *usecase.CreateListingInput) { in.Location = "" },
		"area":     func(in *usecase.CreateListingInput) { in.AreaM2 = 0 },
		"price":    func(in *usecase.CreateListingInput) { in.Price = 0 },
		"images":   func(in *usecase.CreateListingInput) { in.Images = nil },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := validCreateInput()
			mutate(input)

			_, err := env.catalog.Create(ctx, owner.ID, input)

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestCatalogService_Get_ResolvesOwnerName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerOwner(t, env, "budi@example.com")

	listing, err := env.catalog.Create(ctx, owner.ID, validCreateInput())
	require.NoError(t, err)

	view, err := env.catalog.Get(ctx, listing.ID)

	require.NoError(t, err)
	assert.Equal(t, "Pak Budi", view.OwnerName)
}

func TestCatalogService_Get_OwnerRenameReflectsEverywhere(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerOwner(t, env, "budi@example.com")

	listing, err := env.catalog.Create(ctx, owner.ID, validCreateInput())
	require.NoError(t, err)

	newName := "Pak Budi Santoso"
	_, err = env.session.UpdateProfile(ctx, &usecase.UpdateProfileInput{FullName: &newName})
	require.NoError(t, err)

	view, err := env.catalog.Get(ctx, listing.ID)

	require.NoError(t, err)
	assert.Equal(t, newName, view.OwnerName)
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.Get(context.Background(), "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}

func TestCatalogService_Update_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerOwner(t, env, "budi@example.com")

	listing, err := env.catalog.Create(ctx, owner.ID, validCreateInput())
	require.NoError(t, err)

	price := 275_000_000.0
	status := entity.ListingStatusSold
	updated, err := env.catalog.Update(ctx, owner.ID, listing.ID, &usecase.UpdateListingInput{
		Price:  &price,
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, price, updated.Price)
	assert.Equal(t, status, updated.Status)
	// Untouched fields survive a partial update.
	assert.Equal(t, listing.Name, updated.Name)
	assert.Equal(t, listing.OwnerID, updated.OwnerID)
}

func TestCatalogService_Update_RejectsNonOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerOwner(t, env, "budi@example.com")
	stranger := registerOwner(t, env, "siti@example.com")

	listing, err := env.catalog.Create(ctx, owner.ID, validCreateInput())
	require.NoError(t, err)

	price := 1.0
	_, err = env.catalog.Update(ctx, stranger.ID, listing.ID, &usecase.UpdateListingInput{Price: &price})

	assert.True(t, errors.Is(err, domainerrors.ErrNotListingOwner))
}

func TestCatalogService_Update_AdminMayMutateAnyListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerOwner(t, env, "budi@example.com")

	listing, err := env.catalog.Create(ctx, owner.ID, validCreateInput())
	require.NoError(t, err)

	admin, err := env.session.Login(ctx, &usecase.LoginInput{
		Email:    testAdminEmail,
		Password: testAdminPassword,
	})
	require.NoError(t, err)

	status := entity.ListingStatusRented
	updated, err := env.catalog.Update(ctx, admin.User.ID, listing.ID, &usecase.UpdateListingInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, status, updated.Status)
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	env := newTestEnv(t)
	owner := registerOwner(t, env, "budi@example.com")

	price := 1.0
	_, err := env.catalog.Update(context.Background(), owner.ID, "missing", &usecase.UpdateListingInput{Price: &price})

	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}

func TestCatalogService_Delete_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerOwner(t, env, "budi@example.com")

	listing, err := env.catalog.Create(ctx, owner.ID, validCreateInput())
	require.NoError(t, err)

	require.NoError(t, env.catalog.Delete(ctx, owner.ID, listing.ID))

	_, err = env.catalog.Get(ctx, listing.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}

func TestCatalogService_Delete_NotFoundIsNotSilent(t *testing.T) {
	env := newTestEnv(t)
	owner := registerOwner(t, env, "budi@example.com")

	err := env.catalog.Delete(context.Background(), owner.ID, "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}

func TestCatalogService_List_EmptyCatalog(t *testing.T) {
	env := newTestEnv(t)

	views, err := env.catalog.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, views)
}
