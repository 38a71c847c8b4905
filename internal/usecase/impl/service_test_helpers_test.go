package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lokabumi/config"
	"lokabumi/internal/domain/entity"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/domain/service"
	"lokabumi/internal/infra/auth"
	"lokabumi/internal/infra/ordersource"
	"lokabumi/internal/infra/persistence/kv"
	"lokabumi/internal/infra/persistence/kvrepo"
	"lokabumi/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

const (
	testAdminEmail    = "admin@lokabumi.com"
	testAdminPassword = "admin-secret-123"
)

// testEnv wires the full service stack over an in-memory store so tests
// exercise the real repositories and unit of work.
type testEnv struct {
	store     kv.Store
	cfg       *config.Config
	users     repository.UserRepository
	sessions  repository.SessionRepository
	listings  repository.ListingRepository
	favorites repository.FavoriteRepository
	orders    repository.OrderRepository
	tokens    service.SessionTokenService

	session   usecase.SessionUsecase
	catalog   usecase.CatalogUsecase
	favorite  usecase.FavoriteUsecase
	order     usecase.OrderUsecase
	discovery usecase.DiscoveryUsecase
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:    4, // bcrypt.MinCost keeps the suite fast.
			SessionSecret: "unit-test-session-secret",
			AdminEmail:    testAdminEmail,
			AdminPassword: testAdminPassword,
		},
		Discovery: &config.DiscoveryConfig{
			DefaultRadiusKm: 15,
			MaxRadiusKm:     50,
		},
	}
	cfg.Env.Env = "test"

	return cfg
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEnv(t *testing.T, upstreamOrders ...*entity.Order) *testEnv {
	t.Helper()

	cfg := newTestConfig()
	logger := newTestLogger()
	store := kv.NewMemoryStore()

	tokens, err := auth.NewSessionTokenService(cfg)
	require.NoError(t, err)

	env := &testEnv{
		store:     store,
		cfg:       cfg,
		users:     kvrepo.NewUserRepository(store),
		sessions:  kvrepo.NewSessionRepository(store),
		listings:  kvrepo.NewListingRepository(store),
		favorites: kvrepo.NewFavoriteRepository(store),
		orders:    kvrepo.NewOrderRepository(store),
		tokens:    tokens,
	}

	env.session = NewSessionService(SessionServiceParams{
		UnitOfWork:  kvrepo.NewUnitOfWork(store),
		UserRepo:    env.users,
		SessionRepo: env.sessions,
		Hasher:      auth.NewBcryptHasher(cfg),
		Tokens:      tokens,
		Config:      cfg,
		Logger:      logger,
	})
	env.catalog = NewCatalogService(CatalogServiceParams{
		ListingRepo: env.listings,
		UserRepo:    env.users,
		Config:      cfg,
		Logger:      logger,
	})
	env.favorite = NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: env.favorites,
		Logger:       logger,
	})
	env.order = NewOrderService(OrderServiceParams{
		OrderRepo: env.orders,
		Source:    ordersource.NewStaticSource(upstreamOrders...),
		Logger:    logger,
	})
	env.discovery = NewDiscoveryService(DiscoveryServiceParams{
		Config: cfg,
		Logger: logger,
	})

	return env
}

func ownerRegisterInput(email string) *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:    email,
		Password: "correct-horse-9",
		FullName: "Pak Budi",
		Phone:    "+62812000111",
		UserType: entity.UserTypeOwner,
		Address:  "Jl. Kaliurang KM 5, Sleman",
	}
}

// registerOwner registers a fresh owner account and returns its identity.
func registerOwner(t *testing.T, env *testEnv, email string) *entity.User {
	t.Helper()

	out, err := env.session.Register(context.Background(), ownerRegisterInput(email))
	require.NoError(t, err)
	require.NotNil(t, out.User)

	return out.User
}

func testListing(id string, ownerID uuid.UUID, price float64, center *orb.Point) *entity.Listing {
	return &entity.Listing{
		ID:        id,
		Name:      "Kavling " + id,
		Location:  "Yogyakarta",
		Images:    []string{"data:image/png;base64,xxxx"},
		Price:     price,
		Status:    entity.ListingStatusAvailable,
		Type:      entity.ListingTypeLand,
		AreaM2:    250,
		OwnerID:   ownerID,
		IsForSale: true,
		Center:    center,
		CreatedAt: time.Now().UTC(),
	}
}
