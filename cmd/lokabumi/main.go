// Command lokabumi hosts the marketplace data core behind a small CLI:
// bootstrap the stores, seed demo data and inspect the current state.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"lokabumi/config"
	"lokabumi/internal/domain/entity"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/domain/service"
	"lokabumi/internal/infra/auth"
	logs "lokabumi/internal/infra/log"
	"lokabumi/internal/infra/ordersource"
	"lokabumi/internal/infra/persistence/kv"
	"lokabumi/internal/infra/persistence/kvrepo"
	"lokabumi/internal/infra/seed"
	"lokabumi/internal/usecase"
	"lokabumi/internal/usecase/impl"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(run),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newStore,
	)
}

// newStore selects the key-value backend from configuration.
func newStore(cfg *config.Config, logger *slog.Logger) (kv.Store, error) {
	driver := "file"
	path := "./data"
	if cfg.Storage != nil {
		if cfg.Storage.Driver != "" {
			driver = cfg.Storage.Driver
		}
		if cfg.Storage.Path != "" {
			path = cfg.Storage.Path
		}
	}

	switch driver {
	case "file":
		return kv.NewFileStore(path)
	case "sqlite":
		return kv.NewSQLiteStore(path, logger, cfg)
	default:
		return nil, errors.Errorf("unknown storage driver %q", driver)
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kvrepo.NewUserRepository,
			kvrepo.NewSessionRepository,
			kvrepo.NewListingRepository,
			kvrepo.NewFavoriteRepository,
			kvrepo.NewOrderRepository,
			kvrepo.NewSettingsRepository,
			kvrepo.NewUnitOfWork,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSessionTokenService,
			newOrderSource,
		),
	)
}

// newOrderSource stands in for the marketplace backend feed.
func newOrderSource() service.OrderSource {
	return ordersource.NewStaticSource()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewFavoriteService,
			impl.NewOrderService,
			impl.NewDiscoveryService,
			impl.NewSettingsService,
			impl.NewStatsService,
		),
	)
}

type runParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Config     *config.Config
	Listings   repository.ListingRepository
	Session    usecase.SessionUsecase
	Order      usecase.OrderUsecase
	Stats      usecase.StatsUsecase
	Discovery  usecase.DiscoveryUsecase
}

func run(params runParams) {
	go func() {
		exitCode := 0
		if err := dispatch(context.Background(), params); err != nil {
			params.Logger.Error("Command failed", slog.Any("error", err))
			exitCode = 1
		}
		_ = params.Shutdowner.Shutdown(fx.ExitCode(exitCode))
	}()
}

func dispatch(ctx context.Context, params runParams) error {
	command := "stats"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "seed":
		return runSeed(ctx, params)
	case "sync":
		return runSync(ctx, params)
	case "stats":
		return runStats(ctx, params)
	case "whoami":
		return runWhoami(ctx, params)
	case "search":
		return runSearch(ctx, params, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "usage: lokabumi [seed|sync|stats|whoami|search]\n")

		return errors.Errorf("unknown command %q", command)
	}
}

// runSeed populates an empty catalog with the demo dataset and pulls the
// demo order feed. A non-empty catalog is left alone.
func runSeed(ctx context.Context, params runParams) error {
	existing, err := params.Listings.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to inspect catalog")
	}
	if len(existing) > 0 {
		params.Logger.Info("Catalog already populated; skipping seed", slog.Int("listings", len(existing)))

		return nil
	}

	adminEmail := ""
	if params.Config.Auth != nil {
		adminEmail = params.Config.Auth.AdminEmail
	}

	for _, listing := range seed.Listings(impl.AdminUserID(adminEmail)) {
		if err := params.Listings.Create(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to seed listing")
		}
	}

	added, err := params.Order.Sync(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to sync demo orders")
	}

	params.Logger.Info("Seed completed", slog.Int("orders", added))

	return nil
}

func runSync(ctx context.Context, params runParams) error {
	added, err := params.Order.Sync(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("synced %d new order(s)\n", added)

	return nil
}

func runStats(ctx context.Context, params runParams) error {
	overview, err := params.Stats.Overview(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("listings:  %d\n", overview.TotalListings)
	fmt.Printf("favorites: %d\n", overview.TotalFavorites)
	fmt.Printf("orders:    %d\n", overview.TotalOrders)
	fmt.Printf("income:    %.0f\n", overview.TotalIncome)

	return nil
}

// runSearch runs the discovery engine over the stored catalog.
func runSearch(ctx context.Context, params runParams, args []string) error {
	defaultRadius := 0.0
	if params.Config.Discovery != nil {
		defaultRadius = params.Config.Discovery.DefaultRadiusKm
	}

	flags := flag.NewFlagSet("search", flag.ContinueOnError)
	text := flags.String("text", "", "match against listing name and location")
	category := flags.String("category", "", "listing category (house|apartment|shop|land)")
	status := flags.String("status", "all", "all|sale|rent")
	sortKey := flags.String("sort", "none", "none|priceAsc|priceDesc|rating|distance")
	lon := flags.Float64("lon", 0, "origin longitude")
	lat := flags.Float64("lat", 0, "origin latitude")
	radius := flags.Float64("radius", defaultRadius, "radius in km around the origin")
	if err := flags.Parse(args); err != nil {
		return err
	}

	listings, err := params.Listings.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load catalog")
	}

	searchParams := usecase.DiscoveryParams{
		SearchText: *text,
		Category:   entity.ListingType(*category),
		Status:     usecase.StatusFilter(*status),
		Sort:       usecase.SortKey(*sortKey),
	}
	if *lon != 0 || *lat != 0 {
		origin := orb.Point{*lon, *lat}
		searchParams.Origin = &origin
		searchParams.RadiusKm = *radius
	}

	for _, result := range params.Discovery.Search(listings, searchParams) {
		line := fmt.Sprintf("%s  %-32s  %.0f", result.Listing.ID, result.Listing.Name, result.Listing.Price)
		if result.DistanceKm >= 0 {
			line += fmt.Sprintf("  %.1f km", result.DistanceKm)
		}
		fmt.Println(line)
	}

	return nil
}

func runWhoami(ctx context.Context, params runParams) error {
	user, err := params.Session.Restore(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("guest (no active session)")

		return nil
	}

	fmt.Printf("%s <%s> (%s)\n", user.FullName, user.Email, user.UserType)

	return nil
}
