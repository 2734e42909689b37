package components

import (
	"pistachiohut/internal/infra/cache"
	repo_impl "pistachiohut/internal/infra/repository"
	"pistachiohut/internal/usecase/commands"
	"pistachiohut/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewCartRepository,
			fx.As(new(commands.CartRepository)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
			fx.As(new(queries.ProductViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewReviewRepository,
			fx.As(new(queries.ReviewViewRepo)),
		),
		// The notification repository needs the concrete wishlist repository
		// for its subscriber lookup, so provide both shapes.
		repo_impl.NewWishlistRepository,
		fx.Annotate(
			repo_impl.NewWishlistRepository,
			fx.As(new(commands.WishlistRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			repo_impl.NewDeliveryRepository,
			fx.As(new(commands.DeliveryRepository)),
			fx.As(new(queries.DeliveryViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewRefundRepository,
			fx.As(new(commands.RefundRepository)),
			fx.As(new(queries.RefundViewRepo)),
		),
		fx.Annotate(
			cache.NewCatalogSnapshotCache,
			fx.As(new(queries.CatalogSnapshotCache)),
			fx.As(new(commands.SnapshotInvalidator)),
		),
	),
)
