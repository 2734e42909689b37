package components

import (
	"pistachiohut/internal/handler"
	"pistachiohut/internal/handler/api"
	"pistachiohut/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewWishlistHandler,
		api.NewDiscountHandler,
		api.NewFulfillmentHandler,
		api.NewRefundHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	catalog *api.CatalogHandler,
	cart *api.CartHandler,
	wishlist *api.WishlistHandler,
	discount *api.DiscountHandler,
	fulfillment *api.FulfillmentHandler,
	refund *api.RefundHandler,
) handler.Handlers {
	return handler.Handlers{
		Catalog:     catalog,
		Cart:        cart,
		Wishlist:    wishlist,
		Discount:    discount,
		Fulfillment: fulfillment,
		Refund:      refund,
	}
}
