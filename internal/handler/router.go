package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pistachiohut/internal/domain/user"
	"pistachiohut/internal/handler/api"
	"pistachiohut/internal/handler/middleware"
	"pistachiohut/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Catalog     *api.CatalogHandler
	Cart        *api.CartHandler
	Wishlist    *api.WishlistHandler
	Discount    *api.DiscountHandler
	Fulfillment *api.FulfillmentHandler
	Refund      *api.RefundHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Catalog.ListProducts},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Catalog.GetProduct},
			})
		}

		shopper := apiGroup.Group("")
		shopper.Use(authMiddleware.RequireAuth())
		{
			addRoutes(shopper, []route{
				{Method: http.MethodPost, Path: "/cart", Handler: handlers.Cart.AddToCart},
				{Method: http.MethodPost, Path: "/wishlist", Handler: handlers.Wishlist.Subscribe},
				{Method: http.MethodDelete, Path: "/wishlist", Handler: handlers.Wishlist.Unsubscribe},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleStaff))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPatch, Path: "/products/:id/discount", Handler: handlers.Discount.SetDiscountedPrice},
				{Method: http.MethodGet, Path: "/deliveries", Handler: handlers.Fulfillment.ListDeliveries},
				{Method: http.MethodPatch, Path: "/deliveries/:id/complete", Handler: handlers.Fulfillment.CompleteDelivery},
				{Method: http.MethodGet, Path: "/refunds", Handler: handlers.Refund.ListRefunds},
				{Method: http.MethodPost, Path: "/refunds/:orderId/accept", Handler: handlers.Refund.Accept},
				{Method: http.MethodPost, Path: "/refunds/:orderId/reject", Handler: handlers.Refund.Reject},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
