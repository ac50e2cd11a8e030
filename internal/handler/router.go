package handler

import (
	"net/http"

	"storefront/internal/domain/user"
	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine      *gin.Engine
	Config      config.Config
	Logger      *middleware.Logger
	Auth        *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter

	AuthHandler    *api.AuthHandler
	CatalogHandler *api.CatalogHandler
	CartHandler    *api.CartHandler
	OrderHandler   *api.OrderHandler
	AddressHandler *api.AddressHandler
	RewardHandler  *api.RewardHandler
	CouponHandler  *api.CouponHandler
	ContentHandler *api.ContentHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := p.Auth.RequireAuth()
	adminOnly := []gin.HandlerFunc{p.Auth.RequireRole(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		catalog := apiGroup.Group("/catalog")
		addRoutes(catalog, []route{
			{Method: http.MethodGet, Path: "/categories", Handler: p.CatalogHandler.ListCategories},
			{Method: http.MethodGet, Path: "/products", Handler: p.CatalogHandler.ListProducts},
			{Method: http.MethodGet, Path: "/products/:slug", Handler: p.CatalogHandler.GetProduct},
			{Method: http.MethodGet, Path: "/bundles", Handler: p.CatalogHandler.ListBundles},
		})
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/content/heroes", Handler: p.ContentHandler.ListHeroes},
			{Method: http.MethodPost, Path: "/payments/webhook", Handler: p.OrderHandler.Webhook},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login, Mw: []gin.HandlerFunc{p.RateLimiter.Limit("login")}},
				{Method: http.MethodPost, Path: "/register", Handler: p.AuthHandler.Register, Mw: []gin.HandlerFunc{p.RateLimiter.Limit("register")}},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.AuthHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		customer := apiGroup.Group("")
		customer.Use(requireAuth)
		{
			addRoutes(customer, []route{
				{Method: http.MethodGet, Path: "/cart", Handler: p.CartHandler.Get},
				{Method: http.MethodDelete, Path: "/cart", Handler: p.CartHandler.Clear},
				{Method: http.MethodPost, Path: "/cart/items", Handler: p.CartHandler.AddItem},
				{Method: http.MethodPut, Path: "/cart/items/:productId", Handler: p.CartHandler.SetQuantity},
				{Method: http.MethodDelete, Path: "/cart/items/:productId", Handler: p.CartHandler.RemoveItem},
				{Method: http.MethodPost, Path: "/cart/bundles/:bundleId", Handler: p.CartHandler.AddBundle},
				{Method: http.MethodDelete, Path: "/cart/bundles/:bundleId", Handler: p.CartHandler.RemoveBundle},

				{Method: http.MethodPost, Path: "/checkout/quote", Handler: p.CartHandler.Quote},
				{Method: http.MethodPost, Path: "/coupons/validate", Handler: p.CartHandler.ValidateCoupon, Mw: []gin.HandlerFunc{p.RateLimiter.Limit("coupon_validate")}},

				{Method: http.MethodPost, Path: "/orders", Handler: p.OrderHandler.Place},
				{Method: http.MethodGet, Path: "/orders", Handler: p.OrderHandler.ListMine},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: p.OrderHandler.Get},
				{Method: http.MethodGet, Path: "/orders/:id/invoice", Handler: p.OrderHandler.Invoice},
				{Method: http.MethodPost, Path: "/orders/:id/verify-payment", Handler: p.OrderHandler.VerifyPayment},
				{Method: http.MethodPost, Path: "/orders/:id/cancel", Handler: p.OrderHandler.Cancel},

				{Method: http.MethodGet, Path: "/addresses", Handler: p.AddressHandler.List},
				{Method: http.MethodPost, Path: "/addresses", Handler: p.AddressHandler.Create},
				{Method: http.MethodPut, Path: "/addresses/:id", Handler: p.AddressHandler.Update},
				{Method: http.MethodDelete, Path: "/addresses/:id", Handler: p.AddressHandler.Delete},
				{Method: http.MethodPost, Path: "/addresses/:id/default", Handler: p.AddressHandler.SetDefault},

				{Method: http.MethodGet, Path: "/rewards", Handler: p.RewardHandler.List},
				{Method: http.MethodGet, Path: "/rewards/wheel", Handler: p.RewardHandler.Wheel},
				{Method: http.MethodPost, Path: "/rewards/spin", Handler: p.RewardHandler.Spin, Mw: []gin.HandlerFunc{p.RateLimiter.Limit("reward_spin")}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, p.Auth.RequireRole(user.RoleStaff))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/categories", Handler: p.CatalogHandler.CreateCategory},
				{Method: http.MethodPut, Path: "/categories/:id", Handler: p.CatalogHandler.UpdateCategory},
				{Method: http.MethodDelete, Path: "/categories/:id", Handler: p.CatalogHandler.DeleteCategory, Mw: adminOnly},

				{Method: http.MethodGet, Path: "/products", Handler: p.CatalogHandler.AdminListProducts},
				{Method: http.MethodPost, Path: "/products", Handler: p.CatalogHandler.CreateProduct},
				{Method: http.MethodGet, Path: "/products/:id", Handler: p.CatalogHandler.AdminGetProduct},
				{Method: http.MethodPut, Path: "/products/:id", Handler: p.CatalogHandler.UpdateProduct},
				{Method: http.MethodDelete, Path: "/products/:id", Handler: p.CatalogHandler.DeleteProduct, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/products/:id/stock", Handler: p.CatalogHandler.AdjustStock},

				{Method: http.MethodGet, Path: "/bundles", Handler: p.CatalogHandler.AdminListBundles},
				{Method: http.MethodPost, Path: "/bundles", Handler: p.CatalogHandler.CreateBundle},
				{Method: http.MethodPut, Path: "/bundles/:id", Handler: p.CatalogHandler.UpdateBundle},
				{Method: http.MethodDelete, Path: "/bundles/:id", Handler: p.CatalogHandler.DeleteBundle, Mw: adminOnly},

				{Method: http.MethodGet, Path: "/coupons", Handler: p.CouponHandler.List},
				{Method: http.MethodPost, Path: "/coupons", Handler: p.CouponHandler.Create},
				{Method: http.MethodGet, Path: "/coupons/:id", Handler: p.CouponHandler.Get},
				{Method: http.MethodPut, Path: "/coupons/:id", Handler: p.CouponHandler.Update},
				{Method: http.MethodPost, Path: "/coupons/:id/deactivate", Handler: p.CouponHandler.Deactivate},
				{Method: http.MethodDelete, Path: "/coupons/:id", Handler: p.CouponHandler.Delete, Mw: adminOnly},

				{Method: http.MethodGet, Path: "/heroes", Handler: p.ContentHandler.AdminListHeroes},
				{Method: http.MethodPost, Path: "/heroes", Handler: p.ContentHandler.CreateHero},
				{Method: http.MethodPut, Path: "/heroes/:id", Handler: p.ContentHandler.UpdateHero},
				{Method: http.MethodDelete, Path: "/heroes/:id", Handler: p.ContentHandler.DeleteHero, Mw: adminOnly},

				{Method: http.MethodGet, Path: "/orders", Handler: p.OrderHandler.ListAll},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: p.OrderHandler.Get},
				{Method: http.MethodPut, Path: "/orders/:id/status", Handler: p.OrderHandler.UpdateStatus},
				{Method: http.MethodPost, Path: "/orders/:id/cancel", Handler: p.OrderHandler.Cancel},

				{Method: http.MethodGet, Path: "/broadcasts", Handler: p.ContentHandler.ListBroadcasts},
				{Method: http.MethodPost, Path: "/broadcasts", Handler: p.ContentHandler.CreateBroadcast},
				{Method: http.MethodGet, Path: "/broadcasts/:id", Handler: p.ContentHandler.GetBroadcast},
				{Method: http.MethodPut, Path: "/broadcasts/:id", Handler: p.ContentHandler.UpdateBroadcast},
				{Method: http.MethodDelete, Path: "/broadcasts/:id", Handler: p.ContentHandler.DeleteBroadcast, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/broadcasts/:id/send", Handler: p.ContentHandler.SendBroadcast, Mw: adminOnly},
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
