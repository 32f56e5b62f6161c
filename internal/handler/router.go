package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-pos/internal/domain/user"
	"restaurant-pos/internal/handler/api"
	"restaurant-pos/internal/handler/middleware"
	"restaurant-pos/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Order    *api.OrderHandler
	Kitchen  *api.KitchenHandler
	Beeper   *api.BeeperHandler
	Catalog  *api.CatalogHandler
	Product  *api.ProductHandler
	Category *api.CategoryHandler
	User     *api.UserHandler
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

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Register side: cashiers admit and close orders; admins can step in.
		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			cashierOnly := authMiddleware.RequireRole(user.RoleCashier, user.RoleAdmin)
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.CreateOrder, Mw: []gin.HandlerFunc{cashierOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListOrders, Mw: []gin.HandlerFunc{cashierOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.GetOrder},
				{Method: http.MethodPost, Path: "/:id/deliver", Handler: h.Order.DeliverOrder, Mw: []gin.HandlerFunc{cashierOnly}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Order.CancelOrder, Mw: []gin.HandlerFunc{cashierOnly}},
			})
		}

		// Kitchen side: chefs work the queue.
		kitchen := apiGroup.Group("/kitchen")
		kitchen.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleChef, user.RoleAdmin))
		{
			addRoutes(kitchen, []route{
				{Method: http.MethodGet, Path: "/orders", Handler: h.Kitchen.Queue},
				{Method: http.MethodPost, Path: "/orders/:id/ready", Handler: h.Kitchen.MarkReady},
			})
		}

		beepers := apiGroup.Group("/beepers")
		beepers.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleCashier, user.RoleAdmin))
		{
			addRoutes(beepers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Beeper.List},
			})
		}

		catalog := apiGroup.Group("/catalog")
		catalog.Use(authMiddleware.RequireAuth())
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.ListProducts},
				{Method: http.MethodGet, Path: "/categories", Handler: h.Catalog.ListCategories},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/products", Handler: h.Product.List},
				{Method: http.MethodPost, Path: "/products", Handler: h.Product.Create},
				{Method: http.MethodPut, Path: "/products/:id", Handler: h.Product.Update},
				{Method: http.MethodDelete, Path: "/products/:id", Handler: h.Product.Delete},

				{Method: http.MethodGet, Path: "/categories", Handler: h.Category.List},
				{Method: http.MethodPost, Path: "/categories", Handler: h.Category.Create},
				{Method: http.MethodPut, Path: "/categories/:id", Handler: h.Category.Update},
				{Method: http.MethodDelete, Path: "/categories/:id", Handler: h.Category.Delete},

				{Method: http.MethodGet, Path: "/users", Handler: h.User.List},
				{Method: http.MethodPost, Path: "/users", Handler: h.User.Create},
				{Method: http.MethodPut, Path: "/users/:id", Handler: h.User.Update},
				{Method: http.MethodDelete, Path: "/users/:id", Handler: h.User.Delete},
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
