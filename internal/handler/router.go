package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"webshopper/internal/handler/api"
	"webshopper/internal/handler/middleware"
	"webshopper/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	krogerHandler *api.KrogerHandler,
	productHandler *api.ProductHandler,
	recipeHandler *api.RecipeHandler,
	orderHandler *api.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, krogerHandler, productHandler, recipeHandler, orderHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	krogerHandler *api.KrogerHandler,
	productHandler *api.ProductHandler,
	recipeHandler *api.RecipeHandler,
	orderHandler *api.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
				{Method: http.MethodPut, Path: "/location", Handler: authHandler.UpdateLocation},
			})
		}

		kroger := apiGroup.Group("/kroger")
		kroger.Use(authMiddleware.RequireAuth())
		{
			addRoutes(kroger, []route{
				{Method: http.MethodGet, Path: "/connect", Handler: krogerHandler.Connect},
				{Method: http.MethodGet, Path: "/callback", Handler: krogerHandler.Callback},
				{Method: http.MethodGet, Path: "/locations", Handler: krogerHandler.SearchLocations},
				{Method: http.MethodGet, Path: "/products", Handler: krogerHandler.SearchProducts},
				{Method: http.MethodGet, Path: "/products/:upc", Handler: krogerHandler.ProductDetail},
			})
		}

		products := apiGroup.Group("/products")
		products.Use(authMiddleware.RequireAuth())
		{
			addRoutes(products, []route{
				{Method: http.MethodPut, Path: "", Handler: productHandler.Save},
				{Method: http.MethodGet, Path: "", Handler: productHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: productHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: productHandler.Delete},
			})
		}

		recipes := apiGroup.Group("/recipes")
		recipes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(recipes, []route{
				{Method: http.MethodPost, Path: "", Handler: recipeHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: recipeHandler.List},
				{Method: http.MethodPatch, Path: "/:id", Handler: recipeHandler.UpdateText},
				{Method: http.MethodDelete, Path: "/:id", Handler: recipeHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/ingredients", Handler: recipeHandler.AddIngredient},
				{Method: http.MethodDelete, Path: "/ingredients/:id", Handler: recipeHandler.DeleteIngredient},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.Submit},
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
