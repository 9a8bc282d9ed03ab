package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"agrispray/internal/handler/api"
	"agrispray/internal/handler/middleware"
	"agrispray/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Request  *api.SprayRequestHandler
	Watch    *api.WatchHandler
	Provider *api.ProviderHandler
	Address  *api.AddressHandler
	User     *api.UserHandler
	Location *api.LocationHandler
	Crop     *api.CropHandler
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
				{Method: http.MethodPost, Path: "/otp/request", Handler: h.Auth.RequestOtp},
				{Method: http.MethodPost, Path: "/otp/verify", Handler: h.Auth.VerifyOtp},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		apiGroup.GET("/crops", h.Crop.List)

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Request.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Request.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Request.Get},
				{Method: http.MethodPost, Path: "/:id/transition", Handler: h.Request.Transition},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Request.OverrideStatus},
				{Method: http.MethodGet, Path: "/:id/watch", Handler: h.Watch.Watch},
			})
		}

		providers := apiGroup.Group("/providers")
		providers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(providers, []route{
				{Method: http.MethodGet, Path: "/nearby", Handler: h.Provider.Nearby},
			})
		}

		addresses := apiGroup.Group("/addresses")
		addresses.Use(authMiddleware.RequireAuth())
		{
			addRoutes(addresses, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Address.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Address.List},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/me/profile", Handler: h.User.GetProfile},
				{Method: http.MethodPut, Path: "/me/profile", Handler: h.User.UpdateProfile},
			})
		}

		location := apiGroup.Group("/location")
		location.Use(authMiddleware.RequireAuth())
		{
			addRoutes(location, []route{
				{Method: http.MethodPut, Path: "", Handler: h.Location.Report},
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
