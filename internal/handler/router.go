package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"roomescape/internal/handler/api"
	"roomescape/internal/handler/middleware"
	"roomescape/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Member          *api.MemberHandler
	Reservation     *api.ReservationHandler
	ReservationTime *api.ReservationTimeHandler
	Theme           *api.ThemeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	adminOnly := []gin.HandlerFunc{requireAuth, authMiddleware.RequireAdmin()}

	members := engine.Group("/members")
	{
		addRoutes(members, []route{
			{Method: http.MethodPost, Path: "/signup", Handler: h.Member.Signup},
			{Method: http.MethodPost, Path: "/login", Handler: h.Member.Login},
			{Method: http.MethodGet, Path: "/login/check", Handler: h.Member.LoginCheck, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Member.Logout, Mw: []gin.HandlerFunc{requireAuth}},
		})
	}

	admin := engine.Group("/admin")
	admin.Use(adminOnly...)
	{
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/members", Handler: h.Member.List},
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.AdminCreate},
		})
	}

	reservations := engine.Group("/reservations")
	{
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.Search, Mw: adminOnly},
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/mine", Handler: h.Reservation.Mine, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete, Mw: adminOnly},
		})
	}

	times := engine.Group("/times")
	{
		addRoutes(times, []route{
			{Method: http.MethodGet, Path: "", Handler: h.ReservationTime.List},
			{Method: http.MethodGet, Path: "/available", Handler: h.ReservationTime.Available},
			{Method: http.MethodPost, Path: "", Handler: h.ReservationTime.Create, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.ReservationTime.Delete, Mw: adminOnly},
		})
	}

	themes := engine.Group("/themes")
	{
		addRoutes(themes, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Theme.List},
			{Method: http.MethodGet, Path: "/popular", Handler: h.Theme.Popular},
			{Method: http.MethodPost, Path: "", Handler: h.Theme.Create, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Theme.Delete, Mw: adminOnly},
		})
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
