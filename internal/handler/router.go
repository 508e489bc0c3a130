package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	"folio-api/internal/handler/api"
	"folio-api/internal/handler/middleware"
	"folio-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Schedule     *api.ScheduleHandler
	Content      *api.ContentHandler
	Geocode      *api.GeocodeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.ClientID(cfg))
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	loginLimit := middleware.RateLimit(rate.Every(time.Minute/10), 5)
	geocodeLimit := middleware.RateLimit(rate.Every(time.Second), 3)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{loginLimit}},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		availability := apiGroup.Group("/availability")
		{
			addRoutes(availability, []route{
				{Method: http.MethodPut, Path: "/window", Handler: h.Availability.UpdateWindow},
				{Method: http.MethodGet, Path: "", Handler: h.Availability.Status},
			})
		}

		requests := apiGroup.Group("/requests")
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			})

			adminRequests := requests.Group("")
			adminRequests.Use(authMiddleware.RequireAdmin())
			addRoutes(adminRequests, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			})
		}

		schedule := apiGroup.Group("/schedule")
		{
			addRoutes(schedule, []route{
				{Method: http.MethodGet, Path: "/busy", Handler: h.Schedule.DaySlots},
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Schedule.Calendar},
				{Method: http.MethodGet, Path: "/picker", Handler: h.Schedule.PickerState},
				{Method: http.MethodPost, Path: "/picker/click", Handler: h.Schedule.PickerClick},
				{Method: http.MethodPost, Path: "/picker/hover", Handler: h.Schedule.PickerHover},
				{Method: http.MethodPost, Path: "/picker/slot", Handler: h.Schedule.SelectSlot},
				{Method: http.MethodDelete, Path: "/picker", Handler: h.Schedule.PickerCancel},
			})

			adminSchedule := schedule.Group("")
			adminSchedule.Use(authMiddleware.RequireAdmin())
			addRoutes(adminSchedule, []route{
				{Method: http.MethodPost, Path: "/busy", Handler: h.Schedule.ToggleBusy},
			})
		}

		diary := apiGroup.Group("/diary")
		{
			addRoutes(diary, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Content.ListDiary},
				{Method: http.MethodPost, Path: "/:id/like", Handler: h.Content.LikeDiary},
			})

			adminDiary := diary.Group("")
			adminDiary.Use(authMiddleware.RequireAdmin())
			addRoutes(adminDiary, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Content.PostDiary},
			})
		}

		places := apiGroup.Group("/places")
		{
			addRoutes(places, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Content.ListPlaces},
				{Method: http.MethodPost, Path: "/:id/like", Handler: h.Content.LikePlace},
			})

			adminPlaces := places.Group("")
			adminPlaces.Use(authMiddleware.RequireAdmin())
			addRoutes(adminPlaces, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Content.AddPlace},
			})
		}

		geocode := apiGroup.Group("/geocode")
		geocode.Use(geocodeLimit)
		{
			addRoutes(geocode, []route{
				{Method: http.MethodGet, Path: "/search", Handler: h.Geocode.Search},
				{Method: http.MethodGet, Path: "/reverse", Handler: h.Geocode.Reverse},
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
