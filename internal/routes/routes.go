package routes

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	"github.com/BruksfildServices01/agenda-negocios/internal/auth"
	"github.com/BruksfildServices01/agenda-negocios/internal/config"
	"github.com/BruksfildServices01/agenda-negocios/internal/handlers"
	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
	"github.com/BruksfildServices01/agenda-negocios/internal/middleware"
)

// Deps are the singletons built by the serve command.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Audit   audit.Recorder
	Revoker auth.Revoker
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config
	db := deps.DB
	r.HandleMethodNotAllowed = true

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	if cfg.OTEL.Enabled {
		r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "route_not_found", "Rota não encontrada.")
	})
	r.NoMethod(func(c *gin.Context) {
		httperr.Write(c, http.StatusMethodNotAllowed, "method_not_allowed", "Método não permitido.")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// HANDLERS
	// ======================================================
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := handlers.NewAuthHandler(db, issuer, deps.Revoker, deps.Audit, cfg.CheckEmailDomain)
	meHandler := handlers.NewMeHandler(db)
	cityHandler := handlers.NewCityHandler(db)
	businessHandler := handlers.NewBusinessHandler(db, deps.Audit)
	customerHandler := handlers.NewCustomerHandler(db, deps.Audit)
	serviceHandler := handlers.NewServiceHandler(db, deps.Audit)
	professionalHandler := handlers.NewProfessionalHandler(db, deps.Audit)
	availableDayHandler := handlers.NewAvailableDayHandler(db, deps.Audit)
	scheduleHandler := handlers.NewScheduleHandler(db, deps.Audit)
	appointmentHandler := handlers.NewAppointmentHandler(db, deps.Audit)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")

	// ------------------------------
	// API PÚBLICA
	// ------------------------------
	api.GET("/public/businesses/:id/services", publicHandler.ListServices)

	// ------------------------------
	// AUTH
	// ------------------------------
	limiter := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	authAPI := api.Group("/auth", limiter.Handler())
	authAPI.POST("/register", authHandler.Register)
	authAPI.POST("/login", authHandler.Login)

	// ------------------------------
	// API PRIVADA
	// ------------------------------
	secured := api.Group("/", middleware.AuthMiddleware(issuer, deps.Revoker))

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/me", meHandler.GetMe)

	secured.GET("/cities", cityHandler.List)
	secured.GET("/cities/states", cityHandler.States)
	secured.GET("/cities/:id", cityHandler.Get)

	businesses := secured.Group("/businesses")
	businesses.GET("", businessHandler.List)
	businesses.POST("", businessHandler.Create)
	businesses.GET("/:id", businessHandler.Get)
	businesses.PATCH("/:id", businessHandler.Update)
	businesses.DELETE("/:id", businessHandler.Delete)
	businesses.GET("/:id/schedule", scheduleHandler.GetBusiness)
	businesses.PUT("/:id/schedule", scheduleHandler.UpdateBusiness)

	customers := secured.Group("/customers")
	customers.GET("", customerHandler.List)
	customers.POST("", customerHandler.Create)
	customers.GET("/:id", customerHandler.Get)
	customers.PATCH("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	services := secured.Group("/services")
	services.GET("", serviceHandler.List)
	services.POST("", serviceHandler.Create)
	services.GET("/:id", serviceHandler.Get)
	services.PATCH("/:id", serviceHandler.Update)
	services.DELETE("/:id", serviceHandler.Delete)

	professionals := secured.Group("/professionals")
	professionals.GET("", professionalHandler.List)
	professionals.POST("", professionalHandler.Create)
	professionals.GET("/:id", professionalHandler.Get)
	professionals.PATCH("/:id", professionalHandler.Update)
	professionals.DELETE("/:id", professionalHandler.Delete)
	professionals.GET("/:id/schedule", scheduleHandler.GetProfessional)
	professionals.PUT("/:id/schedule", scheduleHandler.UpdateProfessional)

	availableDays := secured.Group("/available-days")
	availableDays.GET("", availableDayHandler.List)
	availableDays.POST("", availableDayHandler.Create)
	availableDays.GET("/:id", availableDayHandler.Get)
	availableDays.PATCH("/:id", availableDayHandler.Update)
	availableDays.DELETE("/:id", availableDayHandler.Delete)

	// ------------------------------
	// APPOINTMENTS
	// ------------------------------
	appointments := secured.Group("/appointments")
	appointments.GET("", appointmentHandler.List)
	appointments.POST("", appointmentHandler.Create)
	appointments.GET("/day", appointmentHandler.ListByDate)
	appointments.GET("/month", appointmentHandler.ListByMonth)
	appointments.GET("/:id", appointmentHandler.Get)
	appointments.PATCH("/:id", appointmentHandler.Update)
	appointments.DELETE("/:id", appointmentHandler.Delete)
	appointments.PATCH("/:id/confirm", appointmentHandler.Confirm)
	appointments.PATCH("/:id/cancel", appointmentHandler.Cancel)
	appointments.PATCH("/:id/complete", appointmentHandler.Complete)

	secured.GET("/audit-logs", auditLogsHandler.List)
}
