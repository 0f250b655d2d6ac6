// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns:
// tracing, correlation IDs, logging, panic recovery, metrics, CORS, security
// headers, and rate limiting.
//
// Middleware ordering is safe-by-default (RequestID → logging → recovery),
// observability comes first, and all dependencies are injected.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/garage-routhier/go-garage-backend/internal/auth"
	"github.com/garage-routhier/go-garage-backend/internal/config"
	"github.com/garage-routhier/go-garage-backend/internal/domain"
	"github.com/garage-routhier/go-garage-backend/internal/http/handlers"
	"github.com/garage-routhier/go-garage-backend/internal/http/middleware"
	"github.com/garage-routhier/go-garage-backend/internal/mail"
	"github.com/garage-routhier/go-garage-backend/internal/repo"
	"github.com/garage-routhier/go-garage-backend/internal/services"
)

// requestStoreShim adapts the repository free functions to the store
// interfaces expected by the services. This keeps services decoupled from
// the concrete repo package while reusing the existing functions.
type requestStoreShim struct{}

func (requestStoreShim) CreateContact(ctx context.Context, db *gorm.DB, rec *domain.ContactRequest) (*domain.ContactRequest, error) {
	return repo.CreateContact(ctx, db, rec)
}

func (requestStoreShim) CreateAppointment(ctx context.Context, db *gorm.DB, rec *domain.AppointmentRequest) (*domain.AppointmentRequest, error) {
	return repo.CreateAppointment(ctx, db, rec)
}

func (requestStoreShim) ListContacts(ctx context.Context, db *gorm.DB, limit int) ([]domain.ContactRequest, error) {
	return repo.ListContacts(ctx, db, limit)
}

func (requestStoreShim) ListAppointments(ctx context.Context, db *gorm.DB, limit int) ([]domain.AppointmentRequest, error) {
	return repo.ListAppointments(ctx, db, limit)
}

func (requestStoreShim) UpdateContactStatus(ctx context.Context, db *gorm.DB, id, status, notes string) (*domain.ContactRequest, error) {
	return repo.UpdateContactStatus(ctx, db, id, status, notes)
}

func (requestStoreShim) UpdateAppointmentStatus(ctx context.Context, db *gorm.DB, id, status, notes string) (*domain.AppointmentRequest, error) {
	return repo.UpdateAppointmentStatus(ctx, db, id, status, notes)
}

// RegisterRoutes attaches all middleware and endpoints to the given Gin
// engine.
//
// Middleware order:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: panics to JSON 500, after the logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per IP)
//  8. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, mailer mail.Sender, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())

	// Form payloads are small; 1 MiB is generous.
	r.Use(limitBody(1 << 20))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	r.Use(rl.Handler())

	// CORS posture: allow-all when no origins are configured (marketing site
	// and API often live on different hosts during development).
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	} else {
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
	}))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← store shim / db / mailer.
	store := requestStoreShim{}
	intakeSvc := &services.SubmissionService{
		DB:        db,
		Store:     store,
		Mailer:    mailer,
		Templates: mail.Templates{Garage: cfg.Garage},
	}
	reviewSvc := services.NewReviewService(db, store)
	sessions := auth.NewManager(cfg.Admin)
	h := handlers.New(intakeSvc, reviewSvc, sessions)

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Public intake
		api.POST("/contact-requests", h.SubmitContact)
		api.POST("/appointment-requests", h.SubmitAppointment)
		api.GET("/services", h.ListServices)

		// Admin
		api.POST("/admin/login", h.Login)
		admin := api.Group("/admin", middleware.AdminAuth(sessions))
		{
			admin.POST("/session/extend", h.ExtendSession)
			admin.GET("/session", h.SessionStatus)
			admin.GET("/contact-requests", h.ListContactRequests)
			admin.GET("/appointment-requests", h.ListAppointmentRequests)
			admin.PUT("/contact-requests/:id/status", h.UpdateContactStatus)
			admin.PUT("/appointment-requests/:id/status", h.UpdateAppointmentStatus)
		}
	}
}

// limitBody caps the request body size for all endpoints using
// http.MaxBytesReader; oversized requests fail on the first body read.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
