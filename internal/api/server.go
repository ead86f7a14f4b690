// Package api assembles the HTTP surface: middleware, REST routes and the
// guide streaming WebSocket.
package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/rightsguard/backend/internal/alert"
	"github.com/rightsguard/backend/internal/api/handlers"
	"github.com/rightsguard/backend/internal/contacts"
	"github.com/rightsguard/backend/internal/guide"
	"github.com/rightsguard/backend/internal/incident"
	"github.com/rightsguard/backend/internal/metrics"
	"github.com/rightsguard/backend/internal/middleware/ratelimit"
	"github.com/rightsguard/backend/internal/middleware/security"
	"github.com/rightsguard/backend/internal/middleware/validation"
	"github.com/rightsguard/backend/internal/script"
)

type Options struct {
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	BodyLimit         int
	AllowedOrigins    []string
	Development       bool
	AccessLog         bool
	RequestsPerMinute int
	GuideTTL          time.Duration
}

type Dependencies struct {
	Guides    *guide.Generator
	Scripts   *script.Generator
	Cache     handlers.GuideCache
	Contacts  *contacts.Service
	Alerts    *alert.Service
	Incidents *incident.Service
	Checks    map[string]handlers.Check
}

// Server is the configured fiber app plus the resources it owns.
type Server struct {
	App     *fiber.App
	limiter *ratelimit.RateLimiter
}

func New(opts Options, deps Dependencies) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "rightsguard",
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		BodyLimit:    opts.BodyLimit,
	})

	origins := "*"
	if len(opts.AllowedOrigins) > 0 {
		origins = strings.Join(opts.AllowedOrigins, ", ")
	}

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(fiberlogger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-User-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{
		AllowedOrigins: opts.AllowedOrigins,
		IsDevelopment:  opts.Development,
	}))

	limiter := ratelimit.New(ratelimit.Config{MaxRequestsPerMinute: opts.RequestsPerMinute})

	guideHandler := handlers.NewGuideHandler(deps.Guides, deps.Cache, opts.GuideTTL)
	scriptHandler := handlers.NewScriptHandler(deps.Scripts)
	contactsHandler := handlers.NewContactsHandler(deps.Contacts)
	alertHandler := handlers.NewAlertHandler(deps.Alerts)
	incidentHandler := handlers.NewIncidentHandler(deps.Incidents)
	healthHandler := handlers.NewHealthHandler(deps.Checks)
	wsHandler := handlers.NewWebSocketHandler(guideHandler, deps.Scripts)

	app.Get("/metrics", metrics.MetricsHandler())
	app.Get("/ws", wsHandler.Upgrade, websocket.New(wsHandler.HandleConnection))

	api := app.Group("/api/v1")

	api.Get("/health", healthHandler.Health)
	api.Get("/ready", healthHandler.Ready)

	api.Use(limiter.Middleware())
	api.Use(validation.Middleware(validation.Config{MaxContacts: contacts.MaxContacts}))

	api.Get("/jurisdictions", handlers.ListJurisdictions)
	api.Get("/scenarios", scriptHandler.ListScenarios)

	api.Get("/guides/locate", guideHandler.LocateGuide)
	api.Get("/guides/:code", guideHandler.GetGuide)
	api.Delete("/guides", guideHandler.InvalidateCache)

	api.Get("/scripts/:scenario", scriptHandler.GetScript)

	api.Get("/contacts", contactsHandler.ListContacts)
	api.Put("/contacts", contactsHandler.ReplaceContacts)
	api.Put("/profile", contactsHandler.UpdateProfile)

	api.Post("/alerts", alertHandler.SendAlert)
	api.Get("/alerts", alertHandler.ListAlerts)

	api.Post("/incidents", incidentHandler.StartIncident)
	api.Post("/incidents/:id/stop", incidentHandler.StopIncident)
	api.Get("/incidents", incidentHandler.ListIncidents)
	api.Get("/recordings", incidentHandler.ListRecordings)

	return &Server{App: app, limiter: limiter}
}

func (s *Server) Listen(addr string) error {
	return s.App.Listen(addr)
}

func (s *Server) Shutdown() error {
	s.limiter.Stop()
	return s.App.Shutdown()
}
