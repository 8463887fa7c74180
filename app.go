// @title           WHOIS Lookup API
// @version         1.0
// @description     Proxies the whoisxmlapi.com WHOIS service and reshapes its records into flat domain and contact views.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /api
// @schemes   http https
package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vit0-9/whois_api/docs"
	"github.com/vit0-9/whois_api/handlers"
	"github.com/vit0-9/whois_api/pkg/config"
	"github.com/vit0-9/whois_api/pkg/logger"
	"github.com/vit0-9/whois_api/pkg/lookup"
	"github.com/vit0-9/whois_api/pkg/metrics"
	"github.com/vit0-9/whois_api/pkg/utils"
	"github.com/vit0-9/whois_api/pkg/whoisxml"
	"github.com/vit0-9/whois_api/web"
)

// App encapsulates all the components of the application
type App struct {
	Router        *gin.Engine
	Config        *config.Config
	Log           *logger.Logger
	WhoisHandlers *handlers.WhoisHandlers
	HealthHandler *handlers.HealthHandler

	registry *prometheus.Registry
	metrics  *metrics.Metrics
	server   *http.Server
}

// NewApp creates and initializes a new application instance. provider may be
// nil, in which case a whoisxmlapi.com client is built from cfg.
func NewApp(cfg *config.Config, log *logger.Logger, provider lookup.Provider) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	if provider == nil {
		httpClient := utils.WithUserAgent(utils.NewHTTPClient(time.Duration(cfg.Whois.TimeoutSec) * time.Second))
		provider = whoisxml.New(cfg.Whois.APIKey,
			whoisxml.WithEndpoint(cfg.Whois.Endpoint),
			whoisxml.WithHTTPClient(httpClient),
		)
	}

	service := lookup.NewService(provider, cfg.HasAPIKey()).WithObserver(m)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handlers.RequestLogger(log))
	router.Use(handlers.RequestMetrics(m))
	router.Use(handlers.CORS(cfg.Server.AllowedOrigins))

	app := &App{
		Router:        router,
		Config:        cfg,
		Log:           log,
		WhoisHandlers: handlers.NewWhoisHandlers(service, log, m),
		HealthHandler: handlers.NewHealthHandler(),
		registry:      registry,
		metrics:       m,
	}

	if err := app.setupRoutes(); err != nil {
		return nil, err
	}

	app.server = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return app, nil
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() error {
	api := app.Router.Group("/api")
	{
		api.GET("/health", app.HealthHandler.HealthCheckHandler)
		api.GET("/whois", app.WhoisHandlers.WhoisLookupHandler)
		api.GET("/whois/full", app.WhoisHandlers.FullWhoisLookupHandler)
	}

	app.Router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{})))
	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	// Browser form
	assets, err := web.Assets()
	if err != nil {
		return err
	}
	index, err := web.Index()
	if err != nil {
		return err
	}
	app.Router.StaticFS("/assets", http.FS(assets))
	app.Router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})

	app.Router.NoRoute(handlers.NotFoundHandler)
	return nil
}

// Start runs the HTTP server until it is shut down.
func (app *App) Start() error {
	app.Log.Info("API server starting", "addr", app.server.Addr)
	if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (app *App) Shutdown(ctx context.Context) error {
	return app.server.Shutdown(ctx)
}
