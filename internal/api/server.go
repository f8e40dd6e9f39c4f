package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"promosync/internal/api/handlers"
	"promosync/internal/api/middleware"
	"promosync/internal/config"
	"promosync/internal/events"
	"promosync/internal/logger"
	"promosync/internal/store"
	"promosync/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

type Stores struct {
	Jobs              *store.JobStore
	Settings          *store.SettingsStore
	IgnoredSuppliers  *store.IgnoreList
	IgnoredCategories *store.IgnoreList
}

func NewStores() *Stores {
	return &Stores{
		Jobs:              store.NewJobStore(),
		Settings:          store.NewSettingsStore(),
		IgnoredSuppliers:  store.NewIgnoreList(),
		IgnoredCategories: store.NewIgnoreList(),
	}
}

func New(cfg *config.Config, logger *logger.Logger, stores *Stores, dispatcher *worker.Dispatcher, publisher *events.Publisher) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())

	// Initialize handlers
	settingsHandler := handlers.NewSettingsHandler(stores.Settings, logger)
	suppliersHandler := handlers.NewIgnoreHandler(stores.IgnoredSuppliers, "supplier_ids", logger)
	categoriesHandler := handlers.NewIgnoreHandler(stores.IgnoredCategories, "category_ids", logger)
	syncHandler := handlers.NewSyncHandler(cfg, stores.Jobs, stores.Settings, dispatcher, publisher, logger)
	jobHandler := handlers.NewJobHandler(stores.Jobs, logger)

	// Health check
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Promodata sync service is running")
	})

	// Routes
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/settings", settingsHandler.Get)
		apiGroup.POST("/settings", settingsHandler.Update)

		suppliers := apiGroup.Group("/ignored-suppliers")
		{
			suppliers.GET("", suppliersHandler.List)
			suppliers.POST("", suppliersHandler.Add)
			suppliers.DELETE("", suppliersHandler.Remove)
		}

		categories := apiGroup.Group("/ignored-categories")
		{
			categories.GET("", categoriesHandler.List)
			categories.POST("", categoriesHandler.Add)
			categories.DELETE("", categoriesHandler.Remove)
		}

		woo := apiGroup.Group("/woo")
		{
			woo.POST("/test", syncHandler.TestConnection)
			woo.POST("/start-sync", syncHandler.StartSync)
		}

		jobs := apiGroup.Group("/jobs")
		{
			jobs.GET("/:id", jobHandler.Get)
			jobs.GET("/:id/logs", jobHandler.Logs)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Not Found: Cannot %s %s", c.Request.Method, c.Request.URL.Path),
		})
	})

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
	})

	s.server = &http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(s.router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
