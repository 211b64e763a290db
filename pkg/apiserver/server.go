package apiserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/autoflow/autoflow/pkg/apiserver/handlers"
	"github.com/autoflow/autoflow/pkg/apiserver/middleware"
	"github.com/autoflow/autoflow/pkg/auth"
	"github.com/autoflow/autoflow/pkg/config"
	"github.com/autoflow/autoflow/pkg/executor"
	"github.com/autoflow/autoflow/pkg/store/memory"
)

type Server struct {
	router    *gin.Engine
	store     *memory.Store
	simulator *executor.Simulator
	tokens    *auth.TokenManager
	cfg       *config.Config
	logger    *zap.Logger
}

func NewServer(store *memory.Store, simulator *executor.Simulator, cfg *config.Config, logger *zap.Logger) *Server {
	s := &Server{
		store:     store,
		simulator: simulator,
		tokens:    auth.NewTokenManager([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL),
		cfg:       cfg,
		logger:    logger,
	}
	s.setupRouter()
	return s
}

func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.Metrics())
	if s.cfg.Server.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(s.cfg.Server.RateLimitRPS, s.cfg.Server.RateBurst))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.GET("/docs", s.docs)

	authHandler := handlers.NewAuthHandler(s.store, s.tokens, s.logger)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	{
		protected.Use(middleware.Auth(s.tokens))

		protected.GET("/auth/me", authHandler.Me)

		workflowHandler := handlers.NewWorkflowHandler(s.store, s.logger)
		protected.POST("/workflows", workflowHandler.Create)
		protected.GET("/workflows", workflowHandler.List)
		protected.GET("/workflows/:id", workflowHandler.Get)
		protected.PUT("/workflows/:id", workflowHandler.Update)
		protected.DELETE("/workflows/:id", workflowHandler.Delete)

		integrationHandler := handlers.NewIntegrationHandler(s.store, s.logger)
		protected.GET("/integrations", integrationHandler.List)
		protected.POST("/integrations", integrationHandler.Create)

		templateHandler := handlers.NewTemplateHandler(s.store, s.logger)
		protected.GET("/templates", templateHandler.List)
		protected.POST("/templates/:id/deploy", templateHandler.Deploy)

		executionHandler := handlers.NewExecutionHandler(s.store, s.simulator, s.logger)
		protected.GET("/executions", executionHandler.List)
		protected.GET("/executions/:workflowId", executionHandler.ListByWorkflow)
		protected.POST("/executions/:workflowId", executionHandler.Create)

		systemHandler := handlers.NewSystemHandler(s.store, s.logger, s.cfg.Server.Env)
		protected.GET("/system/stats", systemHandler.Stats)
	}

	s.router = r
}

func (s *Server) docs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "autoflow-api",
		"version": "1.0.0",
		"endpoints": gin.H{
			"POST /api/auth/register":            "create an account; first account becomes admin",
			"POST /api/auth/login":               "exchange credentials for a bearer token",
			"GET /api/auth/me":                   "current user",
			"GET /api/workflows":                 "list your workflows",
			"POST /api/workflows":                "create a workflow",
			"GET /api/workflows/:id":             "fetch a workflow",
			"PUT /api/workflows/:id":             "update a workflow",
			"DELETE /api/workflows/:id":          "delete a workflow",
			"GET /api/integrations":              "list integrations",
			"POST /api/integrations":             "register an integration",
			"GET /api/templates":                 "list the template catalog",
			"POST /api/templates/:id/deploy":     "clone a template into a workflow",
			"GET /api/executions":                "list your executions",
			"GET /api/executions/:workflowId":    "list executions of one workflow",
			"POST /api/executions/:workflowId":   "start a simulated execution",
			"GET /api/system/stats":              "record counts and process stats",
			"GET /health":                        "liveness probe",
			"GET /metrics":                       "prometheus metrics",
		},
	})
}

func (s *Server) Router() *gin.Engine {
	return s.router
}
