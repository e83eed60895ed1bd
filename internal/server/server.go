// Package server exposes the HTTP API: session-cookie auth, study plans,
// tasks, sessions, emotions, stats, achievements and wellness tips.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mindflow/internal/auth"
	"github.com/abhisek/mindflow/internal/study"
)

// SessionCookie is the login cookie name.
const SessionCookie = "mindflow_session"

// Config holds HTTP server settings.
type Config struct {
	Addr string
	// SecureCookies marks session cookies Secure; enable behind TLS.
	SecureCookies bool
}

// DefaultConfig listens on :8080 with plain cookies.
func DefaultConfig() Config {
	return Config{Addr: ":8080"}
}

// Server is the HTTP API.
type Server struct {
	cfg    Config
	router *gin.Engine
	auth   *auth.Service
	study  *study.Service
	log    *zap.Logger
}

// New assembles the router. log may be nil.
func New(cfg Config, authSvc *auth.Service, studySvc *study.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:    cfg,
		router: gin.New(),
		auth:   authSvc,
		study:  studySvc,
		log:    log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.requestLogger(), s.recovery())

	api := s.router.Group("/api")

	api.GET("/health", s.handleHealth)
	api.GET("/wellness-tips", s.handleWellnessTips)

	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)
	api.POST("/auth/logout", s.handleLogout)

	authed := api.Group("", s.requireAuth())
	authed.GET("/auth/me", s.handleMe)

	authed.POST("/study-plans", s.handleCreatePlan)
	authed.GET("/study-plans", s.handleListPlans)
	authed.GET("/study-plans/latest", s.handleLatestPlan)
	authed.GET("/study-plans/:id", s.handleGetPlan)
	authed.POST("/study-plans/:id/regenerate", s.handleRegeneratePlan)
	authed.POST("/study-plans/:id/adapt", s.handleAdaptPlan)
	authed.POST("/study-plans/:id/items/:itemId/complete", s.handleCompleteItem)

	authed.GET("/tasks", s.handleListTasks)
	authed.POST("/tasks", s.handleCreateTask)
	authed.PATCH("/tasks/:id", s.handleUpdateTask)
	authed.DELETE("/tasks/:id", s.handleDeleteTask)

	authed.GET("/study-sessions", s.handleListSessions)
	authed.POST("/study-sessions", s.handleCreateSession)
	authed.PATCH("/study-sessions/:id", s.handleUpdateSession)

	authed.GET("/emotions", s.handleListEmotions)
	authed.POST("/emotions", s.handleCreateEmotion)

	authed.GET("/stats", s.handleStats)
	authed.GET("/achievements", s.handleAchievements)
}

// Handler returns the router for serving or for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("http server listening", zap.String("addr", s.cfg.Addr))
	return srv.ListenAndServe()
}

func (s *Server) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(auth.SessionTTL.Seconds()), "/", "", s.cfg.SecureCookies, true)
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", s.cfg.SecureCookies, true)
}
