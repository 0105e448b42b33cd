package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"daily-task-management/internal/stats"
	"daily-task-management/pkg/datemath"
	"daily-task-management/pkg/log"
	"daily-task-management/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	postgresDB      *sql.DB
	scopeManager    scope.Manager
	rateLimitPerMin int

	dates    *datemath.Parser
	rng      stats.Rand
	scoreCfg stats.ScoreConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB      *sql.DB
	ScopeManager    scope.Manager
	RateLimitPerMin int

	Dates    *datemath.Parser
	Rng      stats.Rand
	ScoreCfg stats.ScoreConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		postgresDB:      cfg.PostgresDB,
		scopeManager:    cfg.ScopeManager,
		rateLimitPerMin: cfg.RateLimitPerMin,
		dates:           cfg.Dates,
		rng:             cfg.Rng,
		scoreCfg:        cfg.ScoreCfg,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.scopeManager == nil {
		return errors.New("scope manager is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	if srv.rng == nil {
		return errors.New("random source is required")
	}
	return nil
}
