package server

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lumenlake/warehouse/internal/analytics"
	analyticsdomain "github.com/lumenlake/warehouse/internal/analytics/domain"
	"github.com/lumenlake/warehouse/internal/config"
	"github.com/lumenlake/warehouse/internal/lineage"
	lineagedomain "github.com/lumenlake/warehouse/internal/lineage/domain"
	"github.com/lumenlake/warehouse/internal/quality"
	qualitydomain "github.com/lumenlake/warehouse/internal/quality/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	analytics.Module,
	quality.Module,
	lineage.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

// NewEngine builds the gin engine with recovery, request logging and error
// mapping, plus the health and metrics endpoints.
func NewEngine(log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log.Named("http")))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	analyticsSvc analyticsdomain.Service
	qualitySvc   qualitydomain.Service
	lineageSvc   lineagedomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	AnalyticsSvc analyticsdomain.Service
	QualitySvc   qualitydomain.Service
	LineageSvc   lineagedomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		analyticsSvc: p.AnalyticsSvc,
		qualitySvc:   p.QualitySvc,
		lineageSvc:   p.LineageSvc,
	}
}

func registerRoutes(s *Server) {
	s.engine.GET("/analytics", s.GetAnalytics)
	s.engine.POST("/quality-check", s.RunQualityCheck)
	s.engine.GET("/quality-metrics", s.GetQualityMetrics)
	s.engine.GET("/lineage", s.GetLineage)

	s.engine.StaticFile("/", filepath.Join(s.cfg.WebDir, "index.html"))
	s.engine.StaticFile("/dashboard.js", filepath.Join(s.cfg.WebDir, "dashboard.js"))
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
