package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"legalcopilot/internal/analysis"
	"legalcopilot/internal/config"
	"legalcopilot/internal/logger"
	"legalcopilot/internal/providers"
)

type Server struct {
	cfg       config.Config
	log       *logger.Logger
	analyzer  *analysis.Analyzer
	providers *providers.Manager
}

func NewServer(cfg config.Config, log *logger.Logger, pm *providers.Manager, analyzer *analysis.Analyzer) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{cfg: cfg, log: log, analyzer: analyzer, providers: pm}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(gin.CustomRecovery(s.recoverPanic))
	r.Use(otelgin.Middleware(s.cfg.ServiceName))
	r.Use(attachRequestID())
	r.Use(requestLogger(s.log))
	r.Use(corsMiddleware(s.cfg.CORSOrigins))

	r.GET("/healthz", s.handleHealthz)
	api := r.Group("/api")
	{
		api.POST("/upload", s.handleUpload)
		api.POST("/process", s.handleProcess)
		api.POST("/chat", s.handleChat)
		api.POST("/check-terms", s.handleCheckTerms)
	}
	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", headerRequestID},
	})
}

func (s *Server) recoverPanic(c *gin.Context, rec any) {
	s.log.Error("handler panicked", "path", c.Request.URL.Path, "request_id", c.GetString("request_id"), "panic", fmt.Sprint(rec))
	writeErr(c, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec))
	c.Abort()
}
