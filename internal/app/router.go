package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bpe-analyzer/internal/config"
	"github.com/heartmarshall/bpe-analyzer/internal/service/diagram"
	"github.com/heartmarshall/bpe-analyzer/internal/transport/middleware"
	"github.com/heartmarshall/bpe-analyzer/internal/transport/rest"
)

// multipartOverhead is the allowance on top of upload.max_bytes for
// multipart boundaries and part headers.
const multipartOverhead = 64 << 10

// Router is the HTTP handler tree with the resources it owns.
type Router struct {
	http.Handler
	limiter *middleware.RateLimiter
}

// Close releases background resources held by the middleware.
func (r *Router) Close() {
	if r.limiter != nil {
		r.limiter.Stop()
	}
}

// NewRouter mounts the API and probe routes behind the middleware chain.
func NewRouter(cfg *config.Config, logger *slog.Logger) *Router {
	svc := diagram.NewService(logger, cfg.Upload)
	diagrams := rest.NewDiagramHandler(svc, cfg.Upload, logger)
	health := rest.NewHealthHandler(BuildVersion(), map[string]rest.Checker{
		"pipeline": rest.CheckerFunc(pipelineSelfTest),
	})

	api := middleware.MaxBytes(cfg.Upload.MaxBytes + multipartOverhead)

	mux := http.NewServeMux()
	mux.Handle("POST /api/analyze", api(http.HandlerFunc(diagrams.Analyze)))
	mux.Handle("POST /api/extract", api(http.HandlerFunc(diagrams.Extract)))
	mux.Handle("POST /api/classify", api(http.HandlerFunc(diagrams.Classify)))
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	router := &Router{}
	if cfg.RateLimit.Enabled() {
		router.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		mws = append(mws, router.limiter.Limit(cfg.RateLimit.RequestsPerMinute))
	}

	router.Handler = middleware.Chain(mws...)(mux)
	return router
}
