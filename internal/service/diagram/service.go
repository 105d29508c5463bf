package diagram

import (
	"context"
	"log/slog"
	"os"

	"github.com/heartmarshall/bpe-analyzer/internal/config"
	"github.com/heartmarshall/bpe-analyzer/pkg/ctxutil"
)

// fileSource reads diagram files for batch analysis.
type fileSource interface {
	ReadFile(path string) ([]byte, error)
}

// osFiles reads from the local filesystem.
type osFiles struct{}

func (osFiles) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// Service runs the extract → classify pipeline for uploads, request bodies
// and local files.
type Service struct {
	files  fileSource
	limits config.UploadConfig
	log    *slog.Logger
}

// NewService creates a diagram Service reading files from disk.
func NewService(log *slog.Logger, limits config.UploadConfig) *Service {
	return newService(log, limits, osFiles{})
}

func newService(log *slog.Logger, limits config.UploadConfig, files fileSource) *Service {
	return &Service{
		files:  files,
		limits: limits,
		log:    log.With("service", "diagram"),
	}
}

// logFor scopes the service logger to the request and document in ctx.
func (s *Service) logFor(ctx context.Context) *slog.Logger {
	l := s.log
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		l = l.With("request_id", id)
	}
	if src := ctxutil.SourceFromCtx(ctx); src != "" {
		l = l.With("source", src)
	}
	return l
}
