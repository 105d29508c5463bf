package diagram

import (
	"bytes"
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bpe-analyzer/internal/analyzer"
	"github.com/heartmarshall/bpe-analyzer/internal/domain"
	"github.com/heartmarshall/bpe-analyzer/internal/drawio"
	"github.com/heartmarshall/bpe-analyzer/pkg/ctxutil"
)

// AnalyzeFile runs the pipeline over one local diagram file. Unlike Analyze,
// a file without labels yields an empty result rather than an error, so a
// batch report can list it.
func (s *Service) AnalyzeFile(ctx context.Context, path string) (domain.FileAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.FileAnalysis{}, err
	}

	data, err := s.files.ReadFile(path)
	if err != nil {
		return domain.FileAnalysis{}, fmt.Errorf("read %s: %w", path, err)
	}
	if s.limits.MaxBytes > 0 && int64(len(data)) > s.limits.MaxBytes {
		return domain.FileAnalysis{}, fmt.Errorf("%s: %w",
			path, domain.NewValidationError("file", TooLargeMessage(s.limits.MaxBytes)))
	}

	labels, err := drawio.Extract(bytes.NewReader(data))
	if err != nil {
		s.logFor(ctxutil.WithSource(ctx, path)).DebugContext(ctx, "diagram parse failed", "error", err)
		return domain.FileAnalysis{}, fmt.Errorf("%s: %w", path, err)
	}

	return domain.FileAnalysis{
		Path:   path,
		Size:   int64(len(data)),
		Labels: labels,
		Result: analyzer.Analyze(labels),
	}, nil
}

// AnalyzeFiles analyzes paths concurrently with at most jobs files in
// flight (jobs <= 0 means GOMAXPROCS). Results follow the order of paths.
// The first failure cancels the remaining work and is returned.
func (s *Service) AnalyzeFiles(ctx context.Context, paths []string, jobs int) ([]domain.FileAnalysis, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]domain.FileAnalysis, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			fa, err := s.AnalyzeFile(gctx, path)
			if err != nil {
				return err
			}
			results[i] = fa
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "batch analyzed", "files", len(paths), "jobs", jobs)
	return results, nil
}
