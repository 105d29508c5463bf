package diagram

import (
	"bytes"
	"context"
	"strings"

	"github.com/heartmarshall/bpe-analyzer/internal/analyzer"
	"github.com/heartmarshall/bpe-analyzer/internal/domain"
	"github.com/heartmarshall/bpe-analyzer/internal/drawio"
)

// Analyze extracts the labels of an uploaded diagram and classifies them.
// A diagram without any multi-word label is a validation error.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) (domain.AnalysisResult, error) {
	if err := input.Validate(s.limits); err != nil {
		return domain.AnalysisResult{}, err
	}

	labels, err := drawio.Extract(bytes.NewReader(input.Content))
	if err != nil {
		s.logFor(ctx).WarnContext(ctx, "diagram parse failed", "size", len(input.Content), "error", err)
		return domain.AnalysisResult{}, err
	}
	if len(labels) == 0 {
		return domain.AnalysisResult{}, domain.NewValidationError("file", MsgNoLabels)
	}

	res := analyzer.Analyze(labels)
	s.logFor(ctx).DebugContext(ctx, "diagram analyzed",
		"labels", res.TotalLabels,
		"verbs", res.Statistics.VerbCount,
		"nouns", res.Statistics.NounCount,
	)
	return res, nil
}

// ExtractLabels returns the unique multi-word labels of a diagram given as
// a string. Zero labels is a valid result here.
func (s *Service) ExtractLabels(ctx context.Context, input ExtractInput) ([]string, error) {
	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	labels, err := drawio.Extract(strings.NewReader(input.XMLContent))
	if err != nil {
		s.logFor(ctx).WarnContext(ctx, "diagram parse failed", "size", len(input.XMLContent), "error", err)
		return nil, err
	}
	if labels == nil {
		labels = []string{}
	}
	return labels, nil
}

// ClassifyLabels classifies labels obtained from ExtractLabels.
func (s *Service) ClassifyLabels(_ context.Context, input ClassifyInput) (domain.AnalysisResult, error) {
	if err := input.Validate(s.limits); err != nil {
		return domain.AnalysisResult{}, err
	}
	return analyzer.Analyze(input.Labels), nil
}
