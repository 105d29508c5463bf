// Package analyzer classifies extracted labels by their leading word and
// aggregates per-category statistics.
package analyzer

import (
	"github.com/heartmarshall/bpe-analyzer/internal/classifier"
	"github.com/heartmarshall/bpe-analyzer/internal/domain"
)

// Analyze classifies every label and returns the bucketed result. Labels
// without any word are skipped but still count toward TotalLabels. Buckets
// keep input order and are never nil.
func Analyze(labels []string) domain.AnalysisResult {
	res := domain.AnalysisResult{
		TotalLabels: len(labels),
		VerbPhrases: []domain.ClassifiedLabel{},
		NounPhrases: []domain.ClassifiedLabel{},
		Others:      []domain.ClassifiedLabel{},
	}

	for _, label := range labels {
		first, ok := domain.FirstWord(label)
		if !ok {
			continue
		}

		cat := classifier.Classify(first)
		cl := domain.ClassifiedLabel{
			Text:       label,
			FirstWord:  first,
			Category:   cat,
			Confidence: classifier.Confidence(cat),
		}

		switch cat {
		case domain.CategoryVerb:
			res.VerbPhrases = append(res.VerbPhrases, cl)
		case domain.CategoryNoun:
			res.NounPhrases = append(res.NounPhrases, cl)
		default:
			res.Others = append(res.Others, cl)
		}
	}

	res.Statistics = statistics(res)
	return res
}

func statistics(res domain.AnalysisResult) domain.Statistics {
	s := domain.Statistics{
		VerbCount:  len(res.VerbPhrases),
		NounCount:  len(res.NounPhrases),
		OtherCount: len(res.Others),
	}
	s.VerbPercentage = percentage(s.VerbCount, res.TotalLabels)
	s.NounPercentage = percentage(s.NounCount, res.TotalLabels)
	s.OtherPercentage = percentage(s.OtherCount, res.TotalLabels)
	return s
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
