package analyzer

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/heartmarshall/bpe-analyzer/internal/domain"
)

func TestAnalyze_WorkedExample(t *testing.T) {
	t.Parallel()

	got := Analyze([]string{
		"Customer enters payment details",
		"System validates payment",
		"Notification sent",
	})

	want := domain.AnalysisResult{
		TotalLabels: 3,
		VerbPhrases: []domain.ClassifiedLabel{},
		NounPhrases: []domain.ClassifiedLabel{
			{Text: "Customer enters payment details", FirstWord: "Customer", Category: domain.CategoryNoun, Confidence: 0.9},
			{Text: "System validates payment", FirstWord: "System", Category: domain.CategoryNoun, Confidence: 0.9},
			{Text: "Notification sent", FirstWord: "Notification", Category: domain.CategoryNoun, Confidence: 0.9},
		},
		Others: []domain.ClassifiedLabel{},
		Statistics: domain.Statistics{
			NounCount:      3,
			NounPercentage: 100,
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyze_MixedBucketsKeepOrder(t *testing.T) {
	t.Parallel()

	got := Analyze([]string{
		"Send confirmation email",
		"Payment gateway",
		"Quarterly review",
		"Validate seat",
		"Account locked",
		"Xyz abc",
	})

	texts := func(ls []domain.ClassifiedLabel) []string {
		out := make([]string, 0, len(ls))
		for _, l := range ls {
			out = append(out, l.Text)
		}
		return out
	}

	if diff := cmp.Diff([]string{"Send confirmation email", "Validate seat"}, texts(got.VerbPhrases)); diff != "" {
		t.Errorf("verb bucket (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Payment gateway", "Account locked"}, texts(got.NounPhrases)); diff != "" {
		t.Errorf("noun bucket (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Quarterly review", "Xyz abc"}, texts(got.Others)); diff != "" {
		t.Errorf("other bucket (-want +got):\n%s", diff)
	}

	for _, l := range got.Others {
		if l.Confidence != domain.ConfidenceUnclassified {
			t.Errorf("%q confidence = %v, want %v", l.Text, l.Confidence, domain.ConfidenceUnclassified)
		}
	}

	wantStats := domain.Statistics{
		VerbCount: 2, NounCount: 2, OtherCount: 2,
		VerbPercentage: 100.0 / 3, NounPercentage: 100.0 / 3, OtherPercentage: 100.0 / 3,
	}
	if diff := cmp.Diff(wantStats, got.Statistics, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("statistics (-want +got):\n%s", diff)
	}
}

func TestAnalyze_PercentagesSumTo100(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{"Send email"},
		{"Send email", "Customer arrives"},
		{"Send email", "Customer arrives", "Lunch break", "Book seat", "Issue refund", "Ticket closed", "Maybe later"},
	}
	for _, labels := range inputs {
		s := Analyze(labels).Statistics
		sum := s.VerbPercentage + s.NounPercentage + s.OtherPercentage
		if math.Abs(sum-100) > 1e-9 {
			t.Errorf("percentages for %v sum to %v", labels, sum)
		}
		if s.VerbCount+s.NounCount+s.OtherCount != len(labels) {
			t.Errorf("counts for %v do not add up to %d", labels, len(labels))
		}
	}
}

func TestAnalyze_Empty(t *testing.T) {
	t.Parallel()

	for _, labels := range [][]string{nil, {}} {
		got := Analyze(labels)
		if got.TotalLabels != 0 {
			t.Errorf("TotalLabels = %d, want 0", got.TotalLabels)
		}
		if diff := cmp.Diff(domain.Statistics{}, got.Statistics); diff != "" {
			t.Errorf("statistics (-want +got):\n%s", diff)
		}
		if got.VerbPhrases == nil || got.NounPhrases == nil || got.Others == nil {
			t.Error("buckets must be non-nil")
		}
	}
}

func TestAnalyze_BlankLabelSkipped(t *testing.T) {
	t.Parallel()

	got := Analyze([]string{"  ", "Send email"})
	if got.TotalLabels != 2 {
		t.Errorf("TotalLabels = %d, want 2", got.TotalLabels)
	}
	if n := len(got.VerbPhrases) + len(got.NounPhrases) + len(got.Others); n != 1 {
		t.Errorf("classified %d labels, want 1", n)
	}
	if got.Statistics.VerbPercentage != 50 {
		t.Errorf("VerbPercentage = %v, want 50", got.Statistics.VerbPercentage)
	}
}

func TestAnalyze_JSONShape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Analyze(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"totalLabels":0,"verbPhrases":[],"nounPhrases":[],"others":[],` +
		`"statistics":{"verbCount":0,"nounCount":0,"otherCount":0,"verbPercentage":0,"nounPercentage":0,"otherPercentage":0}}`
	if string(data) != want {
		t.Errorf("json = %s\nwant   %s", data, want)
	}
}
