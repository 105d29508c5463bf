package app

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bpe-analyzer/internal/analyzer"
	"github.com/heartmarshall/bpe-analyzer/internal/domain"
	"github.com/heartmarshall/bpe-analyzer/internal/drawio"
)

const selfTestDiagram = `<mxfile><diagram name="self-test"><mxGraphModel><root>` +
	`<mxCell id="0"/><mxCell id="1" parent="0"/>` +
	`<mxCell id="2" value="Validate&lt;br&gt;order" vertex="1" parent="1"/>` +
	`<mxCell id="3" value="Payment received" vertex="1" parent="1"/>` +
	`</root></mxGraphModel></diagram></mxfile>`

// pipelineSelfTest runs a fixed diagram through extraction and analysis and
// checks the known outcome.
func pipelineSelfTest(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	labels, err := drawio.ExtractString(selfTestDiagram)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	res := analyzer.Analyze(labels)
	if res.Statistics.VerbCount != 1 || res.Statistics.NounCount != 1 {
		return fmt.Errorf("unexpected classification: %d verb, %d noun",
			res.Statistics.VerbCount, res.Statistics.NounCount)
	}
	if got := res.VerbPhrases[0]; got.Text != "Validate order" || got.Category != domain.CategoryVerb {
		return fmt.Errorf("unexpected verb phrase %q", got.Text)
	}
	return nil
}
