package diagram

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/bpe-analyzer/internal/config"
	"github.com/heartmarshall/bpe-analyzer/internal/domain"
)

//go:generate moq -out file_source_mock_test.go -pkg diagram . fileSource

const workedExample = `<mxfile host="app.diagrams.net"><diagram name="Page-1"><mxGraphModel><root>
<mxCell id="0"/><mxCell id="1" parent="0"/>
<mxCell id="2" value="Customer enters payment details" vertex="1" parent="1"/>
<mxCell id="3" value="System validates payment" vertex="1" parent="1"/>
<mxCell id="4" value="Notification sent" vertex="1" parent="1"/>
<mxCell id="5" value="Approved" vertex="1" parent="1"/>
<mxCell id="6" value="Send &amp;lt;br&amp;gt;receipt" vertex="1" parent="1"/>
<mxCell id="7" value="System validates payment" vertex="1" parent="1"/>
</root></mxGraphModel></diagram></mxfile>`

func testLimits() config.UploadConfig {
	return config.UploadConfig{MaxBytes: 1 << 20, MaxLabels: 10}
}

func newTestService(t *testing.T, files fileSource) *Service {
	t.Helper()
	if files == nil {
		files = &fileSourceMock{}
	}
	return newService(slog.Default(), testLimits(), files)
}

func requireValidation(t *testing.T, err error, msg string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, msg, domain.UserMessage(err))
}

func TestAnalyze_Success(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)

	res, err := svc.Analyze(context.Background(), AnalyzeInput{Filename: "flow.xml", Content: []byte(workedExample)})
	require.NoError(t, err)

	assert.Equal(t, 4, res.TotalLabels)
	require.Len(t, res.VerbPhrases, 1)
	assert.Equal(t, "Send receipt", res.VerbPhrases[0].Text)
	require.Len(t, res.NounPhrases, 3)
	assert.Equal(t, "System validates payment", res.NounPhrases[1].Text)
	assert.Empty(t, res.Others)
	assert.InDelta(t, 75.0, res.Statistics.NounPercentage, 1e-9)
}

func TestAnalyze_UpperCaseExtension(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)

	_, err := svc.Analyze(context.Background(), AnalyzeInput{Filename: "FLOW.XML", Content: []byte(workedExample)})
	require.NoError(t, err)
}

func TestAnalyze_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input AnalyzeInput
		msg   string
	}{
		{name: "no file", input: AnalyzeInput{}, msg: MsgNoFile},
		{name: "wrong type", input: AnalyzeInput{Filename: "flow.drawio", Content: []byte(workedExample)}, msg: MsgInvalidFileType},
		{name: "no extension", input: AnalyzeInput{Filename: "xml", Content: []byte(workedExample)}, msg: MsgInvalidFileType},
		{name: "type checked before emptiness", input: AnalyzeInput{Filename: "a.png"}, msg: MsgInvalidFileType},
		{name: "empty", input: AnalyzeInput{Filename: "flow.xml", Content: []byte{}}, msg: MsgEmptyFile},
		{name: "too large", input: AnalyzeInput{Filename: "flow.xml", Content: make([]byte, 1<<20+1)}, msg: "File exceeds maximum size of 1.0 MiB"},
		{
			name:  "no labels",
			input: AnalyzeInput{Filename: "flow.xml", Content: []byte(`<mxfile><diagram><mxGraphModel><root><mxCell id="2" value="Start" vertex="1"/></root></mxGraphModel></diagram></mxfile>`)},
			msg:   MsgNoLabels,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestService(t, nil)

			_, err := svc.Analyze(context.Background(), tt.input)
			requireValidation(t, err, tt.msg)
		})
	}
}

func TestAnalyze_ParseError(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)

	_, err := svc.Analyze(context.Background(), AnalyzeInput{Filename: "flow.xml", Content: []byte("<mxfile><diagram>")})
	require.ErrorIs(t, err, domain.ErrParse)
	assert.Equal(t, domain.ParseErrorMessage, domain.UserMessage(err))
}

func TestExtractLabels(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)

	labels, err := svc.ExtractLabels(context.Background(), ExtractInput{XMLContent: workedExample})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Customer enters payment details",
		"System validates payment",
		"Notification sent",
		"Send receipt",
	}, labels)
}

func TestExtractLabels_NoLabelsIsNotAnError(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)

	labels, err := svc.ExtractLabels(context.Background(), ExtractInput{XMLContent: `<mxfile/>`})
	require.NoError(t, err)
	assert.NotNil(t, labels)
	assert.Empty(t, labels)
}

func TestExtractLabels_Errors(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)

	_, err := svc.ExtractLabels(context.Background(), ExtractInput{XMLContent: "   "})
	requireValidation(t, err, MsgNoXMLContent)

	_, err = svc.ExtractLabels(context.Background(), ExtractInput{XMLContent: strings.Repeat("x", 1<<20+1)})
	requireValidation(t, err, TooLargeMessage(1<<20))

	_, err = svc.ExtractLabels(context.Background(), ExtractInput{XMLContent: "<svg/>"})
	require.ErrorIs(t, err, domain.ErrParse)
}

func TestClassifyLabels(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)

	res, err := svc.ClassifyLabels(context.Background(), ClassifyInput{Labels: []string{"Book seat", "Ticket issued", "Hmm well"}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Statistics.VerbCount)
	assert.Equal(t, 1, res.Statistics.NounCount)
	assert.Equal(t, 1, res.Statistics.OtherCount)

	empty, err := svc.ClassifyLabels(context.Background(), ClassifyInput{})
	require.NoError(t, err)
	assert.Zero(t, empty.TotalLabels)
	assert.Zero(t, empty.Statistics)

	_, err = svc.ClassifyLabels(context.Background(), ClassifyInput{Labels: make([]string, 11)})
	requireValidation(t, err, "Too many labels (max 10)")
}

func TestTwoCallFlowMatchesAnalyze(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)
	ctx := context.Background()

	single, err := svc.Analyze(ctx, AnalyzeInput{Filename: "flow.xml", Content: []byte(workedExample)})
	require.NoError(t, err)

	labels, err := svc.ExtractLabels(ctx, ExtractInput{XMLContent: workedExample})
	require.NoError(t, err)
	double, err := svc.ClassifyLabels(ctx, ClassifyInput{Labels: labels})
	require.NoError(t, err)

	assert.Equal(t, single, double)
}

func TestAnalyzeFiles(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"a.xml": workedExample,
		"b.xml": `<mxGraphModel><root><mxCell id="2" value="Open account" vertex="1"/></root></mxGraphModel>`,
		"c.xml": `<mxfile/>`,
	}
	src := &fileSourceMock{
		ReadFileFunc: func(path string) ([]byte, error) {
			data, ok := files[path]
			if !ok {
				return nil, fs.ErrNotExist
			}
			return []byte(data), nil
		},
	}
	svc := newTestService(t, src)

	got, err := svc.AnalyzeFiles(context.Background(), []string{"c.xml", "a.xml", "b.xml"}, 2)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "c.xml", got[0].Path)
	assert.Zero(t, got[0].Result.TotalLabels)
	assert.Equal(t, "a.xml", got[1].Path)
	assert.Equal(t, int64(len(workedExample)), got[1].Size)
	assert.Equal(t, 4, got[1].Result.TotalLabels)
	assert.Equal(t, []string{"Open account"}, got[2].Labels)
	assert.Len(t, src.ReadFileCalls(), 3)
}

func TestAnalyzeFiles_FirstErrorWins(t *testing.T) {
	t.Parallel()

	src := &fileSourceMock{
		ReadFileFunc: func(path string) ([]byte, error) {
			if path == "broken.xml" {
				return []byte("<mxfile>"), nil
			}
			return []byte(workedExample), nil
		},
	}
	svc := newTestService(t, src)

	_, err := svc.AnalyzeFiles(context.Background(), []string{"ok.xml", "broken.xml"}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "broken.xml")
}

func TestAnalyzeFiles_ReadError(t *testing.T) {
	t.Parallel()

	src := &fileSourceMock{
		ReadFileFunc: func(string) ([]byte, error) { return nil, fs.ErrPermission },
	}
	svc := newTestService(t, src)

	_, err := svc.AnalyzeFiles(context.Background(), []string{"secret.xml"}, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestAnalyzeFiles_CanceledContext(t *testing.T) {
	t.Parallel()

	src := &fileSourceMock{
		ReadFileFunc: func(string) ([]byte, error) { return []byte(workedExample), nil },
	}
	svc := newTestService(t, src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AnalyzeFiles(ctx, []string{"a.xml"}, 1)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, src.ReadFileCalls())
}

func TestAnalyzeFiles_Empty(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)

	got, err := svc.AnalyzeFiles(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}
