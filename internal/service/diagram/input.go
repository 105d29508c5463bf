package diagram

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/heartmarshall/bpe-analyzer/internal/config"
	"github.com/heartmarshall/bpe-analyzer/internal/domain"
)

// User-facing validation messages.
const (
	MsgNoFile          = "No file provided"
	MsgInvalidFileType = "Invalid file type. Please upload an XML file."
	MsgEmptyFile       = "File is empty"
	MsgNoLabels        = "No valid labels found in the diagram"
	MsgNoXMLContent    = "No XML content provided"
	MsgInvalidBody     = "Invalid request body"
)

// TooLargeMessage is the message for content above limit bytes.
func TooLargeMessage(limit int64) string {
	return "File exceeds maximum size of " + humanize.IBytes(uint64(limit))
}

// TooManyLabelsMessage is the message for more than limit labels.
func TooManyLabelsMessage(limit int) string {
	return fmt.Sprintf("Too many labels (max %d)", limit)
}

// AnalyzeInput is an uploaded diagram file.
type AnalyzeInput struct {
	Filename string
	Content  []byte
}

// Validate checks the upload in the order a caller fixes problems: presence,
// type, emptiness, size. Only the first failure is reported.
func (i AnalyzeInput) Validate(limits config.UploadConfig) error {
	if strings.TrimSpace(i.Filename) == "" {
		return domain.NewValidationError("file", MsgNoFile)
	}
	if !strings.EqualFold(filepath.Ext(i.Filename), ".xml") {
		return domain.NewValidationError("file", MsgInvalidFileType)
	}
	if len(i.Content) == 0 {
		return domain.NewValidationError("file", MsgEmptyFile)
	}
	if limits.MaxBytes > 0 && int64(len(i.Content)) > limits.MaxBytes {
		return domain.NewValidationError("file", TooLargeMessage(limits.MaxBytes))
	}
	return nil
}

// ExtractInput is raw diagram XML submitted as a string.
type ExtractInput struct {
	XMLContent string
}

// Validate checks that content is present and within the size limit.
func (i ExtractInput) Validate(limits config.UploadConfig) error {
	if strings.TrimSpace(i.XMLContent) == "" {
		return domain.NewValidationError("xmlContent", MsgNoXMLContent)
	}
	if limits.MaxBytes > 0 && int64(len(i.XMLContent)) > limits.MaxBytes {
		return domain.NewValidationError("xmlContent", TooLargeMessage(limits.MaxBytes))
	}
	return nil
}

// ClassifyInput is a list of previously extracted labels.
type ClassifyInput struct {
	Labels []string
}

// Validate checks the label count against the limit. An empty list is valid.
func (i ClassifyInput) Validate(limits config.UploadConfig) error {
	if limits.MaxLabels > 0 && len(i.Labels) > limits.MaxLabels {
		return domain.NewValidationError("labels", TooManyLabelsMessage(limits.MaxLabels))
	}
	return nil
}
