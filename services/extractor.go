package services

import (
	"bytes"
	"context"
	"os"
	"strings"

	"rag-analyzer/internal/logger"

	"github.com/ledongthuc/pdf"
)

// TextExtractor turns a staged PDF file into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// PDFExtractor extracts text with the pure-Go PDF reader. Output is every
// page's text followed by a newline; pages without extractable text
// contribute nothing, a page that fails to parse is skipped rather than
// failing the document.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", NewError(KindExtraction, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", Errorf(KindExtraction, "failed to read PDF file: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", Errorf(KindExtraction, "failed to parse PDF: %w", err)
	}

	var textBuilder strings.Builder
	pages := reader.NumPage()

	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		fonts := make(map[string]*pdf.Font)
		text, err := page.GetPlainText(fonts)
		if err != nil {
			logger.Warn("failed to extract text from page", "page", i, "error", err)
			continue
		}

		if text != "" {
			textBuilder.WriteString(text)
			textBuilder.WriteString("\n")
		}
	}

	return textBuilder.String(), nil
}
