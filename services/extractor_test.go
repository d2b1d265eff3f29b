package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeMinimalPDF builds a one-page PDF with a single text run, computing
// the xref offsets as it writes.
func writeMinimalPDF(t *testing.T, path, text string) {
	t.Helper()

	var buf bytes.Buffer
	offsets := make([]int, 6)

	buf.WriteString("%PDF-1.4\n")

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	stream := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>")
	writeObj(4, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	writeObj(5, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	xrefPos := buf.Len()
	buf.WriteString("xref\n0 6\n")
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefPos)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
}

func TestExtractTextSinglePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	writeMinimalPDF(t, path, "The capital of France is Paris.")

	text, err := NewPDFExtractor().ExtractText(context.Background(), path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(text, "The capital of France is Paris.") {
		t.Errorf("extracted text %q missing page content", text)
	}
	if !strings.HasSuffix(text, "\n") {
		t.Errorf("page text must be followed by a newline")
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	_, err := NewPDFExtractor().ExtractText(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if kind, ok := KindOf(err); !ok || kind != KindExtraction {
		t.Errorf("expected extraction kind, got %v", err)
	}
}

func TestExtractTextMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewPDFExtractor().ExtractText(context.Background(), path)
	if err == nil {
		t.Fatal("expected an error for a malformed file")
	}
	if kind, ok := KindOf(err); !ok || kind != KindExtraction {
		t.Errorf("expected extraction kind, got %v", err)
	}
}

func TestExtractTextCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPDFExtractor().ExtractText(ctx, "ignored.pdf")
	if err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
	if kind, ok := KindOf(err); !ok || kind != KindExtraction {
		t.Errorf("expected extraction kind, got %v", err)
	}
}
