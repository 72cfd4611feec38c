package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/quotation"
)

// ErrUnknownFormat is returned by Export for a format other than Formats.
var ErrUnknownFormat = errors.New("unknown export format")

// Export formats.
const (
	FormatPDF      = "pdf"
	FormatMarkdown = "md"
)

// Formats lists the formats accepted by Export, the default first.
func Formats() []string { return []string{FormatPDF, FormatMarkdown} }

// Export renders q in format and writes it to dir/q.Filename(format). It
// returns the path of the written file.
//
// The document is rendered in memory first, nothing is written when
// rendering fails.
func Export(dir, format string, q *quotation.Quotation) (string, error) {
	var buf bytes.Buffer
	switch format {
	case FormatPDF:
		if err := PDF(&buf, q); err != nil {
			return "", fmt.Errorf("rendering pdf: %w", err)
		}
	case FormatMarkdown:
		buf.WriteString(Markdown(q))
	default:
		return "", fmt.Errorf("%w %q, want one of %q", ErrUnknownFormat, format, Formats())
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, q.Filename(format))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	log.Printf("exported %d items to %s (%d bytes)", q.Count(), path, buf.Len())
	return path, nil
}
