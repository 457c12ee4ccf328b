// Package extraction reconstructs linear plain text from paginated PDF
// documents. PDF text streams carry no line structure; lines are rebuilt
// from the baseline vertical position of each text run.
package extraction

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"
)

// lineBreakThreshold is the vertical distance (in PDF layout units) between
// two consecutive runs beyond which a line break is emitted. Runs on the
// same visual line share a baseline within this tolerance.
const lineBreakThreshold = 5.0

// maxPageWorkers bounds the number of pages extracted concurrently.
const maxPageWorkers = 4

// DocumentUnreadableError indicates the document could not be opened at
// all. It is the only fatal extraction failure; per-page errors are
// logged and skipped.
type DocumentUnreadableError struct {
	Source string
	Cause  error
}

func (e *DocumentUnreadableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document unreadable: %s: %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("document unreadable: %s", e.Source)
}

func (e *DocumentUnreadableError) Unwrap() error {
	return e.Cause
}

// Compile-time interface check kept close to the implementation so the
// pipeline contract cannot drift.
var _ interface {
	Extract(data []byte) (string, error)
} = (*PDFExtractor)(nil)

// PDFExtractor extracts plain text from PDF bytes or files.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF extractor.
func NewPDFExtractor() *PDFExtractor { return &PDFExtractor{} }

// ExtractFile extracts all text from a PDF file on disk.
func (e *PDFExtractor) ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &DocumentUnreadableError{Source: path, Cause: err}
	}
	return e.Extract(data)
}

// Extract reconstructs the full document text from PDF bytes. Pages are
// extracted independently and a single page's failure never aborts the
// rest; the worst healthy outcome is an empty string when every page
// fails. Only failure to open the document is fatal.
func (e *PDFExtractor) Extract(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &DocumentUnreadableError{Source: "(bytes)", Cause: fmt.Errorf("empty document")}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DocumentUnreadableError{Source: "(bytes)", Cause: err}
	}

	numPages := reader.NumPage()
	pageTexts := make([]string, numPages+1)

	var g errgroup.Group
	g.SetLimit(maxPageWorkers)
	var mu sync.Mutex

	for i := 1; i <= numPages; i++ {
		g.Go(func() error {
			page := reader.Page(i)
			if page.V.IsNull() {
				return nil
			}
			text, err := pageText(page)
			if err != nil {
				log.Printf("extraction: skipping page %d: %v", i, err)
				return nil
			}
			mu.Lock()
			pageTexts[i] = text
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		if pageTexts[i] == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(pageTexts[i])
	}

	return normalize(sb.String()), nil
}

// textRun is one positioned fragment of page text with its baseline
// vertical coordinate.
type textRun struct {
	s string
	y float64
}

// pageText extracts one page's text, rebuilding line breaks from run
// baselines. The pdf library panics on some malformed content streams, so
// the recover converts those into a skippable per-page error.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()

	content := page.Content()
	runs := make([]textRun, 0, len(content.Text))
	for _, t := range content.Text {
		runs = append(runs, textRun{s: t.S, y: t.Y})
	}
	return assembleLines(runs), nil
}

// assembleLines joins runs in rendering order, emitting a line break
// whenever the baseline moves by more than lineBreakThreshold.
func assembleLines(runs []textRun) string {
	var sb strings.Builder
	for i, run := range runs {
		if i > 0 {
			delta := run.y - runs[i-1].y
			if delta < 0 {
				delta = -delta
			}
			if delta > lineBreakThreshold {
				sb.WriteString("\n")
			}
		}
		sb.WriteString(run.s)
	}
	return sb.String()
}

// normalize strips trailing whitespace from each line and collapses runs
// of three or more blank lines down to exactly two.
func normalize(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	var out []string
	blanks := 0
	for _, line := range lines {
		if line == "" {
			blanks++
			if blanks > 2 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
