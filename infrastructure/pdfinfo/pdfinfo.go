// Package pdfinfo extracts a first-page summary and headline financial
// metrics from downloaded report PDFs.
package pdfinfo

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/klippa-app/go-pdfium/webassembly"
)

// summaryLimit caps the first-page excerpt stored as a report summary.
const summaryLimit = 500

const instanceTimeout = 30 * time.Second

// Info is what a report PDF yields: a short text excerpt and a sparse
// JSON metrics object ("" when no metric matched).
type Info struct {
	Summary string
	Metrics string
}

// Extractor pulls Info out of PDF bytes.
type Extractor interface {
	Extract(data []byte) (Info, error)
}

// PdfiumExtractor implements Extractor on an embedded pdfium runtime.
type PdfiumExtractor struct {
	pool pdfium.Pool
}

// New initializes the pdfium worker pool.
func New() (*PdfiumExtractor, error) {
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("init pdfium: %w", err)
	}
	return &PdfiumExtractor{pool: pool}, nil
}

// Close releases the pdfium runtime.
func (e *PdfiumExtractor) Close() error {
	return e.pool.Close()
}

// Extract reads the first page of a PDF and derives Info from its text.
func (e *PdfiumExtractor) Extract(data []byte) (Info, error) {
	instance, err := e.pool.GetInstance(instanceTimeout)
	if err != nil {
		return Info{}, fmt.Errorf("get pdfium instance: %w", err)
	}
	defer instance.Close()

	doc, err := instance.OpenDocument(&requests.OpenDocument{File: &data})
	if err != nil {
		return Info{}, fmt.Errorf("open pdf: %w", err)
	}
	defer instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: doc.Document})

	pageText, err := instance.GetPageText(&requests.GetPageText{
		Page: requests.Page{
			ByIndex: &requests.PageByIndex{
				Document: doc.Document,
				Index:    0,
			},
		},
	})
	if err != nil {
		return Info{}, fmt.Errorf("extract pdf text: %w", err)
	}

	return FromText(pageText.Text), nil
}

// FromText derives Info from already-extracted page text.
func FromText(text string) Info {
	return Info{
		Summary: clipRunes(text, summaryLimit),
		Metrics: metricsJSON(text),
	}
}

// clipRunes shortens s to at most limit bytes without splitting a
// multi-byte rune.
func clipRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

var (
	aumPattern    = regexp.MustCompile(`(?i)\$?\s*(\d+\.?\d*)\s*(billion|million|trillion)\s+(?:in\s+)?(?:AUM|assets)`)
	returnPattern = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*%\s+(?:return|performance|gain)`)
	sharpePattern = regexp.MustCompile(`(?i)sharpe\s+ratio\s*:?\s*(\d+\.?\d*)`)
)

// ExtractMetrics scans text for AUM, return, and Sharpe-ratio phrases.
func ExtractMetrics(text string) map[string]string {
	metrics := make(map[string]string)

	if m := aumPattern.FindStringSubmatch(text); m != nil {
		metrics["aum"] = m[1] + " " + m[2]
	}
	if m := returnPattern.FindStringSubmatch(text); m != nil {
		metrics["return"] = m[1] + "%"
	}
	if m := sharpePattern.FindStringSubmatch(text); m != nil {
		metrics["sharpe_ratio"] = m[1]
	}
	return metrics
}

func metricsJSON(text string) string {
	metrics := ExtractMetrics(text)
	if len(metrics) == 0 {
		return ""
	}
	data, err := json.Marshal(metrics)
	if err != nil {
		return ""
	}
	return string(data)
}
