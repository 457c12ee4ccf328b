package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedrohmarconato/curriculo-ingest/internal/classifier"
	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

func TestPrintVerdict(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVerdict(classifier.Verdict{Plausible: true, KeywordHits: 3, StructuralHits: 2})
	output := buf.String()

	assert.Contains(t, output, "PLAUSIBILITY VERDICT")
	assert.Contains(t, output, "Plausible:  yes")
	assert.Contains(t, output, "3 hits")
	assert.Contains(t, output, "2 hits")
}

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := types.DefaultResume("Maria Oliveira", "maria@example.com")
	p.PrintResume(resume)
	output := buf.String()

	assert.Contains(t, output, "STRUCTURED RESUME")
	assert.Contains(t, output, "Maria Oliveira")
	assert.Contains(t, output, "maria@example.com")
	assert.Contains(t, output, "Languages:")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintProvenance(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	warnings := []string{
		"remote structuring failed, using local parser",
		"keyword extraction failed for Acme Corp",
	}
	p.PrintProvenance(types.Provenance{Source: types.SourceHeuristic}, warnings)
	output := buf.String()

	assert.Contains(t, output, "PROVENANCE")
	assert.Contains(t, output, string(types.SourceHeuristic))
	assert.Contains(t, output, "Warnings: 2")
	assert.Contains(t, output, "remote structuring failed")
}

func TestPrintProvenance_ManyWarningsTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	warnings := make([]string, maxItemsToShow+3)
	for i := range warnings {
		warnings[i] = "aviso"
	}
	p.PrintProvenance(types.Provenance{Source: types.SourceDefault}, warnings)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintMarketExperience(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	market := &types.MarketExperience{
		Details: []types.MarketDetail{
			{Company: "Acme Corp", Keywords: []string{"vendas", "gestão"}},
		},
	}
	p.PrintMarketExperience(market)
	output := buf.String()

	assert.Contains(t, output, "MARKET EXPERIENCE")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "vendas, gestão")
}

func TestPrintMarketExperience_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMarketExperience(nil)
	p.PrintMarketExperience(&types.MarketExperience{})

	assert.Empty(t, buf.String())
}

func TestPrintBox_LongLinesTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", boxWidth*2))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
