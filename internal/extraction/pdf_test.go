package extraction

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleLines(t *testing.T) {
	tests := []struct {
		name     string
		runs     []textRun
		expected string
	}{
		{
			name:     "empty input",
			runs:     nil,
			expected: "",
		},
		{
			name: "runs on the same baseline stay on one line",
			runs: []textRun{
				{s: "João ", y: 700},
				{s: "Souza", y: 700},
			},
			expected: "João Souza",
		},
		{
			name: "small baseline jitter does not break the line",
			runs: []textRun{
				{s: "Engenheiro ", y: 700},
				{s: "de Software", y: 697},
			},
			expected: "Engenheiro de Software",
		},
		{
			name: "baseline drop beyond threshold breaks the line",
			runs: []textRun{
				{s: "João Souza", y: 700},
				{s: "Engenheiro", y: 680},
			},
			expected: "João Souza\nEngenheiro",
		},
		{
			name: "upward movement also breaks the line",
			runs: []textRun{
				{s: "coluna direita", y: 400},
				{s: "coluna esquerda", y: 650},
			},
			expected: "coluna direita\ncoluna esquerda",
		},
		{
			name: "multiple lines",
			runs: []textRun{
				{s: "Experiência", y: 700},
				{s: "Acme Corp", y: 684},
				{s: " - ", y: 684},
				{s: "Engenheiro", y: 684},
				{s: "2020 - atual", y: 668},
			},
			expected: "Experiência\nAcme Corp - Engenheiro\n2020 - atual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, assembleLines(tt.runs))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trailing whitespace stripped per line",
			input:    "linha um   \nlinha dois\t",
			expected: "linha um\nlinha dois",
		},
		{
			name:     "three blank lines collapse to two",
			input:    "a\n\n\n\nb",
			expected: "a\n\n\nb",
		},
		{
			name:     "two blank lines kept",
			input:    "a\n\n\nb",
			expected: "a\n\n\nb",
		},
		{
			name:     "whitespace-only lines count as blank",
			input:    "a\n   \n\t\n  \n\nb",
			expected: "a\n\n\nb",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "\n\n  texto  \n\n",
			expected: "texto",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize(tt.input))
		})
	}
}

func TestExtract_UnreadableDocument(t *testing.T) {
	extractor := NewPDFExtractor()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty bytes", nil},
		{"not a pdf", []byte("plain text pretending to be a resume")},
		{"truncated header", []byte("%PDF-1.4")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractor.Extract(tt.data)
			require.Error(t, err)

			var unreadable *DocumentUnreadableError
			assert.True(t, errors.As(err, &unreadable), "expected DocumentUnreadableError, got %T", err)
		})
	}
}

func TestExtractFile_MissingFile(t *testing.T) {
	extractor := NewPDFExtractor()
	_, err := extractor.ExtractFile("testdata/nao-existe.pdf")
	require.Error(t, err)

	var unreadable *DocumentUnreadableError
	require.True(t, errors.As(err, &unreadable))
	assert.True(t, strings.Contains(unreadable.Source, "nao-existe.pdf"))
}
