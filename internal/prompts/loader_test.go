package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("structuring.json", "structure-resume")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "{{.ResumeText}}")
	assert.Contains(t, prompt, "personalInfo")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("structuring.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		prompt := MustGet("enrichment.json", "generate-objective")
		assert.NotEmpty(t, prompt)
	})
}

func TestFormat(t *testing.T) {
	template := "Candidato {{.Name}}, empresa {{.Company}}."
	data := map[string]string{
		"Name":    "Maria",
		"Company": "Acme Corp",
	}

	result := Format(template, data)
	assert.Equal(t, "Candidato Maria, empresa Acme Corp.", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "Sem placeholders aqui"
	data := map[string]string{"Key": "Value"}

	assert.Equal(t, template, Format(template, data))
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Olá {{.Name}}"

	// Placeholder stays when no value is supplied.
	assert.Equal(t, template, Format(template, map[string]string{}))
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("enrichment.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "generate-objective")
	assert.Contains(t, keys, "elaborate-experience")
	assert.Contains(t, keys, "extract-keywords")
}

func TestCaching(t *testing.T) {
	ClearCache()

	first, err := Get("structuring.json", "structure-resume")
	require.NoError(t, err)

	second, err := Get("structuring.json", "structure-resume")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
