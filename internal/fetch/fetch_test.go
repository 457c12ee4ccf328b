package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><main>Perfil de João</main></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Perfil de João")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_InvalidURL(t *testing.T) {
	tests := []string{"", "not-a-url", "relative/path"}

	for _, urlStr := range tests {
		_, err := URL(context.Background(), urlStr, nil)
		require.Error(t, err)

		var fetchErr *Error
		require.True(t, errors.As(err, &fetchErr))
		assert.Contains(t, fetchErr.Message, "invalid URL")
	}
}

func TestURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.False(t, fetchErr.Retryable, "4xx is not retryable")
}

func TestDocument_PDFByContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake content"))
	}))
	defer server.Close()

	data, err := Document(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
}

func TestDocument_PDFByMagicBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte("%PDF-1.7 binary"))
	}))
	defer server.Close()

	_, err := Document(context.Background(), server.URL, nil)
	assert.NoError(t, err)
}

func TestDocument_RejectsHTMLErrorPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>arquivo não encontrado</body></html>"))
	}))
	defer server.Close()

	_, err := Document(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Message, "not a PDF")
}

func TestExtractMainText(t *testing.T) {
	html := `<html><body>
		<nav>menu que deve sumir</nav>
		<main>
			<h1>Maria Oliveira</h1>
			<p>Engenheira de dados em São Paulo.</p>
		</main>
		<footer>rodapé</footer>
	</body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)

	assert.Contains(t, text, "Maria Oliveira")
	assert.Contains(t, text, "Engenheira de dados")
	assert.NotContains(t, text, "menu que deve sumir")
	assert.NotContains(t, text, "rodapé")
}

func TestExtractMainText_NoiseSelectors(t *testing.T) {
	html := `<html><body><main>
		<p>conteúdo útil</p>
		<div class="people-also-viewed">outros perfis</div>
	</main></body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors(), PlatformNoiseSelectors(PlatformLinkedIn)...)
	require.NoError(t, err)

	assert.Contains(t, text, "conteúdo útil")
	assert.NotContains(t, text, "outros perfis")
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.linkedin.com/in/joao-silva", PlatformLinkedIn},
		{"https://candidato.gupy.io/profile", PlatformGupy},
		{"https://www.catho.com.br/curriculo/123", PlatformCatho},
		{"https://www.infojobs.com.br/candidato", PlatformInfoJobs},
		{"https://example.com/cv", PlatformUnknown},
		{"::not a url::", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   curto   "))

	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}

func TestCleanWhitespace(t *testing.T) {
	input := "  linha um  \n\n\t\n linha dois \n"
	assert.Equal(t, "linha um\nlinha dois", cleanWhitespace(input))
}
