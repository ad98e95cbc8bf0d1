package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGeminiClient — вспомогательная функция для создания клиента поверх httptest-сервера.
func newTestGeminiClient(t *testing.T, server *httptest.Server) *GeminiClient {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewGeminiClient("test-api-key", server.URL, time.Second, observability.NewMetricsForTesting(), logger)
}

func geminiTextResponse(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustJSON(text) + `}]}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestExtractLocation_Success(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gemini-1.5-flash-latest:generateContent", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Extract only the name of the city or town")
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Severe flooding in Springfield")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geminiTextResponse("Springfield\n")))
	}))
	defer server.Close()
	client := newTestGeminiClient(t, server)

	// Действие
	location, err := client.ExtractLocation(context.Background(), "Severe flooding in Springfield")

	// Проверки: результат обрезается по пробелам
	require.NoError(t, err)
	assert.Equal(t, "Springfield", location)
}

func TestExtractLocation_NoCandidates(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()
	client := newTestGeminiClient(t, server)

	// Действие
	location, err := client.ExtractLocation(context.Background(), "no location here")

	// Проверки: пустой результат не является ошибкой
	require.NoError(t, err)
	assert.Empty(t, location)
}

func TestExtractLocation_APIError(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()
	client := newTestGeminiClient(t, server)

	// Действие
	_, err := client.ExtractLocation(context.Background(), "Severe flooding")

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestAnalyzeImage_Success(t *testing.T) {
	// Подготовка
	imageData := []byte{0xFF, 0xD8, 0xFF} // заголовок JPEG
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gemini-1.5-flash:generateContent", r.URL.Path)

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 2)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Analyze this image for signs of disaster")
		require.NotNil(t, req.Contents[0].Parts[1].InlineData)
		assert.Equal(t, "image/jpeg", req.Contents[0].Parts[1].InlineData.MimeType)
		assert.NotEmpty(t, req.Contents[0].Parts[1].InlineData.Data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geminiTextResponse("Authentic flood imagery")))
	}))
	defer server.Close()
	client := newTestGeminiClient(t, server)

	// Действие
	analysis, err := client.AnalyzeImage(context.Background(), "image/jpeg", imageData)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Authentic flood imagery", analysis)
}

func TestAnalyzeImage_EmptyResponse(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()
	client := newTestGeminiClient(t, server)

	// Действие
	analysis, err := client.AnalyzeImage(context.Background(), "image/png", []byte{0x89})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Unable to analyze", analysis)
}
