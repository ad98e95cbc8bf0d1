package geo

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMapboxClient — вспомогательная функция для создания клиента поверх httptest-сервера.
func newTestMapboxClient(t *testing.T, server *httptest.Server) *MapboxClient {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewMapboxClient("test-token", server.URL, time.Second, observability.NewMetricsForTesting(), logger)
}

func TestMapboxGeocode_Success(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Springfield.json", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[{"center":[-89.65,39.78],"place_name":"Springfield, Illinois"}]}`))
	}))
	defer server.Close()
	client := newTestMapboxClient(t, server)

	// Действие
	lon, lat, found, err := client.Geocode(context.Background(), "Springfield")

	// Проверки: Mapbox отдает порядок lon,lat
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, -89.65, lon)
	assert.Equal(t, 39.78, lat)
}

func TestMapboxGeocode_NoFeatures(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()
	client := newTestMapboxClient(t, server)

	// Действие
	_, _, found, err := client.Geocode(context.Background(), "nowhere")

	// Проверки: отсутствие результата не является ошибкой
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMapboxGeocode_MalformedCenter(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[{"center":[1.0],"place_name":"broken"}]}`))
	}))
	defer server.Close()
	client := newTestMapboxClient(t, server)

	// Действие
	_, _, found, err := client.Geocode(context.Background(), "broken")

	// Проверки
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMapboxGeocode_APIError(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()
	client := newTestMapboxClient(t, server)

	// Действие
	_, _, found, err := client.Geocode(context.Background(), "Springfield")

	// Проверки
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), "status 401")
}

func TestMapboxGeocode_EscapesLocationName(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/New York.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[{"center":[-74.0,40.71]}]}`))
	}))
	defer server.Close()
	client := newTestMapboxClient(t, server)

	// Действие
	_, _, found, err := client.Geocode(context.Background(), "New York")

	// Проверки
	require.NoError(t, err)
	assert.True(t, found)
}
