package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// MapboxClient - клиент прямого геокодирования через Mapbox Geocoding API
type MapboxClient struct {
	token      string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *logrus.Logger
}

// NewMapboxClient создает клиент геокодирования Mapbox
func NewMapboxClient(token, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *logrus.Logger) *MapboxClient {
	return &MapboxClient{
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Geocode разрешает имя места в координаты. found == false, если Mapbox
// не вернул ни одного результата.
func (c *MapboxClient) Geocode(ctx context.Context, locationName string) (lon, lat float64, found bool, err error) {
	u := fmt.Sprintf("%s/%s.json", c.baseURL, url.PathEscape(locationName))
	params := url.Values{
		"access_token": {c.token},
		"limit":        {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, false, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return 0, 0, false, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return 0, 0, false, fmt.Errorf("mapbox API error: status %d: %s", resp.StatusCode, body)
	}

	var mapboxResp mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&mapboxResp); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return 0, 0, false, fmt.Errorf("decode response: %w", err)
	}

	if len(mapboxResp.Features) == 0 {
		c.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		return 0, 0, false, nil
	}

	f := mapboxResp.Features[0]
	if len(f.Center) != 2 {
		c.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		return 0, 0, false, nil
	}

	c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	c.logger.WithFields(logrus.Fields{
		"location": locationName,
		"lon":      f.Center[0],
		"lat":      f.Center[1],
	}).Debug("Mapbox geocoded location")

	// Mapbox отдает координаты в порядке lon,lat
	return f.Center[0], f.Center[1], true, nil
}

// Типы ответа Mapbox API.

type mapboxResponse struct {
	Features []mapboxFeature `json:"features"`
}

type mapboxFeature struct {
	Center    []float64 `json:"center"` // [lon, lat]
	PlaceName string    `json:"place_name"`
	Text      string    `json:"text"`
}
