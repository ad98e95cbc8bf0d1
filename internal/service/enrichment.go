package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	extractionKeyPrefix = "gemini_location:"
	geocodeKeyPrefix    = "mapbox_geo:"
)

// enrichmentService - пайплайн обогащения: извлечение имени места из описания
// и его геокодирование, оба шага с проверкой кэша
type enrichmentService struct {
	cache     Cache
	extractor LocationExtractor
	geocoder  Geocoder
	logger    *logrus.Logger
	metrics   *observability.Metrics

	cacheTTL time.Duration
	group    singleflight.Group
}

// NewEnrichmentService создает пайплайн обогащения
func NewEnrichmentService(cache Cache, extractor LocationExtractor, geocoder Geocoder, cacheTTL time.Duration, metrics *observability.Metrics, logger *logrus.Logger) Enricher {
	return &enrichmentService{
		cache:     cache,
		extractor: extractor,
		geocoder:  geocoder,
		cacheTTL:  cacheTTL,
		metrics:   metrics,
		logger:    logger,
	}
}

// Resolve возвращает имя места и координаты для описания бедствия.
// Явно переданное locationName пропускает шаг извлечения, но не геокодирование.
func (s *enrichmentService) Resolve(ctx context.Context, description, locationName string) (*models.EnrichedLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "enrichment",
		"method":  "Resolve",
	})

	name := locationName
	if name == "" {
		extracted, err := s.extractLocation(ctx, description)
		if err != nil {
			log.WithError(err).Error("Failed to extract location name")
			return nil, err
		}
		name = extracted
	}

	lon, lat, err := s.geocode(ctx, name)
	if err != nil {
		log.WithError(err).WithField("location", name).Error("Failed to geocode location")
		return nil, err
	}

	// Обе компоненты должны быть ненулевыми
	if lat == 0 || lon == 0 {
		return nil, ErrInvalidCoordinates
	}

	return &models.EnrichedLocation{
		LocationName: name,
		Latitude:     lat,
		Longitude:    lon,
	}, nil
}

func (s *enrichmentService) extractLocation(ctx context.Context, description string) (string, error) {
	key := extractionKeyPrefix + description

	var cached string
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.WithError(err).Warn("Extraction cache read failed")
	}
	if hit && cached != "" {
		s.metrics.CacheLookups.WithLabelValues("extraction", "hit").Inc()
		return cached, nil
	}
	s.metrics.CacheLookups.WithLabelValues("extraction", "miss").Inc()

	// Одновременные промахи по одному ключу делают один внешний вызов
	result, err, _ := s.group.Do(key, func() (any, error) {
		location, err := s.extractor.ExtractLocation(ctx, description)
		if err != nil {
			return "", fmt.Errorf("extraction call failed: %w", err)
		}
		if location == "" {
			return "", ErrExtractionFailed
		}
		// Кэшируется только непустой результат; ошибка записи не прерывает пайплайн
		if err := s.cache.Set(ctx, key, location, s.cacheTTL); err != nil {
			s.logger.WithError(err).Warn("Failed to cache extracted location")
		}
		return location, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (s *enrichmentService) geocode(ctx context.Context, locationName string) (lon, lat float64, err error) {
	key := geocodeKeyPrefix + locationName

	var cached []float64
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.WithError(err).Warn("Geocode cache read failed")
	}
	if hit && len(cached) == 2 {
		s.metrics.CacheLookups.WithLabelValues("geocode", "hit").Inc()
		return cached[0], cached[1], nil
	}
	s.metrics.CacheLookups.WithLabelValues("geocode", "miss").Inc()

	result, err, _ := s.group.Do(key, func() (any, error) {
		lon, lat, found, err := s.geocoder.Geocode(ctx, locationName)
		if err != nil {
			return nil, fmt.Errorf("geocode call failed: %w", err)
		}
		if !found {
			return nil, ErrGeocodeFailed
		}
		// Тот же порядок, что и у Mapbox: [lon, lat]
		coords := []float64{lon, lat}
		if err := s.cache.Set(ctx, key, coords, s.cacheTTL); err != nil {
			s.logger.WithError(err).Warn("Failed to cache geocoded coordinates")
		}
		return coords, nil
	})
	if err != nil {
		return 0, 0, err
	}

	coords := result.([]float64)
	return coords[0], coords[1], nil
}
