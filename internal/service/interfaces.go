package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

var (
	// ErrDisasterNotFound - целевое бедствие не существует
	ErrDisasterNotFound = errors.New("disaster not found")
	// ErrExtractionFailed - языковая модель не вернула имя места
	ErrExtractionFailed = errors.New("Failed to extract location name.")
	// ErrGeocodeFailed - геокодер не нашел ни одного результата
	ErrGeocodeFailed = errors.New("Mapbox could not geocode the location.")
	// ErrInvalidCoordinates - геокодер вернул неполные или нулевые координаты
	ErrInvalidCoordinates = errors.New("Invalid coordinates returned.")
)

// DisasterRepository определяет контракт для работы с бд бедствий
type DisasterRepository interface {
	Create(ctx context.Context, disaster *models.Disaster) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Disaster, error)
	List(ctx context.Context, tag string) ([]*models.Disaster, error)
	Update(ctx context.Context, disaster *models.Disaster) error
	DeleteCascade(ctx context.Context, id uuid.UUID) (*models.Disaster, error)
}

// ResourceRepository определяет контракт для геопоиска ресурсов
type ResourceRepository interface {
	GetDisasterLocation(ctx context.Context, disasterID uuid.UUID) (lat, lon float64, err error)
	FindNearby(ctx context.Context, disasterID uuid.UUID, lat, lon float64, radiusMeters int) ([]*models.Resource, error)
}

// Cache - хранилище ключ/значение для мемоизации внешних вызовов
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// LocationExtractor извлекает имя места из свободного текста
type LocationExtractor interface {
	ExtractLocation(ctx context.Context, description string) (string, error)
}

// Geocoder разрешает имя места в координаты
type Geocoder interface {
	Geocode(ctx context.Context, locationName string) (lon, lat float64, found bool, err error)
}

// ImageAnalyzer анализирует изображение на признаки бедствия
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, mimeType string, data []byte) (string, error)
}

// OfficialFeedParser загружает официальный фид оповещений
type OfficialFeedParser interface {
	Parse(ctx context.Context) ([]models.OfficialUpdate, error)
}

// Enricher - пайплайн обогащения: имя места и координаты из свободного текста
type Enricher interface {
	Resolve(ctx context.Context, description, locationName string) (*models.EnrichedLocation, error)
}

// DisasterService определяет контракт для бизнес-логики управления бедствиями
type DisasterService interface {
	CreateDisaster(ctx context.Context, disaster *models.Disaster) error
	ListDisasters(ctx context.Context, tag string) ([]*models.Disaster, error)
	UpdateDisaster(ctx context.Context, disaster *models.Disaster) error
	DeleteDisaster(ctx context.Context, id uuid.UUID) (*models.Disaster, error)
	NearbyResources(ctx context.Context, disasterID uuid.UUID) ([]*models.Resource, error)
	VerifyImage(ctx context.Context, mimeType string, data []byte) (string, error)
}

// FeedService определяет контракт для вспомогательных фидов
type FeedService interface {
	MockSocialPosts(location string) []models.SocialPost
	SocialMediaForDisaster(ctx context.Context, disasterID uuid.UUID) ([]models.SocialPost, error)
	OfficialUpdates(ctx context.Context) ([]models.OfficialUpdate, error)
}
