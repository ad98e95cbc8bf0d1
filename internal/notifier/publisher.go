package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_response_system/internal/observability"
)

const (
	// EventChannel - канал Redis pub/sub для событий изменения сущностей
	EventChannel = "disaster_events"

	EventDisasterUpdated    = "disaster_updated"
	EventDisasterDeleted    = "disaster_deleted"
	EventSocialMediaUpdated = "social_media_updated"
	EventResourcesUpdated   = "resources_updated"
)

// Event - событие изменения сущности, рассылаемое подключенным клиентам
type Event struct {
	Type       string    `json:"event"`
	DisasterID string    `json:"disaster_id"`
	Payload    any       `json:"payload,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/mocks.go -package=mocks

// Publisher - интерфейс публикации событий изменения
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher поверх Redis pub/sub.
// Доставка только текущим подписчикам, без персистентности и повтора.
type RedisPublisher struct {
	redisClient *redis.Client
	metrics     *observability.Metrics
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client, metrics *observability.Metrics) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
		metrics:     metrics,
	}
}

// Publish публикует событие в канал Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.redisClient.Publish(ctx, EventChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event to Redis: %w", err)
	}
	p.metrics.EventsPublished.WithLabelValues(event.Type).Inc()
	return nil
}
