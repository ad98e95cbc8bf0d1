package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/notifier"
	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/sirupsen/logrus"
)

const (
	socialKeyPrefix = "social_media:"
	officialFeedKey = "ndma_rss"

	emptyFeedMessage = "No official alerts found."
)

type feedService struct {
	cache      Cache
	repo       DisasterRepository
	feedParser OfficialFeedParser
	publisher  notifier.Publisher
	logger     *logrus.Logger
	metrics    *observability.Metrics
	clock      clockwork.Clock

	socialTTL time.Duration
	feedTTL   time.Duration
}

// NewFeedService создает сервис вспомогательных фидов
func NewFeedService(cache Cache, repo DisasterRepository, feedParser OfficialFeedParser, publisher notifier.Publisher, socialTTL, feedTTL time.Duration, metrics *observability.Metrics, logger *logrus.Logger, clock clockwork.Clock) FeedService {
	return &feedService{
		cache:      cache,
		repo:       repo,
		feedParser: feedParser,
		publisher:  publisher,
		socialTTL:  socialTTL,
		feedTTL:    feedTTL,
		metrics:    metrics,
		logger:     logger,
		clock:      clock,
	}
}

// MockSocialPosts генерирует моковый социальный фид, привязанный к месту
func (s *feedService) MockSocialPosts(location string) []models.SocialPost {
	needLocation := location
	if needLocation == "" {
		needLocation = "affected area"
	}
	offerLocation := location
	if offerLocation == "" {
		offerLocation = "town center"
	}

	now := s.clock.Now().UTC()
	return []models.SocialPost{
		{
			User:      "citizen1",
			Post:      "#floodrelief Need food in " + needLocation,
			Timestamp: now,
			Type:      "need",
		},
		{
			User:      "volunteer42",
			Post:      "Offering shelter near " + offerLocation,
			Timestamp: now,
			Type:      "offer",
		},
		{
			User:      "alert_bot",
			Post:      "#alert Weather worsening - stay safe!",
			Timestamp: now,
			Type:      "alert",
		},
	}
}

// SocialMediaForDisaster возвращает социальный фид бедствия с проверкой кэша.
// При промахе фид генерируется по имени места бедствия, кэшируется
// и рассылается событие social_media_updated.
func (s *feedService) SocialMediaForDisaster(ctx context.Context, disasterID uuid.UUID) ([]models.SocialPost, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "feeds",
		"method":      "SocialMediaForDisaster",
		"disaster_id": disasterID,
	})

	key := socialKeyPrefix + disasterID.String()
	var cached []models.SocialPost
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.WithError(err).Warn("Social feed cache read failed")
	}
	if hit {
		s.metrics.CacheLookups.WithLabelValues("social", "hit").Inc()
		return cached, nil
	}
	s.metrics.CacheLookups.WithLabelValues("social", "miss").Inc()

	disaster, err := s.repo.GetByID(ctx, disasterID)
	if err != nil {
		log.WithError(err).Warn("Failed to get disaster for social feed")
		return nil, err
	}

	posts := s.MockSocialPosts(disaster.LocationName)
	if err := s.cache.Set(ctx, key, posts, s.socialTTL); err != nil {
		log.WithError(err).Warn("Failed to cache social feed")
	}

	event := notifier.Event{
		Type:       notifier.EventSocialMediaUpdated,
		DisasterID: disasterID.String(),
		Payload:    posts,
		Timestamp:  s.clock.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish social media event")
	}

	log.WithField("count", len(posts)).Info("Social feed generated")
	return posts, nil
}

// OfficialUpdates возвращает нормализованный официальный фид с проверкой кэша.
// Пустой фид не кэшируется и отдается одним информационным элементом.
func (s *feedService) OfficialUpdates(ctx context.Context) ([]models.OfficialUpdate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "feeds",
		"method":  "OfficialUpdates",
	})

	var cached []models.OfficialUpdate
	hit, err := s.cache.Get(ctx, officialFeedKey, &cached)
	if err != nil {
		log.WithError(err).Warn("Official feed cache read failed")
	}
	if hit {
		s.metrics.CacheLookups.WithLabelValues("feed", "hit").Inc()
		return cached, nil
	}
	s.metrics.CacheLookups.WithLabelValues("feed", "miss").Inc()

	updates, err := s.feedParser.Parse(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch official updates")
		return nil, fmt.Errorf("service: could not fetch official updates: %w", err)
	}

	if len(updates) == 0 {
		return []models.OfficialUpdate{{Message: emptyFeedMessage}}, nil
	}

	if err := s.cache.Set(ctx, officialFeedKey, updates, s.feedTTL); err != nil {
		log.WithError(err).Warn("Failed to cache official updates")
	}

	log.WithField("count", len(updates)).Info("Official updates fetched")
	return updates, nil
}
