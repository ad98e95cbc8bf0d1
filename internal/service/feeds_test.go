package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/notifier"
	notifier_mocks "github.com/shenikar/disaster_response_system/internal/notifier/mocks"
	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/shenikar/disaster_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestFeedService — вспомогательная функция для создания сервиса фидов с моками.
func newTestFeedService(t *testing.T) (*feedService, *mocks.MockCache, *mocks.MockDisasterRepository, *mocks.MockOfficialFeedParser, *notifier_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	cacheMock := mocks.NewMockCache(ctrl)
	repoMock := mocks.NewMockDisasterRepository(ctrl)
	parserMock := mocks.NewMockOfficialFeedParser(ctrl)
	publisherMock := notifier_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	clock := clockwork.NewFakeClockAt(testNow)
	metrics := observability.NewMetricsForTesting()

	svc := NewFeedService(cacheMock, repoMock, parserMock, publisherMock, 15*time.Minute, time.Hour, metrics, logger, clock)
	return svc.(*feedService), cacheMock, repoMock, parserMock, publisherMock
}

func TestMockSocialPosts_UsesLocationName(t *testing.T) {
	// Подготовка
	svc, _, _, _, _ := newTestFeedService(t)

	// Действие
	posts := svc.MockSocialPosts("Springfield")

	// Проверки
	require.Len(t, posts, 3)
	assert.Equal(t, "citizen1", posts[0].User)
	assert.Equal(t, "#floodrelief Need food in Springfield", posts[0].Post)
	assert.Equal(t, "need", posts[0].Type)
	assert.Equal(t, "Offering shelter near Springfield", posts[1].Post)
	assert.Equal(t, "offer", posts[1].Type)
	assert.Equal(t, "#alert Weather worsening - stay safe!", posts[2].Post)
	assert.Equal(t, "alert", posts[2].Type)
}

func TestMockSocialPosts_DefaultsWithoutLocation(t *testing.T) {
	// Подготовка
	svc, _, _, _, _ := newTestFeedService(t)

	// Действие
	posts := svc.MockSocialPosts("")

	// Проверки
	require.Len(t, posts, 3)
	assert.Equal(t, "#floodrelief Need food in affected area", posts[0].Post)
	assert.Equal(t, "Offering shelter near town center", posts[1].Post)
}

func TestSocialMediaForDisaster_CacheHit(t *testing.T) {
	// Подготовка
	svc, cacheMock, _, _, _ := newTestFeedService(t)
	ctx := context.Background()
	disasterID := uuid.New()
	cachedPosts := []models.SocialPost{{User: "citizen1", Post: "cached", Type: "need"}}

	// Ожидания: ни репозиторий, ни издатель не трогаются
	cacheMock.EXPECT().
		Get(ctx, "social_media:"+disasterID.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*[]models.SocialPost) = cachedPosts
			return true, nil
		}).
		Times(1)

	// Действие
	posts, err := svc.SocialMediaForDisaster(ctx, disasterID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cachedPosts, posts)
}

func TestSocialMediaForDisaster_CacheMiss_GeneratesCachesAndPublishes(t *testing.T) {
	// Подготовка
	svc, cacheMock, repoMock, _, publisherMock := newTestFeedService(t)
	ctx := context.Background()
	disasterID := uuid.New()
	key := "social_media:" + disasterID.String()

	// Ожидания
	cacheMock.EXPECT().
		Get(ctx, key, gomock.Any()).
		Return(false, nil).
		Times(1)
	repoMock.EXPECT().
		GetByID(ctx, disasterID).
		Return(&models.Disaster{ID: disasterID, LocationName: "Springfield"}, nil).
		Times(1)
	cacheMock.EXPECT().
		Set(ctx, key, gomock.Any(), 15*time.Minute).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Cond(func(e notifier.Event) bool {
			return e.Type == notifier.EventSocialMediaUpdated && e.DisasterID == disasterID.String()
		})).
		Return(nil).
		Times(1)

	// Действие
	posts, err := svc.SocialMediaForDisaster(ctx, disasterID)

	// Проверки
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "#floodrelief Need food in Springfield", posts[0].Post)
}

func TestSocialMediaForDisaster_DisasterNotFound(t *testing.T) {
	// Подготовка
	svc, cacheMock, repoMock, _, _ := newTestFeedService(t)
	ctx := context.Background()
	disasterID := uuid.New()

	// Ожидания: фид не генерируется и не кэшируется
	cacheMock.EXPECT().
		Get(ctx, "social_media:"+disasterID.String(), gomock.Any()).
		Return(false, nil).
		Times(1)
	repoMock.EXPECT().
		GetByID(ctx, disasterID).
		Return(nil, ErrDisasterNotFound).
		Times(1)

	// Действие
	posts, err := svc.SocialMediaForDisaster(ctx, disasterID)

	// Проверки
	require.ErrorIs(t, err, ErrDisasterNotFound)
	assert.Nil(t, posts)
}

func TestOfficialUpdates_CacheHit(t *testing.T) {
	// Подготовка
	svc, cacheMock, _, _, _ := newTestFeedService(t)
	ctx := context.Background()
	cachedUpdates := []models.OfficialUpdate{{Title: "Flood warning", Link: "https://example.org/1"}}

	// Ожидания: парсер фида не вызывается
	cacheMock.EXPECT().
		Get(ctx, "ndma_rss", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*[]models.OfficialUpdate) = cachedUpdates
			return true, nil
		}).
		Times(1)

	// Действие
	updates, err := svc.OfficialUpdates(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cachedUpdates, updates)
}

func TestOfficialUpdates_CacheMiss_FetchesAndCaches(t *testing.T) {
	// Подготовка
	svc, cacheMock, _, parserMock, _ := newTestFeedService(t)
	ctx := context.Background()
	fetched := []models.OfficialUpdate{
		{Title: "Cyclone alert", Link: "https://example.org/2", Description: "Coastal districts on alert"},
	}

	// Ожидания
	cacheMock.EXPECT().
		Get(ctx, "ndma_rss", gomock.Any()).
		Return(false, nil).
		Times(1)
	parserMock.EXPECT().
		Parse(ctx).
		Return(fetched, nil).
		Times(1)
	cacheMock.EXPECT().
		Set(ctx, "ndma_rss", fetched, time.Hour).
		Return(nil).
		Times(1)

	// Действие
	updates, err := svc.OfficialUpdates(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, fetched, updates)
}

func TestOfficialUpdates_EmptyFeedNotCached(t *testing.T) {
	// Подготовка
	svc, cacheMock, _, parserMock, _ := newTestFeedService(t)
	ctx := context.Background()

	// Ожидания: пустой результат не пишется в кэш
	cacheMock.EXPECT().
		Get(ctx, "ndma_rss", gomock.Any()).
		Return(false, nil).
		Times(1)
	parserMock.EXPECT().
		Parse(ctx).
		Return([]models.OfficialUpdate{}, nil).
		Times(1)

	// Действие
	updates, err := svc.OfficialUpdates(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "No official alerts found.", updates[0].Message)
}

func TestOfficialUpdates_ParserError(t *testing.T) {
	// Подготовка
	svc, cacheMock, _, parserMock, _ := newTestFeedService(t)
	ctx := context.Background()

	// Ожидания
	cacheMock.EXPECT().
		Get(ctx, "ndma_rss", gomock.Any()).
		Return(false, nil).
		Times(1)
	parserMock.EXPECT().
		Parse(ctx).
		Return(nil, assert.AnError).
		Times(1)

	// Действие
	updates, err := svc.OfficialUpdates(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, updates)
}
