package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/shenikar/disaster_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestEnrichmentService — вспомогательная функция для создания пайплайна с моками.
func newTestEnrichmentService(t *testing.T) (*enrichmentService, *mocks.MockCache, *mocks.MockLocationExtractor, *mocks.MockGeocoder) {
	ctrl := gomock.NewController(t)
	cacheMock := mocks.NewMockCache(ctrl)
	extractorMock := mocks.NewMockLocationExtractor(ctrl)
	geocoderMock := mocks.NewMockGeocoder(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewEnrichmentService(cacheMock, extractorMock, geocoderMock, time.Hour, observability.NewMetricsForTesting(), logger)
	return svc.(*enrichmentService), cacheMock, extractorMock, geocoderMock
}

func TestResolve_ExplicitLocationSkipsExtraction(t *testing.T) {
	// Подготовка
	svc, cacheMock, _, geocoderMock := newTestEnrichmentService(t)
	ctx := context.Background()

	// Ожидания: извлечение не вызывается вовсе, только геокодирование
	cacheMock.EXPECT().
		Get(ctx, "mapbox_geo:Springfield", gomock.Any()).
		Return(false, nil).
		Times(1)
	geocoderMock.EXPECT().
		Geocode(ctx, "Springfield").
		Return(-89.65, 39.78, true, nil).
		Times(1)
	cacheMock.EXPECT().
		Set(ctx, "mapbox_geo:Springfield", []float64{-89.65, 39.78}, time.Hour).
		Return(nil).
		Times(1)

	// Действие
	enriched, err := svc.Resolve(ctx, "Severe flooding in Springfield", "Springfield")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Springfield", enriched.LocationName)
	assert.Equal(t, 39.78, enriched.Latitude)
	assert.Equal(t, -89.65, enriched.Longitude)
}

func TestResolve_ExtractionCacheHit(t *testing.T) {
	// Подготовка
	svc, cacheMock, _, _ := newTestEnrichmentService(t)
	ctx := context.Background()
	description := "Severe flooding in Springfield"

	// Ожидания: оба шага берутся из кэша, внешние вызовы не выполняются
	cacheMock.EXPECT().
		Get(ctx, "gemini_location:"+description, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*string) = "Springfield"
			return true, nil
		}).
		Times(1)
	cacheMock.EXPECT().
		Get(ctx, "mapbox_geo:Springfield", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*[]float64) = []float64{-89.65, 39.78}
			return true, nil
		}).
		Times(1)

	// Действие
	enriched, err := svc.Resolve(ctx, description, "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Springfield", enriched.LocationName)
	assert.Equal(t, 39.78, enriched.Latitude)
	assert.Equal(t, -89.65, enriched.Longitude)
}

func TestResolve_ExtractionCacheMiss_CallsAndCaches(t *testing.T) {
	// Подготовка
	svc, cacheMock, extractorMock, geocoderMock := newTestEnrichmentService(t)
	ctx := context.Background()
	description := "Earthquake reported near Valdivia this morning"

	// Ожидания
	cacheMock.EXPECT().
		Get(ctx, "gemini_location:"+description, gomock.Any()).
		Return(false, nil).
		Times(1)
	extractorMock.EXPECT().
		ExtractLocation(ctx, description).
		Return("Valdivia", nil).
		Times(1)
	cacheMock.EXPECT().
		Set(ctx, "gemini_location:"+description, "Valdivia", time.Hour).
		Return(nil).
		Times(1)
	cacheMock.EXPECT().
		Get(ctx, "mapbox_geo:Valdivia", gomock.Any()).
		Return(false, nil).
		Times(1)
	geocoderMock.EXPECT().
		Geocode(ctx, "Valdivia").
		Return(-73.24, -39.81, true, nil).
		Times(1)
	cacheMock.EXPECT().
		Set(ctx, "mapbox_geo:Valdivia", []float64{-73.24, -39.81}, time.Hour).
		Return(nil).
		Times(1)

	// Действие
	enriched, err := svc.Resolve(ctx, description, "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Valdivia", enriched.LocationName)
}

func TestResolve_GeocodeZeroResults(t *testing.T) {
	// Подготовка
	svc, cacheMock, _, geocoderMock := newTestEnrichmentService(t)
	ctx := context.Background()

	// Ожидания: геокодер не нашел ни одного результата, кэш не пополняется
	cacheMock.EXPECT().
		Get(ctx, "mapbox_geo:Nowhereville", gomock.Any()).
		Return(false, nil).
		Times(1)
	geocoderMock.EXPECT().
		Geocode(ctx, "Nowhereville").
		Return(0.0, 0.0, false, nil).
		Times(1)

	// Действие
	enriched, err := svc.Resolve(ctx, "", "Nowhereville")

	// Проверки
	require.ErrorIs(t, err, ErrGeocodeFailed)
	assert.Nil(t, enriched)
}

func TestResolve_InvalidCoordinates(t *testing.T) {
	// Подготовка
	svc, cacheMock, _, geocoderMock := newTestEnrichmentService(t)
	ctx := context.Background()

	// Ожидания: геокодер вернул нулевую широту
	cacheMock.EXPECT().
		Get(ctx, "mapbox_geo:Null Island", gomock.Any()).
		Return(false, nil).
		Times(1)
	geocoderMock.EXPECT().
		Geocode(ctx, "Null Island").
		Return(12.5, 0.0, true, nil).
		Times(1)
	cacheMock.EXPECT().
		Set(ctx, "mapbox_geo:Null Island", []float64{12.5, 0.0}, time.Hour).
		Return(nil).
		Times(1)

	// Действие
	enriched, err := svc.Resolve(ctx, "", "Null Island")

	// Проверки
	require.ErrorIs(t, err, ErrInvalidCoordinates)
	assert.Nil(t, enriched)
}

func TestResolve_EmptyExtraction(t *testing.T) {
	// Подготовка
	svc, cacheMock, extractorMock, _ := newTestEnrichmentService(t)
	ctx := context.Background()
	description := "help please"

	// Ожидания: модель не вернула имя места, пустой результат не кэшируется
	cacheMock.EXPECT().
		Get(ctx, "gemini_location:"+description, gomock.Any()).
		Return(false, nil).
		Times(1)
	extractorMock.EXPECT().
		ExtractLocation(ctx, description).
		Return("", nil).
		Times(1)

	// Действие
	enriched, err := svc.Resolve(ctx, description, "")

	// Проверки
	require.ErrorIs(t, err, ErrExtractionFailed)
	assert.Nil(t, enriched)
}

func TestResolve_ExtractionCallError(t *testing.T) {
	// Подготовка
	svc, cacheMock, extractorMock, _ := newTestEnrichmentService(t)
	ctx := context.Background()
	description := "flooding downtown"
	upstreamErr := fmt.Errorf("gemini API error: status 503")

	// Ожидания
	cacheMock.EXPECT().
		Get(ctx, "gemini_location:"+description, gomock.Any()).
		Return(false, nil).
		Times(1)
	extractorMock.EXPECT().
		ExtractLocation(ctx, description).
		Return("", upstreamErr).
		Times(1)

	// Действие
	enriched, err := svc.Resolve(ctx, description, "")

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "extraction call failed")
	assert.Nil(t, enriched)
}
