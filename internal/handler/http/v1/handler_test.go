package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/identity"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service"
	"github.com/shenikar/disaster_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestRouter — вспомогательная функция для создания роутера с моками сервисов.
func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockDisasterService, *mocks.MockFeedService, *mocks.MockEnricher) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	disasterMock := mocks.NewMockDisasterService(ctrl)
	feedMock := mocks.NewMockFeedService(ctrl)
	enricherMock := mocks.NewMockEnricher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		UploadDir:     t.TempDir(),
		PublicBaseURL: "http://localhost:8080",
	}

	handler := NewHandler(disasterMock, feedMock, enricherMock, identity.NewStaticProvider(), nil, logger, cfg)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router, disasterMock, feedMock, enricherMock
}

// makeRequest выполняет запрос к тестовому роутеру от имени пользователя.
func makeRequest(router *gin.Engine, method, path, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateDisaster_Created(t *testing.T) {
	// Подготовка
	router, disasterMock, _, _ := newTestRouter(t)
	disasterID := uuid.New()

	// Ожидания
	disasterMock.EXPECT().
		CreateDisaster(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Disaster) error {
			assert.Equal(t, "Flood A", d.Title)
			assert.Equal(t, "netrunnerX", d.OwnerID) // Владелец по умолчанию
			d.ID = disasterID
			d.LocationName = "Springfield"
			d.Latitude = 39.78
			d.Longitude = -89.65
			return nil
		}).
		Times(1)

	// Действие
	recorder := makeRequest(router, http.MethodPost, "/api/v1/disasters", "netrunnerX", CreateDisasterRequest{
		Title:       "Flood A",
		Description: "Severe flooding in Springfield",
		Tags:        []string{"flood"},
	})

	// Проверки
	require.Equal(t, http.StatusCreated, recorder.Code)
	var response DisasterResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, disasterID, response.ID)
	assert.Equal(t, "Springfield", response.LocationName)
}

func TestCreateDisaster_MissingUserHeader(t *testing.T) {
	// Подготовка: сервис не должен вызываться
	router, _, _, _ := newTestRouter(t)

	// Действие
	recorder := makeRequest(router, http.MethodPost, "/api/v1/disasters", "", CreateDisasterRequest{
		Title:       "Flood A",
		Description: "Severe flooding",
	})

	// Проверки
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error":"Unauthorized: Invalid user"}`, recorder.Body.String())
}

func TestCreateDisaster_UnknownUser(t *testing.T) {
	// Подготовка
	router, _, _, _ := newTestRouter(t)

	// Действие
	recorder := makeRequest(router, http.MethodPost, "/api/v1/disasters", "ghost", CreateDisasterRequest{
		Title:       "Flood A",
		Description: "Severe flooding",
	})

	// Проверки
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCreateDisaster_ValidationError(t *testing.T) {
	// Подготовка: слишком короткий заголовок
	router, _, _, _ := newTestRouter(t)

	// Действие
	recorder := makeRequest(router, http.MethodPost, "/api/v1/disasters", "netrunnerX", CreateDisasterRequest{
		Title:       "F",
		Description: "Severe flooding",
	})

	// Проверки
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateDisaster_GeocodeFailure(t *testing.T) {
	// Подготовка
	router, disasterMock, _, _ := newTestRouter(t)

	// Ожидания
	disasterMock.EXPECT().
		CreateDisaster(gomock.Any(), gomock.Any()).
		Return(service.ErrGeocodeFailed).
		Times(1)

	// Действие
	recorder := makeRequest(router, http.MethodPost, "/api/v1/disasters", "netrunnerX", CreateDisasterRequest{
		Title:       "Flood A",
		Description: "something unresolvable",
	})

	// Проверки
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"Mapbox could not geocode the location."}`, recorder.Body.String())
}

func TestListDisasters_FilterByTag(t *testing.T) {
	// Подготовка
	router, disasterMock, _, _ := newTestRouter(t)
	disasters := []*models.Disaster{
		{ID: uuid.New(), Title: "Flood A", Tags: []string{"flood"}},
	}

	// Ожидания
	disasterMock.EXPECT().
		ListDisasters(gomock.Any(), "flood").
		Return(disasters, nil).
		Times(1)

	// Действие
	recorder := makeRequest(router, http.MethodGet, "/api/v1/disasters?tag=flood", "", nil)

	// Проверки
	require.Equal(t, http.StatusOK, recorder.Code)
	var response []DisasterResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "Flood A", response[0].Title)
}

func TestUpdateDisaster_InvalidID(t *testing.T) {
	// Подготовка
	router, _, _, _ := newTestRouter(t)

	// Действие
	recorder := makeRequest(router, http.MethodPut, "/api/v1/disasters/not-a-uuid", "netrunnerX", UpdateDisasterRequest{
		Title:       "Flood A",
		Description: "Severe flooding",
	})

	// Проверки
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"invalid disaster ID"}`, recorder.Body.String())
}

func TestDeleteDisaster_NotFound(t *testing.T) {
	// Подготовка
	router, disasterMock, _, _ := newTestRouter(t)
	disasterID := uuid.New()

	// Ожидания
	disasterMock.EXPECT().
		DeleteDisaster(gomock.Any(), disasterID).
		Return(nil, service.ErrDisasterNotFound).
		Times(1)

	// Действие
	recorder := makeRequest(router, http.MethodDelete, "/api/v1/disasters/"+disasterID.String(), "netrunnerX", nil)

	// Проверки
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Disaster not found"}`, recorder.Body.String())
}

func TestDeleteDisaster_Success(t *testing.T) {
	// Подготовка
	router, disasterMock, _, _ := newTestRouter(t)
	disasterID := uuid.New()
	deleted := &models.Disaster{ID: disasterID, Title: "Flood A"}

	// Ожидания
	disasterMock.EXPECT().
		DeleteDisaster(gomock.Any(), disasterID).
		Return(deleted, nil).
		Times(1)

	// Действие
	recorder := makeRequest(router, http.MethodDelete, "/api/v1/disasters/"+disasterID.String(), "netrunnerX", nil)

	// Проверки
	require.Equal(t, http.StatusOK, recorder.Code)
	var response DeleteDisasterResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Disaster and related data deleted successfully", response.Message)
	require.NotNil(t, response.Deleted)
	assert.Equal(t, disasterID, response.Deleted.ID)
}

func TestListNearbyResources_Success(t *testing.T) {
	// Подготовка
	router, disasterMock, _, _ := newTestRouter(t)
	disasterID := uuid.New()
	resources := []*models.Resource{
		{ID: uuid.New(), DisasterID: disasterID, Name: "Shelter", Type: "shelter"},
	}

	// Ожидания
	disasterMock.EXPECT().
		NearbyResources(gomock.Any(), disasterID).
		Return(resources, nil).
		Times(1)

	// Действие
	recorder := makeRequest(router, http.MethodGet, "/api/v1/disasters/"+disasterID.String()+"/resources", "", nil)

	// Проверки
	require.Equal(t, http.StatusOK, recorder.Code)
	var response []models.Resource
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "Shelter", response[0].Name)
}

func TestDisasterSocialMedia_NotFound(t *testing.T) {
	// Подготовка
	router, _, feedMock, _ := newTestRouter(t)
	disasterID := uuid.New()

	// Ожидания
	feedMock.EXPECT().
		SocialMediaForDisaster(gomock.Any(), disasterID).
		Return(nil, service.ErrDisasterNotFound).
		Times(1)

	// Действие
	recorder := makeRequest(router, http.MethodGet, "/api/v1/disasters/"+disasterID.String()+"/social-media", "", nil)

	// Проверки
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestOfficialUpdates_Success(t *testing.T) {
	// Подготовка: статический сегмент маршрута не конфликтует с :id
	router, _, feedMock, _ := newTestRouter(t)
	updates := []models.OfficialUpdate{{Title: "Flood warning", Link: "https://example.org/1"}}

	// Ожидания
	feedMock.EXPECT().
		OfficialUpdates(gomock.Any()).
		Return(updates, nil).
		Times(1)

	// Действие
	recorder := makeRequest(router, http.MethodGet, "/api/v1/disasters/official-updates", "", nil)

	// Проверки
	require.Equal(t, http.StatusOK, recorder.Code)
	var response []models.OfficialUpdate
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "Flood warning", response[0].Title)
}

func TestOfficialUpdates_FetchError(t *testing.T) {
	// Подготовка
	router, _, feedMock, _ := newTestRouter(t)

	// Ожидания
	feedMock.EXPECT().
		OfficialUpdates(gomock.Any()).
		Return(nil, assert.AnError).
		Times(1)

	// Действие
	recorder := makeRequest(router, http.MethodGet, "/api/v1/disasters/official-updates", "", nil)

	// Проверки
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch official updates"}`, recorder.Body.String())
}

func TestMockSocialMedia_Success(t *testing.T) {
	// Подготовка
	router, _, feedMock, _ := newTestRouter(t)
	posts := []models.SocialPost{{User: "citizen1", Post: "#floodrelief Need food in Springfield", Type: "need"}}

	// Ожидания
	feedMock.EXPECT().
		MockSocialPosts("Springfield").
		Return(posts).
		Times(1)

	// Действие
	recorder := makeRequest(router, http.MethodGet, "/api/v1/mock-social-media?location=Springfield", "", nil)

	// Проверки
	require.Equal(t, http.StatusOK, recorder.Code)
	var response MockSocialMediaResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Posts, 1)
	assert.Equal(t, "citizen1", response.Posts[0].User)
}

func TestGeocode_MissingDescription(t *testing.T) {
	// Подготовка
	router, _, _, _ := newTestRouter(t)

	// Действие
	recorder := makeRequest(router, http.MethodPost, "/api/v1/geocode", "", GeocodeRequest{})

	// Проверки
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"Description is required."}`, recorder.Body.String())
}

func TestGeocode_Success(t *testing.T) {
	// Подготовка
	router, _, _, enricherMock := newTestRouter(t)

	// Ожидания
	enricherMock.EXPECT().
		Resolve(gomock.Any(), "Flooding near Springfield", "").
		Return(&models.EnrichedLocation{LocationName: "Springfield", Latitude: 39.78, Longitude: -89.65}, nil).
		Times(1)

	// Действие
	recorder := makeRequest(router, http.MethodPost, "/api/v1/geocode", "", GeocodeRequest{
		Description: "Flooding near Springfield",
	})

	// Проверки
	require.Equal(t, http.StatusOK, recorder.Code)
	var response GeocodeResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Springfield", response.LocationName)
	assert.Equal(t, 39.78, response.Lat)
	assert.Equal(t, -89.65, response.Lon)
}

func TestGeocode_ExtractionFailure(t *testing.T) {
	// Подготовка
	router, _, _, enricherMock := newTestRouter(t)

	// Ожидания
	enricherMock.EXPECT().
		Resolve(gomock.Any(), "no location here", "").
		Return(nil, service.ErrExtractionFailed).
		Times(1)

	// Действие
	recorder := makeRequest(router, http.MethodPost, "/api/v1/geocode", "", GeocodeRequest{
		Description: "no location here",
	})

	// Проверки
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"Failed to extract location name."}`, recorder.Body.String())
}

func TestVerifyImage_NoImage(t *testing.T) {
	// Подготовка
	router, _, _, _ := newTestRouter(t)

	// Действие: multipart-тело отсутствует
	req := httptest.NewRequest(http.MethodPost, "/api/v1/disasters/verify-image", nil)
	req.Header.Set("X-User-ID", "netrunnerX")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	// Проверки
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"No image uploaded"}`, recorder.Body.String())
}

func TestHealthCheck(t *testing.T) {
	// Подготовка
	router, _, _, _ := newTestRouter(t)

	// Действие
	recorder := makeRequest(router, http.MethodGet, "/api/v1/system/health", "", nil)

	// Проверки
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}
