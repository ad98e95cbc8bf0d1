package v1

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/identity"
	"github.com/shenikar/disaster_response_system/internal/notifier"
	"github.com/shenikar/disaster_response_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Владелец по умолчанию, когда owner_id не передан
const defaultOwnerID = "netrunnerX"

type Handler struct {
	disasterService service.DisasterService
	feedService     service.FeedService
	enricher        service.Enricher
	provider        identity.Provider
	hub             *notifier.Hub
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(disasterService service.DisasterService, feedService service.FeedService, enricher service.Enricher, provider identity.Provider, hub *notifier.Hub, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		disasterService: disasterService,
		feedService:     feedService,
		enricher:        enricher,
		provider:        provider,
		hub:             hub,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Create a new disaster
// @Description Create a new disaster report. Location is resolved from the description when location_name is omitted. Requires a known user.
// @Tags Disasters
// @Accept json
// @Produce json
// @Security UserIDAuth
// @Param disaster body CreateDisasterRequest true "Disaster creation request"
// @Success 201 {object} DisasterResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation or geocoding error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters [post]
func (h *Handler) createDisaster(c *gin.Context) {
	var input CreateDisasterRequest
	log := h.logger.WithField("method", "createDisaster")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToDisasterModel(input)
	if model.OwnerID == "" {
		model.OwnerID = h.callerOrDefault(c)
	}

	if err := h.disasterService.CreateDisaster(c.Request.Context(), model); err != nil {
		h.writeDisasterError(c, log, err, "Failed to create disaster in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToDisasterResponse(model))
}

// @Summary Get a list of disasters
// @Description Get all disasters, optionally filtered by tag.
// @Tags Disasters
// @Accept json
// @Produce json
// @Param tag query string false "Filter by tag"
// @Success 200 {array} DisasterResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters [get]
func (h *Handler) listDisasters(c *gin.Context) {
	log := h.logger.WithField("method", "listDisasters")
	tag := c.Query("tag")

	disasters, err := h.disasterService.ListDisasters(c.Request.Context(), tag)
	if err != nil {
		log.WithError(err).Error("Failed to list disasters from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToDisasterResponses(disasters))
}

// @Summary Update an existing disaster
// @Description Update a disaster by ID. Location is re-resolved from the description when location_name is omitted. Requires a known user.
// @Tags Disasters
// @Accept json
// @Produce json
// @Security UserIDAuth
// @Param id path string true "Disaster ID"
// @Param disaster body UpdateDisasterRequest true "Disaster update request"
// @Success 200 {object} DisasterResponse
// @Failure 400 {object} map[string]string "Invalid disaster ID, request body or geocoding error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Disaster not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters/{id} [put]
func (h *Handler) updateDisaster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster ID"})
		return
	}
	log := h.logger.WithField("method", "updateDisaster").WithField("id", id)

	var input UpdateDisasterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToDisasterModel(input)
	model.ID = id
	if model.OwnerID == "" {
		model.OwnerID = h.callerOrDefault(c)
	}

	if err := h.disasterService.UpdateDisaster(c.Request.Context(), model); err != nil {
		h.writeDisasterError(c, log, err, "Failed to update disaster in service")
		return
	}
	c.JSON(http.StatusOK, ModelToDisasterResponse(model))
}

// @Summary Delete a disaster
// @Description Delete a disaster by ID together with its resources and reports. Requires a known user.
// @Tags Disasters
// @Accept json
// @Produce json
// @Security UserIDAuth
// @Param id path string true "Disaster ID"
// @Success 200 {object} DeleteDisasterResponse
// @Failure 400 {object} map[string]string "Invalid disaster ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Disaster not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters/{id} [delete]
func (h *Handler) deleteDisaster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster ID"})
		return
	}
	log := h.logger.WithField("method", "deleteDisaster").WithField("id", id)

	deleted, err := h.disasterService.DeleteDisaster(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDisasterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Disaster not found"})
			return
		}
		log.WithError(err).Error("Failed to delete disaster in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DeleteDisasterResponse{
		Message: "Disaster and related data deleted successfully",
		Deleted: ModelToDisasterResponse(deleted),
	})
}

// @Summary Get resources near a disaster
// @Description Get resources of a disaster within a 10 km radius of its location, nearest first.
// @Tags Resources
// @Accept json
// @Produce json
// @Param id path string true "Disaster ID"
// @Success 200 {array} models.Resource
// @Failure 400 {object} map[string]string "Invalid disaster ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters/{id}/resources [get]
func (h *Handler) listNearbyResources(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster ID"})
		return
	}
	log := h.logger.WithField("method", "listNearbyResources").WithField("id", id)

	resources, err := h.disasterService.NearbyResources(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby resources in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, resources)
}

// @Summary Get the social media feed of a disaster
// @Description Get cached mock social media posts related to a disaster's location.
// @Tags Feeds
// @Accept json
// @Produce json
// @Param id path string true "Disaster ID"
// @Success 200 {object} SocialMediaResponse
// @Failure 400 {object} map[string]string "Invalid disaster ID"
// @Failure 404 {object} map[string]string "Disaster not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters/{id}/social-media [get]
func (h *Handler) disasterSocialMedia(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster ID"})
		return
	}
	log := h.logger.WithField("method", "disasterSocialMedia").WithField("id", id)

	posts, err := h.feedService.SocialMediaForDisaster(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDisasterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Disaster not found"})
			return
		}
		log.WithError(err).Error("Failed to get social feed from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, SocialMediaResponse{DisasterID: id.String(), Posts: posts})
}

// @Summary Get official disaster updates
// @Description Get the cached official alerts feed. Returns a single informational item when the feed is empty.
// @Tags Feeds
// @Accept json
// @Produce json
// @Success 200 {array} models.OfficialUpdate
// @Failure 500 {object} map[string]string "Failed to fetch official updates"
// @Router /disasters/official-updates [get]
func (h *Handler) officialUpdates(c *gin.Context) {
	log := h.logger.WithField("method", "officialUpdates")

	updates, err := h.feedService.OfficialUpdates(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to fetch official updates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch official updates"})
		return
	}

	c.JSON(http.StatusOK, updates)
}

// @Summary Get a mock social media feed
// @Description Get generated social media posts labeled with the given location.
// @Tags Feeds
// @Accept json
// @Produce json
// @Param location query string false "Location name"
// @Success 200 {object} MockSocialMediaResponse
// @Router /mock-social-media [get]
func (h *Handler) mockSocialMedia(c *gin.Context) {
	posts := h.feedService.MockSocialPosts(c.Query("location"))
	c.JSON(http.StatusOK, MockSocialMediaResponse{Posts: posts})
}

// @Summary Resolve a location from a description
// @Description Extract a location name from free text and geocode it.
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param request body GeocodeRequest true "Geocode request"
// @Success 200 {object} GeocodeResponse
// @Failure 400 {object} map[string]string "Missing description or geocoding error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geocode [post]
func (h *Handler) geocode(c *gin.Context) {
	var input GeocodeRequest
	log := h.logger.WithField("method", "geocode")

	if err := c.ShouldBindJSON(&input); err != nil || input.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description is required."})
		return
	}

	enriched, err := h.enricher.Resolve(c.Request.Context(), input.Description, "")
	if err != nil {
		if errors.Is(err, service.ErrGeocodeFailed) || errors.Is(err, service.ErrInvalidCoordinates) || errors.Is(err, service.ErrExtractionFailed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Enrichment pipeline failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{
		LocationName: enriched.LocationName,
		Lat:          enriched.Latitude,
		Lon:          enriched.Longitude,
	})
}

// @Summary Verify a disaster image
// @Description Upload an image and analyze it for signs of disaster and authenticity. Requires a known user.
// @Tags Verification
// @Accept multipart/form-data
// @Produce json
// @Security UserIDAuth
// @Param image formData file true "Image to verify"
// @Success 200 {object} VerifyImageResponse
// @Failure 400 {object} map[string]string "No image uploaded"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Image analysis failed"
// @Router /disasters/verify-image [post]
func (h *Handler) verifyImage(c *gin.Context) {
	log := h.logger.WithField("method", "verifyImage")

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), strings.ReplaceAll(file.Filename, " ", "_"))
	dst := filepath.Join(h.cfg.UploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.WithError(err).Error("Failed to save uploaded image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	analysis, err := h.disasterService.VerifyImage(c.Request.Context(), file.Header.Get("Content-Type"), data)
	if err != nil {
		log.WithError(err).Error("Image analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image analysis failed"})
		return
	}

	c.JSON(http.StatusOK, VerifyImageResponse{
		ImageURL: fmt.Sprintf("%s/verify-images/%s", h.cfg.PublicBaseURL, filename),
		Analysis: analysis,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// callerOrDefault возвращает идентификатор аутентифицированного вызывающего
// или владельца по умолчанию, когда идентичность недоступна
func (h *Handler) callerOrDefault(c *gin.Context) string {
	if user, ok := CallerIdentity(c); ok {
		return user.ID
	}
	return defaultOwnerID
}

// writeDisasterError преобразует ошибки сервиса бедствий в HTTP-ответ.
// Ошибки пайплайна обогащения видимы клиенту, остальные скрываются.
func (h *Handler) writeDisasterError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrGeocodeFailed),
		errors.Is(err, service.ErrInvalidCoordinates),
		errors.Is(err, service.ErrExtractionFailed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDisasterNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Disaster not found"})
	default:
		log.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
