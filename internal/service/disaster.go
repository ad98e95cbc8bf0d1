package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/notifier"
	"github.com/sirupsen/logrus"
)

// Радиус геопоиска ресурсов вокруг бедствия
const resourceSearchRadiusMeters = 10000

type disasterService struct {
	repo         DisasterRepository
	resourceRepo ResourceRepository
	enricher     Enricher
	analyzer     ImageAnalyzer
	publisher    notifier.Publisher
	logger       *logrus.Logger
	clock        clockwork.Clock
}

// NewDisasterService создает сервис управления бедствиями
func NewDisasterService(repo DisasterRepository, resourceRepo ResourceRepository, enricher Enricher, analyzer ImageAnalyzer, publisher notifier.Publisher, logger *logrus.Logger, clock clockwork.Clock) DisasterService {
	return &disasterService{
		repo:         repo,
		resourceRepo: resourceRepo,
		enricher:     enricher,
		analyzer:     analyzer,
		publisher:    publisher,
		logger:       logger,
		clock:        clock,
	}
}

// CreateDisaster обогащает бедствие координатами, добавляет первую запись
// журнала изменений и сохраняет его. LocationName остается пустым только
// до обогащения: пустое значение запускает извлечение из описания.
func (s *disasterService) CreateDisaster(ctx context.Context, disaster *models.Disaster) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "disaster",
		"method":  "CreateDisaster",
		"title":   disaster.Title,
	})
	log.Info("Attempting to create a new disaster")

	enriched, err := s.enricher.Resolve(ctx, disaster.Description, disaster.LocationName)
	if err != nil {
		log.WithError(err).Error("Enrichment pipeline failed")
		return err
	}
	disaster.LocationName = enriched.LocationName
	disaster.Latitude = enriched.Latitude
	disaster.Longitude = enriched.Longitude

	disaster.AuditTrail = []models.AuditEntry{{
		Action:    models.AuditActionCreate,
		UserID:    disaster.OwnerID,
		Timestamp: s.clock.Now().UTC().Format(time.RFC3339),
	}}

	if err := s.repo.Create(ctx, disaster); err != nil {
		log.WithError(err).Error("Failed to create disaster in repository")
		return fmt.Errorf("service: could not create disaster: %w", err)
	}

	log.WithField("disaster_id", disaster.ID).Info("Disaster created successfully")
	s.emitChangeEvents(ctx, notifier.EventDisasterUpdated, disaster)
	return nil
}

// ListDisasters возвращает все бедствия, опционально отфильтрованные по тегу
func (s *disasterService) ListDisasters(ctx context.Context, tag string) ([]*models.Disaster, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "disaster",
		"method":  "ListDisasters",
		"tag":     tag,
	})
	log.Info("Listing disasters")

	disasters, err := s.repo.List(ctx, tag)
	if err != nil {
		log.WithError(err).Error("Failed to list disasters from repository")
		return nil, fmt.Errorf("service: could not list disasters: %w", err)
	}

	log.WithField("count", len(disasters)).Info("Disasters listed successfully")
	return disasters, nil
}

// UpdateDisaster обновляет существующее бедствие. Пайплайн обогащения
// выполняется всегда, когда явное имя места не передано, даже если запись
// уже содержит координаты. Владелец и заголовок создания не меняются,
// журнал изменений получает ровно одну новую запись.
func (s *disasterService) UpdateDisaster(ctx context.Context, disaster *models.Disaster) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "disaster",
		"method":      "UpdateDisaster",
		"disaster_id": disaster.ID,
	})
	log.Info("Attempting to update disaster")

	existing, err := s.repo.GetByID(ctx, disaster.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent disaster")
		return err
	}

	enriched, err := s.enricher.Resolve(ctx, disaster.Description, disaster.LocationName)
	if err != nil {
		log.WithError(err).Error("Enrichment pipeline failed")
		return err
	}

	existing.Title = disaster.Title
	existing.Description = disaster.Description
	existing.LocationName = enriched.LocationName
	existing.Latitude = enriched.Latitude
	existing.Longitude = enriched.Longitude
	existing.Tags = disaster.Tags
	existing.AuditTrail = append(existing.AuditTrail, models.AuditEntry{
		Action:    models.AuditActionUpdate,
		UserID:    disaster.OwnerID,
		Timestamp: s.clock.Now().UTC().Format(time.RFC3339),
	})

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update disaster in repository")
		return fmt.Errorf("service: could not update disaster: %w", err)
	}

	*disaster = *existing
	log.Info("Disaster updated successfully")
	s.emitChangeEvents(ctx, notifier.EventDisasterUpdated, disaster)
	return nil
}

// DeleteDisaster удаляет бедствие c каскадом по зависимым данным
// и возвращает удаленную запись
func (s *disasterService) DeleteDisaster(ctx context.Context, id uuid.UUID) (*models.Disaster, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "disaster",
		"method":      "DeleteDisaster",
		"disaster_id": id,
	})
	log.Info("Attempting to delete disaster")

	deleted, err := s.repo.DeleteCascade(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to delete disaster")
		return nil, err
	}

	log.Info("Disaster deleted successfully")
	s.emitChangeEvents(ctx, notifier.EventDisasterDeleted, deleted)
	return deleted, nil
}

// NearbyResources возвращает ресурсы бедствия в радиусе 10 км,
// отсортированные по удаленности
func (s *disasterService) NearbyResources(ctx context.Context, disasterID uuid.UUID) ([]*models.Resource, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "disaster",
		"method":      "NearbyResources",
		"disaster_id": disasterID,
	})
	log.Info("Looking up nearby resources")

	lat, lon, err := s.resourceRepo.GetDisasterLocation(ctx, disasterID)
	if err != nil {
		log.WithError(err).Error("Failed to get disaster location")
		return nil, err
	}

	resources, err := s.resourceRepo.FindNearby(ctx, disasterID, lat, lon, resourceSearchRadiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby resources")
		return nil, fmt.Errorf("service: could not find nearby resources: %w", err)
	}

	log.WithField("count", len(resources)).Info("Nearby resources found")
	return resources, nil
}

// VerifyImage анализирует загруженное изображение на признаки бедствия
func (s *disasterService) VerifyImage(ctx context.Context, mimeType string, data []byte) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "disaster",
		"method":  "VerifyImage",
		"mime":    mimeType,
	})
	log.Info("Analyzing uploaded image")

	analysis, err := s.analyzer.AnalyzeImage(ctx, mimeType, data)
	if err != nil {
		log.WithError(err).Error("Image analysis failed")
		return "", fmt.Errorf("service: image analysis failed: %w", err)
	}
	return analysis, nil
}

// emitChangeEvents рассылает событие по бедствию и два события зависимых данных.
// Публикация fire-and-forget: ошибка логируется и не прерывает запрос.
func (s *disasterService) emitChangeEvents(ctx context.Context, disasterEvent string, disaster *models.Disaster) {
	now := s.clock.Now().UTC()
	events := []notifier.Event{
		{Type: disasterEvent, DisasterID: disaster.ID.String(), Payload: disaster, Timestamp: now},
		{Type: notifier.EventSocialMediaUpdated, DisasterID: disaster.ID.String(), Timestamp: now},
		{Type: notifier.EventResourcesUpdated, DisasterID: disaster.ID.String(), Timestamp: now},
	}
	for _, event := range events {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.WithError(err).WithField("event", event.Type).Warn("Failed to publish change event")
		}
	}
}
