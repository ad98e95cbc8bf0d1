package v1

import "github.com/shenikar/disaster_response_system/internal/models"

// DTOToDisasterModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToDisasterModel(dto any) *models.Disaster {
	switch v := dto.(type) {
	case CreateDisasterRequest:
		return &models.Disaster{
			Title:        v.Title,
			Description:  v.Description,
			LocationName: v.LocationName,
			Tags:         v.Tags,
			OwnerID:      v.OwnerID,
		}
	case UpdateDisasterRequest:
		return &models.Disaster{
			Title:        v.Title,
			Description:  v.Description,
			LocationName: v.LocationName,
			Tags:         v.Tags,
			OwnerID:      v.OwnerID,
		}
	}
	return nil
}

// ModelToDisasterResponse преобразует доменную модель в DTO для ответа
func ModelToDisasterResponse(model *models.Disaster) *DisasterResponse {
	return &DisasterResponse{
		ID:           model.ID,
		Title:        model.Title,
		Description:  model.Description,
		LocationName: model.LocationName,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		Tags:         model.Tags,
		OwnerID:      model.OwnerID,
		AuditTrail:   model.AuditTrail,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToDisasterResponses преобразует слайс моделей в слайс DTO
func ModelsToDisasterResponses(models []*models.Disaster) []*DisasterResponse {
	responses := make([]*DisasterResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToDisasterResponse(model)
	}
	return responses
}
