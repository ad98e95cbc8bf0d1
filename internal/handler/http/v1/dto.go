package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/models"
)

// CreateDisasterRequest DTO для создания бедствия
// @Description DTO для создания бедствия
type CreateDisasterRequest struct {
	Title        string   `json:"title" validate:"required,min=2,max=255"`
	Description  string   `json:"description" validate:"required"`
	LocationName string   `json:"location_name,omitempty"`
	Tags         []string `json:"tags"`
	OwnerID      string   `json:"owner_id,omitempty"`
}

// UpdateDisasterRequest DTO для обновления бедствия
// @Description DTO для обновления бедствия
type UpdateDisasterRequest struct {
	Title        string   `json:"title" validate:"required,min=2,max=255"`
	Description  string   `json:"description" validate:"required"`
	LocationName string   `json:"location_name,omitempty"`
	Tags         []string `json:"tags"`
	OwnerID      string   `json:"owner_id,omitempty"`
}

// DisasterResponse DTO для ответа с информацией о бедствии
// @Description DTO для ответа с информацией о бедствии
type DisasterResponse struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	LocationName string              `json:"location_name"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	Tags         []string            `json:"tags"`
	OwnerID      string              `json:"owner_id"`
	AuditTrail   []models.AuditEntry `json:"audit_trail"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// DeleteDisasterResponse DTO для ответа на удаление
// @Description DTO для ответа на удаление
type DeleteDisasterResponse struct {
	Message string            `json:"message"`
	Deleted *DisasterResponse `json:"deleted"`
}

// SocialMediaResponse DTO для социального фида бедствия
// @Description DTO для социального фида бедствия
type SocialMediaResponse struct {
	DisasterID string              `json:"disaster_id"`
	Posts      []models.SocialPost `json:"posts"`
}

// MockSocialMediaResponse DTO для мокового социального фида
// @Description DTO для мокового социального фида
type MockSocialMediaResponse struct {
	Posts []models.SocialPost `json:"posts"`
}

// GeocodeRequest DTO для автономного геокодирования описания
// @Description DTO для автономного геокодирования описания
type GeocodeRequest struct {
	Description string `json:"description" validate:"required"`
}

// GeocodeResponse DTO для результата геокодирования
// @Description DTO для результата геокодирования
type GeocodeResponse struct {
	LocationName string  `json:"location_name"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
}

// VerifyImageResponse DTO для результата анализа изображения
// @Description DTO для результата анализа изображения
type VerifyImageResponse struct {
	ImageURL string `json:"imageUrl"`
	Analysis string `json:"analysis"`
}
