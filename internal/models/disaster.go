package models

import (
	"time"

	"github.com/google/uuid"
)

type Disaster struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	LocationName string       `json:"location_name"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	Tags         []string     `json:"tags"`
	OwnerID      string       `json:"owner_id"`
	AuditTrail   []AuditEntry `json:"audit_trail"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// EnrichedLocation - результат пайплайна обогащения: имя места и координаты
type EnrichedLocation struct {
	LocationName string  `json:"location_name"`
	Latitude     float64 `json:"lat"`
	Longitude    float64 `json:"lon"`
}
