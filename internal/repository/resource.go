package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service"
)

type ResourceRepository struct {
	db *pgxpool.Pool
}

func NewResourceRepository(db *pgxpool.Pool) service.ResourceRepository {
	return &ResourceRepository{db: db}
}

// GetDisasterLocation возвращает координаты бедствия
func (r *ResourceRepository) GetDisasterLocation(ctx context.Context, disasterID uuid.UUID) (lat, lon float64, err error) {
	query := `
		SELECT
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude
		FROM disasters
		WHERE id = $1;
	`
	err = r.db.QueryRow(ctx, query, disasterID).Scan(&lat, &lon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, service.ErrDisasterNotFound
		}
		return 0, 0, fmt.Errorf("failed to get disaster location: %w", err)
	}
	return lat, lon, nil
}

// FindNearby находит ресурсы бедствия в заданном радиусе от точки,
// отсортированные по удаленности
func (r *ResourceRepository) FindNearby(ctx context.Context, disasterID uuid.UUID, lat, lon float64, radiusMeters int) ([]*models.Resource, error) {
	query := `
		SELECT
			id,
			disaster_id,
			name,
			type,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			created_at
		FROM resources
		WHERE
			disaster_id = $1
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography,
				$4
			)
		ORDER BY location::geometry <-> ST_SetSRID(ST_MakePoint($2, $3), 4326);
	`
	rows, err := r.db.Query(ctx, query, disasterID, lon, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby resources: %w", err)
	}
	defer rows.Close()

	resources := make([]*models.Resource, 0)
	for rows.Next() {
		resource := &models.Resource{}
		err := rows.Scan(
			&resource.ID,
			&resource.DisasterID,
			&resource.Name,
			&resource.Type,
			&resource.Latitude,
			&resource.Longitude,
			&resource.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, resource)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in FindNearby: %w", err)
	}
	return resources, nil
}
