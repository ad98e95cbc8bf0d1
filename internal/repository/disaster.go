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

type DisasterRepository struct {
	db *pgxpool.Pool
}

func NewDisasterRepository(db *pgxpool.Pool) service.DisasterRepository {
	return &DisasterRepository{db: db}
}

const disasterColumns = `
	id,
	title,
	description,
	location_name,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	tags,
	owner_id,
	audit_trail,
	created_at,
	updated_at`

func scanDisaster(row pgx.Row) (*models.Disaster, error) {
	d := &models.Disaster{}
	err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Description,
		&d.LocationName,
		&d.Latitude,
		&d.Longitude,
		&d.Tags,
		&d.OwnerID,
		&d.AuditTrail,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Create создает новую запись о бедствии в бд
func (r *DisasterRepository) Create(ctx context.Context, disaster *models.Disaster) error {
	query := `
		INSERT INTO disasters (title, description, location_name, location, tags, owner_id, audit_trail)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		disaster.Title,
		disaster.Description,
		disaster.LocationName,
		disaster.Longitude,
		disaster.Latitude,
		disaster.Tags,
		disaster.OwnerID,
		disaster.AuditTrail,
	).Scan(&disaster.ID, &disaster.CreatedAt, &disaster.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create disaster: %w", err)
	}
	return nil
}

// GetByID возвращает бедствие по его UUID
func (r *DisasterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Disaster, error) {
	query := `SELECT ` + disasterColumns + ` FROM disasters WHERE id = $1;`

	disaster, err := scanDisaster(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrDisasterNotFound
		}
		return nil, fmt.Errorf("failed to get disaster by id: %w", err)
	}
	return disaster, nil
}

// List возвращает все бедствия, опционально отфильтрованные по тегу
func (r *DisasterRepository) List(ctx context.Context, tag string) ([]*models.Disaster, error) {
	query := `SELECT ` + disasterColumns + ` FROM disasters`
	args := []any{}
	if tag != "" {
		query += ` WHERE $1 = ANY(tags)`
		args = append(args, tag)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list disasters: %w", err)
	}
	defer rows.Close()

	disasters := make([]*models.Disaster, 0)
	for rows.Next() {
		disaster, err := scanDisaster(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan disaster row: %w", err)
		}
		disasters = append(disasters, disaster)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return disasters, nil
}

// Update перезаписывает изменяемые поля бедствия. Владелец не меняется.
func (r *DisasterRepository) Update(ctx context.Context, disaster *models.Disaster) error {
	query := `
		UPDATE disasters SET
			title = $1,
			description = $2,
			location_name = $3,
			location = ST_SetSRID(ST_MakePoint($4, $5), 4326),
			tags = $6,
			audit_trail = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		disaster.Title,
		disaster.Description,
		disaster.LocationName,
		disaster.Longitude,
		disaster.Latitude,
		disaster.Tags,
		disaster.AuditTrail,
		disaster.ID,
	).Scan(&disaster.CreatedAt, &disaster.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.ErrDisasterNotFound
		}
		return fmt.Errorf("failed to update disaster: %w", err)
	}
	return nil
}

// DeleteCascade удаляет бедствие вместе с зависимыми ресурсами и отчетами
// в одной транзакции. Возвращает удаленную запись.
func (r *DisasterRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (*models.Disaster, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Фиксируем запись до каскада: если ее нет, никакие зависимые данные не трогаем
	query := `SELECT ` + disasterColumns + ` FROM disasters WHERE id = $1 FOR UPDATE;`
	disaster, err := scanDisaster(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrDisasterNotFound
		}
		return nil, fmt.Errorf("failed to lock disaster for delete: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM resources WHERE disaster_id = $1;`, id); err != nil {
		return nil, fmt.Errorf("failed to delete resources: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM reports WHERE disaster_id = $1;`, id); err != nil {
		return nil, fmt.Errorf("failed to delete reports: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM disasters WHERE id = $1;`, id); err != nil {
		return nil, fmt.Errorf("failed to delete disaster: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit delete transaction: %w", err)
	}
	return disaster, nil
}
