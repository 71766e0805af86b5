package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/shenikar/helper_network/internal/service"
)

type ZoneRepository struct {
	db *pgxpool.Pool
}

func NewZoneRepository(db *pgxpool.Pool) service.ZoneRepository {
	return &ZoneRepository{db: db}
}

// CreateZone создает новую зону оповещения в бд
func (r *ZoneRepository) CreateZone(ctx context.Context, zone *models.AlertZone) error {
	query := `
		INSERT INTO alert_zones (name, latitude, longitude, radius_meters, type, enabled)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		zone.Name,
		zone.Latitude,
		zone.Longitude,
		zone.RadiusMeters,
		zone.Type,
		zone.Enabled,
	).Scan(&zone.ID, &zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert zone: %w", err)
	}
	return nil
}

// GetZoneByID возвращает зону по ее UUID
func (r *ZoneRepository) GetZoneByID(ctx context.Context, id uuid.UUID) (*models.AlertZone, error) {
	zone := &models.AlertZone{}
	query := `
		SELECT id, name, latitude, longitude, radius_meters, type, enabled, created_at, updated_at
		FROM alert_zones
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&zone.ID,
		&zone.Name,
		&zone.Latitude,
		&zone.Longitude,
		&zone.RadiusMeters,
		&zone.Type,
		&zone.Enabled,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert zone with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get alert zone by id: %w", err)
	}
	return zone, nil
}

// ListZones возвращает все зоны пользователя. Зоны не удаляются
// автоматически, поэтому список полный, без фильтра по enabled.
func (r *ZoneRepository) ListZones(ctx context.Context) ([]*models.AlertZone, error) {
	query := `
		SELECT id, name, latitude, longitude, radius_meters, type, enabled, created_at, updated_at
		FROM alert_zones
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list alert zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.AlertZone, 0)
	for rows.Next() {
		zone := &models.AlertZone{}
		err := rows.Scan(
			&zone.ID,
			&zone.Name,
			&zone.Latitude,
			&zone.Longitude,
			&zone.RadiusMeters,
			&zone.Type,
			&zone.Enabled,
			&zone.CreatedAt,
			&zone.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return zones, nil
}

// SetZoneEnabled включает или выключает зону
func (r *ZoneRepository) SetZoneEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	query := `
		UPDATE alert_zones SET
			enabled = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, enabled, id)
	if err != nil {
		return fmt.Errorf("failed to toggle alert zone: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert zone with id %s not found", id)
	}
	return nil
}

// SaveLocationCheck сохраняет запись о проверке местоположения в бд
func (r *ZoneRepository) SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error {
	query := `
		INSERT INTO location_checks (user_id, latitude, longitude, is_dangerous)
		VALUES ($1, $2, $3, $4) RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		check.UserID,
		check.Latitude,
		check.Longitude,
		check.IsDangerous,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save location check: %w", err)
	}
	return nil
}

// GetLocationCheckStats возвращает количество уникальных пользователей, проверивших геолокацию
func (r *ZoneRepository) GetLocationCheckStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM location_checks
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get location check stats: %w", err)
	}
	return count, nil
}
