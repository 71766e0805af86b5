package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/helper_network/internal/config"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/shenikar/helper_network/pkg/geo"
	"github.com/sirupsen/logrus"
)

// ZoneRepository определяет контракт для работы с бд зон оповещения
type ZoneRepository interface {
	CreateZone(ctx context.Context, zone *models.AlertZone) error
	GetZoneByID(ctx context.Context, id uuid.UUID) (*models.AlertZone, error)
	ListZones(ctx context.Context) ([]*models.AlertZone, error)
	SetZoneEnabled(ctx context.Context, id uuid.UUID, enabled bool) error
	SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error
	GetLocationCheckStats(ctx context.Context, minutes int) (int, error)
}

// GeofenceService определяет контракт для зон оповещения.
// CheckLocation сообщает о КАЖДОМ попадании при каждом вызове; подавление
// повторных оповещений (кулдаун) - обязанность потребителя, см. AlertNotifier.
type GeofenceService interface {
	AddZone(ctx context.Context, zone *models.AlertZone) error
	ListZones(ctx context.Context) ([]*models.AlertZone, error)
	SetZoneEnabled(ctx context.Context, id uuid.UUID, enabled bool) error
	CheckLocation(ctx context.Context, userID string, lat, lng float64) ([]models.TriggeredZone, error)
	GetStats(ctx context.Context) (int, error)
}

type geofenceService struct {
	repo   ZoneRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewGeofenceService(repo ZoneRepository, logger *logrus.Logger, cfg *config.Config) GeofenceService {
	return &geofenceService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// AddZone создает зону оповещения
func (s *geofenceService) AddZone(ctx context.Context, zone *models.AlertZone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geofence",
		"method":  "AddZone",
		"name":    zone.Name,
	})

	if zone.RadiusMeters <= 0 {
		zone.RadiusMeters = 1000
	}
	if zone.Type == "" {
		zone.Type = "safety"
	}
	zone.Enabled = true

	if err := s.repo.CreateZone(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create alert zone in repository")
		return fmt.Errorf("service: could not create alert zone: %w", err)
	}
	log.WithField("zone_id", zone.ID).Info("Alert zone created")
	return nil
}

// ListZones возвращает все зоны
func (s *geofenceService) ListZones(ctx context.Context) ([]*models.AlertZone, error) {
	zones, err := s.repo.ListZones(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list alert zones")
		return nil, fmt.Errorf("service: could not list alert zones: %w", err)
	}
	return zones, nil
}

// SetZoneEnabled включает или выключает зону
func (s *geofenceService) SetZoneEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geofence",
		"method":  "SetZoneEnabled",
		"zone_id": id,
		"enabled": enabled,
	})

	if err := s.repo.SetZoneEnabled(ctx, id, enabled); err != nil {
		log.WithError(err).Warn("Failed to toggle alert zone")
		return fmt.Errorf("service: could not toggle alert zone: %w", err)
	}
	log.Info("Alert zone toggled")
	return nil
}

// CheckLocation сравнивает точку с каждой включенной зоной. Зона срабатывает
// при distance <= radius (граница включительно). Запись аудита - побочный
// эффект; ее сбой логируется, но не роняет проверку: во время ЧС ответ
// важнее журнала.
func (s *geofenceService) CheckLocation(ctx context.Context, userID string, lat, lng float64) ([]models.TriggeredZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geofence",
		"method":  "CheckLocation",
		"user_id": userID,
	})

	zones, err := s.repo.ListZones(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list alert zones for check")
		return nil, fmt.Errorf("service: could not check location: %w", err)
	}

	triggered := make([]models.TriggeredZone, 0)
	for _, zone := range zones {
		if !zone.Enabled {
			continue
		}
		d := geo.DistanceMeters(lat, lng, zone.Latitude, zone.Longitude)
		if d <= zone.RadiusMeters {
			triggered = append(triggered, models.TriggeredZone{
				AlertZone:      *zone,
				DistanceMeters: d,
			})
		}
	}

	check := &models.LocationCheck{
		UserID:      userID,
		Latitude:    lat,
		Longitude:   lng,
		IsDangerous: len(triggered) > 0,
	}
	if err := s.repo.SaveLocationCheck(ctx, check); err != nil {
		log.WithError(err).Warn("Failed to save location check audit row")
	}

	log.WithField("triggered", len(triggered)).Info("Location check completed")
	return triggered, nil
}

// GetStats возвращает число уникальных пользователей за окно статистики
func (s *geofenceService) GetStats(ctx context.Context) (int, error) {
	count, err := s.repo.GetLocationCheckStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get location check stats")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}
