package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/helper_network/internal/config"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/shenikar/helper_network/pkg/geo"
	"github.com/sirupsen/logrus"
)

// RegistryStore определяет контракт общего реестра хелперов и запросов
type RegistryStore interface {
	UpsertHelper(ctx context.Context, helper models.Helper) ([]models.Helper, error)
	RemoveHelper(ctx context.Context, id string) error
	ListHelpers(ctx context.Context) ([]models.Helper, error)
	CreateRequest(ctx context.Context, req models.HelpRequest) (*models.HelpRequest, error)
	ListRequests(ctx context.Context) ([]models.HelpRequest, error)
	RemoveRequest(ctx context.Context, id string) error
	TransitionRequest(ctx context.Context, id string, mutator func(*models.HelpRequest) bool) (*models.HelpRequest, error)
}

// EventPublisher определяет контракт рассылки событий подписчикам
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data any) error
}

// HelperMatch - хелпер с расстоянием до точки поиска
type HelperMatch struct {
	models.Helper
	DistanceMeters float64 `json:"distance_meters"`
}

// RequestMatch - запрос помощи с расстоянием до точки поиска
type RequestMatch struct {
	models.HelpRequest
	DistanceMeters float64 `json:"distance_meters"`
}

// MatcherService определяет контракт подбора хелперов и запросов
type MatcherService interface {
	RegisterHelper(ctx context.Context, helper models.Helper) ([]models.Helper, error)
	UnregisterHelper(ctx context.Context, id string) error
	CreateRequest(ctx context.Context, req models.HelpRequest) (*models.HelpRequest, error)
	FindNearbyHelpers(ctx context.Context, loc models.Location, radiusMeters float64) ([]HelperMatch, error)
	FindNearbyRequests(ctx context.Context, loc models.Location, radiusMeters float64) ([]RequestMatch, error)
	AcceptRequest(ctx context.Context, requestID, helperID string) (*models.HelpRequest, error)
	CompleteRequest(ctx context.Context, requestID string) error
}

type matcherService struct {
	store  RegistryStore
	events EventPublisher
	logger *logrus.Logger
	cfg    *config.Config
}

func NewMatcherService(store RegistryStore, events EventPublisher, logger *logrus.Logger, cfg *config.Config) MatcherService {
	return &matcherService{
		store:  store,
		events: events,
		logger: logger,
		cfg:    cfg,
	}
}

// RegisterHelper регистрирует хелпера либо продлевает его присутствие.
// Повторный вызов служит heartbeat-ом: last_seen обновляется при каждой записи.
func (s *matcherService) RegisterHelper(ctx context.Context, helper models.Helper) ([]models.Helper, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "matcher",
		"method":    "RegisterHelper",
		"helper_id": helper.ID,
	})

	helpers, err := s.store.UpsertHelper(ctx, helper)
	if err != nil {
		log.WithError(err).Error("Failed to register helper in registry")
		return nil, fmt.Errorf("service: could not register helper: %w", err)
	}
	log.WithField("pool_size", len(helpers)).Info("Helper registered")
	return helpers, nil
}

// UnregisterHelper убирает хелпера из пула доступных
func (s *matcherService) UnregisterHelper(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "matcher",
		"method":    "UnregisterHelper",
		"helper_id": id,
	})

	if err := s.store.RemoveHelper(ctx, id); err != nil {
		log.WithError(err).Error("Failed to unregister helper")
		return fmt.Errorf("service: could not unregister helper: %w", err)
	}
	log.Info("Helper unregistered")
	return nil
}

// CreateRequest создает запрос помощи
func (s *matcherService) CreateRequest(ctx context.Context, req models.HelpRequest) (*models.HelpRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "matcher",
		"method":         "CreateRequest",
		"emergency_type": req.EmergencyType,
	})

	created, err := s.store.CreateRequest(ctx, req)
	if err != nil {
		log.WithError(err).Error("Failed to create help request")
		return nil, fmt.Errorf("service: could not create help request: %w", err)
	}
	log.WithField("request_id", created.ID).Info("Help request created")
	return created, nil
}

// FindNearbyHelpers возвращает живых хелперов в радиусе radiusMeters от точки,
// ближайшие первыми. Пустой результат - не ошибка: политика повторного
// поиска (каждые MatchRetryInterval) остается за вызывающим.
func (s *matcherService) FindNearbyHelpers(ctx context.Context, loc models.Location, radiusMeters float64) ([]HelperMatch, error) {
	if radiusMeters <= 0 {
		radiusMeters = s.cfg.DefaultSearchRadiusM
	}

	helpers, err := s.store.ListHelpers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list helpers: %w", err)
	}

	matches := make([]HelperMatch, 0, len(helpers))
	for _, h := range helpers {
		d := geo.DistanceMeters(loc.Lat, loc.Lng, h.Location.Lat, h.Location.Lng)
		if d <= radiusMeters {
			matches = append(matches, HelperMatch{Helper: h, DistanceMeters: d})
		}
	}
	// Ближайшие первыми; равные расстояния упорядочиваются по id для детерминизма
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceMeters != matches[j].DistanceMeters {
			return matches[i].DistanceMeters < matches[j].DistanceMeters
		}
		return matches[i].ID < matches[j].ID
	})
	return matches, nil
}

// FindNearbyRequests возвращает ожидающие запросы в радиусе от хелпера
func (s *matcherService) FindNearbyRequests(ctx context.Context, loc models.Location, radiusMeters float64) ([]RequestMatch, error) {
	if radiusMeters <= 0 {
		radiusMeters = s.cfg.DefaultSearchRadiusM
	}

	requests, err := s.store.ListRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list requests: %w", err)
	}

	matches := make([]RequestMatch, 0, len(requests))
	for _, r := range requests {
		if r.Status != models.RequestStatusPending {
			continue
		}
		d := geo.DistanceMeters(loc.Lat, loc.Lng, r.Location.Lat, r.Location.Lng)
		if d <= radiusMeters {
			matches = append(matches, RequestMatch{HelpRequest: r, DistanceMeters: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceMeters != matches[j].DistanceMeters {
			return matches[i].DistanceMeters < matches[j].DistanceMeters
		}
		return matches[i].ID < matches[j].ID
	})
	return matches, nil
}

// AcceptRequest переводит ожидающий запрос в accepted и убирает принявшего
// хелпера из пула: хелпер обслуживает один запрос за раз. Возвращает
// (nil, nil), если запрос исчез или уже принят - идемпотентный отказ,
// вызывающий может повторить с другой целью.
func (s *matcherService) AcceptRequest(ctx context.Context, requestID, helperID string) (*models.HelpRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "matcher",
		"method":     "AcceptRequest",
		"request_id": requestID,
		"helper_id":  helperID,
	})

	accepted, err := s.store.TransitionRequest(ctx, requestID, func(r *models.HelpRequest) bool {
		if r.Status != models.RequestStatusPending {
			return false
		}
		now := time.Now()
		r.Status = models.RequestStatusAccepted
		r.AcceptedBy = helperID
		r.AcceptedAt = &now
		return true
	})
	if err != nil {
		log.WithError(err).Error("Failed to transition help request")
		return nil, fmt.Errorf("service: could not accept request: %w", err)
	}
	if accepted == nil {
		log.Info("Request no longer pending, accept lost")
		return nil, nil
	}

	if err := s.store.RemoveHelper(ctx, helperID); err != nil {
		// Запрос уже принят; недоступность пула не откатывает переход
		log.WithError(err).Warn("Failed to remove accepting helper from pool")
	}
	s.publish(ctx, models.EventRequestAccepted, accepted)
	log.Info("Help request accepted")
	return accepted, nil
}

// CompleteRequest завершает запрос, удаляя его из реестра. Завершение
// несуществующего id - no-op. Хелпер не возвращается в пул автоматически,
// если не включен HELPER_REHIRE_ON_COMPLETE.
func (s *matcherService) CompleteRequest(ctx context.Context, requestID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "matcher",
		"method":     "CompleteRequest",
		"request_id": requestID,
	})

	requests, err := s.store.ListRequests(ctx)
	if err != nil {
		return fmt.Errorf("service: could not list requests: %w", err)
	}

	var completed *models.HelpRequest
	for i := range requests {
		if requests[i].ID == requestID {
			completed = &requests[i]
			break
		}
	}
	if completed == nil {
		log.Info("Request already gone, nothing to complete")
		return nil
	}

	if err := s.store.RemoveRequest(ctx, requestID); err != nil {
		log.WithError(err).Error("Failed to remove completed request")
		return fmt.Errorf("service: could not complete request: %w", err)
	}
	s.publish(ctx, models.EventRequestCompleted, map[string]string{"request_id": requestID})

	if s.cfg.RehireOnComplete && completed.AcceptedBy != "" {
		// Хелпер находится на месте завершенного запроса
		_, err := s.store.UpsertHelper(ctx, models.Helper{
			ID:       completed.AcceptedBy,
			Location: completed.Location,
		})
		if err != nil {
			log.WithError(err).Warn("Failed to re-register helper after completion")
		}
	}

	log.Info("Help request completed")
	return nil
}

func (s *matcherService) publish(ctx context.Context, eventType string, data any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, eventType, data); err != nil {
		s.logger.WithError(err).WithField("event", eventType).Warn("Failed to publish matcher event")
	}
}
