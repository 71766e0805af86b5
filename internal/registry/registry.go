package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/sirupsen/logrus"
)

// Ключи общего реестра. Значения - JSON-массивы записей.
const (
	helpersKey  = "helperz:helpers"
	requestsKey = "helperz:requests"
)

// maxTransitionRetries - число повторов CAS-транзакции при конкурентной записи
const maxTransitionRetries = 5

// EventPublisher - контракт для уведомления подписчиков об изменениях реестра
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data any) error
}

// Store - общий реестр хелперов и запросов помощи поверх Redis.
// Реестр eventually-consistent: несколько экземпляров приложения читают и
// пишут одни и те же ключи, строгой согласованности нет. Протухшие записи
// отсекаются лениво при чтении и вычищаются обратной записью.
type Store struct {
	rdb    *redis.Client
	logger *logrus.Logger
	events EventPublisher
	now    func() time.Time
}

// NewStore создает реестр. publisher может быть nil (уведомления отключены).
func NewStore(rdb *redis.Client, logger *logrus.Logger, publisher EventPublisher) *Store {
	return &Store{
		rdb:    rdb,
		logger: logger,
		events: publisher,
		now:    time.Now,
	}
}

// UpsertHelper вставляет или заменяет хелпера по id, обновляя last_seen.
// Возвращает полный список хелперов после записи.
func (s *Store) UpsertHelper(ctx context.Context, helper models.Helper) ([]models.Helper, error) {
	helpers, err := s.ListHelpers(ctx)
	if err != nil {
		return nil, err
	}

	helper.LastSeen = s.now()
	replaced := false
	for i := range helpers {
		if helpers[i].ID == helper.ID {
			helpers[i] = helper
			replaced = true
			break
		}
	}
	if !replaced {
		helpers = append(helpers, helper)
	}

	if err := s.writeHelpers(ctx, helpers); err != nil {
		return nil, err
	}
	s.notify(ctx, models.EventHelperUpdate, helpers)
	return helpers, nil
}

// RemoveHelper удаляет хелпера из реестра
func (s *Store) RemoveHelper(ctx context.Context, id string) error {
	helpers, err := s.ListHelpers(ctx)
	if err != nil {
		return err
	}

	filtered := helpers[:0]
	for _, h := range helpers {
		if h.ID != id {
			filtered = append(filtered, h)
		}
	}
	if err := s.writeHelpers(ctx, filtered); err != nil {
		return err
	}
	s.notify(ctx, models.EventHelperUpdate, filtered)
	return nil
}

// ListHelpers возвращает живых хелперов. Протухшие (last_seen старше окна
// активности) отсекаются и вычищаются из Redis обратной записью.
func (s *Store) ListHelpers(ctx context.Context) ([]models.Helper, error) {
	var helpers []models.Helper
	if err := s.readSlot(ctx, helpersKey, &helpers); err != nil {
		return nil, err
	}

	now := s.now()
	live := make([]models.Helper, 0, len(helpers))
	for _, h := range helpers {
		if h.LiveAt(now) {
			live = append(live, h)
		}
	}

	if len(live) != len(helpers) {
		if err := s.writeHelpers(ctx, live); err != nil {
			return nil, err
		}
	}
	return live, nil
}

// CreateRequest создает запрос помощи со статусом pending.
// Идентификатор монотонный, на основе текущего времени.
func (s *Store) CreateRequest(ctx context.Context, req models.HelpRequest) (*models.HelpRequest, error) {
	requests, err := s.ListRequests(ctx)
	if err != nil {
		return nil, err
	}

	req.ID = strconv.FormatInt(s.now().UnixNano(), 10)
	req.Status = models.RequestStatusPending
	req.CreatedAt = s.now()
	req.AcceptedBy = ""
	req.AcceptedAt = nil

	requests = append(requests, req)
	if err := s.writeRequests(ctx, requests); err != nil {
		return nil, err
	}
	s.notify(ctx, models.EventNewHelpRequest, req)
	return &req, nil
}

// ListRequests возвращает активные запросы, лениво вычищая истекшие
func (s *Store) ListRequests(ctx context.Context) ([]models.HelpRequest, error) {
	var requests []models.HelpRequest
	if err := s.readSlot(ctx, requestsKey, &requests); err != nil {
		return nil, err
	}

	now := s.now()
	active := make([]models.HelpRequest, 0, len(requests))
	for _, r := range requests {
		if !r.ExpiredAt(now) {
			active = append(active, r)
		}
	}

	if len(active) != len(requests) {
		if err := s.writeRequests(ctx, active); err != nil {
			return nil, err
		}
	}
	return active, nil
}

// RemoveRequest удаляет запрос из реестра. Удаление несуществующего id - no-op.
func (s *Store) RemoveRequest(ctx context.Context, id string) error {
	requests, err := s.ListRequests(ctx)
	if err != nil {
		return err
	}

	filtered := requests[:0]
	for _, r := range requests {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	return s.writeRequests(ctx, filtered)
}

// TransitionRequest применяет переход состояния к запросу под оптимистичной
// блокировкой (WATCH/MULTI). Если другой экземпляр изменил слот запросов
// между чтением и записью, транзакция повторяется. mutator возвращает false,
// когда переход неприменим (запрос уже принят или исчез) - тогда метод
// возвращает (nil, nil), это идемпотентный отказ, не ошибка.
func (s *Store) TransitionRequest(ctx context.Context, id string, mutator func(*models.HelpRequest) bool) (*models.HelpRequest, error) {
	var result *models.HelpRequest

	txn := func(tx *redis.Tx) error {
		result = nil

		raw, err := tx.Get(ctx, requestsKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to read requests slot: %w", err)
		}

		requests := s.decodeRequests(raw)

		now := s.now()
		idx := -1
		for i := range requests {
			if requests[i].ID == id && !requests[i].ExpiredAt(now) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil // запрос исчез или истек
		}

		if !mutator(&requests[idx]) {
			return nil // переход неприменим
		}

		payload, err := json.Marshal(requests)
		if err != nil {
			return fmt.Errorf("failed to marshal requests: %w", err)
		}

		mutated := requests[idx]
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, requestsKey, payload, 0)
			return nil
		})
		if err != nil {
			return err
		}
		result = &mutated
		return nil
	}

	for i := 0; i < maxTransitionRetries; i++ {
		err := s.rdb.Watch(ctx, txn, requestsKey)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Конкурентная запись, перечитываем и повторяем
			continue
		}
		return nil, fmt.Errorf("transition failed: %w", err)
	}
	return nil, fmt.Errorf("transition aborted after %d retries", maxTransitionRetries)
}

// readSlot читает JSON-массив из ключа. Поврежденный JSON не должен ронять
// читателей: трактуется как пустая коллекция и логируется.
func (s *Store) readSlot(ctx context.Context, key string, dest any) error {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Corrupt registry slot, treating as empty")
	}
	return nil
}

func (s *Store) decodeRequests(raw string) []models.HelpRequest {
	if raw == "" {
		return nil
	}
	var requests []models.HelpRequest
	if err := json.Unmarshal([]byte(raw), &requests); err != nil {
		s.logger.WithError(err).WithField("key", requestsKey).Warn("Corrupt registry slot, treating as empty")
		return nil
	}
	return requests
}

func (s *Store) writeHelpers(ctx context.Context, helpers []models.Helper) error {
	payload, err := json.Marshal(helpers)
	if err != nil {
		return fmt.Errorf("failed to marshal helpers: %w", err)
	}
	if err := s.rdb.Set(ctx, helpersKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write helpers slot: %w", err)
	}
	return nil
}

func (s *Store) writeRequests(ctx context.Context, requests []models.HelpRequest) error {
	payload, err := json.Marshal(requests)
	if err != nil {
		return fmt.Errorf("failed to marshal requests: %w", err)
	}
	if err := s.rdb.Set(ctx, requestsKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write requests slot: %w", err)
	}
	return nil
}

// notify рассылает уведомление об изменении. Сбой доставки не должен
// ломать запись в реестр, поэтому ошибка только логируется.
func (s *Store) notify(ctx context.Context, eventType string, data any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, eventType, data); err != nil {
		s.logger.WithError(err).WithField("event", eventType).Warn("Failed to broadcast registry change")
	}
}
