package syncqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/sirupsen/logrus"
)

const queueKey = "helperz:pending_sync"

// Handler доставляет один тип отложенных операций
type Handler func(ctx context.Context, op models.SyncOperation) error

// DroppedFunc вызывается для операции, исчерпавшей попытки доставки
type DroppedFunc func(op models.SyncOperation, err error)

// Queue - долговременная очередь операций, которые не удалось доставить
// (офлайн или сбой внешнего вызова). Хранится списком в Redis, переживает
// рестарт экземпляра. Разбор очереди запускается при восстановлении связи;
// одновременно может идти не более одного прохода.
type Queue struct {
	rdb      *redis.Client
	logger   *logrus.Logger
	draining atomic.Bool
	online   atomic.Bool

	mu        sync.RWMutex
	handlers  map[string]Handler
	onDropped DroppedFunc
}

// NewQueue создает очередь синхронизации
func NewQueue(rdb *redis.Client, logger *logrus.Logger) *Queue {
	return &Queue{
		rdb:      rdb,
		logger:   logger,
		handlers: make(map[string]Handler),
	}
}

// RegisterHandler назначает обработчик для типа операции
func (q *Queue) RegisterHandler(opType string, h Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[opType] = h
}

// OnDropped назначает хук для операций, выброшенных после исчерпания попыток.
// Потерянная доставка должна быть видна пользовательскому слою, а не
// пропадать молча.
func (q *Queue) OnDropped(fn DroppedFunc) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.onDropped = fn
}

// Enqueue добавляет операцию в очередь с attempts=0
func (q *Queue) Enqueue(ctx context.Context, opType string, payload any) (*models.SyncOperation, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sync payload: %w", err)
	}

	op := models.SyncOperation{
		ID:        uuid.New().String(),
		Type:      opType,
		Payload:   raw,
		Timestamp: time.Now(),
		Attempts:  0,
	}
	if err := q.push(ctx, op); err != nil {
		return nil, err
	}

	q.logger.WithFields(logrus.Fields{
		"op_id":   op.ID,
		"op_type": op.Type,
	}).Info("Queued operation for sync")
	return &op, nil
}

// Len возвращает число операций, ожидающих доставки
func (q *Queue) Len(ctx context.Context) (int64, error) {
	n, err := q.rdb.LLen(ctx, queueKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to read sync queue length: %w", err)
	}
	return n, nil
}

// Online сообщает, считает ли очередь соединение восстановленным
func (q *Queue) Online() bool {
	return q.online.Load()
}

// SetOnline фиксирует смену состояния соединения. Переход offline->online
// запускает разбор накопленной очереди.
func (q *Queue) SetOnline(ctx context.Context, online bool) {
	was := q.online.Swap(online)
	if online && !was {
		if err := q.Drain(ctx); err != nil {
			q.logger.WithError(err).Error("Sync queue drain failed")
		}
	}
}

// Drain прогоняет накопленные операции через обработчики. Повторный вызов
// во время идущего прохода - no-op. Неудачная операция возвращается в
// очередь, пока attempts < models.SyncMaxAttempts, затем выбрасывается с
// уведомлением через OnDropped. Операция неизвестного типа логируется и
// выбрасывается сразу, без повторов.
func (q *Queue) Drain(ctx context.Context) error {
	if !q.draining.CompareAndSwap(false, true) {
		return nil
	}
	defer q.draining.Store(false)

	// Ограничиваем проход размером очереди на старте: возвращенные в
	// очередь операции ждут следующего прохода
	backlog, err := q.rdb.LLen(ctx, queueKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read sync queue length: %w", err)
	}

	for i := int64(0); i < backlog; i++ {
		raw, err := q.rdb.RPop(ctx, queueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return fmt.Errorf("failed to pop sync operation: %w", err)
		}

		var op models.SyncOperation
		if err := json.Unmarshal([]byte(raw), &op); err != nil {
			q.logger.WithError(err).Warn("Corrupt sync operation, dropping")
			continue
		}
		q.process(ctx, op)
	}
	return nil
}

func (q *Queue) process(ctx context.Context, op models.SyncOperation) {
	log := q.logger.WithFields(logrus.Fields{
		"op_id":    op.ID,
		"op_type":  op.Type,
		"attempts": op.Attempts,
	})

	q.mu.RLock()
	handler, known := q.handlers[op.Type]
	dropped := q.onDropped
	q.mu.RUnlock()

	if !known {
		log.Warn("Unknown sync operation type, dropping")
		return
	}

	err := handler(ctx, op)
	if err == nil {
		log.Info("Sync operation delivered")
		return
	}

	op.Attempts++
	if op.Attempts < models.SyncMaxAttempts {
		log.WithError(err).Warn("Sync operation failed, re-queueing")
		if pushErr := q.push(ctx, op); pushErr != nil {
			log.WithError(pushErr).Error("Failed to re-queue sync operation")
		}
		return
	}

	log.WithError(err).Error("Sync operation dropped after max attempts")
	if dropped != nil {
		dropped(op, err)
	}
}

func (q *Queue) push(ctx context.Context, op models.SyncOperation) error {
	payload, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal sync operation: %w", err)
	}
	if err := q.rdb.LPush(ctx, queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to push sync operation: %w", err)
	}
	return nil
}
