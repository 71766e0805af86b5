package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// transportKey хранит последний разосланный конверт события.
	// Периодический опрос ключа - страховка на случай потери push-уведомления.
	transportKey = "helperz:network_updates"
	channelName  = "helperz:updates"

	// localDispatchDelay откладывает локальную доставку, чтобы колбэки не
	// вызывались в том же тике, что и Publish
	localDispatchDelay = 100 * time.Millisecond
)

// Listener - колбэк подписчика
type Listener func(event models.BroadcastEvent)

// Bus доставляет уведомления об изменениях реестра всем подписчикам:
// локальным - напрямую, соседним экземплярам - через Redis pub/sub плюс
// периодический опрос транспортного ключа как нижнюю границу доставки.
// Порядок доставки между экземплярами не гарантируется; внутри одного
// экземпляра колбэки вызываются в порядке подписки.
type Bus struct {
	rdb          *redis.Client
	logger       *logrus.Logger
	originID     string
	pollInterval time.Duration

	mu        sync.Mutex
	order     []string
	listeners map[string]Listener

	seenTimestamp int64
	seenOrigin    string

	cancel context.CancelFunc
}

// NewBus создает шину с уникальным origin id экземпляра
func NewBus(rdb *redis.Client, logger *logrus.Logger, pollInterval time.Duration) *Bus {
	return &Bus{
		rdb:          rdb,
		logger:       logger,
		originID:     uuid.New().String(),
		pollInterval: pollInterval,
		listeners:    make(map[string]Listener),
	}
}

// OriginID возвращает идентификатор экземпляра шины
func (b *Bus) OriginID() string {
	return b.originID
}

// Subscribe регистрирует колбэк. Повторная подписка с тем же id заменяет
// колбэк, сохраняя исходную позицию в порядке доставки.
func (b *Bus) Subscribe(listenerID string, fn Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.listeners[listenerID]; !exists {
		b.order = append(b.order, listenerID)
	}
	b.listeners[listenerID] = fn
}

// Unsubscribe снимает подписку
func (b *Bus) Unsubscribe(listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.listeners[listenerID]; !exists {
		return
	}
	delete(b.listeners, listenerID)
	for i, id := range b.order {
		if id == listenerID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Publish записывает конверт события в транспортный ключ, публикует его в
// pub/sub канал и асинхронно доставляет локальным подписчикам
func (b *Bus) Publish(ctx context.Context, eventType string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	event := models.BroadcastEvent{
		Type:      eventType,
		Data:      raw,
		Timestamp: time.Now().UnixMilli(),
		OriginID:  b.originID,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast event: %w", err)
	}

	if err := b.rdb.Set(ctx, transportKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write transport slot: %w", err)
	}
	if err := b.rdb.Publish(ctx, channelName, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish broadcast event: %w", err)
	}

	// Собственное событие помечается обработанным, чтобы опрос не доставил
	// его второй раз: локальная доставка уже запланирована
	b.markSeen(event)
	time.AfterFunc(localDispatchDelay, func() {
		b.dispatch(event)
	})
	return nil
}

// Start запускает приём push-уведомлений и опрос транспортного ключа.
// Остановка - через Stop или отмену контекста.
func (b *Bus) Start(ctx context.Context) {
	subCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel

	pubsub := b.rdb.Subscribe(subCtx, channelName)
	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				b.handleRemotePayload([]byte(msg.Payload))
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(b.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-subCtx.Done():
				return
			case <-ticker.C:
				raw, err := b.rdb.Get(subCtx, transportKey).Bytes()
				if err != nil {
					continue
				}
				b.handleRemotePayload(raw)
			}
		}
	}()
}

// Stop останавливает фоновые горутины шины
func (b *Bus) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

func (b *Bus) handleRemotePayload(raw []byte) {
	var event models.BroadcastEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		b.logger.WithError(err).Warn("Corrupt broadcast envelope, skipping")
		return
	}
	if event.OriginID == b.originID {
		return
	}
	if !b.markSeen(event) {
		return
	}
	b.dispatch(event)
}

// markSeen отсекает повторную обработку по паре (timestamp, origin).
// Возвращает true, если событие новое.
func (b *Bus) markSeen(event models.BroadcastEvent) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if event.Timestamp == b.seenTimestamp && event.OriginID == b.seenOrigin {
		return false
	}
	b.seenTimestamp = event.Timestamp
	b.seenOrigin = event.OriginID
	return true
}

// dispatch вызывает колбэки в порядке подписки. Паника одного подписчика
// не должна мешать остальным.
func (b *Bus) dispatch(event models.BroadcastEvent) {
	b.mu.Lock()
	snapshot := make([]Listener, 0, len(b.order))
	for _, id := range b.order {
		snapshot = append(snapshot, b.listeners[id])
	}
	b.mu.Unlock()

	for _, fn := range snapshot {
		b.invoke(fn, event)
	}
}

func (b *Bus) invoke(fn Listener, event models.BroadcastEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.WithField("panic", r).Error("Broadcast listener panicked")
		}
	}()
	fn(event)
}
