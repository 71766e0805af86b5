package broadcast

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestBus(t *testing.T) (*Bus, *miniredis.Miniredis) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	bus := NewBus(rdb, logger, 50*time.Millisecond)
	t.Cleanup(bus.Stop)
	return bus, mr
}

// recorder собирает доставленные события потокобезопасно
type recorder struct {
	mu     sync.Mutex
	events []models.BroadcastEvent
}

func (r *recorder) listener(tag string, order *[]string) Listener {
	return func(ev models.BroadcastEvent) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, ev)
		if order != nil {
			*order = append(*order, tag)
		}
	}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestPublish_DeliversLocallyInSubscriptionOrder(t *testing.T) {
	bus, _ := setupTestBus(t)
	ctx := context.Background()

	var mu sync.Mutex
	var order []string
	rec := &recorder{}

	bus.Subscribe("first", func(ev models.BroadcastEvent) {
		mu.Lock()
		order = append(order, "first")
		mu.Unlock()
	})
	bus.Subscribe("second", func(ev models.BroadcastEvent) {
		mu.Lock()
		order = append(order, "second")
		mu.Unlock()
	})
	bus.Subscribe("third", rec.listener("third", nil))

	require.NoError(t, bus.Publish(ctx, models.EventHelperUpdate, map[string]string{"id": "h1"}))

	assert.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 10*time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPublish_DeliveryIsAsynchronous(t *testing.T) {
	bus, _ := setupTestBus(t)
	ctx := context.Background()

	rec := &recorder{}
	bus.Subscribe("sub", rec.listener("sub", nil))

	require.NoError(t, bus.Publish(ctx, models.EventHelperUpdate, nil))
	// Колбэк не вызывается в том же тике, что и Publish
	assert.Equal(t, 0, rec.count())
	assert.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 10*time.Millisecond)
}

func TestDispatch_PanickingListenerIsIsolated(t *testing.T) {
	bus, _ := setupTestBus(t)
	ctx := context.Background()

	rec := &recorder{}
	bus.Subscribe("bad", func(ev models.BroadcastEvent) {
		panic("listener failure")
	})
	bus.Subscribe("good", rec.listener("good", nil))

	require.NoError(t, bus.Publish(ctx, models.EventNewHelpRequest, nil))
	assert.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 10*time.Millisecond)
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	bus, _ := setupTestBus(t)
	ctx := context.Background()

	rec := &recorder{}
	bus.Subscribe("sub", rec.listener("sub", nil))
	bus.Unsubscribe("sub")

	require.NoError(t, bus.Publish(ctx, models.EventHelperUpdate, nil))
	time.Sleep(3 * localDispatchDelay)
	assert.Equal(t, 0, rec.count())
}

func TestCrossInstance_DeliveredViaPubSub(t *testing.T) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	rdb1 := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	rdb2 := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb1.Close(); rdb2.Close() })

	ctx := context.Background()
	bus1 := NewBus(rdb1, logger, 50*time.Millisecond)
	bus2 := NewBus(rdb2, logger, 50*time.Millisecond)
	bus2.Start(ctx)
	t.Cleanup(func() { bus1.Stop(); bus2.Stop() })

	rec := &recorder{}
	bus2.Subscribe("remote", rec.listener("remote", nil))

	require.NoError(t, bus1.Publish(ctx, models.EventRequestAccepted, map[string]string{"request_id": "r1"}))

	assert.Eventually(t, func() bool { return rec.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Опрос транспортного ключа не должен доставить то же событие второй раз
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 1, rec.count())

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, models.EventRequestAccepted, rec.events[0].Type)
	assert.Equal(t, bus1.OriginID(), rec.events[0].OriginID)
}

func TestCrossInstance_OwnEventsNotRedelivered(t *testing.T) {
	bus, _ := setupTestBus(t)
	ctx := context.Background()
	bus.Start(ctx)

	rec := &recorder{}
	bus.Subscribe("self", rec.listener("self", nil))

	require.NoError(t, bus.Publish(ctx, models.EventHelperUpdate, nil))

	// Единственная доставка - локальная; pub/sub и опрос отфильтрованы по origin
	assert.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}
