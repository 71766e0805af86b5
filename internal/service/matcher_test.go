package service

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/helper_network/internal/config"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/shenikar/helper_network/internal/registry"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingPublisher записывает типы опубликованных событий
type capturingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *capturingPublisher) Publish(ctx context.Context, eventType string, data any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	return nil
}

func (p *capturingPublisher) has(eventType string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range p.events {
		if e == eventType {
			return true
		}
	}
	return false
}

// newTestMatcher собирает матчер поверх реального реестра на miniredis
func newTestMatcher(t *testing.T, cfg *config.Config) (MatcherService, *registry.Store, *capturingPublisher) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	if cfg == nil {
		cfg = &config.Config{DefaultSearchRadiusM: 2000}
	}

	events := &capturingPublisher{}
	store := registry.NewStore(rdb, logger, events)
	return NewMatcherService(store, events, logger, cfg), store, events
}

func TestFindNearbyHelpers_RadiusAndOrdering(t *testing.T) {
	matcher, _, _ := newTestMatcher(t, nil)
	ctx := context.Background()

	// ~111 м, ~222 м и ~11 км от точки поиска
	for _, h := range []models.Helper{
		{ID: "far", Location: models.Location{Lat: 0, Lng: 0.1}},
		{ID: "second", Location: models.Location{Lat: 0, Lng: 0.002}},
		{ID: "nearest", Location: models.Location{Lat: 0, Lng: 0.001}},
	} {
		_, err := matcher.RegisterHelper(ctx, h)
		require.NoError(t, err)
	}

	matches, err := matcher.FindNearbyHelpers(ctx, models.Location{Lat: 0, Lng: 0}, 2000)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "nearest", matches[0].ID)
	assert.Equal(t, "second", matches[1].ID)
	assert.InDelta(t, 111, matches[0].DistanceMeters, 2)
	assert.LessOrEqual(t, matches[1].DistanceMeters, 2000.0)
}

func TestFindNearbyHelpers_TieBreakByID(t *testing.T) {
	matcher, _, _ := newTestMatcher(t, nil)
	ctx := context.Background()

	// Одинаковое расстояние - порядок детерминирован по id
	for _, id := range []string{"b", "a"} {
		_, err := matcher.RegisterHelper(ctx, models.Helper{ID: id, Location: models.Location{Lat: 0, Lng: 0.001}})
		require.NoError(t, err)
	}

	matches, err := matcher.FindNearbyHelpers(ctx, models.Location{Lat: 0, Lng: 0}, 2000)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "a", matches[0].ID)
	assert.Equal(t, "b", matches[1].ID)
}

func TestFindNearbyHelpers_EmptyPoolIsNotAnError(t *testing.T) {
	matcher, _, _ := newTestMatcher(t, nil)

	matches, err := matcher.FindNearbyHelpers(context.Background(), models.Location{}, 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindNearbyRequests_OnlyPending(t *testing.T) {
	matcher, _, _ := newTestMatcher(t, nil)
	ctx := context.Background()

	req, err := matcher.CreateRequest(ctx, models.HelpRequest{
		Location:      models.Location{Lat: 0, Lng: 0.001},
		EmergencyType: "medical",
	})
	require.NoError(t, err)

	_, err = matcher.RegisterHelper(ctx, models.Helper{ID: "h1", Location: models.Location{Lat: 0, Lng: 0}})
	require.NoError(t, err)

	matches, err := matcher.FindNearbyRequests(ctx, models.Location{Lat: 0, Lng: 0}, 2000)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, req.ID, matches[0].ID)

	// После принятия запрос перестает быть кандидатом
	accepted, err := matcher.AcceptRequest(ctx, req.ID, "h1")
	require.NoError(t, err)
	require.NotNil(t, accepted)

	matches, err = matcher.FindNearbyRequests(ctx, models.Location{Lat: 0, Lng: 0}, 2000)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// Сценарий: пострадавший в (0,0), хелпер в (0,0.001) - примерно 111 метров
func TestAcceptRequest_EndToEnd(t *testing.T) {
	matcher, store, events := newTestMatcher(t, nil)
	ctx := context.Background()

	_, err := matcher.RegisterHelper(ctx, models.Helper{
		ID:       "h1",
		Name:     "Сара",
		Location: models.Location{Lat: 0, Lng: 0.001},
	})
	require.NoError(t, err)

	req, err := matcher.CreateRequest(ctx, models.HelpRequest{
		Location:      models.Location{Lat: 0, Lng: 0},
		EmergencyType: "medical",
	})
	require.NoError(t, err)

	matches, err := matcher.FindNearbyHelpers(ctx, req.Location, 2000)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "h1", matches[0].ID)

	accepted, err := matcher.AcceptRequest(ctx, req.ID, "h1")
	require.NoError(t, err)
	require.NotNil(t, accepted)
	assert.Equal(t, models.RequestStatusAccepted, accepted.Status)
	assert.Equal(t, "h1", accepted.AcceptedBy)
	require.NotNil(t, accepted.AcceptedAt)

	// Принявший хелпер выбывает из пула доступных
	helpers, err := store.ListHelpers(ctx)
	require.NoError(t, err)
	assert.Empty(t, helpers)

	assert.True(t, events.has(models.EventRequestAccepted))

	// Повторное принятие другим хелпером - идемпотентный отказ
	second, err := matcher.AcceptRequest(ctx, req.ID, "h2")
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestAcceptRequest_UnknownRequest(t *testing.T) {
	matcher, _, _ := newTestMatcher(t, nil)

	accepted, err := matcher.AcceptRequest(context.Background(), "missing", "h1")
	require.NoError(t, err)
	assert.Nil(t, accepted)
}

func TestCompleteRequest_RemovesPermanently(t *testing.T) {
	matcher, store, events := newTestMatcher(t, nil)
	ctx := context.Background()

	req, err := matcher.CreateRequest(ctx, models.HelpRequest{EmergencyType: "fire"})
	require.NoError(t, err)

	require.NoError(t, matcher.CompleteRequest(ctx, req.ID))

	requests, err := store.ListRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)
	assert.True(t, events.has(models.EventRequestCompleted))

	// Завершение несуществующего id - no-op, не ошибка
	require.NoError(t, matcher.CompleteRequest(ctx, "missing"))
}

func TestCompleteRequest_RehireDisabledByDefault(t *testing.T) {
	matcher, store, _ := newTestMatcher(t, nil)
	ctx := context.Background()

	_, err := matcher.RegisterHelper(ctx, models.Helper{ID: "h1", Location: models.Location{Lat: 0, Lng: 0.001}})
	require.NoError(t, err)

	req, err := matcher.CreateRequest(ctx, models.HelpRequest{Location: models.Location{Lat: 0, Lng: 0}})
	require.NoError(t, err)

	accepted, err := matcher.AcceptRequest(ctx, req.ID, "h1")
	require.NoError(t, err)
	require.NotNil(t, accepted)

	require.NoError(t, matcher.CompleteRequest(ctx, req.ID))

	// Хелпер не возвращается в пул автоматически
	helpers, err := store.ListHelpers(ctx)
	require.NoError(t, err)
	assert.Empty(t, helpers)
}

func TestCompleteRequest_RehireEnabled(t *testing.T) {
	cfg := &config.Config{DefaultSearchRadiusM: 2000, RehireOnComplete: true}
	matcher, store, _ := newTestMatcher(t, cfg)
	ctx := context.Background()

	_, err := matcher.RegisterHelper(ctx, models.Helper{ID: "h1", Location: models.Location{Lat: 0, Lng: 0.001}})
	require.NoError(t, err)

	req, err := matcher.CreateRequest(ctx, models.HelpRequest{Location: models.Location{Lat: 0, Lng: 0}})
	require.NoError(t, err)

	accepted, err := matcher.AcceptRequest(ctx, req.ID, "h1")
	require.NoError(t, err)
	require.NotNil(t, accepted)

	require.NoError(t, matcher.CompleteRequest(ctx, req.ID))

	helpers, err := store.ListHelpers(ctx)
	require.NoError(t, err)
	require.Len(t, helpers, 1)
	assert.Equal(t, "h1", helpers[0].ID)
}
