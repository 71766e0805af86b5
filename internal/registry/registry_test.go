package registry

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore поднимает реестр поверх miniredis с управляемыми часами
func setupTestStore(t *testing.T) (*Store, *miniredis.Miniredis, *time.Time) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	now := time.Now()
	store := NewStore(rdb, logger, nil)
	store.now = func() time.Time { return now }
	return store, mr, &now
}

func TestUpsertHelper_RefreshesLastSeen(t *testing.T) {
	store, _, now := setupTestStore(t)
	ctx := context.Background()

	helpers, err := store.UpsertHelper(ctx, models.Helper{
		ID:       "h1",
		Name:     "Али",
		Location: models.Location{Lat: 31.52, Lng: 74.35},
	})
	require.NoError(t, err)
	require.Len(t, helpers, 1)
	assert.True(t, helpers[0].LastSeen.Equal(*now))

	// Повторная регистрация заменяет запись, не дублирует
	helpers, err = store.UpsertHelper(ctx, models.Helper{ID: "h1", Name: "Али"})
	require.NoError(t, err)
	assert.Len(t, helpers, 1)
}

func TestListHelpers_PrunesStale(t *testing.T) {
	store, mr, now := setupTestStore(t)
	ctx := context.Background()

	_, err := store.UpsertHelper(ctx, models.Helper{ID: "h1"})
	require.NoError(t, err)
	_, err = store.UpsertHelper(ctx, models.Helper{ID: "h2"})
	require.NoError(t, err)

	// Через 31 секунду оба хелпера протухли
	*now = now.Add(31 * time.Second)

	helpers, err := store.ListHelpers(ctx)
	require.NoError(t, err)
	assert.Empty(t, helpers)

	// Ленивая чистка записала пустой список обратно в Redis
	raw, err := mr.Get("helperz:helpers")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestListHelpers_KeepsLiveAtBoundary(t *testing.T) {
	store, _, now := setupTestStore(t)
	ctx := context.Background()

	_, err := store.UpsertHelper(ctx, models.Helper{ID: "h1"})
	require.NoError(t, err)

	// Ровно 30 секунд - еще жив
	*now = now.Add(30 * time.Second)
	helpers, err := store.ListHelpers(ctx)
	require.NoError(t, err)
	assert.Len(t, helpers, 1)
}

func TestCreateRequest_AssignsPendingStatus(t *testing.T) {
	store, _, _ := setupTestStore(t)
	ctx := context.Background()

	req, err := store.CreateRequest(ctx, models.HelpRequest{
		Location:      models.Location{Lat: 0, Lng: 0},
		EmergencyType: "medical",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.Empty(t, req.AcceptedBy)
}

func TestListRequests_PrunesExpired(t *testing.T) {
	store, _, now := setupTestStore(t)
	ctx := context.Background()

	_, err := store.CreateRequest(ctx, models.HelpRequest{EmergencyType: "fire"})
	require.NoError(t, err)

	*now = now.Add(301 * time.Second)

	requests, err := store.ListRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestTransitionRequest_SingleWinner(t *testing.T) {
	store, _, _ := setupTestStore(t)
	ctx := context.Background()

	req, err := store.CreateRequest(ctx, models.HelpRequest{EmergencyType: "medical"})
	require.NoError(t, err)

	accept := func(helperID string) func(*models.HelpRequest) bool {
		return func(r *models.HelpRequest) bool {
			if r.Status != models.RequestStatusPending {
				return false
			}
			r.Status = models.RequestStatusAccepted
			r.AcceptedBy = helperID
			return true
		}
	}

	winner, err := store.TransitionRequest(ctx, req.ID, accept("h1"))
	require.NoError(t, err)
	require.NotNil(t, winner)
	assert.Equal(t, models.RequestStatusAccepted, winner.Status)
	assert.Equal(t, "h1", winner.AcceptedBy)

	// Второй хелпер опоздал: переход неприменим, идемпотентный отказ
	loser, err := store.TransitionRequest(ctx, req.ID, accept("h2"))
	require.NoError(t, err)
	assert.Nil(t, loser)
}

func TestTransitionRequest_UnknownID(t *testing.T) {
	store, _, _ := setupTestStore(t)
	ctx := context.Background()

	result, err := store.TransitionRequest(ctx, "missing", func(r *models.HelpRequest) bool {
		t.Fatal("mutator must not be called for unknown id")
		return false
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestReadSlot_CorruptJSON(t *testing.T) {
	store, mr, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("helperz:helpers", "{not json"))

	helpers, err := store.ListHelpers(ctx)
	require.NoError(t, err)
	assert.Empty(t, helpers)
}

func TestRemoveHelper(t *testing.T) {
	store, _, _ := setupTestStore(t)
	ctx := context.Background()

	_, err := store.UpsertHelper(ctx, models.Helper{ID: "h1"})
	require.NoError(t, err)
	_, err = store.UpsertHelper(ctx, models.Helper{ID: "h2"})
	require.NoError(t, err)

	require.NoError(t, store.RemoveHelper(ctx, "h1"))

	helpers, err := store.ListHelpers(ctx)
	require.NoError(t, err)
	require.Len(t, helpers, 1)
	assert.Equal(t, "h2", helpers[0].ID)
}
