package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/helper_network/internal/models"
	outbound_mocks "github.com/shenikar/helper_network/internal/outbound/mocks"
	"github.com/shenikar/helper_network/internal/syncqueue"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAlertService(t *testing.T) (AlertService, *outbound_mocks.MockDispatcher, *syncqueue.Queue) {
	ctrl := gomock.NewController(t)
	dispatcherMock := outbound_mocks.NewMockDispatcher(ctrl)

	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	queue := syncqueue.NewQueue(rdb, logger)
	return NewAlertService(dispatcherMock, queue, logger), dispatcherMock, queue
}

func TestSendSOS_DeliveredWhenOnline(t *testing.T) {
	service, dispatcherMock, queue := newTestAlertService(t)
	ctx := context.Background()
	queue.SetOnline(ctx, true)

	dispatcherMock.EXPECT().Deliver(ctx, gomock.Any()).Return(nil).Times(1)

	result := service.SendSOS(ctx, models.SOSAlert{
		UserID:  "u1",
		Message: "SOS",
		Location: models.LocationSample{
			Lat: 31.52, Lng: 74.35, AccuracyM: 12,
		},
	})
	assert.True(t, result.Delivered)
	assert.False(t, result.Queued)

	n, err := queue.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSendSOS_QueuedWhenOffline(t *testing.T) {
	service, _, queue := newTestAlertService(t)
	ctx := context.Background()

	// Диспетчер не должен вызываться в офлайне
	result := service.SendSOS(ctx, models.SOSAlert{UserID: "u1", Message: "SOS"})
	assert.False(t, result.Delivered)
	assert.True(t, result.Queued)

	n, err := queue.Len(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestSendSOS_QueuedOnDeliveryFailure(t *testing.T) {
	service, dispatcherMock, queue := newTestAlertService(t)
	ctx := context.Background()
	queue.SetOnline(ctx, true)

	dispatcherMock.EXPECT().Deliver(ctx, gomock.Any()).Return(fmt.Errorf("timeout")).Times(1)

	result := service.SendSOS(ctx, models.SOSAlert{UserID: "u1", Message: "SOS"})
	assert.False(t, result.Delivered)
	assert.True(t, result.Queued)

	n, err := queue.Len(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
