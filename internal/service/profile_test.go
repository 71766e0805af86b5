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
	"github.com/shenikar/helper_network/internal/service/mocks"
	"github.com/shenikar/helper_network/internal/syncqueue"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileService(t *testing.T) (ProfileService, *mocks.MockProfileRepository, *outbound_mocks.MockDispatcher, *syncqueue.Queue) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockProfileRepository(ctrl)
	dispatcherMock := outbound_mocks.NewMockDispatcher(ctrl)

	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	queue := syncqueue.NewQueue(rdb, logger)
	return NewProfileService(repoMock, dispatcherMock, queue, logger), repoMock, dispatcherMock, queue
}

func TestSaveMedicalInfo_SyncedWhenOnline(t *testing.T) {
	service, repoMock, dispatcherMock, queue := newTestProfileService(t)
	ctx := context.Background()
	queue.SetOnline(ctx, true)

	info := &models.MedicalInfo{UserID: "u1", BloodType: "AB+"}

	repoMock.EXPECT().SaveMedicalInfo(ctx, info).Return(nil).Times(1)
	dispatcherMock.EXPECT().Deliver(ctx, gomock.Any()).Return(nil).Times(1)

	result, err := service.SaveMedicalInfo(ctx, info)
	require.NoError(t, err)
	assert.True(t, result.Delivered)
}

func TestSaveMedicalInfo_QueuedWhenOffline(t *testing.T) {
	service, repoMock, _, queue := newTestProfileService(t)
	ctx := context.Background()

	info := &models.MedicalInfo{UserID: "u1", BloodType: "O-"}
	repoMock.EXPECT().SaveMedicalInfo(ctx, info).Return(nil).Times(1)

	result, err := service.SaveMedicalInfo(ctx, info)
	require.NoError(t, err)
	assert.True(t, result.Queued)

	n, err := queue.Len(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestSaveMedicalInfo_LocalWriteFailure(t *testing.T) {
	service, repoMock, _, _ := newTestProfileService(t)
	ctx := context.Background()

	info := &models.MedicalInfo{UserID: "u1"}
	repoMock.EXPECT().SaveMedicalInfo(ctx, info).Return(fmt.Errorf("db down")).Times(1)

	_, err := service.SaveMedicalInfo(ctx, info)
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not save medical info")
}

func TestGetMedicalInfo_MissingIsNotAnError(t *testing.T) {
	service, repoMock, _, _ := newTestProfileService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetMedicalInfo(ctx, "u1").Return(nil, nil).Times(1)

	info, err := service.GetMedicalInfo(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestSaveContact_QueuedOnDeliveryFailure(t *testing.T) {
	service, repoMock, dispatcherMock, queue := newTestProfileService(t)
	ctx := context.Background()
	queue.SetOnline(ctx, true)

	contact := &models.EmergencyContact{UserID: "u1", Name: "Мама", Phone: "+92123", Priority: 1}

	repoMock.EXPECT().SaveContact(ctx, contact).Return(nil).Times(1)
	dispatcherMock.EXPECT().Deliver(ctx, gomock.Any()).Return(fmt.Errorf("503")).Times(1)

	result, err := service.SaveContact(ctx, contact)
	require.NoError(t, err)
	assert.True(t, result.Queued)
}
