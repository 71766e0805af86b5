package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/helper_network/internal/config"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/shenikar/helper_network/internal/service/mocks"
	"github.com/shenikar/helper_network/pkg/geo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestGeofenceService — вспомогательная функция для создания сервиса с моками
func newTestGeofenceService(t *testing.T) (GeofenceService, *mocks.MockZoneRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockZoneRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{StatsTimeWindowMinutes: 60}
	return NewGeofenceService(repoMock, logger, cfg), repoMock
}

func TestAddZone_AppliesDefaults(t *testing.T) {
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()

	zone := &models.AlertZone{Name: "Дом", Latitude: 10, Longitude: 10}

	repoMock.EXPECT().
		CreateZone(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, z *models.AlertZone) error {
			z.ID = uuid.New()
			return nil
		}).Times(1)

	require.NoError(t, service.AddZone(ctx, zone))
	assert.Equal(t, 1000.0, zone.RadiusMeters)
	assert.Equal(t, "safety", zone.Type)
	assert.True(t, zone.Enabled)
}

func TestCheckLocation_BoundaryInclusive(t *testing.T) {
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()

	// Радиус зоны ровно равен расстоянию до проверяемой точки:
	// граница считается попаданием
	boundary := geo.DistanceMeters(10, 10, 10.004, 10)
	zones := []*models.AlertZone{
		{ID: uuid.New(), Name: "Дом", Latitude: 10, Longitude: 10, RadiusMeters: boundary, Enabled: true},
	}

	repoMock.EXPECT().ListZones(ctx).Return(zones, nil).Times(2)
	repoMock.EXPECT().SaveLocationCheck(ctx, gomock.Any()).Return(nil).Times(2)

	triggered, err := service.CheckLocation(ctx, "u1", 10.004, 10)
	require.NoError(t, err)
	require.Len(t, triggered, 1)
	assert.InDelta(t, boundary, triggered[0].DistanceMeters, 1e-6)

	// Чуть дальше границы - уже нет
	triggered, err = service.CheckLocation(ctx, "u1", 10.0041, 10)
	require.NoError(t, err)
	assert.Empty(t, triggered)
}

func TestCheckLocation_SkipsDisabledZones(t *testing.T) {
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()

	zones := []*models.AlertZone{
		{ID: uuid.New(), Name: "Выключена", Latitude: 10, Longitude: 10, RadiusMeters: 5000, Enabled: false},
	}

	repoMock.EXPECT().ListZones(ctx).Return(zones, nil).Times(1)
	repoMock.EXPECT().SaveLocationCheck(ctx, gomock.Any()).Return(nil).Times(1)

	triggered, err := service.CheckLocation(ctx, "u1", 10, 10)
	require.NoError(t, err)
	assert.Empty(t, triggered)
}

func TestCheckLocation_ReportsEveryContainment(t *testing.T) {
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()

	// Точка в ~480 м от центра, радиус 500 м: движок сообщает о попадании
	// при каждом вызове, подавление повторов - забота потребителя
	zones := []*models.AlertZone{
		{ID: uuid.New(), Name: "Дом", Latitude: 10, Longitude: 10, RadiusMeters: 500, Enabled: true},
	}

	repoMock.EXPECT().ListZones(ctx).Return(zones, nil).Times(2)
	repoMock.EXPECT().
		SaveLocationCheck(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, check *models.LocationCheck) error {
			assert.True(t, check.IsDangerous)
			return nil
		}).Times(2)

	for i := 0; i < 2; i++ {
		triggered, err := service.CheckLocation(ctx, "u1", 10.00432, 10)
		require.NoError(t, err)
		require.Len(t, triggered, 1)
		assert.InDelta(t, 480, triggered[0].DistanceMeters, 5)
	}
}

func TestCheckLocation_AuditFailureDoesNotBreakCheck(t *testing.T) {
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()

	repoMock.EXPECT().ListZones(ctx).Return([]*models.AlertZone{}, nil).Times(1)
	repoMock.EXPECT().SaveLocationCheck(ctx, gomock.Any()).Return(fmt.Errorf("db down")).Times(1)

	triggered, err := service.CheckLocation(ctx, "u1", 10, 10)
	require.NoError(t, err)
	assert.Empty(t, triggered)
}

func TestSetZoneEnabled(t *testing.T) {
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()
	zoneID := uuid.New()

	repoMock.EXPECT().SetZoneEnabled(ctx, zoneID, false).Return(nil).Times(1)
	require.NoError(t, service.SetZoneEnabled(ctx, zoneID, false))
}

func TestGetStats(t *testing.T) {
	service, repoMock := newTestGeofenceService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetLocationCheckStats(ctx, 60).Return(7, nil).Times(1)

	count, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
