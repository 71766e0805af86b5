package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shenikar/helper_network/internal/models"
	"github.com/shenikar/helper_network/internal/outbound"
	"github.com/sirupsen/logrus"
)

// SyncEnqueuer определяет контракт постановки операций в очередь синхронизации
type SyncEnqueuer interface {
	Enqueue(ctx context.Context, opType string, payload any) (*models.SyncOperation, error)
	Online() bool
}

// DeliveryResult - итог попытки внешней доставки. Сбой доставки не ошибка
// уровня вызова: операция либо доставлена, либо поставлена в очередь.
type DeliveryResult struct {
	Delivered bool   `json:"delivered"`
	Queued    bool   `json:"queued"`
	Reason    string `json:"reason,omitempty"`
}

// AlertService определяет контракт отправки экстренных сигналов
type AlertService interface {
	SendSOS(ctx context.Context, alert models.SOSAlert) DeliveryResult
}

type alertService struct {
	dispatcher outbound.Dispatcher
	queue      SyncEnqueuer
	logger     *logrus.Logger
}

func NewAlertService(dispatcher outbound.Dispatcher, queue SyncEnqueuer, logger *logrus.Logger) AlertService {
	return &alertService{
		dispatcher: dispatcher,
		queue:      queue,
		logger:     logger,
	}
}

// SendSOS доставляет сигнал внешнему приемнику. В офлайне или при сбое
// доставки сигнал попадает в очередь синхронизации - он не может пропасть
// молча. Метод не возвращает ошибку: вызывающий слой (UI) обязан остаться
// отзывчивым.
func (s *alertService) SendSOS(ctx context.Context, alert models.SOSAlert) DeliveryResult {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "alert",
		"method":         "SendSOS",
		"user_id":        alert.UserID,
		"emergency_type": alert.EmergencyType,
		"gps_quality":    alert.Location.Quality(),
	})

	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}

	payload, err := json.Marshal(alert)
	if err != nil {
		log.WithError(err).Error("Failed to marshal SOS alert")
		return DeliveryResult{Reason: "encoding_failed"}
	}

	if s.queue.Online() {
		if err := s.dispatcher.Deliver(ctx, payload); err == nil {
			log.Info("SOS alert delivered")
			return DeliveryResult{Delivered: true}
		} else {
			log.WithError(err).Warn("SOS delivery failed, queueing for sync")
		}
	} else {
		log.Info("Offline, queueing SOS alert for sync")
	}

	if _, err := s.queue.Enqueue(ctx, models.SyncTypeEmergencyAlert, alert); err != nil {
		log.WithError(err).Error("Failed to queue SOS alert")
		return DeliveryResult{Reason: "queue_failed"}
	}
	return DeliveryResult{Queued: true}
}
