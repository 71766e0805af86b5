package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shenikar/helper_network/internal/models"
	"github.com/shenikar/helper_network/internal/outbound"
	"github.com/sirupsen/logrus"
)

// ProfileRepository определяет контракт локального KV-хранилища профиля
type ProfileRepository interface {
	SaveMedicalInfo(ctx context.Context, info *models.MedicalInfo) error
	GetMedicalInfo(ctx context.Context, userID string) (*models.MedicalInfo, error)
	SaveContact(ctx context.Context, contact *models.EmergencyContact) error
	ListContacts(ctx context.Context, userID string) ([]*models.EmergencyContact, error)
	DeleteContact(ctx context.Context, userID string, id int64) error
}

// ProfileService определяет контракт работы с медицинским профилем и
// контактами. Локальная запись первична; внешняя синхронизация идет через
// диспетчер с компенсацией очередью.
type ProfileService interface {
	SaveMedicalInfo(ctx context.Context, info *models.MedicalInfo) (DeliveryResult, error)
	GetMedicalInfo(ctx context.Context, userID string) (*models.MedicalInfo, error)
	SaveContact(ctx context.Context, contact *models.EmergencyContact) (DeliveryResult, error)
	ListContacts(ctx context.Context, userID string) ([]*models.EmergencyContact, error)
	DeleteContact(ctx context.Context, userID string, id int64) error
}

type profileService struct {
	repo       ProfileRepository
	dispatcher outbound.Dispatcher
	queue      SyncEnqueuer
	logger     *logrus.Logger
}

func NewProfileService(repo ProfileRepository, dispatcher outbound.Dispatcher, queue SyncEnqueuer, logger *logrus.Logger) ProfileService {
	return &profileService{
		repo:       repo,
		dispatcher: dispatcher,
		queue:      queue,
		logger:     logger,
	}
}

// SaveMedicalInfo сохраняет профиль локально и пытается синхронизировать
func (s *profileService) SaveMedicalInfo(ctx context.Context, info *models.MedicalInfo) (DeliveryResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "SaveMedicalInfo",
		"user_id": info.UserID,
	})

	if err := s.repo.SaveMedicalInfo(ctx, info); err != nil {
		log.WithError(err).Error("Failed to save medical info")
		return DeliveryResult{}, fmt.Errorf("service: could not save medical info: %w", err)
	}
	log.Info("Medical info saved")

	return s.sync(ctx, log, models.SyncTypeMedicalInfoUpdate, info), nil
}

// GetMedicalInfo возвращает медицинский профиль; (nil, nil) если его нет
func (s *profileService) GetMedicalInfo(ctx context.Context, userID string) (*models.MedicalInfo, error) {
	info, err := s.repo.GetMedicalInfo(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get medical info")
		return nil, fmt.Errorf("service: could not get medical info: %w", err)
	}
	return info, nil
}

// SaveContact сохраняет контакт локально и пытается синхронизировать
func (s *profileService) SaveContact(ctx context.Context, contact *models.EmergencyContact) (DeliveryResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "SaveContact",
		"user_id": contact.UserID,
	})

	if err := s.repo.SaveContact(ctx, contact); err != nil {
		log.WithError(err).Error("Failed to save contact")
		return DeliveryResult{}, fmt.Errorf("service: could not save contact: %w", err)
	}
	log.WithField("contact_id", contact.ID).Info("Contact saved")

	return s.sync(ctx, log, models.SyncTypeContactUpdate, contact), nil
}

// ListContacts возвращает контакты пользователя
func (s *profileService) ListContacts(ctx context.Context, userID string) ([]*models.EmergencyContact, error) {
	contacts, err := s.repo.ListContacts(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list contacts")
		return nil, fmt.Errorf("service: could not list contacts: %w", err)
	}
	return contacts, nil
}

// DeleteContact удаляет контакт пользователя
func (s *profileService) DeleteContact(ctx context.Context, userID string, id int64) error {
	if err := s.repo.DeleteContact(ctx, userID, id); err != nil {
		s.logger.WithError(err).Warn("Failed to delete contact")
		return fmt.Errorf("service: could not delete contact: %w", err)
	}
	return nil
}

// sync пытается доставить обновление немедленно, при сбое или офлайне
// ставит операцию в очередь
func (s *profileService) sync(ctx context.Context, log *logrus.Entry, opType string, payload any) DeliveryResult {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Error("Failed to marshal sync payload")
		return DeliveryResult{Reason: "encoding_failed"}
	}

	if s.queue.Online() {
		if err := s.dispatcher.Deliver(ctx, raw); err == nil {
			return DeliveryResult{Delivered: true}
		} else {
			log.WithError(err).Warn("Sync delivery failed, queueing")
		}
	}

	if _, err := s.queue.Enqueue(ctx, opType, payload); err != nil {
		log.WithError(err).Error("Failed to queue sync operation")
		return DeliveryResult{Reason: "queue_failed"}
	}
	return DeliveryResult{Queued: true}
}
