package models

import (
	"encoding/json"
	"time"
)

// SyncMaxAttempts - максимальное число попыток доставки отложенной операции
const SyncMaxAttempts = 3

// Типы отложенных операций синхронизации
const (
	SyncTypeEmergencyAlert    = "EMERGENCY_ALERT"
	SyncTypeMedicalInfoUpdate = "MEDICAL_INFO_UPDATE"
	SyncTypeContactUpdate     = "CONTACT_UPDATE"
)

// SyncOperation - операция, которую не удалось доставить (офлайн или сбой).
// Удаляется после успешной доставки либо после SyncMaxAttempts неудач.
type SyncOperation struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
	Attempts  int             `json:"attempts"`
}
