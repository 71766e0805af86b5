package models

import "time"

// SOSAlert - экстренный сигнал пользователя для внешней доставки
type SOSAlert struct {
	UserID        string         `json:"user_id"`
	Message       string         `json:"message"`
	EmergencyType string         `json:"emergency_type"`
	Location      LocationSample `json:"location"`
	Battery       int            `json:"battery,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}
