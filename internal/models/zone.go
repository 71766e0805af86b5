package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertZone - пользовательская круговая зона оповещения.
// Зоны локальны для пользователя, не распространяются через реестр
// и не удаляются автоматически (только включаются/выключаются).
type AlertZone struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
	Type         string    `json:"type"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TriggeredZone - зона, в которую попала проверяемая точка
type TriggeredZone struct {
	AlertZone
	DistanceMeters float64 `json:"distance_meters"`
}

// LocationCheck представляет запись о проверке местоположения пользователя
type LocationCheck struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	IsDangerous bool      `json:"is_dangerous"`
	CheckedAt   time.Time `json:"checked_at"`
}
