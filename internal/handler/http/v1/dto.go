package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterHelperRequest DTO для регистрации хелпера (повтор = heartbeat)
// @Description DTO для регистрации хелпера
type RegisterHelperRequest struct {
	ID        string  `json:"id" validate:"required,min=1,max=255"`
	Name      string  `json:"name" validate:"omitempty,max=255"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	Battery   int     `json:"battery" validate:"omitempty,gte=0,lte=100"`
}

// HelperResponse DTO для ответа с информацией о хелпере
// @Description DTO для ответа с информацией о хелпере
type HelperResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Battery   int       `json:"battery,omitempty"`
	LastSeen  time.Time `json:"last_seen"`
}

// HelperMatchResponse DTO хелпера с расстоянием до точки поиска
// @Description DTO хелпера с расстоянием до точки поиска
type HelperMatchResponse struct {
	HelperResponse
	DistanceMeters float64 `json:"distance_meters"`
}

// CreateHelpRequestRequest DTO для создания запроса помощи
// @Description DTO для создания запроса помощи
type CreateHelpRequestRequest struct {
	Latitude      float64 `json:"latitude" validate:"required,latitude"`
	Longitude     float64 `json:"longitude" validate:"required,longitude"`
	EmergencyType string  `json:"emergency_type" validate:"required,max=64"`
	RequesterInfo string  `json:"requester_info,omitempty" validate:"omitempty,max=1024"`
}

// HelpRequestResponse DTO для ответа с информацией о запросе помощи
// @Description DTO для ответа с информацией о запросе помощи
type HelpRequestResponse struct {
	ID            string     `json:"id"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	EmergencyType string     `json:"emergency_type"`
	RequesterInfo string     `json:"requester_info,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	AcceptedBy    string     `json:"accepted_by,omitempty"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
}

// RequestMatchResponse DTO запроса помощи с расстоянием до точки поиска
// @Description DTO запроса помощи с расстоянием до точки поиска
type RequestMatchResponse struct {
	HelpRequestResponse
	DistanceMeters float64 `json:"distance_meters"`
}

// AcceptRequestRequest DTO для принятия запроса помощи
// @Description DTO для принятия запроса помощи
type AcceptRequestRequest struct {
	HelperID string `json:"helper_id" validate:"required"`
}

// CreateZoneRequest DTO для создания зоны оповещения
// @Description DTO для создания зоны оповещения
type CreateZoneRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Latitude     float64 `json:"latitude" validate:"required,latitude"`
	Longitude    float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters float64 `json:"radius_meters" validate:"omitempty,gt=0"`
	Type         string  `json:"type,omitempty" validate:"omitempty,max=64"`
}

// ZoneResponse DTO для ответа с информацией о зоне оповещения
// @Description DTO для ответа с информацией о зоне оповещения
type ZoneResponse struct {
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

// ToggleZoneRequest DTO для включения/выключения зоны
// @Description DTO для включения/выключения зоны
type ToggleZoneRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// LocationCheckRequest DTO для проверки координат против зон
// @Description DTO для проверки координат против зон
type LocationCheckRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// TriggeredZoneResponse DTO сработавшей зоны; notified показывает, выдал ли
// нотификатор оповещение или погасил его (кулдаун, нет разрешения)
// @Description DTO сработавшей зоны
type TriggeredZoneResponse struct {
	ZoneResponse
	DistanceMeters float64 `json:"distance_meters"`
	Notified       bool    `json:"notified"`
	NotifyReason   string  `json:"notify_reason,omitempty"`
}

// SendSOSRequest DTO для отправки экстренного сигнала
// @Description DTO для отправки экстренного сигнала
type SendSOSRequest struct {
	UserID        string  `json:"user_id" validate:"required"`
	Message       string  `json:"message" validate:"omitempty,max=1024"`
	EmergencyType string  `json:"emergency_type" validate:"omitempty,max=64"`
	Latitude      float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude     float64 `json:"longitude" validate:"omitempty,longitude"`
	AccuracyM     float64 `json:"accuracy" validate:"omitempty,gte=0"`
	Battery       int     `json:"battery" validate:"omitempty,gte=0,lte=100"`
}

// DeliveryResultResponse DTO итога внешней доставки
// @Description DTO итога внешней доставки
type DeliveryResultResponse struct {
	Delivered bool   `json:"delivered"`
	Queued    bool   `json:"queued"`
	Reason    string `json:"reason,omitempty"`
}

// SaveMedicalInfoRequest DTO для сохранения медицинского профиля
// @Description DTO для сохранения медицинского профиля
type SaveMedicalInfoRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	BloodType  string `json:"blood_type,omitempty" validate:"omitempty,max=8"`
	Allergies  string `json:"allergies,omitempty" validate:"omitempty,max=1024"`
	Medication string `json:"medication,omitempty" validate:"omitempty,max=1024"`
	Conditions string `json:"conditions,omitempty" validate:"omitempty,max=1024"`
	Notes      string `json:"notes,omitempty" validate:"omitempty,max=4096"`
}

// MedicalInfoResponse DTO медицинского профиля
// @Description DTO медицинского профиля
type MedicalInfoResponse struct {
	UserID     string    `json:"user_id"`
	BloodType  string    `json:"blood_type,omitempty"`
	Allergies  string    `json:"allergies,omitempty"`
	Medication string    `json:"medication,omitempty"`
	Conditions string    `json:"conditions,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SaveContactRequest DTO для сохранения экстренного контакта
// @Description DTO для сохранения экстренного контакта
type SaveContactRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Phone    string `json:"phone" validate:"required,max=32"`
	Relation string `json:"relation,omitempty" validate:"omitempty,max=64"`
	Priority int    `json:"priority" validate:"omitempty,gte=0"`
}

// ContactResponse DTO экстренного контакта
// @Description DTO экстренного контакта
type ContactResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Relation  string    `json:"relation,omitempty"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

// ResolvePermissionRequest DTO для фиксации ответа на запрос разрешения
// @Description DTO для фиксации ответа на запрос разрешения
type ResolvePermissionRequest struct {
	Granted *bool `json:"granted" validate:"required"`
}

// PermissionResponse DTO состояния разрешения на оповещения
// @Description DTO состояния разрешения на оповещения
type PermissionResponse struct {
	Permission string `json:"permission"`
}

// SetOnlineRequest DTO для смены сетевого состояния очереди синхронизации
// @Description DTO для смены сетевого состояния
type SetOnlineRequest struct {
	Online *bool `json:"online" validate:"required"`
}

// SyncStatusResponse DTO состояния очереди синхронизации
// @Description DTO состояния очереди синхронизации
type SyncStatusResponse struct {
	Online  bool  `json:"online"`
	Pending int64 `json:"pending"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount int `json:"user_count"`
}
