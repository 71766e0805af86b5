package models

import "time"

// MedicalInfo - медицинский профиль пользователя (локальное KV-хранилище)
type MedicalInfo struct {
	UserID     string    `json:"user_id"`
	BloodType  string    `json:"blood_type,omitempty"`
	Allergies  string    `json:"allergies,omitempty"`
	Medication string    `json:"medication,omitempty"`
	Conditions string    `json:"conditions,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EmergencyContact - контакт для экстренной связи
type EmergencyContact struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Relation  string    `json:"relation,omitempty"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}
