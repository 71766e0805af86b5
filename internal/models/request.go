package models

import "time"

// RequestLifetime - максимальное время жизни непринятого запроса помощи
const RequestLifetime = 300 * time.Second

// RequestStatus - статус запроса помощи
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
)

// HelpRequest - запрос помощи, созданный пострадавшим.
// Жизненный цикл: pending --accept--> accepted --complete--> (удален);
// pending --expire(300s)--> (удален лениво при чтении).
// Принятый запрос не может быть принят повторно другим хелпером.
type HelpRequest struct {
	ID            string        `json:"id"`
	Location      Location      `json:"location"`
	EmergencyType string        `json:"emergency_type"`
	RequesterInfo string        `json:"requester_info,omitempty"`
	Status        RequestStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	AcceptedBy    string        `json:"accepted_by,omitempty"`
	AcceptedAt    *time.Time    `json:"accepted_at,omitempty"`
}

// ExpiredAt сообщает, истек ли запрос на момент now
func (r HelpRequest) ExpiredAt(now time.Time) bool {
	return now.Sub(r.CreatedAt) > RequestLifetime
}
