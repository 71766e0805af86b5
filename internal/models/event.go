package models

import "encoding/json"

// Типы широковещательных событий реестра
const (
	EventHelperUpdate     = "HELPER_UPDATE"
	EventNewHelpRequest   = "NEW_HELP_REQUEST"
	EventRequestAccepted  = "REQUEST_ACCEPTED"
	EventRequestCompleted = "REQUEST_COMPLETED"
)

// BroadcastEvent - эфемерный конверт уведомления об изменении реестра.
// Не хранится дольше доставки; подписчики отсекают повторную обработку
// по паре (timestamp, origin_id).
type BroadcastEvent struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp int64           `json:"timestamp"`
	OriginID  string          `json:"origin_id"`
}
