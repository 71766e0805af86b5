package models

import "time"

// HelperLivenessWindow - окно активности хелпера. Хелпер, не подтверждавший
// присутствие дольше этого окна, считается ушедшим и исключается из подбора.
const HelperLivenessWindow = 30 * time.Second

// Helper - волонтер, доступный для оказания помощи
type Helper struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
	Battery  int      `json:"battery,omitempty"`
	LastSeen time.Time `json:"last_seen"`
}

// LiveAt сообщает, жив ли хелпер на момент now.
// Предикат вынесен из стора, чтобы его могли применять и стор, и матчер.
func (h Helper) LiveAt(now time.Time) bool {
	return now.Sub(h.LastSeen) <= HelperLivenessWindow
}
