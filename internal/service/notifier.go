package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/sirupsen/logrus"
)

// Permission - состояние разрешения на оповещения.
// Переходы: unknown -> requested -> granted | denied.
type Permission string

const (
	PermissionUnknown   Permission = "unknown"
	PermissionRequested Permission = "requested"
	PermissionGranted   Permission = "granted"
	PermissionDenied    Permission = "denied"
)

// NotifyResult - структурированный результат попытки оповещения.
// Отказ (нет разрешения, кулдаун) - не ошибка и никогда не паника.
type NotifyResult struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

// AlertNotifier - потребитель геозонных срабатываний. Движок зон сообщает
// о каждом попадании; нотификатор гасит повторы, выдавая не больше одного
// оповещения на зону за окно кулдауна.
type AlertNotifier struct {
	logger   *logrus.Logger
	cooldown time.Duration

	mu           sync.Mutex
	permission   Permission
	lastNotified map[uuid.UUID]time.Time
	now          func() time.Time
}

// NewAlertNotifier создает нотификатор с заданным окном кулдауна
func NewAlertNotifier(cooldown time.Duration, logger *logrus.Logger) *AlertNotifier {
	return &AlertNotifier{
		logger:       logger,
		cooldown:     cooldown,
		permission:   PermissionUnknown,
		lastNotified: make(map[uuid.UUID]time.Time),
		now:          time.Now,
	}
}

// Permission возвращает текущее состояние разрешения
func (n *AlertNotifier) Permission() Permission {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.permission
}

// RequestPermission начинает запрос разрешения. Повторный запрос после
// denied/granted не меняет состояние.
func (n *AlertNotifier) RequestPermission() Permission {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.permission == PermissionUnknown {
		n.permission = PermissionRequested
	}
	return n.permission
}

// ResolvePermission фиксирует ответ пользователя на запрос разрешения
func (n *AlertNotifier) ResolvePermission(granted bool) Permission {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.permission != PermissionRequested {
		return n.permission
	}
	if granted {
		n.permission = PermissionGranted
	} else {
		n.permission = PermissionDenied
	}
	return n.permission
}

// Notify пытается оповестить о срабатывании зоны. Без разрешения или в
// пределах кулдауна возвращает {success:false, reason}, не ошибку.
func (n *AlertNotifier) Notify(zone models.TriggeredZone) NotifyResult {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.permission != PermissionGranted {
		return NotifyResult{Success: false, Reason: "not_allowed"}
	}

	now := n.now()
	if last, ok := n.lastNotified[zone.ID]; ok && now.Sub(last) < n.cooldown {
		return NotifyResult{Success: false, Reason: "cooldown"}
	}
	n.lastNotified[zone.ID] = now

	n.logger.WithFields(logrus.Fields{
		"zone_id":   zone.ID,
		"zone_name": zone.Name,
		"distance":  zone.DistanceMeters,
	}).Info("Zone alert raised")
	return NotifyResult{Success: true}
}
