package outbound

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/shenikar/helper_network/internal/config"
	"github.com/sirupsen/logrus"
)

// Dispatcher - контракт доставки исходящих сообщений внешнему приемнику.
// Доставка fire-and-forget с точки зрения домена: вызывающий компенсирует
// сбой постановкой операции в очередь синхронизации.
type Dispatcher interface {
	Deliver(ctx context.Context, payload []byte) error
}

// WebhookDispatcher отправляет полезную нагрузку HTTP POST-ом на настроенный
// URL, подписывая тело HMAC-SHA256, если задан секрет
type WebhookDispatcher struct {
	cfg        *config.Config
	logger     *logrus.Logger
	httpClient *http.Client
}

// NewWebhookDispatcher создает диспетчер исходящих сообщений
func NewWebhookDispatcher(cfg *config.Config, logger *logrus.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Deliver выполняет одну попытку доставки. Повторы - забота очереди
// синхронизации, не диспетчера.
func (d *WebhookDispatcher) Deliver(ctx context.Context, payload []byte) error {
	if d.cfg.WebhookURL == "" {
		return fmt.Errorf("webhook URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create delivery request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if d.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(payload, d.cfg.WebhookSecret))
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delivery rejected with status %d", resp.StatusCode)
	}

	d.logger.Debug("Outbound payload delivered")
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
