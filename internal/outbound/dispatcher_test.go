package outbound

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/helper_network/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(url, secret string) *WebhookDispatcher {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		WebhookURL:     url,
		WebhookSecret:  secret,
		WebhookTimeout: 2 * time.Second,
	}
	return NewWebhookDispatcher(cfg, logger)
}

func TestDeliver_SignsPayload(t *testing.T) {
	payload := []byte(`{"user_id":"u1","message":"SOS"}`)

	var gotSignature string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := newTestDispatcher(server.URL, "top-secret")
	require.NoError(t, d.Deliver(context.Background(), payload))

	assert.Equal(t, payload, gotBody)

	mac := hmac.New(sha256.New, []byte("top-secret"))
	mac.Write(payload)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
}

func TestDeliver_NoSignatureWithoutSecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("X-Webhook-Signature"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	d := newTestDispatcher(server.URL, "")
	require.NoError(t, d.Deliver(context.Background(), []byte(`{}`)))
}

func TestDeliver_RejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	d := newTestDispatcher(server.URL, "")
	err := d.Deliver(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delivery rejected with status 503")
}

func TestDeliver_MissingURL(t *testing.T) {
	d := newTestDispatcher("", "")
	err := d.Deliver(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook URL is not configured")
}
