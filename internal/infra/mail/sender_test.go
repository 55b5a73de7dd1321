package mail

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tradein/config"
	"tradein/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSender_MockModeWithoutAPIKey(t *testing.T) {
	mailer, err := NewMailer(SenderParams{
		Config: &config.Config{
			Mail: &config.MailConfig{FromAddress: "store@example.com"},
		},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	err = mailer.Send(context.Background(), &service.MailMessage{
		To:      "owner@example.com",
		Subject: "hello",
		HTML:    "<p>hi</p>",
	})
	assert.NoError(t, err)
}

func TestSender_PostsToProvider(t *testing.T) {
	var got sendEmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "email-1"})
	}))
	t.Cleanup(srv.Close)

	mailer, err := NewMailer(SenderParams{
		Config: &config.Config{
			Mail: &config.MailConfig{
				APIKey:      "key-1",
				BaseURL:     srv.URL,
				FromAddress: "store@example.com",
				FromName:    "Trade-in Store",
			},
		},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	err = mailer.Send(context.Background(), &service.MailMessage{
		To:      "owner@example.com",
		Subject: "Store credit assigned",
		HTML:    "<p>4500 points</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "Trade-in Store <store@example.com>", got.From)
	assert.Equal(t, []string{"owner@example.com"}, got.To)
	assert.Equal(t, "Store credit assigned", got.Subject)
}

func TestSender_ProviderErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	t.Cleanup(srv.Close)

	mailer, err := NewMailer(SenderParams{
		Config: &config.Config{
			Mail: &config.MailConfig{APIKey: "key-1", BaseURL: srv.URL, FromAddress: "store@example.com"},
		},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	err = mailer.Send(context.Background(), &service.MailMessage{To: "owner@example.com", Subject: "x"})
	assert.Error(t, err)
}

func TestRenderNotification_Approved(t *testing.T) {
	msg, err := RenderNotification(&service.NotificationEvent{
		Type:        service.NotificationApproved,
		OwnerEmail:  "owner@example.com",
		ProductName: "Mechanical Keyboard",
		WarehouseInfo: map[string]string{
			"name":          "Central Returns",
			"address_line1": "1 Depot Way",
			"city":          "Springfield",
			"postal_code":   "12345",
			"country":       "US",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", msg.To)
	assert.Contains(t, msg.HTML, "Mechanical Keyboard")
	assert.Contains(t, msg.HTML, "Central Returns")
	assert.Contains(t, msg.HTML, "1 Depot Way")
}

func TestRenderNotification_CreditAssigned(t *testing.T) {
	msg, err := RenderNotification(&service.NotificationEvent{
		Type:         service.NotificationCreditAssigned,
		OwnerEmail:   "owner@example.com",
		ProductName:  "Mechanical Keyboard",
		CreditAmount: 3000,
		TotalPoints:  4500,
	})
	require.NoError(t, err)
	assert.Contains(t, msg.Subject, "3000")
	assert.Contains(t, msg.HTML, "3000 points")
	assert.Contains(t, msg.HTML, "4500 points")
}

func TestRenderNotification_UnknownType(t *testing.T) {
	_, err := RenderNotification(&service.NotificationEvent{Type: "mystery"})
	assert.Error(t, err)
}
