package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tradein/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_WrapsEventInPushMessage(t *testing.T) {
	var got PubSubPushMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-id-1", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	err := publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{
		RequestID:         "req-id-1",
		Type:              service.NotificationCreditAssigned,
		ExchangeRequestID: "req-1",
		OwnerEmail:        "owner@example.com",
		CreditAmount:      3000,
		TotalPoints:       4500,
	})
	require.NoError(t, err)

	assert.Equal(t, service.NotificationCreditAssigned, got.Message.Attributes["type"])
	assert.Equal(t, "req-1", got.Message.Attributes["exchange_request_id"])
	assert.NotEmpty(t, got.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var event service.NotificationEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, int64(3000), event.CreditAmount)
	assert.Equal(t, "owner@example.com", event.OwnerEmail)
}

func TestLocalHTTPPublisher_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	err := publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{
		Type: service.NotificationApproved,
	})
	assert.Error(t, err)
}
