package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradein/config"
	"tradein/internal/domain/service"
	mockSvc "tradein/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*MailHandler, *mockSvc.MockMailer) {
	t.Helper()

	mailer := mockSvc.NewMockMailer(t)
	h := NewMailHandler(MailHandlerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Mailer: mailer,
	})

	return h, mailer
}

func doPush(t *testing.T, h *MailHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func pushBody(t *testing.T, event *service.NotificationEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Subscription = "projects/local/subscriptions/notification-sub"
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func TestMailHandler_DeliversRenderedEmail(t *testing.T) {
	h, mailer := newTestHandler(t)

	var sent *service.MailMessage
	mailer.EXPECT().
		Send(mock.Anything, mock.Anything).
		Run(func(_ context.Context, msg *service.MailMessage) {
			sent = msg
		}).
		Return(nil).
		Once()

	body := pushBody(t, &service.NotificationEvent{
		Type:              service.NotificationCreditAssigned,
		ExchangeRequestID: "req-1",
		OwnerEmail:        "owner@example.com",
		ProductName:       "Vintage Camera",
		CreditAmount:      1500,
		TotalPoints:       4500,
	}, map[string]string{"request_id": "trace-1"})

	rec := doPush(t, h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sent)
	assert.Equal(t, "owner@example.com", sent.To)
	assert.Contains(t, sent.Subject, "1500")
	assert.Contains(t, sent.HTML, "4500")
}

func TestMailHandler_TransientSendFailureTriggersRetry(t *testing.T) {
	h, mailer := newTestHandler(t)

	mailer.EXPECT().
		Send(mock.Anything, mock.Anything).
		Return(errors.New("provider timeout")).
		Once()

	body := pushBody(t, &service.NotificationEvent{
		Type:              service.NotificationItemReceived,
		ExchangeRequestID: "req-1",
		OwnerEmail:        "owner@example.com",
		ProductName:       "Vintage Camera",
	}, nil)

	rec := doPush(t, h, body)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMailHandler_MalformedDataIsAcked(t *testing.T) {
	h, _ := newTestHandler(t)

	var msg PubSubMessage
	msg.Message.Data = "%%% not base64 %%%"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	rec := doPush(t, h, string(body))

	// Acked so Pub/Sub does not redeliver a payload that can never parse.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMailHandler_UnknownEventTypeIsAcked(t *testing.T) {
	h, _ := newTestHandler(t)

	body := pushBody(t, &service.NotificationEvent{
		Type:              "price_drop",
		ExchangeRequestID: "req-1",
		OwnerEmail:        "owner@example.com",
	}, nil)

	rec := doPush(t, h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMailHandler_MissingOwnerEmailIsAcked(t *testing.T) {
	h, _ := newTestHandler(t)

	body := pushBody(t, &service.NotificationEvent{
		Type:              service.NotificationApproved,
		ExchangeRequestID: "req-1",
	}, nil)

	rec := doPush(t, h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
}
