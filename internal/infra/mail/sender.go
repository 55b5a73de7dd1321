// Package mail delivers notification emails through a Resend-compatible
// HTTP API. Without an API key the sender runs in mock mode and only logs.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tradein/config"
	"tradein/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultBaseURL = "https://api.resend.com"
	sendTimeout    = 15 * time.Second
)

type sender struct {
	apiKey     string
	baseURL    string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

// SenderParams holds dependencies for the mail sender, injected by Fx.
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer creates the outbound email sender.
func NewMailer(params SenderParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil {
		return nil, errors.New("mail configuration is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	from := cfg.FromAddress
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}

	if cfg.APIKey == "" {
		params.Logger.Info("Mail API key not configured, using mock sender")
	}

	return &sender{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		from:       from,
		httpClient: &http.Client{Timeout: sendTimeout},
		logger:     params.Logger,
	}, nil
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

func (s *sender) Send(ctx context.Context, msg *service.MailMessage) error {
	if msg.To == "" {
		return errors.New("mail message requires a recipient")
	}

	if s.apiKey == "" {
		s.logger.Info("[MockMail] Would send email",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject),
		)

		return nil
	}

	payload := sendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode email payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(buf))
	if err != nil {
		return errors.Wrap(err, "failed to build email request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "email request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return errors.Errorf("mail provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var out sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err == nil && out.ID != "" {
		s.logger.Debug("Email accepted by provider",
			slog.String("email_id", out.ID),
			slog.String("to", msg.To),
		)
	}

	return nil
}
