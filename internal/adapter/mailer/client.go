package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Sender delivers password recovery codes to account owners.
type Sender interface {
	SendResetCode(ctx context.Context, email, code string) error
}

// HTTPSender posts recovery codes to the mail gateway.
type HTTPSender struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// message mirrors the JSON payload the gateway accepts.
type message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NewHTTPSender creates a mail gateway client with default timeout.
func NewHTTPSender(baseURL string, logger *slog.Logger) (*HTTPSender, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse mail gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("mail gateway url must be absolute")
	}
	return &HTTPSender{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SendResetCode posts the code to the gateway's send endpoint.
func (s *HTTPSender) SendResetCode(ctx context.Context, email, code string) error {
	endpoint := *s.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/send")

	payload, err := json.Marshal(message{
		To:      email,
		Subject: "Восстановление пароля",
		Body:    fmt.Sprintf("Код подтверждения: %s", code),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		s.logger.Error("mail gateway request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("mail gateway error: %s", resp.Status)
	}
	return nil
}

// LogSender writes codes to the log instead of delivering them. It backs
// deployments without a configured gateway, development ones mostly.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates the log-only sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// SendResetCode records the code in the log.
func (s *LogSender) SendResetCode(ctx context.Context, email, code string) error {
	s.logger.Info("password reset code issued",
		slog.String("email", email), slog.String("code", code))
	return nil
}
