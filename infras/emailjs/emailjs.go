package emailjs

//go:generate go run go.uber.org/mock/mockgen -source=./emailjs.go -destination=./mocks/emailjs_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"senateway/config"
	"senateway/shared/constant"
)

const (
	sendPath       = "/api/v1.0/email/send"
	requestTimeout = 15 * time.Second
)

// ErrConfigMissing is returned before any network call when the EmailJS
// service id, template id, or public key is not configured.
var ErrConfigMissing = errors.New("emailjs configuration is missing")

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Mailer sends templated transactional email through the EmailJS REST API.
type Mailer interface {
	Send(ctx context.Context, templateID string, params map[string]string) error
}

type mailerImpl struct {
	cfg    *config.Config
	client *http.Client
}

func New(cfg *config.Config) Mailer {
	return &mailerImpl{
		cfg:    cfg,
		client: &http.Client{Timeout: requestTimeout},
	}
}

func (m *mailerImpl) Send(ctx context.Context, templateID string, params map[string]string) error {
	serviceID := m.cfg.External.EmailJS.ServiceID
	publicKey := m.cfg.External.EmailJS.PublicKey

	if serviceID == "" || publicKey == "" || templateID == "" {
		log.Error().Msg("emailjs service id, public key, or template id not configured")

		return ErrConfigMissing
	}

	payload, err := json.Marshal(sendRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal emailjs request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.External.EmailJS.BaseURL+sendPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build emailjs request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := m.client.Do(request)
	if err != nil {
		log.Error().Err(err).Str("template", templateID).Msg("failed to reach emailjs")

		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error().Int("status", resp.StatusCode).Str("body", string(body)).Str("template", templateID).Msg("emailjs rejected send request")

		return fmt.Errorf("emailjs send failed with status %d", resp.StatusCode)
	}

	log.Info().Str("template", templateID).Msg("Email sent successfully")

	return nil
}
