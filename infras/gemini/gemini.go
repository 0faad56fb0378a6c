package gemini

//go:generate go run go.uber.org/mock/mockgen -source=./gemini.go -destination=./mocks/gemini_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"senateway/config"
	"senateway/shared/constant"
)

const (
	requestTimeout = 30 * time.Second

	defaultTemperature     = 0.7
	defaultMaxOutputTokens = 2048
)

// ErrConfigMissing is returned before any network call when the Gemini API
// key is not configured.
var ErrConfigMissing = errors.New("gemini api key is not configured")

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

// Client wraps the Gemini generateContent REST endpoint. GenerateContent
// returns the first candidate's text parts joined with newlines; an empty
// string with a nil error means the model produced no usable text.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type clientImpl struct {
	cfg    *config.Config
	client *http.Client
}

func New(cfg *config.Config) Client {
	return &clientImpl{
		cfg:    cfg,
		client: &http.Client{Timeout: requestTimeout},
	}
}

func (c *clientImpl) GenerateContent(ctx context.Context, prompt string) (string, error) {
	apiKey := c.cfg.External.Gemini.APIKey
	if apiKey == "" {
		log.Error().Msg("gemini api key not configured")

		return "", ErrConfigMissing
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     defaultTemperature,
			MaxOutputTokens: defaultMaxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.cfg.External.Gemini.BaseURL, c.cfg.External.Gemini.Model, apiKey)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build gemini request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.client.Do(request)
	if err != nil {
		log.Error().Err(err).Msg("failed to reach gemini")

		return "", fmt.Errorf("failed to call gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("gemini request failed")

		return "", fmt.Errorf("gemini request failed with status %d", resp.StatusCode)
	}

	var generated generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generated); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if len(generated.Candidates) == 0 {
		return "", nil
	}

	first := generated.Candidates[0]

	texts := []string{}
	for _, p := range first.Content.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}

	joined := strings.TrimSpace(strings.Join(texts, "\n"))
	if joined == "" && first.FinishReason != "" && first.FinishReason != "STOP" {
		log.Warn().Str("finishReason", first.FinishReason).Msg("gemini returned no usable text")
	}

	return joined, nil
}
