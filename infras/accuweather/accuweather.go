package accuweather

//go:generate go run go.uber.org/mock/mockgen -source=./accuweather.go -destination=./mocks/accuweather_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"senateway/config"
)

const (
	requestTimeout = 15 * time.Second
)

// ErrConfigMissing is returned before any network call when the AccuWeather
// API key is not configured.
var ErrConfigMissing = errors.New("weather api key is not configured")

// Result carries the upstream response verbatim.
type Result struct {
	StatusCode int
	Body       []byte
}

// Client forwards requests to the AccuWeather data service with the
// server-held API key appended, returning the upstream body and status
// untouched.
type Client interface {
	Fetch(ctx context.Context, endpoint string, query url.Values) (Result, error)
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

func (c *clientImpl) Fetch(ctx context.Context, endpoint string, query url.Values) (Result, error) {
	apiKey := c.cfg.External.AccuWeather.APIKey
	if apiKey == "" {
		log.Error().Msg("accuweather api key not configured")

		return Result{}, ErrConfigMissing
	}

	params := url.Values{}
	for key, values := range query {
		for _, value := range values {
			params.Add(key, value)
		}
	}

	params.Set("apikey", apiKey)

	requestURL := fmt.Sprintf("%s/%s?%s", c.cfg.External.AccuWeather.BaseURL, endpoint, params.Encode())

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.client.Do(request)
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("failed to reach accuweather")

		return Result{}, fmt.Errorf("failed to fetch weather data: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read weather response: %w", err)
	}

	return Result{StatusCode: resp.StatusCode, Body: body}, nil
}
