package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mwhite7112/woodpantry-recipefinder/internal/config"
)

var (
	errTransport = errors.New("transport error")
	errBadStatus = errors.New("unexpected status")
	errDecode    = errors.New("decode")
)

// Payload is a decoded JSON object from the recipe API. A failed call yields
// an empty, non-nil Payload.
type Payload map[string]any

// MealDBClient calls a TheMealDB-compatible recipe API.
type MealDBClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewMealDBClient builds a client for baseURL. The request timeout is whatever
// httpClient carries.
func NewMealDBClient(baseURL string, httpClient *http.Client) *MealDBClient {
	return &MealDBClient{baseURL: config.NormalizeBaseURL(baseURL), httpClient: httpClient}
}

// Get issues a single GET to baseURL+path with params and returns the decoded
// body. Transport failures, non-2xx responses, undecodable bodies and null or
// empty bodies all produce an empty Payload; Get never reports an error.
func (c *MealDBClient) Get(ctx context.Context, path string, params url.Values) Payload {
	start := time.Now()
	payload, err := c.fetch(ctx, path, params)
	upstreamRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

	if err != nil {
		upstreamRequestsTotal.WithLabelValues(path, outcomeFor(err)).Inc()
		slog.Warn("recipe api request failed", "path", path, "error", err)
		return Payload{}
	}
	if len(payload) == 0 {
		upstreamRequestsTotal.WithLabelValues(path, outcomeEmpty).Inc()
		slog.Debug("recipe api returned empty body", "path", path)
		return Payload{}
	}

	upstreamRequestsTotal.WithLabelValues(path, outcomeOK).Inc()
	return payload
}

func (c *MealDBClient) fetch(ctx context.Context, path string, params url.Values) (Payload, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", errTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w %d", errBadStatus, resp.StatusCode)
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", errDecode, err)
	}
	return payload, nil
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, errBadStatus):
		return outcomeBadStatus
	case errors.Is(err, errDecode):
		return outcomeDecodeError
	default:
		return outcomeTransportError
	}
}

// Meals returns the objects in the payload's "meals" array. A missing or null
// array yields nil; non-object entries are skipped.
func (p Payload) Meals() []Meal {
	raw, ok := p["meals"].([]any)
	if !ok {
		return nil
	}
	meals := make([]Meal, 0, len(raw))
	for _, item := range raw {
		switch m := item.(type) {
		case map[string]any:
			meals = append(meals, Meal(m))
		case Meal:
			meals = append(meals, m)
		}
	}
	return meals
}
