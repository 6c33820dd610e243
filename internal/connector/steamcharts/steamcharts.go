package steamcharts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/crimson-sun/chartpull/internal/connector"
	"github.com/crimson-sun/chartpull/internal/connector/httpclient"
	"github.com/crimson-sun/chartpull/internal/model"
)

const defaultEndpoint = "https://steamcharts.com"

func init() {
	connector.Register("steamcharts", func() connector.Connector {
		return &Connector{}
	})
}

// Connector implements the connector.Connector interface for the
// SteamCharts chart-data endpoint.
type Connector struct{}

// FormatError reports a JSON payload that matches neither recognized
// shape: a top-level array of [timestamp, count] pairs, or an object
// with such an array under its "data" key.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "unexpected data shape from SteamCharts: " + e.Reason
}

// chartPayload is the tagged parse result for the two payload shapes the
// endpoint is known to produce. The shape is resolved once, during
// unmarshalling, rather than inspected downstream.
type chartPayload struct {
	samples []model.RawSample
}

func (p *chartPayload) UnmarshalJSON(data []byte) error {
	switch firstToken(data) {
	case '[':
		var samples []model.RawSample
		if err := json.Unmarshal(data, &samples); err != nil {
			return &FormatError{Reason: err.Error()}
		}
		p.samples = samples
		return nil
	case '{':
		var wrapper struct {
			Data *[]model.RawSample `json:"data"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return &FormatError{Reason: err.Error()}
		}
		if wrapper.Data == nil {
			return &FormatError{Reason: `object has no "data" key`}
		}
		p.samples = *wrapper.Data
		return nil
	default:
		return &FormatError{Reason: "payload is neither an array nor an object"}
	}
}

// firstToken returns the first non-whitespace byte of data, or 0 if
// there is none.
func firstToken(data []byte) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// Fetch retrieves the player-count history for appID in upstream order.
func (c *Connector) Fetch(ctx context.Context, cfg connector.ConnectorConfig, appID string) ([]model.RawSample, error) {
	baseURL := cfg.Endpoint
	if baseURL == "" {
		baseURL = defaultEndpoint
	}

	var opts []httpclient.Option
	if cfg.Timeout > 0 {
		opts = append(opts, httpclient.WithTimeout(cfg.Timeout))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, httpclient.WithHTTPClient(cfg.HTTPClient))
	}
	client := httpclient.New(baseURL, opts...)
	path := "/app/" + appID + "/chart-data.json"

	var payload chartPayload
	if err := client.GetJSON(ctx, path, &payload); err != nil {
		return nil, fmt.Errorf("steamcharts connector: %w", err)
	}

	slog.Debug("fetched chart data", "app_id", appID, "samples", len(payload.samples))
	return payload.samples, nil
}
