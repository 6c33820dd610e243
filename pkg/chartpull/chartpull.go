package chartpull

import (
	"context"

	"github.com/crimson-sun/chartpull/internal/connector"
	"github.com/crimson-sun/chartpull/internal/connector/steamcharts"
	"github.com/crimson-sun/chartpull/internal/formatter"
	"github.com/crimson-sun/chartpull/internal/output/csvfile"
)

// Sample is a formatted player-count observation.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type Sample struct {
	Timestamp   int64  `json:"timestamp"`    // seconds since the Unix epoch
	DatetimeUTC string `json:"datetime_utc"` // "YYYY-MM-DD HH:MM:SS"
	PlayerCount int64  `json:"player_count"`
}

// Pull fetches the full player-count history for the given app ID and
// returns it formatted, in upstream order.
func Pull(ctx context.Context, appID string, opts ...Option) ([]Sample, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	conn := &steamcharts.Connector{}
	raw, err := conn.Fetch(ctx, connectorConfig(o), appID)
	if err != nil {
		return nil, err
	}

	formatted := formatter.Format(raw)
	samples := make([]Sample, len(formatted))
	for i, s := range formatted {
		samples[i] = Sample{
			Timestamp:   s.Timestamp,
			DatetimeUTC: s.DatetimeUTC,
			PlayerCount: s.PlayerCount,
		}
	}
	return samples, nil
}

// PullToCSV fetches the player-count history for the given app ID and
// writes it to a CSV file at path, overwriting any existing file.
func PullToCSV(ctx context.Context, appID, path string, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	conn := &steamcharts.Connector{}
	raw, err := conn.Fetch(ctx, connectorConfig(o), appID)
	if err != nil {
		return err
	}

	out := csvfile.New(path)
	if err := out.WriteAll(ctx, formatter.Format(raw)); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func connectorConfig(o options) connector.ConnectorConfig {
	return connector.ConnectorConfig{
		Endpoint:   o.endpoint,
		Timeout:    o.timeout,
		HTTPClient: o.httpClient,
	}
}
