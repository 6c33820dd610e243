package connector

import (
	"context"
	"net/http"
	"time"

	"github.com/crimson-sun/chartpull/internal/model"
)

// Connector defines the interface all chart data source connectors must
// implement.
type Connector interface {
	// Fetch retrieves the full player-count history for the given
	// application identifier, in the order the upstream returns it.
	Fetch(ctx context.Context, cfg ConnectorConfig, appID string) ([]model.RawSample, error)
}

// ConnectorConfig holds provider-specific connection settings.
type ConnectorConfig struct {
	Endpoint   string        // base URL; empty means the provider default
	Timeout    time.Duration // HTTP timeout; zero means the client default
	HTTPClient *http.Client  // optional; takes precedence over Timeout
}
