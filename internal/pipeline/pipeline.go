package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crimson-sun/chartpull/internal/connector"
	"github.com/crimson-sun/chartpull/internal/formatter"
	"github.com/crimson-sun/chartpull/internal/output"
)

// Pipeline connects a connector and an output into a one-shot
// fetch → format → write run.
type Pipeline struct {
	connector connector.Connector
	output    output.Output
}

// New creates a Pipeline from the given components.
func New(conn connector.Connector, out output.Output) *Pipeline {
	return &Pipeline{
		connector: conn,
		output:    out,
	}
}

// Run fetches the chart data for appID, formats it, and writes every
// row to the output. The stages run strictly in sequence; the first
// failing stage aborts the run.
func (p *Pipeline) Run(ctx context.Context, cfg connector.ConnectorConfig, appID string) error {
	raw, err := p.connector.Fetch(ctx, cfg, appID)
	if err != nil {
		return fmt.Errorf("pipeline fetch: %w", err)
	}
	slog.Info("fetched samples", "app_id", appID, "count", len(raw))

	formatted := formatter.Format(raw)

	if err := p.output.WriteAll(ctx, formatted); err != nil {
		return fmt.Errorf("pipeline output: %w", err)
	}
	return nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
