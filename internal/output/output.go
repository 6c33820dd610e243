package output

import (
	"context"

	"github.com/crimson-sun/chartpull/internal/model"
)

// Output defines the interface for formatted sample destinations.
type Output interface {
	WriteAll(ctx context.Context, samples []model.FormattedSample) error
	Close() error
}
