package formatter

import (
	"time"

	"github.com/crimson-sun/chartpull/internal/model"
)

// msThreshold is the magnitude above which a timestamp is taken to be
// milliseconds rather than seconds. Inherited from the upstream data's
// loose convention; it is a heuristic, not a protocol guarantee, and
// must not be "corrected" without changing observable behavior.
const msThreshold = int64(1e12)

// datetimeLayout renders UTC timestamps as "YYYY-MM-DD HH:MM:SS".
const datetimeLayout = "2006-01-02 15:04:05"

// Format converts raw samples to formatted ones. The result has the
// same length and order as the input; player counts pass through
// unchanged. Formatting is pure and idempotent.
func Format(samples []model.RawSample) []model.FormattedSample {
	formatted := make([]model.FormattedSample, len(samples))
	for i, s := range samples {
		ts := normalizeTimestamp(s.Timestamp)
		formatted[i] = model.FormattedSample{
			Timestamp:   ts,
			DatetimeUTC: time.Unix(ts, 0).UTC().Format(datetimeLayout),
			PlayerCount: s.PlayerCount,
		}
	}
	return formatted
}

// normalizeTimestamp reduces millisecond timestamps to seconds.
// Values at or below the threshold are already seconds.
func normalizeTimestamp(ts int64) int64 {
	if ts > msThreshold {
		return ts / 1000
	}
	return ts
}
