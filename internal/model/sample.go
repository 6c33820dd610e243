package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// RawSample is a single (timestamp, player count) pair as returned by the
// upstream chart endpoint. The timestamp unit is ambiguous at this stage:
// it may be seconds or milliseconds since the Unix epoch.
type RawSample struct {
	Timestamp   int64
	PlayerCount int64
}

// UnmarshalJSON decodes the upstream wire form, a two-element JSON array
// [timestamp, count].
func (s *RawSample) UnmarshalJSON(data []byte) error {
	var pair []json.Number
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("sample: expected [timestamp, count] array: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("sample: expected 2 elements, got %d", len(pair))
	}
	ts, err := pair[0].Int64()
	if err != nil {
		return fmt.Errorf("sample: timestamp %q is not an integer: %w", pair[0], err)
	}
	count, err := pair[1].Int64()
	if err != nil {
		return fmt.Errorf("sample: count %q is not an integer: %w", pair[1], err)
	}
	s.Timestamp = ts
	s.PlayerCount = count
	return nil
}

// FormattedSample is an output row: the normalized timestamp in seconds,
// its UTC rendering, and the player count carried through unchanged.
type FormattedSample struct {
	Timestamp   int64
	DatetimeUTC string
	PlayerCount int64
}

// Record returns the sample as a CSV record.
func (s FormattedSample) Record() []string {
	return []string{
		strconv.FormatInt(s.Timestamp, 10),
		s.DatetimeUTC,
		strconv.FormatInt(s.PlayerCount, 10),
	}
}
