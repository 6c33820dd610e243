// Package chartpull fetches historical player-count data from
// steamcharts.com and exposes it as formatted samples or a CSV file.
//
// Quick start:
//
//	samples, err := chartpull.Pull(ctx, "730")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range samples {
//	    fmt.Println(s.DatetimeUTC, s.PlayerCount)
//	}
//
// Each call performs one HTTP GET against the chart-data endpoint; there
// is no caching and no retrying. PullToCSV writes the same data straight
// to a CSV file with a Timestamp, Datetime (UTC), PlayerCount header.
package chartpull
