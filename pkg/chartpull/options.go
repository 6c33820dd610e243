package chartpull

import (
	"net/http"
	"time"
)

type options struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures a Pull or PullToCSV call.
type Option func(*options)

// WithEndpoint sets the base URL of the chart data service.
// Default: https://steamcharts.com.
func WithEndpoint(url string) Option {
	return func(o *options) {
		o.endpoint = url
	}
}

// WithTimeout sets the HTTP timeout for the fetch. Default: 30s.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPClient replaces the underlying http.Client. Takes precedence
// over WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

func defaultOptions() options {
	return options{}
}
