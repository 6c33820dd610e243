package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/crimson-sun/chartpull/internal/connector"
	"github.com/crimson-sun/chartpull/internal/connector/steamcharts"
	"github.com/crimson-sun/chartpull/internal/model"
	"github.com/crimson-sun/chartpull/internal/output/csvfile"
)

type stubConnector struct {
	samples []model.RawSample
	err     error
}

func (s *stubConnector) Fetch(ctx context.Context, cfg connector.ConnectorConfig, appID string) ([]model.RawSample, error) {
	return s.samples, s.err
}

type stubOutput struct {
	written []model.FormattedSample
	err     error
	closed  bool
}

func (s *stubOutput) WriteAll(ctx context.Context, samples []model.FormattedSample) error {
	if s.err != nil {
		return s.err
	}
	s.written = append(s.written, samples...)
	return nil
}

func (s *stubOutput) Close() error {
	s.closed = true
	return nil
}

func TestRunFormatsAndWrites(t *testing.T) {
	conn := &stubConnector{samples: []model.RawSample{
		{Timestamp: 1700000000000, PlayerCount: 10},
		{Timestamp: 1700003600, PlayerCount: 12},
	}}
	out := &stubOutput{}
	p := New(conn, out)

	if err := p.Run(context.Background(), connector.ConnectorConfig{}, "730"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.written) != 2 {
		t.Fatalf("wrote %d samples, want 2", len(out.written))
	}
	if out.written[0].Timestamp != 1700000000 {
		t.Errorf("first timestamp = %d, want 1700000000 (ms normalized)", out.written[0].Timestamp)
	}
	if out.written[1].PlayerCount != 12 {
		t.Errorf("second count = %d, want 12", out.written[1].PlayerCount)
	}
}

func TestRunFetchErrorAbortsBeforeWrite(t *testing.T) {
	conn := &stubConnector{err: errors.New("boom")}
	out := &stubOutput{}
	p := New(conn, out)

	err := p.Run(context.Background(), connector.ConnectorConfig{}, "730")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(out.written) != 0 {
		t.Fatalf("output was written despite fetch failure: %d rows", len(out.written))
	}
}

func TestRunOutputErrorSurfaces(t *testing.T) {
	conn := &stubConnector{samples: []model.RawSample{{Timestamp: 1, PlayerCount: 1}}}
	out := &stubOutput{err: errors.New("disk full")}
	p := New(conn, out)

	if err := p.Run(context.Background(), connector.ConnectorConfig{}, "730"); err == nil {
		t.Fatal("expected error")
	}
}

func TestCloseClosesOutput(t *testing.T) {
	out := &stubOutput{}
	p := New(&stubConnector{}, out)
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.closed {
		t.Fatal("output not closed")
	}
}

func TestEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [[1700000000000, 5], [1700003600000, 8]]}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "steamcharts_730.csv")
	out := csvfile.New(path)

	p := New(&steamcharts.Connector{}, out)
	if err := p.Run(context.Background(), connector.ConnectorConfig{Endpoint: srv.URL}, "730"); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	if records[1][0] != "1700000000" || records[1][1] != "2023-11-14 22:13:20" || records[1][2] != "5" {
		t.Errorf("unexpected first data row: %v", records[1])
	}
	if records[2][0] != "1700003600" || records[2][2] != "8" {
		t.Errorf("unexpected second data row: %v", records[2])
	}
}
