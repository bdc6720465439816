package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Makepad-fr/staff/internal/config"
	"github.com/Makepad-fr/staff/internal/metrics"
	"github.com/Makepad-fr/staff/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const maxBodyBytes = 8 << 20

// FetchError is any failure after configuration succeeded: transport, status, body or decode.
type FetchError struct {
	Op         string // "request", "status", "read", "decode"
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Op == "status" {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher reads the employee list from the configured endpoint.
type Fetcher struct {
	url     string
	http    *http.Client
	log     *zap.Logger
	metrics *metrics.Metrics
	group   singleflight.Group
}

// NewFetcher fails fast with config.ErrNoURL when no endpoint is configured.
// httpClient and m may be nil.
func NewFetcher(cfg config.APIConfig, httpClient *http.Client, log *zap.Logger, m *metrics.Metrics) (*Fetcher, error) {
	u, err := cfg.ResolveURL()
	if err != nil {
		return nil, fmt.Errorf("new fetcher: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	if httpClient == nil {
		httpClient = CreateHTTPClient(log, cfg.Timeout)
	}
	return &Fetcher{
		url:     u,
		http:    httpClient,
		log:     log.Named("fetcher"),
		metrics: m,
	}, nil
}

// URL is the resolved endpoint.
func (f *Fetcher) URL() string { return f.url }

// Fetch performs one GET. Calls that overlap an in-flight request wait for it
// and share its result instead of issuing another.
func (f *Fetcher) Fetch(ctx context.Context) ([]model.Employee, error) {
	v, err, shared := f.group.Do(f.url, func() (any, error) {
		return f.fetch(ctx)
	})
	if shared {
		f.log.Debug("joined in-flight fetch")
	}
	if err != nil {
		return nil, err
	}
	return v.([]model.Employee), nil
}

func (f *Fetcher) fetch(ctx context.Context) (list []model.Employee, err error) {
	start := time.Now()
	defer func() {
		f.metrics.ObserveFetch(start, len(list), err)
		if err != nil {
			f.log.Error("fetch failed", zap.Error(err), zap.Duration("took", time.Since(start)))
			return
		}
		f.log.Info("fetch finished", zap.Int("employees", len(list)), zap.Duration("took", time.Since(start)))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, &FetchError{Op: "request", URL: f.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "request", URL: f.url, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			f.log.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{Op: "status", URL: f.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{Op: "read", URL: f.url, StatusCode: resp.StatusCode, Err: err}
	}

	list, err = model.Decode(body)
	if err != nil {
		return nil, &FetchError{Op: "decode", URL: f.url, StatusCode: resp.StatusCode, Err: err}
	}
	return list, nil
}
