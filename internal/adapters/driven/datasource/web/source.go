// Package web fetches the published data files over HTTP from the site
// that hosts the records browser.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driven"
	"github.com/custodia-labs/postliste/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.DataSource = (*Source)(nil)

// maxFileSize bounds a single response body.
const maxFileSize = 256 << 20

// userAgent identifies requests to the data host.
const userAgent = "postliste-cli"

// Config holds web source options.
type Config struct {
	// Timeout bounds each request. Zero means 30 seconds.
	Timeout time.Duration

	// RequestsPerSecond throttles requests. Zero means 10.
	RequestsPerSecond float64

	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
}

// Source fetches files relative to a base URL.
type Source struct {
	base    *url.URL
	client  *http.Client
	limiter *RateLimiter
}

// NewSource creates a source for base, which must be an absolute http(s) URL.
func NewSource(base string, cfg Config) (*Source, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("%w: data URL %q: %v", domain.ErrInvalidInput, base, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: data URL %q must be http or https", domain.ErrInvalidInput, base)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 10
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Source{
		base:    u,
		client:  client,
		limiter: NewRateLimiter(cfg.RequestsPerSecond),
	}, nil
}

// Fetch downloads the named file.
// A 404 response maps to domain.ErrNotFound. A 429 response sets a
// backoff honoured by later requests.
func (s *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	ref, err := url.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("%w: file name %q: %v", domain.ErrInvalidInput, name, err)
	}
	target := s.base.ResolveReference(ref)

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	logger.Debug("GET %s", target)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", target, domain.ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests:
		s.limiter.RecordRateLimited(resp.Header.Get("Retry-After"))
		return nil, fmt.Errorf("fetching %s: rate limited", target)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("fetching %s: unexpected status %s", target, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("reading %s: file exceeds %d bytes", target, maxFileSize)
	}
	return data, nil
}

// Location returns the base URL.
func (s *Source) Location() string {
	return s.base.String()
}
