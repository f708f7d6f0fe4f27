package retail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"affiliate_bot/internal/domain"
)

// ErrPriceNotFound is returned together with whatever else the page yielded
// when no price could be extracted.
var ErrPriceNotFound = errors.New("price not found on page")

const maxPageBytes = 5 << 20

// Config holds product page scraper configuration.
type Config struct {
	Timeout        time.Duration
	UserAgent      string
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Scraper reads product name, price and images from a shop page.
type Scraper struct {
	httpClient     *http.Client
	userAgent      string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Scraper {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Scraper{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent:      cfg.UserAgent,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "scraper"),
	}
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.code)
}

func (e *statusError) retryable() bool {
	return e.code == http.StatusTooManyRequests || e.code >= 500
}

// Lookup fetches rawURL and extracts product details. A partial result is
// returned along with ErrPriceNotFound.
func (s *Scraper) Lookup(ctx context.Context, rawURL string) (domain.ProductInfo, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.ProductInfo{}, fmt.Errorf("invalid product url %q", rawURL)
	}

	var info domain.ProductInfo

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		info, err = s.doRequest(ctx, u)
		if err == nil || errors.Is(err, ErrPriceNotFound) {
			break
		}

		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			return domain.ProductInfo{}, err
		}

		if attempt == s.maxAttempts {
			return domain.ProductInfo{}, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return domain.ProductInfo{}, ctx.Err()
		case <-time.After(backoff):
		}
	}

	s.logger.Info("product page scraped",
		"host", u.Host,
		"has_name", info.Name != "",
		"has_price", info.Price != "",
		"images", len(info.ImageURLs),
	)
	return info, err
}

func (s *Scraper) doRequest(ctx context.Context, u *url.URL) (domain.ProductInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.ProductInfo{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.ProductInfo{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ProductInfo{}, &statusError{code: resp.StatusCode}
	}

	info, err := parseProduct(io.LimitReader(resp.Body, maxPageBytes), resp.Request.URL)
	if err != nil {
		return domain.ProductInfo{}, fmt.Errorf("parse page: %w", err)
	}
	if info.Price == "" {
		return info, ErrPriceNotFound
	}
	return info, nil
}

func (s *Scraper) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
