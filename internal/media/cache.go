package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/oklog/ulid/v2"

	"affiliate_bot/internal/domain"
)

// ErrTooLarge is returned when a download exceeds the configured size limit.
var ErrTooLarge = errors.New("media exceeds size limit")

var allowedExt = map[string]string{
	".jpg":  ".jpg",
	".jpeg": ".jpg",
	".png":  ".png",
	".webp": ".webp",
	".gif":  ".gif",
}

type Config struct {
	Dir       string
	MaxBytes  int64
	Timeout   time.Duration
	UserAgent string
}

// Cache stores downloaded product images on local disk.
type Cache struct {
	dir        string
	maxBytes   int64
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Cache, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Cache{
		dir:       cfg.Dir,
		maxBytes:  cfg.MaxBytes,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With("component", "media"),
	}, nil
}

func (c *Cache) Dir() string {
	return c.dir
}

// Download fetches every url into the cache. Refs are returned for the urls
// that succeeded, in input order, together with the combined failures.
func (c *Cache) Download(ctx context.Context, urls []string) ([]domain.MediaRef, error) {
	var (
		refs   []domain.MediaRef
		result *multierror.Error
	)

	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			result = multierror.Append(result, err)
			break
		}

		p, err := c.fetch(ctx, u)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", u, err))
			continue
		}
		refs = append(refs, domain.LocalMedia(p))
	}

	c.logger.Info("images downloaded",
		"requested", len(urls),
		"stored", len(refs),
	)
	return refs, result.ErrorOrNil()
}

func (c *Cache) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if c.maxBytes > 0 && resp.ContentLength > c.maxBytes {
		return "", ErrTooLarge
	}

	name := ulid.Make().String() + extension(resp.Request.URL, resp.Header.Get("Content-Type"))
	target := filepath.Join(c.dir, name)

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	var body io.Reader = resp.Body
	if c.maxBytes > 0 {
		body = io.LimitReader(resp.Body, c.maxBytes+1)
	}
	n, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && c.maxBytes > 0 && n > c.maxBytes {
		err = ErrTooLarge
	}
	if err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("write file: %w", err)
	}
	return target, nil
}

// Open implements local media acquisition for the fan-out.
func (c *Cache) Open(ref domain.MediaRef) (io.ReadCloser, error) {
	if !ref.IsLocal() {
		return nil, fmt.Errorf("media %q is not local", ref.Ref)
	}
	return os.Open(ref.Ref)
}

func extension(u *url.URL, contentType string) string {
	if u != nil {
		if ext, ok := allowedExt[strings.ToLower(path.Ext(u.Path))]; ok {
			return ext
		}
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "image/png":
			return ".png"
		case "image/webp":
			return ".webp"
		case "image/gif":
			return ".gif"
		}
	}
	return ".jpg"
}
