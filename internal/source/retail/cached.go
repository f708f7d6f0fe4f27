package retail

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"affiliate_bot/internal/domain"
)

type Lookuper interface {
	Lookup(ctx context.Context, url string) (domain.ProductInfo, error)
}

type cachedLookup struct {
	domain.ProductInfo
	error
}

// Cached memoizes lookups per URL. Complete and price-less results are kept
// for the TTL; transport failures are not cached.
type Cached struct {
	next   Lookuper
	cache  *ttlcache.Cache[string, cachedLookup]
	logger *slog.Logger
}

func NewCached(next Lookuper, ttl time.Duration, logger *slog.Logger) *Cached {
	return &Cached{
		next: next,
		cache: ttlcache.New(
			ttlcache.WithTTL[string, cachedLookup](ttl),
			ttlcache.WithDisableTouchOnHit[string, cachedLookup](),
		),
		logger: logger.With("component", "scraper_cache"),
	}
}

// Start evicts expired entries until Stop is called. It blocks.
func (c *Cached) Start() {
	c.cache.Start()
}

func (c *Cached) Stop() {
	c.cache.Stop()
}

func (c *Cached) Lookup(ctx context.Context, url string) (domain.ProductInfo, error) {
	var transient error
	loader := ttlcache.LoaderFunc[string, cachedLookup](
		func(cache *ttlcache.Cache[string, cachedLookup], key string) *ttlcache.Item[string, cachedLookup] {
			info, err := c.next.Lookup(ctx, key)
			if err != nil && !errors.Is(err, ErrPriceNotFound) {
				transient = err
				return nil
			}
			return cache.Set(key, cachedLookup{ProductInfo: info, error: err}, ttlcache.DefaultTTL)
		},
	)

	v := c.cache.Get(url, ttlcache.WithLoader(loader))
	if v == nil {
		if transient == nil {
			transient = errors.New("product lookup failed")
		}
		return domain.ProductInfo{}, transient
	}
	return v.Value().ProductInfo, v.Value().error
}

func (c *Cached) Len() int {
	return c.cache.Len()
}
