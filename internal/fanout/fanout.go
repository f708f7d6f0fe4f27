package fanout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"affiliate_bot/internal/domain"
)

// ErrNoMedia is returned when a submission has no photos to publish.
var ErrNoMedia = errors.New("submission has no media")

// OutboundMedia is one item of a grouped send. Reader is set for local media
// and is only valid for the duration of the send.
type OutboundMedia struct {
	Ref    domain.MediaRef
	Name   string
	Reader io.Reader
}

type Transport interface {
	SendGroupedMedia(ctx context.Context, address string, media []OutboundMedia, caption string) error
}

type Renderer interface {
	Render(productName, price, referralLink, category, locale string) (string, error)
}

// Opener acquires the bytes of a local media reference.
type Opener interface {
	Open(ref domain.MediaRef) (io.ReadCloser, error)
}

// Result is one finished attempt. Index is the destination's position in the
// configured target list.
type Result struct {
	Index   int
	Outcome domain.PublishOutcome
}

type Publisher struct {
	transport   Transport
	renderer    Renderer
	opener      Opener
	concurrency int
	logger      *slog.Logger
}

func New(transport Transport, renderer Renderer, opener Opener, concurrency int, logger *slog.Logger) *Publisher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Publisher{
		transport:   transport,
		renderer:    renderer,
		opener:      opener,
		concurrency: concurrency,
		logger:      logger.With("component", "fanout"),
	}
}

// Stream starts one attempt per target and returns a channel that yields each
// result as it completes. The channel is closed after the last attempt.
func (p *Publisher) Stream(ctx context.Context, sub domain.Submission, targets []domain.DestinationTarget) (<-chan Result, error) {
	if len(sub.Photos) == 0 {
		return nil, ErrNoMedia
	}

	sub = sub.Clone()
	results := make(chan Result, len(targets))

	go func() {
		defer close(results)

		var g errgroup.Group
		g.SetLimit(p.concurrency)
		for i, target := range targets {
			g.Go(func() error {
				results <- Result{Index: i, Outcome: p.attempt(ctx, sub, target)}
				return nil
			})
		}
		_ = g.Wait()
	}()

	return results, nil
}

// Publish runs every attempt and returns the report in target order. observe,
// if set, is called once per outcome in completion order.
func (p *Publisher) Publish(
	ctx context.Context,
	sub domain.Submission,
	targets []domain.DestinationTarget,
	observe func(domain.PublishOutcome),
) (domain.PublishReport, error) {
	results, err := p.Stream(ctx, sub, targets)
	if err != nil {
		return nil, err
	}

	report := make(domain.PublishReport, len(targets))
	for res := range results {
		report[res.Index] = res.Outcome
		if observe != nil {
			observe(res.Outcome)
		}
	}
	return report, nil
}

func (p *Publisher) attempt(ctx context.Context, sub domain.Submission, target domain.DestinationTarget) (outcome domain.PublishOutcome) {
	outcome.Target = target

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("publish attempt panicked",
				"destination", target.Address,
				"panic", r,
			)
			outcome.Succeeded = false
			outcome.ErrorDetail = fmt.Sprintf("internal error: %v", r)
		}
	}()

	if err := p.deliver(ctx, sub, target); err != nil {
		p.logger.Warn("publish attempt failed",
			"destination", target.Address,
			"locale", target.Locale,
			"error", err,
		)
		outcome.ErrorDetail = err.Error()
		return outcome
	}

	p.logger.Info("published",
		"destination", target.Address,
		"locale", target.Locale,
		"photos", len(sub.Photos),
	)
	outcome.Succeeded = true
	return outcome
}

func (p *Publisher) deliver(ctx context.Context, sub domain.Submission, target domain.DestinationTarget) error {
	caption, err := p.renderer.Render(sub.ProductName, sub.Price, sub.ReferralLink, sub.Category, target.Locale)
	if err != nil {
		return fmt.Errorf("render caption: %w", err)
	}

	media, release, err := p.acquire(sub.Photos)
	defer release()
	if err != nil {
		return err
	}

	if err := p.transport.SendGroupedMedia(ctx, target.Address, media, caption); err != nil {
		return fmt.Errorf("send media group: %w", err)
	}
	return nil
}

// acquire opens every local item for a single attempt. release closes whatever
// was opened and must be called on every path.
func (p *Publisher) acquire(photos []domain.MediaRef) ([]OutboundMedia, func(), error) {
	var opened []io.Closer
	release := func() {
		for _, c := range opened {
			if err := c.Close(); err != nil {
				p.logger.Warn("failed to close media", "error", err)
			}
		}
	}

	media := make([]OutboundMedia, 0, len(photos))
	for _, ref := range photos {
		if !ref.IsLocal() {
			media = append(media, OutboundMedia{Ref: ref})
			continue
		}
		if p.opener == nil {
			return nil, release, fmt.Errorf("open %s: no local media source", ref.Ref)
		}
		rc, err := p.opener.Open(ref)
		if err != nil {
			return nil, release, fmt.Errorf("open %s: %w", ref.Ref, err)
		}
		opened = append(opened, rc)
		media = append(media, OutboundMedia{Ref: ref, Name: filepath.Base(ref.Ref), Reader: rc})
	}
	return media, release, nil
}

// Summary renders a report as one line per destination in target order.
func Summary(report domain.PublishReport) string {
	var b strings.Builder
	for i, o := range report {
		if i > 0 {
			b.WriteByte('\n')
		}
		if o.Succeeded {
			b.WriteString("✅ ")
		} else {
			b.WriteString("❌ ")
		}
		b.WriteString(o.Target.Title())
	}
	return b.String()
}
