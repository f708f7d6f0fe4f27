package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"

	"affiliate_bot/internal/aggregator"
	"affiliate_bot/internal/caption"
	"affiliate_bot/internal/domain"
	"affiliate_bot/internal/fanout"
	"affiliate_bot/internal/scheduler"
)

type Options struct {
	OperatorID    int64
	Locale        string
	Targets       []domain.DestinationTarget
	Categories    []string
	QuietWindow   time.Duration
	MaxPhotos     int
	PreviewLength int
	HistoryLimit  int
}

type Option func(*Machine)

func WithPrefiller(p Prefiller) Option {
	return func(m *Machine) { m.prefiller = p }
}

func WithDownloader(d MediaDownloader) Option {
	return func(m *Machine) { m.downloader = d }
}

func WithHistory(h HistoryReader) Option {
	return func(m *Machine) { m.history = h }
}

func WithRecorder(r ReportSink) Option {
	return func(m *Machine) { m.recorder = r }
}

func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// Machine drives the submission workflow for the single operator. Every input
// and every aggregator emission is applied under one mutex.
type Machine struct {
	mu sync.Mutex

	opts     Options
	notifier Notifier
	fanout   FanOut
	renderer *caption.Renderer
	agg      *aggregator.Aggregator
	table    map[transitionKey]transition
	logger   *slog.Logger
	now      func() time.Time

	prefiller  Prefiller
	downloader MediaDownloader
	history    HistoryReader
	recorder   ReportSink

	sess  *session
	epoch uint64

	bg   context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup
}

func NewMachine(
	opts Options,
	notifier Notifier,
	fanOut FanOut,
	renderer *caption.Renderer,
	sched scheduler.Scheduler,
	logger *slog.Logger,
	options ...Option,
) *Machine {
	if opts.MaxPhotos <= 0 {
		opts.MaxPhotos = 10
	}
	if opts.PreviewLength <= 0 {
		opts.PreviewLength = 200
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 10
	}

	m := &Machine{
		opts:     opts,
		notifier: notifier,
		fanout:   fanOut,
		renderer: renderer,
		table:    transitionTable(),
		logger:   logger.With("component", "machine"),
		now:      time.Now,
	}
	m.bg, m.stop = context.WithCancel(context.Background())
	m.agg = aggregator.New(opts.QuietWindow, sched, m.onBatch, logger)

	for _, o := range options {
		o(m)
	}
	return m
}

// Handle applies one operator input. It never panics.
func (m *Machine) Handle(ctx context.Context, in domain.Input) {
	if in.SenderID != m.opts.OperatorID {
		m.logger.Warn("unauthorized access attempt",
			"user_id", in.SenderID,
			"chat_id", in.ChatID,
		)
		if in.Kind == domain.InputCallback {
			m.answer(ctx, in.CallbackID, m.msg("unauthorized", nil))
			return
		}
		m.sendText(ctx, in.ChatID, m.msg("unauthorized", nil))
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	defer m.recoverInput(ctx, in)

	if in.Kind == domain.InputCallback {
		m.answer(ctx, in.CallbackID, "")
	}

	if in.Kind == domain.InputCommand {
		switch in.Command {
		case "start":
			m.sendText(ctx, in.ChatID, m.msg("welcome", nil))
			return
		case "cancel":
			m.cancel(ctx, in.ChatID)
			return
		case "history":
			m.showHistory(ctx, in.ChatID)
			return
		}
	}

	state := m.state()
	event := classify(in)

	t, ok := m.table[transitionKey{state: state, event: event}]
	if !ok {
		m.logger.Debug("input not accepted in state", "state", state, "event", event)
		m.reprompt(ctx, in.ChatID, state)
		return
	}

	t(m, ctx, in)

	if next := m.state(); next != state {
		m.logger.Debug("state changed", "from", state, "to", next, "event", event)
	}
}

func (m *Machine) recoverInput(ctx context.Context, in domain.Input) {
	r := recover()
	if r == nil {
		return
	}
	m.logger.Error("input handler panicked",
		"panic", r,
		"state", m.state(),
		"kind", in.Kind,
		"command", in.Command,
	)
	m.sendText(ctx, in.ChatID, m.msg("error_unexpected", nil))
}

// State returns the current workflow state.
func (m *Machine) State() domain.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state()
}

// Snapshot returns a copy of the in-flight submission, if any.
func (m *Machine) Snapshot() (domain.Submission, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return domain.Submission{}, false
	}
	return m.sess.sub.Clone(), true
}

// PendingBatches returns the number of batches still inside their quiet window.
func (m *Machine) PendingBatches() int {
	return m.agg.Pending()
}

// Wait blocks until background lookups and downloads have finished.
func (m *Machine) Wait() {
	m.wg.Wait()
}

// Close stops background work and drops the in-flight submission.
func (m *Machine) Close() {
	m.stop()
	m.wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.clear("shutdown")
}

func (m *Machine) state() domain.State {
	if m.sess == nil {
		return domain.StateIdle
	}
	return m.sess.state
}

// current returns the session only if it is the one started at epoch.
func (m *Machine) current(epoch uint64) *session {
	if m.sess == nil || m.sess.epoch != epoch {
		return nil
	}
	return m.sess
}

func (m *Machine) clear(reason string) {
	m.agg.Reset()
	if m.sess != nil {
		m.logger.Info("session closed",
			"reason", reason,
			"state", m.sess.state,
			"photos", len(m.sess.sub.Photos),
		)
	}
	m.sess = nil
}

func (m *Machine) begin(ctx context.Context, in domain.Input) {
	links := in.Links()
	if !in.HasPhoto() && len(links) == 0 {
		m.sendText(ctx, in.ChatID, m.msg("need_media_and_link", nil))
		return
	}

	m.epoch++
	s := newSession(m.epoch, in.ChatID)
	m.sess = s
	if s.captureLink(links) {
		m.startPrefill(s)
	}

	switch {
	case in.Media != nil && in.Media.BatchID != "":
		s.state = domain.StateAwaitingMedia
		m.agg.OnEvent(*in.Media)
	case in.HasPhoto():
		s.addPhotos([]domain.MediaRef{*in.Media.Item}, m.opts.MaxPhotos)
		s.state = domain.StateAwaitingProductName
		m.sendText(ctx, s.chatID, m.msg("photos_received", map[string]any{"Count": len(s.sub.Photos)}))
	default:
		s.state = domain.StateAwaitingPhotosOnly
		m.sendText(ctx, s.chatID, m.msg("ask_photos", map[string]any{"Max": m.opts.MaxPhotos}))
	}

	m.logger.Info("session started",
		"state", s.state,
		"has_link", s.sub.ReferralLink != "",
	)
}

func (m *Machine) collectMedia(ctx context.Context, in domain.Input) {
	s := m.sess
	if s.captureLink(in.Links()) {
		m.startPrefill(s)
	}
	if m.agg.OnEvent(*in.Media) || in.Media.Item == nil {
		return
	}
	if _, dropped := s.addPhotos([]domain.MediaRef{*in.Media.Item}, m.opts.MaxPhotos); dropped > 0 {
		m.sendText(ctx, s.chatID, m.msg("photos_capped", map[string]any{"Max": m.opts.MaxPhotos}))
	}
}

func (m *Machine) textWhileCollecting(ctx context.Context, in domain.Input) {
	s := m.sess
	if s.captureLink(in.Links()) {
		m.startPrefill(s)
	}
	m.sendText(ctx, s.chatID, m.msg("still_receiving", nil))
}

func (m *Machine) photoAfterLink(ctx context.Context, in domain.Input) {
	s := m.sess
	if s.sub.ReferralLink == "" {
		m.abort(ctx, "need_media_and_link")
		return
	}

	if in.Media.BatchID != "" {
		s.state = domain.StateAwaitingMedia
		m.agg.OnEvent(*in.Media)
		return
	}

	s.addPhotos([]domain.MediaRef{*in.Media.Item}, m.opts.MaxPhotos)
	s.state = domain.StateAwaitingProductName
	m.sendText(ctx, s.chatID, m.msg("photos_received", map[string]any{"Count": len(s.sub.Photos)}))
}

func (m *Machine) useProductImages(ctx context.Context, _ domain.Input) {
	s := m.sess
	urls := s.suggestedImages()
	if m.downloader == nil || len(urls) == 0 {
		m.sendText(ctx, s.chatID, m.msg("images_unavailable", nil))
		return
	}
	if len(urls) > m.opts.MaxPhotos {
		urls = urls[:m.opts.MaxPhotos]
	}

	epoch := s.epoch
	m.goAsync(func(bg context.Context) {
		refs, err := m.downloader.Download(bg, urls)

		m.mu.Lock()
		defer m.mu.Unlock()

		s := m.current(epoch)
		if s == nil || s.state != domain.StateAwaitingPhotosOnly {
			m.logger.Debug("discarding downloaded images", "count", len(refs))
			return
		}
		if len(refs) == 0 {
			m.logger.Warn("product image download failed", "error", err)
			m.sendText(bg, s.chatID, m.msg("images_unavailable", nil))
			return
		}
		if err != nil {
			m.logger.Warn("some product images failed to download", "error", err, "downloaded", len(refs))
		}

		s.addPhotos(refs, m.opts.MaxPhotos)
		s.state = domain.StateAwaitingProductName
		m.sendText(bg, s.chatID, m.msg("images_downloaded", map[string]any{"Count": len(s.sub.Photos)}))
	})
}

func (m *Machine) setName(ctx context.Context, in domain.Input) {
	name := strings.TrimSpace(in.Text)
	if name == "" {
		m.sendText(ctx, m.sess.chatID, m.msg("empty_name", nil))
		return
	}
	m.acceptName(ctx, name)
}

func (m *Machine) skipName(ctx context.Context, _ domain.Input) {
	name := strings.TrimSpace(m.sess.suggestedName())
	if name == "" {
		m.sendText(ctx, m.sess.chatID, m.msg("skip_unavailable", nil))
		return
	}
	m.acceptName(ctx, name)
}

func (m *Machine) acceptName(ctx context.Context, name string) {
	s := m.sess
	s.sub.ProductName = name
	s.state = domain.StateAwaitingPrice
	m.sendText(ctx, s.chatID, m.msg("name_saved", map[string]any{"Name": name}))
}

func (m *Machine) setPrice(ctx context.Context, in domain.Input) {
	price := strings.TrimSpace(in.Text)
	if !ValidPrice(price) {
		m.sendText(ctx, m.sess.chatID, m.msg("invalid_price", nil))
		return
	}
	m.acceptPrice(ctx, price)
}

func (m *Machine) skipPrice(ctx context.Context, _ domain.Input) {
	price := strings.TrimSpace(m.sess.suggestedPrice())
	if !ValidPrice(price) {
		m.sendText(ctx, m.sess.chatID, m.msg("skip_unavailable", nil))
		return
	}
	m.acceptPrice(ctx, price)
}

func (m *Machine) acceptPrice(ctx context.Context, price string) {
	s := m.sess
	s.sub.Price = price
	s.state = domain.StateAwaitingCategory
	m.sendText(ctx, s.chatID, m.msg("price_saved", map[string]any{"Price": price}))
	m.askCategory(ctx, s.chatID)
}

// ValidPrice accepts any text holding at least one digit; currency symbols
// may sit on either side.
func ValidPrice(price string) bool {
	return strings.ContainsFunc(price, unicode.IsDigit)
}

func (m *Machine) setCategory(ctx context.Context, in domain.Input) {
	s := m.sess
	key := strings.TrimPrefix(in.Data, callbackCategoryPrefix)
	if !slices.Contains(m.opts.Categories, key) {
		m.sendText(ctx, s.chatID, m.msg("unknown_category", nil))
		m.askCategory(ctx, s.chatID)
		return
	}

	s.sub.Category = key
	s.state = domain.StateAwaitingConfirmation
	m.sendText(ctx, s.chatID, m.msg("category_selected", map[string]any{
		"Name": m.renderer.CategoryName(key, m.opts.Locale),
	}))
	m.showPreview(ctx, s)
}

func (m *Machine) showPreview(ctx context.Context, s *session) {
	var b strings.Builder
	b.WriteString(m.msg("preview_intro", nil))
	b.WriteByte('\n')

	for _, t := range m.opts.Targets {
		b.WriteString(m.msg("preview_channel", map[string]any{"Flag": t.Flag, "Name": t.DisplayName}))
		text, err := m.renderer.Render(s.sub.ProductName, s.sub.Price, s.sub.ReferralLink, s.sub.Category, t.Locale)
		if err != nil {
			m.logger.Warn("failed to render preview", "locale", t.Locale, "error", err)
			text = m.msg("error_generic", map[string]any{"Error": err.Error()})
		}
		b.WriteString("```\n")
		b.WriteString(strings.ReplaceAll(truncate(text, m.opts.PreviewLength), "`", "'"))
		b.WriteString("...\n```\n")
	}

	if err := m.notifier.SendMarkdown(ctx, s.chatID, b.String()); err != nil {
		m.logger.Warn("failed to send formatted preview", "chat_id", s.chatID, "error", err)
		m.sendText(ctx, s.chatID, b.String())
	}
	m.sendChoices(ctx, s.chatID, m.msg("confirm_publish", nil), m.confirmRows())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (m *Machine) lateMedia(ctx context.Context, in domain.Input) {
	s := m.sess
	s.captureLink(in.Links())
	if m.agg.OnEvent(*in.Media) || in.Media.Item == nil {
		return
	}
	m.mergePhotos(ctx, s, []domain.MediaRef{*in.Media.Item})
}

func (m *Machine) mediaLocked(ctx context.Context, _ domain.Input) {
	m.sendText(ctx, m.sess.chatID, m.msg("photos_locked", nil))
}

func (m *Machine) mergePhotos(ctx context.Context, s *session, items []domain.MediaRef) {
	added, dropped := s.addPhotos(items, m.opts.MaxPhotos)
	if added > 0 {
		m.sendText(ctx, s.chatID, m.msg("photos_added", map[string]any{
			"Count": added,
			"Total": len(s.sub.Photos),
		}))
	}
	if dropped > 0 {
		m.sendText(ctx, s.chatID, m.msg("photos_capped", map[string]any{"Max": m.opts.MaxPhotos}))
	}
}

// onBatch receives aggregator emissions on scheduler goroutines.
func (m *Machine) onBatch(batch domain.Batch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("batch handler panicked", "panic", r, "batch_id", batch.ID)
		}
	}()

	if m.sess == nil || batch.Generation != m.agg.Generation() {
		m.logger.Debug("discarding stale batch", "batch_id", batch.ID, "items", len(batch.Items))
		return
	}

	ctx := m.bg
	s := m.sess

	m.logger.Info("media batch completed",
		"batch_id", batch.ID,
		"items", len(batch.Items),
		"state", s.state,
	)

	switch s.state {
	case domain.StateAwaitingMedia:
		if _, dropped := s.addPhotos(batch.Items, m.opts.MaxPhotos); dropped > 0 {
			m.sendText(ctx, s.chatID, m.msg("photos_capped", map[string]any{"Max": m.opts.MaxPhotos}))
		}
		if len(s.sub.Photos) == 0 {
			if m.agg.Pending() > 0 {
				return
			}
			s.state = domain.StateAwaitingPhotosOnly
			m.sendText(ctx, s.chatID, m.msg("ask_photos", map[string]any{"Max": m.opts.MaxPhotos}))
			return
		}
		s.state = domain.StateAwaitingProductName
		m.sendText(ctx, s.chatID, m.msg("photos_received", map[string]any{"Count": len(s.sub.Photos)}))
	case domain.StateAwaitingPhotosOnly:
		if _, dropped := s.addPhotos(batch.Items, m.opts.MaxPhotos); dropped > 0 {
			m.sendText(ctx, s.chatID, m.msg("photos_capped", map[string]any{"Max": m.opts.MaxPhotos}))
		}
		if len(s.sub.Photos) == 0 {
			return
		}
		s.state = domain.StateAwaitingProductName
		m.sendText(ctx, s.chatID, m.msg("photos_received", map[string]any{"Count": len(s.sub.Photos)}))
	case domain.StateAwaitingProductName, domain.StateAwaitingPrice, domain.StateAwaitingCategory:
		m.mergePhotos(ctx, s, batch.Items)
	case domain.StateAwaitingConfirmation:
		m.sendText(ctx, s.chatID, m.msg("photos_locked", nil))
	}
}

func (m *Machine) publish(ctx context.Context, _ domain.Input) {
	s := m.sess
	sub := s.sub.Clone()
	chatID := s.chatID

	s.state = domain.StateTerminal
	m.clear("published")

	m.sendText(ctx, chatID, m.msg("publishing", nil))

	report, err := m.fanout.Publish(ctx, sub, m.opts.Targets, func(o domain.PublishOutcome) {
		if o.Succeeded {
			m.sendText(ctx, chatID, m.msg("publish_success", map[string]any{"Channel": o.Target.Title()}))
			return
		}
		m.sendText(ctx, chatID, m.msg("publish_error", map[string]any{
			"Channel": o.Target.Title(),
			"Error":   o.ErrorDetail,
		}))
	})
	if errors.Is(err, fanout.ErrNoMedia) {
		m.sendText(ctx, chatID, m.msg("no_media", nil))
		return
	}
	if err != nil {
		m.logger.Error("publish failed", "error", err)
		m.sendText(ctx, chatID, m.msg("error_generic", map[string]any{"Error": err.Error()}))
		return
	}

	m.logger.Info("publication finished",
		"product", sub.ProductName,
		"destinations", len(report),
		"failed", report.Failed(),
	)
	m.sendText(ctx, chatID, m.msg("publish_complete", map[string]any{"Summary": fanout.Summary(report)}))

	m.record(sub, report)
}

// record hands the publication to the sinks on a background goroutine.
func (m *Machine) record(sub domain.Submission, report domain.PublishReport) {
	if m.recorder == nil {
		return
	}
	rec := &domain.PublicationRecord{
		ID:         ulid.Make().String(),
		Submission: sub,
		Report:     report,
		CreatedAt:  m.now().UTC(),
	}
	m.goAsync(func(bg context.Context) {
		if err := m.recorder.Record(bg, rec); err != nil {
			m.logger.Warn("failed to record publication", "publication_id", rec.ID, "error", err)
		}
	})
}

func (m *Machine) abortFromButton(ctx context.Context, _ domain.Input) {
	chatID := m.sess.chatID
	m.sess.state = domain.StateTerminal
	m.clear("cancelled")
	m.sendText(ctx, chatID, m.msg("cancelled", nil))
}

func (m *Machine) cancel(ctx context.Context, chatID int64) {
	if m.sess != nil {
		m.sess.state = domain.StateTerminal
	}
	m.clear("cancelled")
	m.sendText(ctx, chatID, m.msg("cancelled", nil))
}

// abort ends the session after a content error.
func (m *Machine) abort(ctx context.Context, key string) {
	chatID := m.sess.chatID
	m.sess.state = domain.StateTerminal
	m.clear("aborted")
	m.sendText(ctx, chatID, m.msg(key, nil))
}

func (m *Machine) reprompt(ctx context.Context, chatID int64, state domain.State) {
	switch state {
	case domain.StateAwaitingMedia:
		m.sendText(ctx, chatID, m.msg("still_receiving", nil))
	case domain.StateAwaitingPhotosOnly:
		m.sendText(ctx, chatID, m.msg("photo_required", nil))
	case domain.StateAwaitingProductName:
		m.sendText(ctx, chatID, m.msg("ask_name", nil))
	case domain.StateAwaitingPrice:
		m.sendText(ctx, chatID, m.msg("ask_price", nil))
	case domain.StateAwaitingCategory:
		m.askCategory(ctx, chatID)
	case domain.StateAwaitingConfirmation:
		m.sendChoices(ctx, chatID, m.msg("confirm_publish", nil), m.confirmRows())
	default:
		m.sendText(ctx, chatID, m.msg("need_media_and_link", nil))
	}
}

func (m *Machine) askCategory(ctx context.Context, chatID int64) {
	rows := make([][]domain.Choice, 0, len(m.opts.Categories))
	for _, key := range m.opts.Categories {
		rows = append(rows, []domain.Choice{{
			Label: m.renderer.CategoryName(key, m.opts.Locale),
			Data:  callbackCategoryPrefix + key,
		}})
	}
	m.sendChoices(ctx, chatID, m.msg("select_category", nil), rows)
}

func (m *Machine) confirmRows() [][]domain.Choice {
	return [][]domain.Choice{{
		{Label: m.msg("button_confirm", nil), Data: callbackConfirm},
		{Label: m.msg("button_cancel", nil), Data: callbackCancel},
	}}
}

func (m *Machine) showHistory(ctx context.Context, chatID int64) {
	if m.history == nil {
		m.sendText(ctx, chatID, m.msg("history_unavailable", nil))
		return
	}

	items, err := m.history.Recent(ctx, m.opts.HistoryLimit)
	if err != nil {
		m.logger.Error("failed to load history", "error", err)
		m.sendText(ctx, chatID, m.msg("error_generic", map[string]any{"Error": err.Error()}))
		return
	}
	if len(items) == 0 {
		m.sendText(ctx, chatID, m.msg("history_empty", nil))
		return
	}

	lines := []string{m.msg("history_header", nil)}
	for _, it := range items {
		lines = append(lines, m.msg("history_line", map[string]any{
			"When":      it.CreatedAt.Format("2006-01-02 15:04"),
			"Name":      it.ProductName,
			"Price":     it.Price,
			"Succeeded": it.Succeeded,
			"Failed":    it.Failed,
		}))
	}
	m.sendText(ctx, chatID, strings.Join(lines, "\n"))
}

func (m *Machine) startPrefill(s *session) {
	if m.prefiller == nil {
		return
	}

	epoch, url := s.epoch, s.sub.ReferralLink
	m.goAsync(func(bg context.Context) {
		info, err := m.prefiller.Lookup(bg, url)
		if err != nil {
			m.logger.Debug("product lookup incomplete", "url", url, "error", err)
		}
		if info.Empty() {
			return
		}

		m.mu.Lock()
		defer m.mu.Unlock()

		s := m.current(epoch)
		if s == nil {
			m.logger.Debug("discarding product lookup for closed session", "url", url)
			return
		}
		s.prefill = &info
		m.announcePrefill(bg, s)
	})
}

func (m *Machine) announcePrefill(ctx context.Context, s *session) {
	info := s.prefill

	switch s.state {
	case domain.StateAwaitingMedia, domain.StateAwaitingPhotosOnly,
		domain.StateAwaitingProductName, domain.StateAwaitingPrice:
		if info.Name != "" || info.Price != "" {
			m.sendText(ctx, s.chatID, m.msg("prefill_found", map[string]any{
				"Name":  orDash(info.Name),
				"Price": orDash(info.Price),
			}))
		}
	}

	if s.state == domain.StateAwaitingPhotosOnly && m.downloader != nil && len(info.ImageURLs) > 0 {
		m.sendText(ctx, s.chatID, m.msg("prefill_images", map[string]any{"Count": len(info.ImageURLs)}))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (m *Machine) goAsync(fn func(ctx context.Context)) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("background task panicked", "panic", r)
			}
		}()
		fn(m.bg)
	}()
}

func (m *Machine) msg(key string, data any) string {
	return m.renderer.Catalog().Message(m.opts.Locale, key, data)
}

func (m *Machine) sendText(ctx context.Context, chatID int64, text string) {
	if err := m.notifier.SendText(ctx, chatID, text); err != nil {
		m.logger.Warn("failed to send message", "chat_id", chatID, "error", err)
	}
}

func (m *Machine) sendChoices(ctx context.Context, chatID int64, text string, rows [][]domain.Choice) {
	if err := m.notifier.SendChoices(ctx, chatID, text, rows); err != nil {
		m.logger.Warn("failed to send keyboard", "chat_id", chatID, "error", err)
	}
}

func (m *Machine) answer(ctx context.Context, callbackID, text string) {
	if callbackID == "" {
		return
	}
	if err := m.notifier.AnswerCallback(ctx, callbackID, text); err != nil {
		m.logger.Debug("failed to answer callback", "error", err)
	}
}
