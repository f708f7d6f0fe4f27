package telegram

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"affiliate_bot/internal/domain"
)

// Handler consumes operator inputs.
type Handler interface {
	Handle(ctx context.Context, in domain.Input)
}

// Poller long-polls the Bot API and feeds updates to a Handler one at a time.
type Poller struct {
	bot     *tgbotapi.BotAPI
	handler Handler
	timeout int
	logger  *slog.Logger
}

func NewPoller(bot *tgbotapi.BotAPI, handler Handler, timeout int, logger *slog.Logger) *Poller {
	return &Poller{
		bot:     bot,
		handler: handler,
		timeout: timeout,
		logger:  logger.With("component", "poller"),
	}
}

func (p *Poller) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = p.timeout

	updates := p.bot.GetUpdatesChan(u)
	p.logger.Info("polling for updates", "bot", p.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			p.bot.StopReceivingUpdates()
			p.logger.Info("polling stopped")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			p.dispatch(ctx, update)
		}
	}
}

func (p *Poller) dispatch(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("update handler panicked",
				"update_id", update.UpdateID,
				"panic", r,
			)
		}
	}()

	in, ok := toInput(update)
	if !ok {
		return
	}
	p.handler.Handle(ctx, in)
}

// toInput converts an update into an operator input. Updates the bot does not
// act on are reported as not ok.
func toInput(update tgbotapi.Update) (domain.Input, bool) {
	if cq := update.CallbackQuery; cq != nil {
		in := domain.Input{
			Kind:       domain.InputCallback,
			Data:       cq.Data,
			CallbackID: cq.ID,
		}
		if cq.From != nil {
			in.SenderID = cq.From.ID
		}
		if cq.Message != nil && cq.Message.Chat != nil {
			in.ChatID = cq.Message.Chat.ID
		} else {
			in.ChatID = in.SenderID
		}
		return in, true
	}

	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return domain.Input{}, false
	}

	in := domain.Input{
		Kind:     domain.InputMessage,
		SenderID: msg.From.ID,
		ChatID:   msg.Chat.ID,
		Text:     msg.Text,
	}

	if msg.IsCommand() {
		in.Kind = domain.InputCommand
		in.Command = msg.Command()
		in.Text = msg.CommandArguments()
		return in, true
	}

	if len(msg.Photo) > 0 {
		ref := domain.RemoteMedia(largestPhoto(msg.Photo).FileID)
		in.Text = msg.Caption
		in.Media = &domain.MediaEvent{
			BatchID:   msg.MediaGroupID,
			Item:      &ref,
			Links:     messageLinks(msg.Caption, msg.CaptionEntities),
			ArrivedAt: messageTime(msg),
		}
		return in, true
	}

	if msg.Text == "" {
		return domain.Input{}, false
	}
	if links := messageLinks(msg.Text, msg.Entities); len(links) > 0 {
		in.Media = &domain.MediaEvent{
			Links:     links,
			ArrivedAt: messageTime(msg),
		}
	}
	return in, true
}

func largestPhoto(sizes []tgbotapi.PhotoSize) tgbotapi.PhotoSize {
	best := sizes[0]
	for _, s := range sizes[1:] {
		if s.Width*s.Height > best.Width*best.Height {
			best = s
		}
	}
	return best
}

// messageLinks returns plain links in text followed by hidden text_link targets.
func messageLinks(text string, entities []tgbotapi.MessageEntity) []string {
	links := domain.ExtractLinks(text)
	for _, e := range entities {
		if e.Type == "text_link" && e.URL != "" {
			links = append(links, e.URL)
		}
	}
	return links
}

func messageTime(msg *tgbotapi.Message) time.Time {
	if msg.Date == 0 {
		return time.Now()
	}
	return msg.Time()
}
