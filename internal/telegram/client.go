package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"affiliate_bot/internal/domain"
	"affiliate_bot/internal/fanout"
)

// Bot is the subset of the Bot API used by Client.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	SendMediaGroup(config tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error)
}

// Client sends operator messages and channel posts.
type Client struct {
	bot    Bot
	logger *slog.Logger
}

func NewClient(bot Bot, logger *slog.Logger) *Client {
	return &Client{
		bot:    bot,
		logger: logger.With("component", "telegram"),
	}
}

// address is a parsed destination: a numeric chat id or an @channel username.
type address struct {
	chatID   int64
	username string
}

func parseAddress(raw string) (address, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return address{}, errors.New("empty destination address")
	}
	if strings.HasPrefix(raw, "@") {
		if len(raw) == 1 {
			return address{}, fmt.Errorf("invalid channel username %q", raw)
		}
		return address{username: raw}, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return address{}, fmt.Errorf("invalid chat id %q", raw)
	}
	return address{chatID: id}, nil
}

func (c *Client) SendText(ctx context.Context, chatID int64, text string) error {
	if _, err := c.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// SendMarkdown sends text with legacy Markdown formatting.
func (c *Client) SendMarkdown(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("send formatted message: %w", err)
	}
	return nil
}

func (c *Client) SendChoices(ctx context.Context, chatID int64, text string, rows [][]domain.Choice) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard(rows)

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("send choices: %w", err)
	}
	return nil
}

func (c *Client) AnswerCallback(ctx context.Context, callbackID, text string) error {
	if callbackID == "" {
		return nil
	}
	if _, err := c.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}

// SendGroupedMedia posts media as one album with the caption on the first item.
// A single item is sent as a plain photo since albums need at least two.
func (c *Client) SendGroupedMedia(ctx context.Context, dest string, media []fanout.OutboundMedia, caption string) error {
	if len(media) == 0 {
		return fanout.ErrNoMedia
	}

	addr, err := parseAddress(dest)
	if err != nil {
		return err
	}

	if len(media) == 1 {
		photo := tgbotapi.NewPhoto(addr.chatID, fileData(media[0]))
		photo.ChannelUsername = addr.username
		photo.Caption = caption
		photo.ParseMode = tgbotapi.ModeMarkdown

		if _, err := c.bot.Send(photo); err != nil {
			return fmt.Errorf("send photo: %w", err)
		}
		return nil
	}

	group := tgbotapi.NewMediaGroup(addr.chatID, albumItems(media, caption))
	group.ChannelUsername = addr.username

	if _, err := c.bot.SendMediaGroup(group); err != nil {
		return fmt.Errorf("send media group: %w", err)
	}

	c.logger.Debug("media group sent",
		"destination", dest,
		"items", len(media),
	)
	return nil
}

func albumItems(media []fanout.OutboundMedia, caption string) []interface{} {
	items := make([]interface{}, 0, len(media))
	for i, m := range media {
		photo := tgbotapi.NewInputMediaPhoto(fileData(m))
		if i == 0 {
			photo.Caption = caption
			photo.ParseMode = tgbotapi.ModeMarkdown
		}
		items = append(items, photo)
	}
	return items
}

func fileData(m fanout.OutboundMedia) tgbotapi.RequestFileData {
	if m.Reader != nil {
		return tgbotapi.FileReader{Name: m.Name, Reader: m.Reader}
	}
	return tgbotapi.FileID(m.Ref.Ref)
}

func keyboard(rows [][]domain.Choice) tgbotapi.InlineKeyboardMarkup {
	buttons := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		r := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, ch := range row {
			r = append(r, tgbotapi.NewInlineKeyboardButtonData(ch.Label, ch.Data))
		}
		buttons = append(buttons, r)
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}
