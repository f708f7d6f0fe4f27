package telegram

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"affiliate_bot/internal/domain"
	"affiliate_bot/internal/fanout"
)

type fakeBot struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	groups   []tgbotapi.MediaGroupConfig
	err      error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.sent = append(b.sent, c)
	return tgbotapi.Message{}, b.err
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{Ok: b.err == nil}, b.err
}

func (b *fakeBot) SendMediaGroup(config tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error) {
	b.groups = append(b.groups, config)
	return nil, b.err
}

func newClient() (*Client, *fakeBot) {
	bot := &fakeBot{}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewClient(bot, logger), bot
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		raw     string
		want    address
		wantErr bool
	}{
		{raw: "-1001234567890", want: address{chatID: -1001234567890}},
		{raw: " 42 ", want: address{chatID: 42}},
		{raw: "@deals_it", want: address{username: "@deals_it"}},
		{raw: "@", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "deals_it", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseAddress(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSendGroupedMedia_Album(t *testing.T) {
	client, bot := newClient()
	media := []fanout.OutboundMedia{
		{Ref: domain.RemoteMedia("file-1")},
		{Ref: domain.LocalMedia("/tmp/x.jpg"), Name: "x.jpg", Reader: strings.NewReader("bytes")},
	}

	err := client.SendGroupedMedia(context.Background(), "@deals_it", media, "*Red Sneakers*")
	require.NoError(t, err)
	require.Len(t, bot.groups, 1)

	group := bot.groups[0]
	assert.Equal(t, "@deals_it", group.ChannelUsername)
	assert.Zero(t, group.ChatID)
	require.Len(t, group.Media, 2)

	first := group.Media[0].(tgbotapi.InputMediaPhoto)
	assert.Equal(t, "*Red Sneakers*", first.Caption)
	assert.Equal(t, tgbotapi.ModeMarkdown, first.ParseMode)
	assert.Equal(t, tgbotapi.FileID("file-1"), first.Media)

	second := group.Media[1].(tgbotapi.InputMediaPhoto)
	assert.Empty(t, second.Caption)
	reader, ok := second.Media.(tgbotapi.FileReader)
	require.True(t, ok)
	assert.Equal(t, "x.jpg", reader.Name)
}

func TestSendGroupedMedia_SinglePhoto(t *testing.T) {
	client, bot := newClient()

	err := client.SendGroupedMedia(context.Background(), "-100200", []fanout.OutboundMedia{
		{Ref: domain.RemoteMedia("file-1")},
	}, "caption")
	require.NoError(t, err)
	assert.Empty(t, bot.groups)
	require.Len(t, bot.sent, 1)

	photo := bot.sent[0].(tgbotapi.PhotoConfig)
	assert.Equal(t, int64(-100200), photo.ChatID)
	assert.Equal(t, "caption", photo.Caption)
	assert.Equal(t, tgbotapi.ModeMarkdown, photo.ParseMode)
}

func TestSendGroupedMedia_Errors(t *testing.T) {
	client, bot := newClient()

	err := client.SendGroupedMedia(context.Background(), "@deals_it", nil, "c")
	assert.ErrorIs(t, err, fanout.ErrNoMedia)

	media := []fanout.OutboundMedia{{Ref: domain.RemoteMedia("a")}, {Ref: domain.RemoteMedia("b")}}

	err = client.SendGroupedMedia(context.Background(), "not-an-address", media, "c")
	assert.Error(t, err)
	assert.Empty(t, bot.groups)

	bot.err = errors.New("Forbidden: bot is not a member of the channel chat")
	err = client.SendGroupedMedia(context.Background(), "@deals_it", media, "c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send media group")
	assert.Contains(t, err.Error(), "not a member")
}

func TestSendChoices(t *testing.T) {
	client, bot := newClient()

	err := client.SendChoices(context.Background(), 7, "Pick one", [][]domain.Choice{
		{{Label: "👟 Shoes", Data: "cat_shoes"}},
		{{Label: "✅ Confirm", Data: "confirm_publish"}, {Label: "❌ Cancel", Data: "cancel_publish"}},
	})
	require.NoError(t, err)
	require.Len(t, bot.sent, 1)

	msg := bot.sent[0].(tgbotapi.MessageConfig)
	assert.Equal(t, int64(7), msg.ChatID)
	markup := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Len(t, markup.InlineKeyboard[1], 2)
	assert.Equal(t, "cat_shoes", *markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "❌ Cancel", markup.InlineKeyboard[1][1].Text)
}

func TestSendTextAndAnswer(t *testing.T) {
	client, bot := newClient()

	require.NoError(t, client.SendText(context.Background(), 7, "hello"))
	require.NoError(t, client.AnswerCallback(context.Background(), "cb-1", ""))
	require.NoError(t, client.AnswerCallback(context.Background(), "", "ignored"))

	require.Len(t, bot.sent, 1)
	assert.Equal(t, "hello", bot.sent[0].(tgbotapi.MessageConfig).Text)
	require.Len(t, bot.requests, 1)
	assert.Equal(t, "cb-1", bot.requests[0].(tgbotapi.CallbackConfig).CallbackQueryID)
}

func TestSendMarkdown(t *testing.T) {
	client, bot := newClient()

	require.NoError(t, client.SendMarkdown(context.Background(), 7, "```\n*preview*\n```"))
	require.Len(t, bot.sent, 1)

	msg := bot.sent[0].(tgbotapi.MessageConfig)
	assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)
	assert.Equal(t, "```\n*preview*\n```", msg.Text)

	bot.err = errors.New("Bad Request: can't parse entities")
	err := client.SendMarkdown(context.Background(), 7, "*broken")
	assert.ErrorContains(t, err, "send formatted message")
}
