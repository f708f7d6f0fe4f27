package telegram

import (
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"affiliate_bot/internal/domain"
)

func operatorMessage() *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 10,
		From:      &tgbotapi.User{ID: 42},
		Chat:      &tgbotapi.Chat{ID: 42},
		Date:      1717243200,
	}
}

func TestToInput_PhotoInAlbum(t *testing.T) {
	msg := operatorMessage()
	msg.MediaGroupID = "album-1"
	msg.Caption = "look https://shop.example/x?ref=ABC"
	msg.Photo = []tgbotapi.PhotoSize{
		{FileID: "small", Width: 90, Height: 90},
		{FileID: "large", Width: 1280, Height: 1280},
		{FileID: "medium", Width: 320, Height: 320},
	}

	in, ok := toInput(tgbotapi.Update{Message: msg})
	require.True(t, ok)

	assert.Equal(t, domain.InputMessage, in.Kind)
	assert.Equal(t, int64(42), in.SenderID)
	require.NotNil(t, in.Media)
	assert.Equal(t, "album-1", in.Media.BatchID)
	assert.Equal(t, domain.RemoteMedia("large"), *in.Media.Item)
	assert.Equal(t, []string{"https://shop.example/x?ref=ABC"}, in.Media.Links)
	assert.Equal(t, time.Unix(1717243200, 0), in.Media.ArrivedAt)
	assert.True(t, in.HasPhoto())
}

func TestToInput_HiddenLink(t *testing.T) {
	msg := operatorMessage()
	msg.Text = "deal here"
	msg.Entities = []tgbotapi.MessageEntity{{Type: "text_link", Offset: 0, Length: 4, URL: "https://shop.example/y"}}

	in, ok := toInput(tgbotapi.Update{Message: msg})
	require.True(t, ok)

	assert.False(t, in.HasPhoto())
	assert.Equal(t, []string{"https://shop.example/y"}, in.Links())
}

func TestToInput_PlainText(t *testing.T) {
	msg := operatorMessage()
	msg.Text = "Red Sneakers"

	in, ok := toInput(tgbotapi.Update{Message: msg})
	require.True(t, ok)

	assert.Equal(t, domain.InputMessage, in.Kind)
	assert.Equal(t, "Red Sneakers", in.Text)
	assert.Nil(t, in.Media)
}

func TestToInput_Command(t *testing.T) {
	msg := operatorMessage()
	msg.Text = "/cancel now"
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 7}}

	in, ok := toInput(tgbotapi.Update{Message: msg})
	require.True(t, ok)

	assert.Equal(t, domain.InputCommand, in.Kind)
	assert.Equal(t, "cancel", in.Command)
	assert.Equal(t, "now", in.Text)
}

func TestToInput_Callback(t *testing.T) {
	update := tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		From:    &tgbotapi.User{ID: 42},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 99}},
		Data:    "cat_shoes",
	}}

	in, ok := toInput(update)
	require.True(t, ok)

	assert.Equal(t, domain.InputCallback, in.Kind)
	assert.Equal(t, "cb-1", in.CallbackID)
	assert.Equal(t, "cat_shoes", in.Data)
	assert.Equal(t, int64(42), in.SenderID)
	assert.Equal(t, int64(99), in.ChatID)
}

func TestToInput_Ignored(t *testing.T) {
	_, ok := toInput(tgbotapi.Update{})
	assert.False(t, ok)

	msg := operatorMessage()
	msg.Sticker = &tgbotapi.Sticker{FileID: "s"}
	_, ok = toInput(tgbotapi.Update{Message: msg})
	assert.False(t, ok)

	_, ok = toInput(tgbotapi.Update{Message: &tgbotapi.Message{Text: "x"}})
	assert.False(t, ok)
}
