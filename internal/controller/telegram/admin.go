package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"yitio/internal/service"
	"yitio/types"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const platformCallbackPrefix = "platform_"

// Admin opens the admin control panel. Any upload session in progress is
// discarded first.
func (b *TelegramBot) Admin(ctx context.Context, m *tgbotapi.Message) {
	b.sessions.Clear(m.Chat.ID)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📤 Add New Video", "add_video"),
		),
	)

	msg := tgbotapi.NewMessage(m.Chat.ID, "*Admin Control Panel*")
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	b.send(msg)
}

// AddVideo starts the upload flow: prompt for a URL and wait for it.
func (b *TelegramBot) AddVideo(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	b.answerCallback(cq, "")

	if !b.isAdmin(cq.From.ID) || cq.Message == nil {
		return
	}

	b.editText(cq, "Please send the video URL (YouTube, TikTok, or Instagram):")
	b.sessions.Begin(cq.Message.Chat.ID)
}

// ReceiveVideoURL handles the URL step. A URL already present in the store
// rejects the submission and ends the flow.
func (b *TelegramBot) ReceiveVideoURL(ctx context.Context, m *tgbotapi.Message) {
	url := strings.TrimSpace(m.Text)

	exists, err := b.service.VideoExists(ctx, url)
	if err != nil {
		b.logger.Error("error checking video url", zap.String("url", url), zap.Error(err))
		b.sessions.Clear(m.Chat.ID)
		b.reply(m, "⚠️ Internal error while checking the URL. Please try again.")
		return
	}

	if exists {
		b.sessions.Clear(m.Chat.ID)
		b.reply(m, "❌ This video URL already exists in the database!")
		return
	}

	b.sessions.SetURL(m.Chat.ID, url)

	rows := [][]tgbotapi.InlineKeyboardButton{}
	for _, platform := range types.Platforms {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(string(platform), platformCallbackPrefix+string(platform)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", "cancel_upload"),
	))

	msg := tgbotapi.NewMessage(m.Chat.ID, "Select the platform:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(msg)
}

// SelectPlatform finishes the upload flow. The callback is state-scoped: a
// selection arriving outside the platform step (a stale button from an
// already-completed session) is acknowledged and ignored.
func (b *TelegramBot) SelectPlatform(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	b.answerCallback(cq, "")

	if !b.isAdmin(cq.From.ID) || cq.Message == nil {
		return
	}

	chatID := cq.Message.Chat.ID
	if b.sessions.State(chatID) != StateWaitingPlatform {
		b.logger.Info("stale platform callback ignored", zap.String("data", cq.Data))
		return
	}

	platform, ok := types.ParsePlatform(strings.TrimPrefix(cq.Data, platformCallbackPrefix))
	if !ok {
		b.sessions.Clear(chatID)
		b.editText(cq, "❌ Unknown platform selected.")
		return
	}

	url, ok := b.sessions.URL(chatID)
	if !ok {
		b.sessions.Clear(chatID)
		return
	}

	_, err := b.service.AddVideo(ctx, url, platform)
	b.sessions.Clear(chatID)

	if errors.Is(err, service.ErrVideoExists) {
		b.editText(cq, "❌ This video URL already exists in the database!")
		return
	}
	if err != nil {
		b.logger.Error("error adding video", zap.String("url", url), zap.Error(err))
		b.editText(cq, "❌ Error adding video. Please try again.")
		return
	}

	b.editText(cq, fmt.Sprintf("✅ Successfully added %s video!", platform))
}

// CancelUpload aborts the flow from any state without persisting anything.
func (b *TelegramBot) CancelUpload(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	b.answerCallback(cq, "Cancelled")

	if cq.Message == nil {
		return
	}

	b.sessions.Clear(cq.Message.Chat.ID)
	b.editText(cq, "❌ Video upload cancelled.")
}
