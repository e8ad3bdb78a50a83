package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const channelURL = "https://t.me/yitio_channel"

func (b *TelegramBot) Start(ctx context.Context, m *tgbotapi.Message) {
	// Deep link: "/start premium" jumps straight to the premium screen.
	if m.CommandArguments() == "premium" {
		b.Premium(ctx, m)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🚀 Let's Go!", b.frontendURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📢 Official Channel", channelURL),
		),
	)

	msg := tgbotapi.NewMessage(m.Chat.ID,
		"🎬 *Y.I.T.I.O - Your Infinite Video Stream*\n\n"+
			"Watch endless YouTube Shorts, TikTok, and Instagram Reels\n"+
			"All in one place, curated just for you!\n\n"+
			"Click 'Let's Go!' to start watching 🎥")
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	b.send(msg)
}

func (b *TelegramBot) Premium(ctx context.Context, m *tgbotapi.Message) {
	b.showPremium(ctx, m.Chat.ID, userID(m))
}

// showPremium renders the premium status screen: either the remaining
// entitlement, or the upsell with a purchase button.
func (b *TelegramBot) showPremium(ctx context.Context, chatID, telegramID int64) {
	status := b.service.CheckPremium(ctx, telegramID)

	if status.IsPremium && status.ExpiresAt != nil && status.DaysLeft != nil {
		messageText := fmt.Sprintf(
			"✨ *Premium Status*\n\n"+
				"✅ You are a *Premium Member*!\n"+
				"⏳ Days remaining: *%d* day(s)\n"+
				"📅 Expires on: %.10s\n\n"+
				"Enjoy your ad-free experience! 🎉",
			*status.DaysLeft,
			*status.ExpiresAt,
		)

		msg := tgbotapi.NewMessage(chatID, messageText)
		msg.ParseMode = tgbotapi.ModeMarkdown
		b.send(msg)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ Get Premium", "get_premium"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🎬 Open Y.I.T.I.O", b.frontendURL),
		),
	)

	msg := tgbotapi.NewMessage(chatID,
		"✨ *Y.I.T.I.O Premium*\n\n"+
			"🔓 You are currently on the free plan.\n\n"+
			"✨ *Upgrade to Premium for:*\n"+
			"• 🚫 No ads\n"+
			"• 😁 Support the project\n\n"+
			"💫 *Price:* 149 Stars (30 days)\n\n"+
			"Click 'Get Premium' to upgrade!")
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	b.send(msg)
}
