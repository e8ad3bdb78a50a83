package telegram

import (
	"context"
	"encoding/json"
	"fmt"

	"yitio/types"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	premiumProvider   = "telegram_stars"
	premiumPriceStars = 149
)

// PreCheckout accepts every pre-checkout query; validation happens on the
// provider side.
func (b *TelegramBot) PreCheckout(ctx context.Context, q *tgbotapi.PreCheckoutQuery) {
	pca := tgbotapi.PreCheckoutConfig{
		PreCheckoutQueryID: q.ID,
		OK:                 true,
	}
	if _, err := b.Bot.Request(pca); err != nil {
		b.logger.Error("error answering pre-checkout query", zap.Error(err))
	}
}

// SuccessfulPayment records the completed payment and activates the payer's
// 30-day premium window.
func (b *TelegramBot) SuccessfulPayment(ctx context.Context, m *tgbotapi.Message) {
	sp := m.SuccessfulPayment

	payment := &types.Payment{
		TelegramID:    userID(m),
		Provider:      premiumProvider,
		Amount:        int64(sp.TotalAmount),
		Currency:      sp.Currency,
		Payload:       sp.InvoicePayload,
		TransactionID: sp.TelegramPaymentChargeID,
	}

	if err := b.service.RecordPayment(ctx, payment); err != nil {
		b.logger.Error("error recording payment",
			zap.Int64("TelegramID", payment.TelegramID),
			zap.String("TransactionID", payment.TransactionID),
			zap.Error(err),
		)
		b.reply(m, "Payment received, but there was an error activating premium. Please contact support.")
		return
	}

	msg := tgbotapi.NewMessage(m.Chat.ID,
		"🎉 Payment successful! You are now a Y.I.T.I.O Premium member!\n\n"+
			"✅ Your premium access is active for 30 days.\n"+
			"✅ Ads have been removed from your experience.\n\n"+
			"To refresh your premium status in the app:\n"+
			"1. Close and reopen the Y.I.T.I.O Mini App\n"+
			"2. Or tap 'Check Premium Status' button\n\n"+
			"Use /premium anytime to check your status.")
	b.send(msg)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🚀 Open Y.I.T.I.O", b.frontendURL),
		),
	)
	followUp := tgbotapi.NewMessage(m.Chat.ID, "Click below to open the refreshed app with premium activated:")
	followUp.ReplyMarkup = keyboard
	b.send(followUp)
}

// GetPremium creates the payment link for the premium purchase.
func (b *TelegramBot) GetPremium(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	b.answerCallback(cq, "")

	if cq.Message == nil {
		return
	}

	if b.config.ProviderToken == "" {
		b.send(tgbotapi.NewMessage(cq.Message.Chat.ID,
			"❌ Payment system is not configured. Please contact admin."))
		return
	}

	link, err := b.createInvoiceLink(cq.From.ID)
	if err != nil {
		b.logger.Error("error creating invoice", zap.Error(err))
		b.send(tgbotapi.NewMessage(cq.Message.Chat.ID,
			"❌ Error creating payment. Please try again later."))
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("💳 Pay Now", link),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Back", "back_to_premium"),
		),
	)

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		cq.Message.Chat.ID,
		cq.Message.MessageID,
		"✨ *Upgrade to Y.I.T.I.O Premium*\n\n"+
			"💫 *Price:* 149 Stars (30 days)\n\n"+
			"*Benefits:*\n"+
			"• 🚫 No ads\n"+
			"• 😁 Support the project\n\n"+
			"Click 'Pay Now' to complete your purchase.",
		keyboard,
	)
	edit.ParseMode = tgbotapi.ModeMarkdown
	b.send(edit)
}

func (b *TelegramBot) BackToPremium(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	b.answerCallback(cq, "")
	if cq.Message == nil {
		return
	}
	b.showPremium(ctx, cq.Message.Chat.ID, cq.From.ID)
}

// createInvoiceLink goes through the raw API, which exposes invoice links
// for Stars payments.
func (b *TelegramBot) createInvoiceLink(telegramID int64) (string, error) {
	prices, err := json.Marshal([]tgbotapi.LabeledPrice{
		{Label: "Premium Access", Amount: premiumPriceStars},
	})
	if err != nil {
		return "", err
	}

	params := tgbotapi.Params{
		"title":       "Y.I.T.I.O Premium",
		"description": "30 days of ad-free video streaming",
		"payload":     fmt.Sprintf("premium_%d", telegramID),
		"currency":    "XTR",
		"prices":      string(prices),
	}
	params.AddNonEmpty("provider_token", b.config.ProviderToken)

	resp, err := b.Bot.MakeRequest("createInvoiceLink", params)
	if err != nil {
		return "", err
	}

	var link string
	if err := json.Unmarshal(resp.Result, &link); err != nil {
		return "", err
	}
	return link, nil
}
