package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *TelegramBot) send(msg tgbotapi.Chattable) {
	if _, err := b.Bot.Send(msg); err != nil {
		b.logger.Error("error while sending message", zap.Error(err))
	}
}

func (b *TelegramBot) reply(m *tgbotapi.Message, text string) {
	msg := tgbotapi.NewMessage(m.Chat.ID, text)
	msg.ReplyToMessageID = m.MessageID
	b.send(msg)
}

// answerCallback acknowledges a callback query so the client stops showing
// the loading spinner, even for callbacks this bot ignores.
func (b *TelegramBot) answerCallback(cq *tgbotapi.CallbackQuery, text string) {
	if _, err := b.Bot.Request(tgbotapi.NewCallback(cq.ID, text)); err != nil {
		b.logger.Error("error while answering callback", zap.Error(err))
	}
}

func (b *TelegramBot) editText(cq *tgbotapi.CallbackQuery, text string) {
	if cq.Message == nil {
		return
	}
	b.send(tgbotapi.NewEditMessageText(cq.Message.Chat.ID, cq.Message.MessageID, text))
}
