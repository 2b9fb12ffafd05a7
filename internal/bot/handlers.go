package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *Bot) checkUserIsMember(user *tgbotapi.User) (bool, error) {
	if b.cfg.MustJoinChannel == "" {
		return true, nil
	}
	config := tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: b.cfg.MustJoinChannel,
			UserID:             user.ID,
		},
	}
	member, err := b.api.GetChatMember(config)
	if err != nil {
		if strings.Contains(err.Error(), "chat not found") {
			b.log.Warn("Must-join channel not found or bot is not an admin", zap.String("channel", b.cfg.MustJoinChannel))
			return false, nil
		}
		return false, err
	}
	switch member.Status {
	case "creator", "administrator", "member":
		return true, nil
	default:
		return false, nil
	}
}

func (b *Bot) sendMessage(chatID int64, text string, useHTML bool) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if useHTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	_, err := b.api.Send(msg)
	if err != nil {
		b.log.Error("Failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	return err
}

func (b *Bot) answerCallback(queryID, text string, showAlert bool) {
	cb := tgbotapi.NewCallback(queryID, text)
	cb.ShowAlert = showAlert
	if _, err := b.api.Request(cb); err != nil {
		b.log.Warn("Failed to answer callback", zap.Error(err))
	}
}

func (b *Bot) isSuperAdmin(user *tgbotapi.User) bool {
	return b.cfg.IsAdmin(user.ID)
}

// Bahasa default Indonesia; hanya pengguna berbahasa Inggris yang dapat en.
func (b *Bot) getUserLang(user *tgbotapi.User) string {
	if user != nil && strings.HasPrefix(user.LanguageCode, "en") {
		return "en"
	}
	return "id"
}
