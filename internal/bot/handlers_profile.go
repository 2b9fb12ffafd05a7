package bot

import (
	"ramadhan-masjid-bot/internal/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleProfileCommand dipanggil untuk /poin dan /profil.
func (b *Bot) handleProfileCommand(message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	summary, err := b.svc.Summary(jamaah)
	if err != nil {
		b.log.Error("Failed to load summary", zap.String("user_id", jamaah.UserID), zap.Error(err))
		b.sendMessage(message.Chat.ID, b.localizer.Get(lang, "profile_load_error"), false)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, renderSummary(b.localizer, lang, jamaah.Nama, summary))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = b.createProfileKeyboard(lang)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("Failed to send profile", zap.Error(err))
	}
}

func (b *Bot) createProfileKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.localizer.Get(lang, "button_refresh"), "profile_action_refresh"),
			tgbotapi.NewInlineKeyboardButtonData(b.localizer.Get(lang, "button_leaderboard"), "profile_action_leaderboard"),
		),
	)
}
