package bot

import (
	"strings"

	"ramadhan-masjid-bot/internal/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleProfileActionCallback adalah router untuk tombol di bawah profil.
func (b *Bot) handleProfileActionCallback(query *tgbotapi.CallbackQuery, jamaah *db.Jamaah) {
	action := strings.TrimPrefix(query.Data, "profile_action_")
	switch action {
	case "refresh":
		b.refreshProfileView(query, jamaah)
	case "leaderboard":
		b.displayLeaderboardView(query)
	default:
		b.answerCallback(query.ID, "", false)
	}
}

func (b *Bot) refreshProfileView(query *tgbotapi.CallbackQuery, jamaah *db.Jamaah) {
	lang := b.getUserLang(query.From)
	summary, err := b.svc.Summary(jamaah)
	if err != nil {
		b.log.Error("Failed to refresh profile", zap.String("user_id", jamaah.UserID), zap.Error(err))
		b.answerCallback(query.ID, b.localizer.Get(lang, "profile_load_error"), true)
		return
	}
	keyboard := b.createProfileKeyboard(lang)
	b.editMessage(query.Message, renderSummary(b.localizer, lang, jamaah.Nama, summary), &keyboard)
	b.answerCallback(query.ID, "", false)
}

func (b *Bot) displayLeaderboardView(query *tgbotapi.CallbackQuery) {
	lang := b.getUserLang(query.From)
	standings, err := b.svc.Leaderboard(leaderboardSize)
	if err != nil {
		b.log.Error("Failed to load leaderboard", zap.Error(err))
		b.answerCallback(query.ID, b.localizer.Get(lang, "error_generic"), true)
		return
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.localizer.Get(lang, "button_back_profile"), "profile_action_refresh"),
		),
	)
	b.editMessage(query.Message, renderLeaderboard(b.localizer, lang, standings), &keyboard)
	b.answerCallback(query.ID, "", false)
}

// editMessage mengganti teks pesan (atau caption bila pesan berupa foto).
func (b *Bot) editMessage(message *tgbotapi.Message, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	var req tgbotapi.Chattable
	if len(message.Photo) > 0 {
		edit := tgbotapi.NewEditMessageCaption(message.Chat.ID, message.MessageID, text)
		edit.ParseMode = tgbotapi.ModeHTML
		edit.ReplyMarkup = keyboard
		req = edit
	} else {
		edit := tgbotapi.NewEditMessageText(message.Chat.ID, message.MessageID, text)
		edit.ParseMode = tgbotapi.ModeHTML
		edit.ReplyMarkup = keyboard
		req = edit
	}
	if _, err := b.api.Request(req); err != nil {
		b.log.Warn("Failed to edit message", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
	}
}
