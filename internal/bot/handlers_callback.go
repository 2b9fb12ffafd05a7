package bot

import (
	"strings"

	"ramadhan-masjid-bot/internal/db"
	"ramadhan-masjid-bot/internal/i18n"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery, jamaah *db.Jamaah) {
	data := query.Data

	switch {
	case strings.HasPrefix(data, journalTogglePrefix):
		b.handleJournalToggle(query, jamaah, strings.TrimPrefix(data, journalTogglePrefix))
	case strings.HasPrefix(data, "profile_action_"):
		b.handleProfileActionCallback(query, jamaah)
	case strings.HasPrefix(data, "help_"):
		b.handleHelpCallback(query)
	default:
		b.answerCallback(query.ID, "", false)
	}
}

func (b *Bot) handleJournalToggle(query *tgbotapi.CallbackQuery, jamaah *db.Jamaah, item string) {
	lang := b.getUserLang(query.From)
	res, err := b.svc.ToggleJournal(jamaah, item)
	if errors.Is(err, ErrUnknownItem) {
		b.answerCallback(query.ID, "", false)
		return
	}
	if err != nil {
		b.log.Error("Failed to toggle journal", zap.String("user_id", jamaah.UserID), zap.String("item", item), zap.Error(err))
		b.answerCallback(query.ID, b.localizer.Get(lang, "journal_save_error"), true)
		return
	}

	text, keyboard := renderJournal(b.localizer, lang, res.Row)
	b.editMessage(query.Message, text, &keyboard)

	ack := b.localizer.Get(lang, "journal_unchecked")
	if res.Checked {
		ack = b.localizer.Get(lang, "journal_checked")
	}
	b.answerCallback(query.ID, ack, false)

	if res.Unlocked != nil {
		b.announceBadge(query.Message.Chat.ID, jamaah.Nama, *res.Unlocked, lang)
	}
}

func (b *Bot) handleHelpCallback(query *tgbotapi.CallbackQuery) {
	lang := b.getUserLang(query.From)
	text, keyboard := renderHelpTopic(b.localizer, lang, query.Data)
	b.editMessage(query.Message, text, &keyboard)
	b.answerCallback(query.ID, "", false)
}

// renderHelpTopic: data yang tidak dikenal (termasuk help_back) kembali ke menu utama.
func renderHelpTopic(l *i18n.Localizer, lang, data string) (string, tgbotapi.InlineKeyboardMarkup) {
	switch data {
	case "help_how_to_use":
		return l.Get(lang, "help_text_how_to_use"), createHelpBackButton(l, lang)
	case "help_commands":
		return l.Get(lang, "help_text_commands"), createHelpBackButton(l, lang)
	case "help_scoring":
		return l.Get(lang, "help_text_scoring"), createHelpBackButton(l, lang)
	case "help_badges":
		return renderBadgeList(l, lang), createHelpBackButton(l, lang)
	}
	return l.Get(lang, "help_main_title"), createHelpKeyboard(l, lang)
}

func createHelpKeyboard(l *i18n.Localizer, lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Get(lang, "help_button_how_to_use"), "help_how_to_use"),
			tgbotapi.NewInlineKeyboardButtonData(l.Get(lang, "help_button_commands"), "help_commands"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Get(lang, "help_button_scoring"), "help_scoring"),
			tgbotapi.NewInlineKeyboardButtonData(l.Get(lang, "help_button_badges"), "help_badges"),
		),
	)
}

func createHelpBackButton(l *i18n.Localizer, lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Get(lang, "help_button_back"), "help_back"),
		),
	)
}
