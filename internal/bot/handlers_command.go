package bot

import (
	"context"
	"html"
	"strings"

	"ramadhan-masjid-bot/internal/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const leaderboardSize = 10

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message, jamaah *db.Jamaah) {
	switch message.Command() {
	case "start":
		b.handleStartCommand(message)
	case "help":
		b.handleHelpCommand(message)
	case "jurnal":
		b.handleJournalCommand(message, jamaah)
	case "poin", "profil":
		b.handleProfileCommand(message, jamaah)
	case "kartu":
		b.handleCardCommand(message, jamaah)
	case "riwayat":
		b.handleHistoryCommand(message, jamaah)
	case "sesi":
		b.handleSessionCommand(message)
	case "scan":
		b.handleScanCommand(message, jamaah)
	case "rekap":
		b.handleRecapCommand(message, jamaah)
	case "peringkat":
		b.handleLeaderboardCommand(message)
	case "kajian":
		b.handleKajianCommand(message)
	case "kajianbaru":
		b.handleAddKajianCommand(message, jamaah)
	case "warta":
		b.handleWartaCommand(ctx, message, jamaah)
	case "nilai":
		b.handleAssessCommand(message, jamaah)
	case "tambah":
		b.handleAddMemberCommand(message, jamaah)
	case "peran":
		b.handleRoleCommand(message, jamaah)
	case "hapus":
		b.handleRemoveCommand(message, jamaah)
	default:
	}
}

func (b *Bot) handleStartCommand(message *tgbotapi.Message) {
	lang := b.getUserLang(message.From)
	chatID := message.Chat.ID

	text := b.localizer.Format(lang, "start_welcome", "name", html.EscapeString(message.From.FirstName))
	keyboard := createHelpKeyboard(b.localizer, lang)

	if b.cfg.StartImageURL != "" {
		photoMsg := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(b.cfg.StartImageURL))
		photoMsg.Caption = text
		photoMsg.ParseMode = tgbotapi.ModeHTML
		photoMsg.ReplyMarkup = &keyboard
		if _, err := b.api.Send(photoMsg); err != nil {
			b.log.Error("Failed to send start photo", zap.Int64("chat_id", chatID), zap.Error(err))
		}
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("Failed to send start message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) handleHelpCommand(message *tgbotapi.Message) {
	lang := b.getUserLang(message.From)
	msg := tgbotapi.NewMessage(message.Chat.ID, b.localizer.Get(lang, "help_main_title"))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = createHelpKeyboard(b.localizer, lang)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("Failed to send help", zap.Error(err))
	}
}

func (b *Bot) handleJournalCommand(message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	row, err := b.svc.TodayJournal(jamaah)
	if err != nil {
		b.log.Error("Failed to load journal", zap.String("user_id", jamaah.UserID), zap.Error(err))
		b.sendMessage(message.Chat.ID, b.localizer.Get(lang, "error_generic"), false)
		return
	}

	text, keyboard := renderJournal(b.localizer, lang, row)
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("Failed to send journal", zap.Error(err))
	}
}

func (b *Bot) handleCardCommand(message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	if !message.Chat.IsPrivate() {
		b.sendMessage(message.Chat.ID, b.localizer.Get(lang, "private_command_only"), false)
		return
	}
	text := b.localizer.Format(lang, "card_text",
		"name", html.EscapeString(jamaah.Nama),
		"role", b.localizer.Get(lang, "role_"+jamaah.Role),
		"token", html.EscapeString(jamaah.QRCodeToken))
	b.sendMessage(message.Chat.ID, text, true)
}

func (b *Bot) handleHistoryCommand(message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	view, err := b.svc.History(jamaah)
	if err != nil {
		b.log.Error("Failed to load history", zap.String("user_id", jamaah.UserID), zap.Error(err))
		b.sendMessage(message.Chat.ID, b.localizer.Get(lang, "error_generic"), false)
		return
	}
	b.sendMessage(message.Chat.ID, renderHistory(b.localizer, lang, view, b.cfg.TargetSubuh, b.cfg.Location), true)
}

func (b *Bot) handleSessionCommand(message *tgbotapi.Message) {
	lang := b.getUserLang(message.From)
	b.sendMessage(message.Chat.ID, renderSession(b.localizer, lang, b.svc.CurrentSession()), true)
}

func (b *Bot) handleScanCommand(message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	chatID := message.Chat.ID
	token := strings.TrimSpace(message.CommandArguments())

	res, err := b.svc.Scan(jamaah, b.isSuperAdmin(message.From), token, b.lastLocation(message.From.ID))
	switch {
	case err == nil:
		b.sendMessage(chatID, renderScan(b.localizer, lang, res), true)
	case errors.Is(err, ErrNotPanitia):
		b.sendMessage(chatID, b.localizer.Get(lang, "panitia_only"), false)
	case errors.Is(err, ErrEmptyQRToken):
		b.sendMessage(chatID, b.localizer.Get(lang, "scan_usage"), true)
	case errors.Is(err, ErrInvalidQR):
		b.sendMessage(chatID, b.localizer.Get(lang, "scan_invalid_qr"), false)
	default:
		b.log.Error("Scan failed", zap.Int64("scanner", message.From.ID), zap.Error(err))
		b.sendMessage(chatID, b.localizer.Get(lang, "scan_failed"), false)
	}
}

func (b *Bot) handleRecapCommand(message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	rows, err := b.svc.Recap(jamaah, b.isSuperAdmin(message.From))
	if errors.Is(err, ErrNotPanitia) {
		b.sendMessage(message.Chat.ID, b.localizer.Get(lang, "recap_forbidden"), false)
		return
	}
	if err != nil {
		b.log.Error("Failed to build recap", zap.Error(err))
		b.sendMessage(message.Chat.ID, b.localizer.Get(lang, "error_generic"), false)
		return
	}
	b.sendMessage(message.Chat.ID, renderRecap(b.localizer, lang, rows), true)
}

func (b *Bot) handleLeaderboardCommand(message *tgbotapi.Message) {
	lang := b.getUserLang(message.From)
	standings, err := b.svc.Leaderboard(leaderboardSize)
	if err != nil {
		b.log.Error("Failed to build leaderboard", zap.Error(err))
		b.sendMessage(message.Chat.ID, b.localizer.Get(lang, "error_generic"), false)
		return
	}
	b.sendMessage(message.Chat.ID, renderLeaderboard(b.localizer, lang, standings), true)
}

func (b *Bot) handleKajianCommand(message *tgbotapi.Message) {
	lang := b.getUserLang(message.From)
	rows, err := b.svc.Kajian()
	if err != nil {
		b.log.Error("Failed to load kajian", zap.Error(err))
		b.sendMessage(message.Chat.ID, b.localizer.Get(lang, "error_generic"), false)
		return
	}
	b.sendMessage(message.Chat.ID, renderKajian(b.localizer, lang, rows, b.svc.today()), true)
}
