package bot

import (
	"context"
	"strings"

	"ramadhan-masjid-bot/internal/config"
	"ramadhan-masjid-bot/internal/db"
	"ramadhan-masjid-bot/internal/ramadhan"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil && update.CallbackQuery == nil {
		return
	}

	var from *tgbotapi.User
	var chat *tgbotapi.Chat
	var message *tgbotapi.Message
	kind := "message"

	if update.Message != nil {
		from = update.Message.From
		chat = update.Message.Chat
		message = update.Message
	} else if update.CallbackQuery != nil {
		kind = "callback"
		from = update.CallbackQuery.From
		if update.CallbackQuery.Message == nil {
			return
		}
		chat = update.CallbackQuery.Message.Chat
		message = update.CallbackQuery.Message
	}
	if from == nil || chat == nil {
		return
	}

	if !b.limiter.Allow(from.ID) {
		b.countUpdate("rate_limited")
		if update.CallbackQuery != nil {
			b.answerCallback(update.CallbackQuery.ID, b.localizer.Get(b.getUserLang(from), "rate_limited"), false)
		}
		return
	}

	isMember, err := b.checkUserIsMember(from)
	if err != nil {
		b.log.Error("Error checking channel membership", zap.String("username", from.UserName), zap.Error(err))
		return
	}
	if !isMember {
		b.countUpdate("not_member")
		lang := b.getUserLang(from)
		text := b.localizer.Get(lang, "must_join_channel")
		buttonText := b.localizer.Get(lang, "button_join_channel")
		keyboard := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL(buttonText, "https://t.me/"+strings.TrimPrefix(b.cfg.MustJoinChannel, "@"))))
		msg := tgbotapi.NewMessage(chat.ID, text)
		msg.ReplyMarkup = keyboard
		if _, err := b.api.Send(msg); err != nil {
			b.log.Warn("Failed to send join prompt", zap.Error(err))
		}
		return
	}

	if err := b.store.GetOrCreateChat(chat.ID, chat.Type); err != nil {
		b.log.Warn("Could not register chat", zap.Int64("chat_id", chat.ID), zap.Error(err))
	}

	user := &config.User{ID: from.ID, FirstName: from.FirstName, Username: from.UserName}
	jamaah, err := b.store.GetOrCreateJamaah(user)
	if err != nil {
		b.log.Error("Could not process jamaah", zap.Int64("telegram_user_id", from.ID), zap.Error(err))
		return
	}

	b.countUpdate(kind)
	if update.CallbackQuery != nil {
		b.handleCallbackQuery(update.CallbackQuery, jamaah)
		return
	}

	b.log.Debug("Received message",
		zap.String("from", from.UserName),
		zap.Int64("chat_id", chat.ID),
		zap.String("type", chat.Type),
		zap.String("text", message.Text))

	switch {
	case message.IsCommand():
		b.handleCommand(ctx, message, jamaah)
	case message.Location != nil && chat.IsPrivate():
		b.handleLocation(message, jamaah)
	}
}

// handleLocation menyimpan lokasi panitia untuk dipakai /scan berikutnya.
func (b *Bot) handleLocation(message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	if !jamaah.IsPanitia() && !b.isSuperAdmin(message.From) {
		return
	}
	c := ramadhan.Coordinate{Latitude: message.Location.Latitude, Longitude: message.Location.Longitude}
	b.rememberLocation(message.From.ID, c)

	_, distance := b.cfg.Geofence.Check(c.Latitude, c.Longitude)
	text := b.localizer.Format(lang, "location_saved", "distance", formatMeters(distance))
	b.sendMessage(message.Chat.ID, text, true)
}

func (b *Bot) countUpdate(kind string) {
	if b.metrics != nil {
		b.metrics.BotUpdates.WithLabelValues(kind).Inc()
	}
}
