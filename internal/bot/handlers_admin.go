package bot

import (
	"context"
	"html"
	"strconv"
	"strings"
	"time"

	"ramadhan-masjid-bot/internal/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	broadcastDelay = time.Second
	wartaListSize  = 5
)

// handleWartaCommand: tanpa argumen menampilkan warta terbaru. Dengan teks
// (atau membalas foto) panitia menyimpan warta lalu menyiarkannya.
func (b *Bot) handleWartaCommand(ctx context.Context, message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	text := strings.TrimSpace(message.CommandArguments())
	photoFileID := replyPhoto(message)

	if text == "" && photoFileID == "" {
		b.handleWartaList(message)
		return
	}

	isSuperAdmin := b.isSuperAdmin(message.From)
	if !jamaah.IsPanitia() && !isSuperAdmin {
		b.sendMessage(message.Chat.ID, b.localizer.Get(lang, "panitia_only"), false)
		return
	}
	if text != "" {
		if _, err := b.svc.PostWarta(jamaah, isSuperAdmin, text); err != nil {
			b.log.Error("Failed to save warta", zap.Int64("admin", message.From.ID), zap.Error(err))
			b.sendMessage(message.Chat.ID, b.localizer.Get(lang, "warta_save_error"), false)
			return
		}
	}

	go b.handleBroadcast(ctx, message, text, photoFileID, "private")
}

func (b *Bot) handleWartaList(message *tgbotapi.Message) {
	lang := b.getUserLang(message.From)
	rows, err := b.svc.LatestWarta(wartaListSize)
	if err != nil {
		b.log.Error("Failed to load warta", zap.Error(err))
		b.sendMessage(message.Chat.ID, b.localizer.Get(lang, "error_generic"), false)
		return
	}
	b.sendMessage(message.Chat.ID, renderWartaList(b.localizer, lang, rows, b.cfg.Location), true)
}

func replyPhoto(message *tgbotapi.Message) string {
	if message.ReplyToMessage == nil || len(message.ReplyToMessage.Photo) == 0 {
		return ""
	}
	return message.ReplyToMessage.Photo[len(message.ReplyToMessage.Photo)-1].FileID
}

// handleBroadcast mengirim warta ke semua chat pribadi yang tercatat.
// Bila perintah membalas sebuah foto, foto itu ikut dikirim.
func (b *Bot) handleBroadcast(ctx context.Context, message *tgbotapi.Message, caption, photoFileID, chatType string) {
	lang := b.getUserLang(message.From)
	b.log.Info("Broadcast initiated", zap.Int64("admin", message.From.ID), zap.String("type", chatType))

	chatIDs, err := b.store.GetAllChatsByType(chatType)
	if err != nil {
		b.log.Error("Failed to get chat IDs for broadcast", zap.Error(err))
		b.sendMessage(message.Chat.ID, b.localizer.Get(lang, "broadcast_fetch_error"), false)
		return
	}

	b.sendMessage(message.Chat.ID, b.localizer.Format(lang, "broadcast_started", "count", strconv.Itoa(len(chatIDs))), false)

	successCount, failCount, err := broadcast(ctx, chatIDs, broadcastDelay, func(chatID int64) error {
		if photoFileID != "" {
			photoMsg := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(photoFileID))
			photoMsg.Caption = caption
			photoMsg.ParseMode = tgbotapi.ModeHTML
			_, err := b.api.Send(photoMsg)
			return err
		}
		return b.sendMessage(chatID, caption, true)
	})
	if err != nil {
		b.log.Warn("Broadcast interrupted", zap.Int("success", successCount), zap.Int("failed", failCount), zap.Error(err))
		return
	}

	b.sendMessage(message.Chat.ID, b.localizer.Format(lang, "broadcast_finished",
		"success", strconv.Itoa(successCount),
		"failed", strconv.Itoa(failCount)), false)
	b.log.Info("Broadcast finished", zap.Int("success", successCount), zap.Int("failed", failCount))
}

// broadcast memanggil send untuk tiap chat dengan jeda delay di antaranya.
// Bila ctx selesai, pengiriman berhenti dan ctx.Err() dikembalikan.
func broadcast(ctx context.Context, chatIDs []int64, delay time.Duration, send func(chatID int64) error) (success, failed int, err error) {
	for i, chatID := range chatIDs {
		if i > 0 {
			select {
			case <-ctx.Done():
				return success, failed, ctx.Err()
			case <-time.After(delay):
			}
		} else if err := ctx.Err(); err != nil {
			return success, failed, err
		}

		if err := send(chatID); err != nil {
			failed++
			continue
		}
		success++
	}
	return success, failed, nil
}

func (b *Bot) handleAddKajianCommand(message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	chatID := message.Chat.ID

	row, err := b.svc.AddKajian(jamaah, b.isSuperAdmin(message.From), parseKajianArgs(message.CommandArguments()))
	switch {
	case err == nil:
		b.sendMessage(chatID, b.localizer.Format(lang, "kajian_saved",
			"hari", row.Hari,
			"date", row.Tanggal,
			"pemateri", html.EscapeString(row.Pemateri)), true)
	case errors.Is(err, ErrNotPanitia):
		b.sendMessage(chatID, b.localizer.Get(lang, "panitia_only"), false)
	case errors.Is(err, ErrBadKajian):
		b.sendMessage(chatID, b.localizer.Get(lang, "kajian_usage"), true)
	default:
		b.log.Error("Failed to add kajian", zap.Int64("admin", message.From.ID), zap.Error(err))
		b.sendMessage(chatID, b.localizer.Get(lang, "error_generic"), false)
	}
}

// parseKajianArgs membaca "tanggal | pemateri | tema [| hijriah]".
func parseKajianArgs(args string) KajianInput {
	parts := strings.Split(args, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	var in KajianInput
	fields := []*string{&in.Tanggal, &in.Pemateri, &in.Tema, &in.Hijriah}
	for i, p := range parts {
		if i == len(fields) {
			break
		}
		*fields[i] = p
	}
	return in
}

func (b *Bot) handleAssessCommand(message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	chatID := message.Chat.ID

	args := strings.Fields(message.CommandArguments())
	if len(args) < 3 {
		b.sendMessage(chatID, b.localizer.Get(lang, "assess_usage"), true)
		return
	}
	nilai, err := strconv.Atoi(args[2])
	if err != nil {
		b.sendMessage(chatID, b.localizer.Get(lang, "assess_bad_score"), false)
		return
	}
	catatan := strings.Join(args[3:], " ")

	res, err := b.svc.Assess(jamaah, b.isSuperAdmin(message.From), args[0], strings.ToLower(args[1]), nilai, catatan)
	switch {
	case err == nil:
		b.sendMessage(chatID, renderAssessment(b.localizer, lang, res), true)
	case errors.Is(err, ErrNotPanitia):
		b.sendMessage(chatID, b.localizer.Get(lang, "committee_only"), false)
	case errors.Is(err, ErrBadCategory):
		b.sendMessage(chatID, b.localizer.Format(lang, "assess_bad_category", "categories", strings.Join(db.PenilaianKategori, ", ")), false)
	case errors.Is(err, ErrBadScore):
		b.sendMessage(chatID, b.localizer.Get(lang, "assess_bad_score"), false)
	case errors.Is(err, ErrInvalidQR), errors.Is(err, ErrEmptyQRToken):
		b.sendMessage(chatID, b.localizer.Get(lang, "scan_invalid_qr"), false)
	case errors.Is(err, ErrNotChild):
		b.sendMessage(chatID, b.localizer.Get(lang, "assess_not_child"), false)
	default:
		b.log.Error("Failed to save penilaian", zap.Int64("admin", message.From.ID), zap.Error(err))
		b.sendMessage(chatID, b.localizer.Get(lang, "error_generic"), false)
	}
}

func (b *Bot) handleAddMemberCommand(message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	chatID := message.Chat.ID

	args := strings.Fields(message.CommandArguments())
	if len(args) < 3 {
		b.sendMessage(chatID, b.localizer.Get(lang, "member_add_usage"), true)
		return
	}

	j, err := b.svc.AddMember(jamaah, b.isSuperAdmin(message.From), args[0], args[1], strings.Join(args[2:], " "))
	switch {
	case err == nil:
		b.sendMessage(chatID, b.localizer.Format(lang, "member_added",
			"name", html.EscapeString(j.Nama),
			"role", b.localizer.Get(lang, "role_"+j.Role),
			"token", html.EscapeString(j.QRCodeToken)), true)
	case errors.Is(err, ErrNotPanitia):
		b.sendMessage(chatID, b.localizer.Get(lang, "committee_only"), false)
	case errors.Is(err, ErrBadRole), errors.Is(err, ErrBadGender), errors.Is(err, ErrEmptyName):
		b.sendMessage(chatID, b.localizer.Get(lang, "member_add_usage"), true)
	default:
		b.log.Error("Failed to add jamaah", zap.Int64("admin", message.From.ID), zap.Error(err))
		b.sendMessage(chatID, b.localizer.Get(lang, "error_generic"), false)
	}
}

func (b *Bot) handleRoleCommand(message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	chatID := message.Chat.ID

	args := strings.Fields(message.CommandArguments())
	if len(args) != 2 {
		b.sendMessage(chatID, b.localizer.Format(lang, "role_usage", "roles", strings.Join(db.Roles, ", ")), true)
		return
	}

	target, err := b.svc.ChangeRole(jamaah, b.isSuperAdmin(message.From), args[0], args[1])
	switch {
	case err == nil:
		b.sendMessage(chatID, b.localizer.Format(lang, "role_changed",
			"name", html.EscapeString(target.Nama),
			"role", b.localizer.Get(lang, "role_"+target.Role)), true)
	case errors.Is(err, ErrNotAdmin):
		b.sendMessage(chatID, b.localizer.Get(lang, "admin_only"), false)
	case errors.Is(err, ErrBadRole):
		b.sendMessage(chatID, b.localizer.Format(lang, "role_usage", "roles", strings.Join(db.Roles, ", ")), true)
	case errors.Is(err, ErrInvalidQR), errors.Is(err, ErrEmptyQRToken):
		b.sendMessage(chatID, b.localizer.Get(lang, "scan_invalid_qr"), false)
	default:
		b.log.Error("Failed to change role", zap.Int64("admin", message.From.ID), zap.Error(err))
		b.sendMessage(chatID, b.localizer.Get(lang, "error_generic"), false)
	}
}

func (b *Bot) handleRemoveCommand(message *tgbotapi.Message, jamaah *db.Jamaah) {
	lang := b.getUserLang(message.From)
	chatID := message.Chat.ID

	target, err := b.svc.RemoveMember(jamaah, b.isSuperAdmin(message.From), strings.TrimSpace(message.CommandArguments()))
	switch {
	case err == nil:
		b.sendMessage(chatID, b.localizer.Format(lang, "member_removed", "name", html.EscapeString(target.Nama)), true)
	case errors.Is(err, ErrNotAdmin):
		b.sendMessage(chatID, b.localizer.Get(lang, "admin_only"), false)
	case errors.Is(err, ErrEmptyQRToken):
		b.sendMessage(chatID, b.localizer.Get(lang, "member_remove_usage"), true)
	case errors.Is(err, ErrInvalidQR):
		b.sendMessage(chatID, b.localizer.Get(lang, "scan_invalid_qr"), false)
	case errors.Is(err, ErrSelfRemove):
		b.sendMessage(chatID, b.localizer.Get(lang, "member_remove_self"), false)
	default:
		b.log.Error("Failed to remove jamaah", zap.Int64("admin", message.From.ID), zap.Error(err))
		b.sendMessage(chatID, b.localizer.Get(lang, "error_generic"), false)
	}
}
