package bot

import (
	"html"
	"strconv"
	"strings"

	"ramadhan-masjid-bot/internal/i18n"
	"ramadhan-masjid-bot/internal/ramadhan"
)

// announceBadge mengirim ucapan selamat saat lencana baru terbuka.
func (b *Bot) announceBadge(chatID int64, name string, badge ramadhan.Badge, lang string) {
	b.sendMessage(chatID, renderBadgeUnlocked(b.localizer, lang, name, badge), true)
}

func renderBadgeUnlocked(l *i18n.Localizer, lang, name string, badge ramadhan.Badge) string {
	return l.Format(lang, "badge_unlocked",
		"name", html.EscapeString(name),
		"icon", badge.Icon,
		"badge", badge.Name,
		"threshold", strconv.Itoa(badge.Threshold))
}

func renderBadgeList(l *i18n.Localizer, lang string) string {
	var sb strings.Builder
	sb.WriteString(l.Get(lang, "badge_list_title"))
	sb.WriteString("\n\n")
	for _, badge := range ramadhan.Badges() {
		sb.WriteString(l.Format(lang, "badge_list_entry",
			"icon", badge.Icon,
			"badge", badge.Name,
			"threshold", strconv.Itoa(badge.Threshold)))
		sb.WriteString("\n")
	}
	return sb.String()
}
