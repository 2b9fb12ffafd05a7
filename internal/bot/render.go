package bot

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"ramadhan-masjid-bot/internal/db"
	"ramadhan-masjid-bot/internal/i18n"
	"ramadhan-masjid-bot/internal/ramadhan"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const journalTogglePrefix = "jurnal_toggle_"

var rankEmojis = []string{"🥇", "🥈", "🥉"}

func sessionLabel(l *i18n.Localizer, lang string, kind ramadhan.SessionKind) string {
	return l.Get(lang, "session_"+kind.String())
}

func renderSummary(l *i18n.Localizer, lang, name string, s ramadhan.Summary) string {
	var b strings.Builder
	b.WriteString(l.Get(lang, "profile_title"))
	b.WriteString("\n")
	b.WriteString(l.Format(lang, "profile_name", "name", html.EscapeString(name)))
	b.WriteString("\n\n")
	b.WriteString(l.Format(lang, "profile_points",
		"total", strconv.Itoa(s.TotalPoints),
		"journal", strconv.Itoa(s.JournalPoints),
		"attendance", strconv.Itoa(s.AttendancePoints),
		"bonus", strconv.Itoa(s.StreakBonus)))
	b.WriteString("\n")
	b.WriteString(l.Format(lang, "profile_attendance",
		"subuh", strconv.Itoa(s.AttendanceSubuh),
		"tarawih", strconv.Itoa(s.AttendanceTarawih),
		"harian", strconv.Itoa(s.AttendanceHarian)))
	b.WriteString("\n")
	b.WriteString(l.Format(lang, "profile_streak", "streak", strconv.Itoa(s.Streak)))
	b.WriteString("\n")
	b.WriteString(renderMilestones(s.Milestones))
	b.WriteString("\n\n")
	b.WriteString(l.Format(lang, "profile_badge", "icon", s.Badge.Icon, "badge", s.Badge.Name))
	b.WriteString("\n")
	if s.NextBadge != nil {
		b.WriteString(l.Format(lang, "profile_next_badge",
			"icon", s.NextBadge.Icon,
			"badge", s.NextBadge.Name,
			"remaining", strconv.Itoa(s.PointsToNext)))
	} else {
		b.WriteString(l.Get(lang, "profile_max_badge"))
	}
	b.WriteString("\n\n")
	b.WriteString(l.Format(lang, "profile_quote", "quote", s.Quote))
	return b.String()
}

func renderMilestones(ms []ramadhan.Milestone) string {
	parts := make([]string, 0, len(ms))
	for _, m := range ms {
		mark := "▫️"
		if m.Reached {
			mark = "✅"
		}
		parts = append(parts, fmt.Sprintf("%s %s %s", m.Emoji, m.Label, mark))
	}
	return strings.Join(parts, " | ")
}

func renderJournal(l *i18n.Localizer, lang string, row db.JournalRow) (string, tgbotapi.InlineKeyboardMarkup) {
	text := l.Format(lang, "journal_title", "date", row.Date) + "\n" +
		l.Format(lang, "journal_points", "points", strconv.Itoa(journalRowPoints(row))) + "\n\n" +
		l.Get(lang, "journal_instruction")

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range journalItems {
		mark := "⬜"
		if JournalItemValue(row, item) {
			mark = "✅"
		}
		label := mark + " " + l.Get(lang, "journal_item_"+item)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, journalTogglePrefix+item),
		))
	}
	return text, tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func journalRowPoints(row db.JournalRow) int {
	return ramadhan.JournalPoints(&ramadhan.JournalEntry{
		Puasa:         row.Puasa,
		SholatSubuh:   row.SholatSubuh,
		SholatZuhur:   row.SholatZuhur,
		SholatAshar:   row.SholatAshar,
		SholatMaghrib: row.SholatMaghrib,
		SholatIsya:    row.SholatIsya,
		Tadarus:       row.Tadarus,
	})
}

const historyLimit = 10

func renderHistory(l *i18n.Localizer, lang string, v HistoryView, target int, loc *time.Location) string {
	var b strings.Builder
	b.WriteString(l.Get(lang, "history_title"))
	b.WriteString("\n\n")

	if len(v.Logs) == 0 {
		b.WriteString(l.Get(lang, "history_empty"))
		b.WriteString("\n")
	}
	for i, row := range v.Logs {
		if i == historyLimit {
			b.WriteString(l.Format(lang, "history_more", "count", strconv.Itoa(len(v.Logs)-historyLimit)))
			b.WriteString("\n")
			break
		}
		when := "-"
		if row.ScannedAt != nil {
			when = row.ScannedAt.In(loc).Format("02 Jan 15:04")
		}
		kind := ramadhan.ParseSessionKind(row.SessionType)
		b.WriteString(fmt.Sprintf("• %s — %s\n", when, sessionLabel(l, lang, kind)))
	}

	b.WriteString("\n")
	b.WriteString(l.Format(lang, "history_progress",
		"count", strconv.Itoa(len(v.SubuhDays)),
		"target", strconv.Itoa(target),
		"percent", strconv.Itoa(v.Progress)))
	b.WriteString("\n")
	b.WriteString(renderGrid(v.Grid))
	return b.String()
}

// renderGrid menggambar kalender Ramadhan, sepuluh hari per baris.
func renderGrid(grid []ramadhan.GridDay) string {
	var b strings.Builder
	for i, d := range grid {
		switch {
		case d.Present:
			b.WriteString("🟩")
		case d.Today:
			b.WriteString("🟨")
		case d.Past:
			b.WriteString("🟥")
		default:
			b.WriteString("⬜")
		}
		if (i+1)%10 == 0 && i+1 < len(grid) {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderRecap(l *i18n.Localizer, lang string, rows []ramadhan.RecapRow) string {
	if len(rows) == 0 {
		return l.Get(lang, "recap_empty")
	}
	var b strings.Builder
	b.WriteString(l.Format(lang, "recap_title", "count", strconv.Itoa(len(rows))))
	b.WriteString("\n\n")
	for i, r := range rows {
		b.WriteString(l.Format(lang, "recap_entry",
			"rank", strconv.Itoa(i+1),
			"name", html.EscapeString(r.Name),
			"subuh", strconv.Itoa(r.Subuh),
			"tarawih", strconv.Itoa(r.Tarawih),
			"harian", strconv.Itoa(r.Harian),
			"total", strconv.Itoa(r.Total)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderLeaderboard(l *i18n.Localizer, lang string, standings []ramadhan.Standing) string {
	if len(standings) == 0 {
		return l.Get(lang, "leaderboard_empty")
	}
	var b strings.Builder
	b.WriteString(l.Get(lang, "leaderboard_title"))
	for i, s := range standings {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(rankEmojis) {
			rank = rankEmojis[i]
		}
		b.WriteString(l.Format(lang, "leaderboard_entry",
			"rank_emoji", rank,
			"name", s.Summary.Badge.Icon+" "+html.EscapeString(s.Name),
			"points", strconv.Itoa(s.Summary.TotalPoints)))
	}
	return b.String()
}

func renderScan(l *i18n.Localizer, lang string, res ScanResult) string {
	var b strings.Builder
	if res.Session == ramadhan.SessionNone {
		b.WriteString(l.Format(lang, "scan_demo_session", "name", html.EscapeString(res.Target.Nama)))
	} else {
		b.WriteString(l.Format(lang, "scan_success",
			"name", html.EscapeString(res.Target.Nama),
			"session", sessionLabel(l, lang, res.Session),
			"points", strconv.Itoa(ramadhan.SessionPoints(res.Session))))
	}
	if !res.Within {
		b.WriteString("\n")
		b.WriteString(l.Format(lang, "scan_outside_geofence", "distance", formatMeters(res.Distance)))
	}
	if !res.HasLocation {
		b.WriteString("\n")
		b.WriteString(l.Get(lang, "scan_no_location"))
	}
	return b.String()
}

func renderSession(l *i18n.Localizer, lang string, kind ramadhan.SessionKind) string {
	if kind == ramadhan.SessionNone {
		return l.Get(lang, "session_closed")
	}
	return l.Format(lang, "session_open",
		"session", sessionLabel(l, lang, kind),
		"points", strconv.Itoa(ramadhan.SessionPoints(kind)))
}

func formatMeters(m float64) string {
	if m >= 1000 {
		return fmt.Sprintf("%.1f km", m/1000)
	}
	return fmt.Sprintf("%.0f m", m)
}

const wartaPreviewRunes = 280

func renderKajian(l *i18n.Localizer, lang string, rows []db.KajianRow, today string) string {
	if len(rows) == 0 {
		return l.Get(lang, "kajian_empty")
	}
	var b strings.Builder
	b.WriteString(l.Get(lang, "kajian_title"))
	for _, k := range rows {
		mark := "🗓"
		switch {
		case k.Tanggal == today:
			mark = "🟢"
		case k.Tanggal < today:
			mark = "☑️"
		}
		hijriah := ""
		if k.Hijriah != "" {
			hijriah = " (" + html.EscapeString(k.Hijriah) + ")"
		}
		b.WriteString("\n\n")
		b.WriteString(l.Format(lang, "kajian_entry",
			"mark", mark,
			"hari", html.EscapeString(k.Hari),
			"date", k.Tanggal,
			"hijriah", hijriah,
			"pemateri", html.EscapeString(k.Pemateri),
			"tema", html.EscapeString(k.Tema)))
	}
	return b.String()
}

func renderWartaList(l *i18n.Localizer, lang string, rows []db.WartaRow, loc *time.Location) string {
	if len(rows) == 0 {
		return l.Get(lang, "warta_empty")
	}
	var b strings.Builder
	b.WriteString(l.Get(lang, "warta_title"))
	for _, w := range rows {
		date := ""
		if w.CreatedAt != nil {
			date = w.CreatedAt.In(loc).Format("02 Jan 2006")
		}
		author := l.Get(lang, "role_panitia")
		if w.Author != nil && w.Author.Nama != "" {
			author = w.Author.Nama
		}
		b.WriteString("\n\n")
		b.WriteString(l.Format(lang, "warta_entry",
			"title", html.EscapeString(w.Title),
			"date", date,
			"author", html.EscapeString(author),
			"content", html.EscapeString(truncateRunes(w.Content, wartaPreviewRunes))))
	}
	return b.String()
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

func renderAssessment(l *i18n.Localizer, lang string, res AssessResult) string {
	return l.Format(lang, "assess_saved",
		"name", html.EscapeString(res.Target.Nama),
		"kategori", l.Get(lang, "kategori_"+res.Row.Kategori),
		"stars", strings.Repeat("⭐", res.Row.Nilai))
}
