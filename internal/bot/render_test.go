package bot

import (
	"os"
	"strings"
	"testing"
	"time"

	"ramadhan-masjid-bot/internal/db"
	"ramadhan-masjid-bot/internal/i18n"
	"ramadhan-masjid-bot/internal/ramadhan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocalizer(t *testing.T) *i18n.Localizer {
	t.Helper()
	l, err := i18n.New(os.DirFS("../../locales"))
	require.NoError(t, err)
	return l
}

func TestLocalesHaveSameKeys(t *testing.T) {
	l := testLocalizer(t)
	assert.ElementsMatch(t, []string{"en", "id"}, l.Languages())

	// semua kunci dinamis harus ada di kedua bahasa
	keys := []string{"session_none", "session_subuh", "session_tarawih", "session_kegiatan_harian"}
	for _, item := range journalItems {
		keys = append(keys, "journal_item_"+item)
	}
	for _, role := range []string{db.RoleJamaahDewasa, db.RoleJamaahAnak, db.RolePanitia, db.RoleAdminUtama, db.RoleAdminMedia} {
		keys = append(keys, "role_"+role)
	}
	for _, kategori := range db.PenilaianKategori {
		keys = append(keys, "kategori_"+kategori)
	}
	for _, lang := range []string{"id", "en"} {
		for _, key := range keys {
			assert.NotEqual(t, key, l.Get(lang, key), "%s missing in %s", key, lang)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	l := testLocalizer(t)
	next := ramadhan.Badges()[2]
	s := ramadhan.Summary{
		JournalPoints:    210,
		AttendancePoints: 100,
		StreakBonus:      30,
		TotalPoints:      340,
		Streak:           3,
		Milestones:       ramadhan.StreakMilestones(3),
		AttendanceSubuh:  2,
		Badge:            ramadhan.BadgeFor(340),
		NextBadge:        &next,
		PointsToNext:     160,
		Quote:            "Sabar itu indah.",
	}

	text := renderSummary(l, "id", "Ahmad <A>", s)
	assert.Contains(t, text, "Ahmad &lt;A&gt;")
	assert.Contains(t, text, "<b>340</b>")
	assert.Contains(t, text, "Pejuang Subuh")
	assert.Contains(t, text, "Rajin Ibadah")
	assert.Contains(t, text, "<b>160</b>")
	assert.Contains(t, text, "🔥 3 Hari ✅")
	assert.Contains(t, text, "Sabar itu indah.")

	s.NextBadge = nil
	assert.Contains(t, renderSummary(l, "id", "Ahmad", s), l.Get("id", "profile_max_badge"))
}

func TestRenderJournal(t *testing.T) {
	l := testLocalizer(t)
	row := db.JournalRow{UserID: "u", Date: "2026-03-10", Puasa: true, SholatSubuh: true}

	text, kb := renderJournal(l, "id", row)
	assert.Contains(t, text, "2026-03-10")
	assert.Contains(t, text, "<b>60</b>")

	require.Len(t, kb.InlineKeyboard, len(journalItems))
	first := kb.InlineKeyboard[0][0]
	assert.Equal(t, "✅ Puasa", first.Text)
	require.NotNil(t, first.CallbackData)
	assert.Equal(t, "jurnal_toggle_puasa", *first.CallbackData)
	assert.True(t, strings.HasPrefix(kb.InlineKeyboard[6][0].Text, "⬜"))
}

func TestRenderGrid(t *testing.T) {
	start := time.Date(2026, 2, 18, 0, 0, 0, 0, wib)
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, wib)
	grid := ramadhan.RamadhanGrid(start, []time.Time{start}, now)

	out := renderGrid(grid)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "🟩🟥🟨⬜"))
}

func TestRenderHistory(t *testing.T) {
	l := testLocalizer(t)
	when := time.Date(2026, 3, 1, 5, 0, 0, 0, time.UTC)
	v := HistoryView{
		Logs:      []db.AttendanceRow{{UserID: "u", SessionType: "subuh", IsValid: true, ScannedAt: &when}},
		SubuhDays: []time.Time{when},
		Progress:  3,
	}

	text := renderHistory(l, "id", v, 30, wib)
	assert.Contains(t, text, "01 Mar 12:00 — Subuh")
	assert.Contains(t, text, "1/30")
	assert.Contains(t, text, "(3%)")

	empty := renderHistory(l, "id", HistoryView{}, 30, wib)
	assert.Contains(t, empty, l.Get("id", "history_empty"))
}

func TestRenderHistoryTruncates(t *testing.T) {
	l := testLocalizer(t)
	logs := make([]db.AttendanceRow, historyLimit+3)
	for i := range logs {
		logs[i] = db.AttendanceRow{SessionType: "tarawih"}
	}

	text := renderHistory(l, "en", HistoryView{Logs: logs}, 30, wib)
	assert.Equal(t, historyLimit, strings.Count(text, "Tarawih"))
	assert.Contains(t, text, "and 3 more")
}

func TestRenderRecap(t *testing.T) {
	l := testLocalizer(t)
	assert.Equal(t, l.Get("id", "recap_empty"), renderRecap(l, "id", nil))

	rows := []ramadhan.RecapRow{
		{Member: ramadhan.Member{Name: "Budi"}, Subuh: 2, Tarawih: 1, Total: 3},
	}
	text := renderRecap(l, "id", rows)
	assert.Contains(t, text, "1. Budi - S:2 T:1 H:0 = <b>3</b>")
}

func TestRenderLeaderboard(t *testing.T) {
	l := testLocalizer(t)
	assert.Equal(t, l.Get("en", "leaderboard_empty"), renderLeaderboard(l, "en", nil))

	var standings []ramadhan.Standing
	for i, name := range []string{"A", "B", "C", "D"} {
		points := 400 - i*100
		standings = append(standings, ramadhan.Standing{
			Member:  ramadhan.Member{Name: name},
			Summary: ramadhan.Summary{TotalPoints: points, Badge: ramadhan.BadgeFor(points)},
		})
	}

	text := renderLeaderboard(l, "id", standings)
	assert.Contains(t, text, "🥇")
	assert.Contains(t, text, "🥉")
	assert.Contains(t, text, "4. ")
	assert.Less(t, strings.Index(text, " A "), strings.Index(text, " B "))
}

func TestRenderScan(t *testing.T) {
	l := testLocalizer(t)
	target := &db.Jamaah{Nama: "Ahmad"}

	ok := renderScan(l, "id", ScanResult{Target: target, Session: ramadhan.SessionSubuh, Within: true, HasLocation: true})
	assert.Contains(t, ok, "Subuh")
	assert.Contains(t, ok, "+50")
	assert.NotContains(t, ok, "⚠️")

	demo := renderScan(l, "id", ScanResult{Target: target, Within: true, HasLocation: true})
	assert.Equal(t, l.Format("id", "scan_demo_session", "name", "Ahmad"), demo)

	outside := renderScan(l, "en", ScanResult{Target: target, Session: ramadhan.SessionTarawih, Distance: 1520})
	assert.Contains(t, outside, "1.5 km")
	assert.Contains(t, outside, l.Get("en", "scan_no_location"))
}

func TestRenderSession(t *testing.T) {
	l := testLocalizer(t)
	assert.Equal(t, l.Get("id", "session_closed"), renderSession(l, "id", ramadhan.SessionNone))
	assert.Contains(t, renderSession(l, "id", ramadhan.SessionKegiatanHarian), "Kegiatan Harian")
	assert.Contains(t, renderSession(l, "id", ramadhan.SessionKegiatanHarian), "30 poin")
}

func TestFormatMeters(t *testing.T) {
	assert.Equal(t, "85 m", formatMeters(85.2))
	assert.Equal(t, "12.3 km", formatMeters(12345))
}

func TestRenderBadgeList(t *testing.T) {
	l := testLocalizer(t)
	text := renderBadgeList(l, "id")
	for _, b := range ramadhan.Badges() {
		assert.Contains(t, text, b.Name)
	}
	assert.Contains(t, renderBadgeUnlocked(l, "id", "Ahmad", ramadhan.Badges()[1]), "Pejuang Subuh")
}

func TestHelpTopics(t *testing.T) {
	l := testLocalizer(t)

	kb := createHelpKeyboard(l, "id")
	var data []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			require.NotNil(t, btn.CallbackData)
			assert.NotEqual(t, "help_button_"+strings.TrimPrefix(*btn.CallbackData, "help_"), btn.Text)
			data = append(data, *btn.CallbackData)
		}
	}
	assert.Equal(t, []string{"help_how_to_use", "help_commands", "help_scoring", "help_badges"}, data)

	for _, lang := range []string{"id", "en"} {
		for _, d := range data {
			text, back := renderHelpTopic(l, lang, d)
			assert.NotContains(t, text, "help_text_", "%s/%s", lang, d)
			require.Len(t, back.InlineKeyboard, 1)
			assert.Equal(t, "help_back", *back.InlineKeyboard[0][0].CallbackData)
		}
	}

	text, menu := renderHelpTopic(l, "id", "help_back")
	assert.Equal(t, l.Get("id", "help_main_title"), text)
	assert.Len(t, menu.InlineKeyboard, 2)
}

func TestRenderKajian(t *testing.T) {
	l := testLocalizer(t)
	assert.Equal(t, l.Get("id", "kajian_empty"), renderKajian(l, "id", nil, "2026-03-10"))

	rows := []db.KajianRow{
		{Tanggal: "2026-03-08", Hari: "Minggu", Pemateri: "Ust. A", Tema: "Ikhlas"},
		{Tanggal: "2026-03-10", Hari: "Selasa", Pemateri: "Ust. B", Tema: "Sabar & Syukur", Hijriah: "20 Ramadhan 1447"},
		{Tanggal: "2026-03-12", Hari: "Kamis", Pemateri: "Ust. C", Tema: "Zakat"},
	}
	text := renderKajian(l, "id", rows, "2026-03-10")
	assert.Contains(t, text, "☑️ <b>Minggu, 2026-03-08</b>")
	assert.Contains(t, text, "🟢 <b>Selasa, 2026-03-10</b> (20 Ramadhan 1447)")
	assert.Contains(t, text, "🗓 <b>Kamis, 2026-03-12</b>")
	assert.Contains(t, text, "Sabar &amp; Syukur")
}

func TestRenderWartaList(t *testing.T) {
	l := testLocalizer(t)
	assert.Equal(t, l.Get("en", "warta_empty"), renderWartaList(l, "en", nil, wib))

	when := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)
	rows := []db.WartaRow{
		{Title: "Buka <bersama>", Content: strings.Repeat("a", wartaPreviewRunes+10), CreatedAt: &when, Author: &db.WartaAuthor{Nama: "Media"}},
		{Title: "Takbiran", Content: "Takbiran"},
	}
	text := renderWartaList(l, "id", rows, wib)
	assert.Contains(t, text, "Buka &lt;bersama&gt;")
	assert.Contains(t, text, "10 Mar 2026 - Media")
	assert.Contains(t, text, strings.Repeat("a", wartaPreviewRunes)+"…")
	assert.Contains(t, text, l.Get("id", "role_panitia"))
}

func TestRenderAssessment(t *testing.T) {
	l := testLocalizer(t)
	res := AssessResult{
		Target: &db.Jamaah{Nama: "Budi"},
		Row:    &db.PenilaianRow{Kategori: "hafalan", Nilai: 3},
	}
	text := renderAssessment(l, "id", res)
	assert.Contains(t, text, "Budi")
	assert.Contains(t, text, "Hafalan ⭐⭐⭐")
}
