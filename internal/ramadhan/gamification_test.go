package ramadhan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*3600)

func day(now time.Time, offset int) time.Time {
	return now.AddDate(0, 0, offset)
}

func TestJournalPoints(t *testing.T) {
	assert.Equal(t, 0, JournalPoints(nil))
	assert.Equal(t, 0, JournalPoints(&JournalEntry{}))

	all := &JournalEntry{
		Puasa:         true,
		SholatSubuh:   true,
		SholatZuhur:   true,
		SholatAshar:   true,
		SholatMaghrib: true,
		SholatIsya:    true,
		Tadarus:       true,
	}
	assert.Equal(t, 120, JournalPoints(all))
	assert.Equal(t, 70, JournalPoints(&JournalEntry{Puasa: true, Tadarus: true}))
	assert.Equal(t, 30, JournalPoints(&JournalEntry{SholatSubuh: true, SholatMaghrib: true, SholatIsya: true}))
}

func TestAttendancePoints(t *testing.T) {
	assert.Equal(t, 0, AttendancePoints(nil))

	logs := []AttendanceLog{
		{Session: SessionSubuh},
		{Session: SessionSubuh},
		{Session: SessionTarawih},
		{Session: SessionKegiatanHarian},
	}
	assert.Equal(t, 180, AttendancePoints(logs))

	reversed := []AttendanceLog{logs[3], logs[2], logs[1], logs[0]}
	assert.Equal(t, AttendancePoints(logs), AttendancePoints(reversed))

	assert.Equal(t, 50, AttendancePoints([]AttendanceLog{{Session: SessionSubuh}, {Session: "demo_session"}}))
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, wib)

	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"empty", nil, 0},
		{"today only", []time.Time{now}, 1},
		{"yesterday only", []time.Time{day(now, -1)}, 1},
		{"two days ago only", []time.Time{day(now, -2)}, 0},
		{"three consecutive", []time.Time{now, day(now, -1), day(now, -2)}, 3},
		{"unsorted input", []time.Time{day(now, -2), now, day(now, -1)}, 3},
		{"gap after first", []time.Time{now, day(now, -3)}, 1},
		{"gap in the middle", []time.Time{now, day(now, -1), day(now, -3), day(now, -4)}, 2},
		{"run ending yesterday", []time.Time{day(now, -1), day(now, -2), day(now, -3)}, 3},
		{"duplicates", []time.Time{now, now.Add(-2 * time.Hour), day(now, -1), day(now, -1)}, 2},
		{"future entry breaks streak", []time.Time{day(now, 1), now}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.dates, now))
		})
	}
}

func TestStreakUsesCalendarDayOfNow(t *testing.T) {
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, wib)
	// 2026-03-09 20:00 UTC sudah 2026-03-10 di WIB.
	entry := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)
	previous := time.Date(2026, 3, 9, 0, 0, 0, 0, wib)

	assert.Equal(t, 2, Streak([]time.Time{entry, previous}, now))
}

func TestStreakBonus(t *testing.T) {
	tests := map[int]int{
		0: 0, 2: 0, 3: 30, 6: 30, 7: 100, 13: 100, 14: 250,
		20: 250, 21: 500, 29: 500, 30: 1000, 45: 1000,
	}
	for streak, want := range tests {
		assert.Equal(t, want, StreakBonus(streak), "streak %d", streak)
	}
}

func TestStreakMilestones(t *testing.T) {
	none := StreakMilestones(0)
	require.Len(t, none, 5)
	for _, m := range none {
		assert.False(t, m.Reached)
	}

	got := StreakMilestones(14)
	require.Len(t, got, 5)
	assert.Equal(t, []int{3, 7, 14, 21, 30}, []int{got[0].Days, got[1].Days, got[2].Days, got[3].Days, got[4].Days})
	assert.Equal(t, []bool{true, true, true, false, false},
		[]bool{got[0].Reached, got[1].Reached, got[2].Reached, got[3].Reached, got[4].Reached})
	assert.Equal(t, "Full!", got[4].Label)

	for _, m := range StreakMilestones(30) {
		assert.True(t, m.Reached)
	}
}

func TestBadgeCatalogue(t *testing.T) {
	all := Badges()
	require.Len(t, all, 9)
	assert.Equal(t, 0, all[0].Threshold)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i].Threshold, all[i-1].Threshold)
	}

	all[0].Name = "changed"
	assert.Equal(t, "Pemula", Badges()[0].Name)
}

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{-10, "Pemula"},
		{0, "Pemula"},
		{199, "Pemula"},
		{200, "Pejuang Subuh"},
		{499, "Pejuang Subuh"},
		{500, "Rajin Ibadah"},
		{1800, "Bintang Masjid"},
		{7499, "Juara Ramadhan"},
		{7500, "Legenda"},
		{100000, "Legenda"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BadgeFor(tt.points).Name, "points %d", tt.points)
	}
}

func TestNextBadgeFor(t *testing.T) {
	next, ok := NextBadgeFor(0)
	require.True(t, ok)
	assert.Equal(t, "Pejuang Subuh", next.Name)

	next, ok = NextBadgeFor(200)
	require.True(t, ok)
	assert.Equal(t, "Rajin Ibadah", next.Name)

	next, ok = NextBadgeFor(7499)
	require.True(t, ok)
	assert.Equal(t, "Legenda", next.Name)

	_, ok = NextBadgeFor(7500)
	assert.False(t, ok)
	_, ok = NextBadgeFor(9000)
	assert.False(t, ok)
}

func TestBadgeUnlocked(t *testing.T) {
	b, ok := BadgeUnlocked(190, 210)
	require.True(t, ok)
	assert.Equal(t, "Pejuang Subuh", b.Name)

	_, ok = BadgeUnlocked(210, 260)
	assert.False(t, ok)
	_, ok = BadgeUnlocked(210, 190)
	assert.False(t, ok)
}

func TestDailyQuote(t *testing.T) {
	morning := time.Date(2026, 3, 5, 4, 0, 0, 0, wib)
	evening := time.Date(2026, 3, 5, 22, 0, 0, 0, wib)
	assert.Equal(t, DailyQuote(morning), DailyQuote(evening))
	assert.Equal(t, DailyQuote(morning), DailyQuote(morning))
	assert.Equal(t, DailyQuote(morning), DailyQuote(time.Date(2031, 8, 5, 12, 0, 0, 0, wib)))

	seen := make(map[string]int)
	for d := 1; d <= 30; d++ {
		q := DailyQuote(time.Date(2026, 3, d, 12, 0, 0, 0, wib))
		if prev, ok := seen[q]; ok {
			t.Fatalf("day %d repeats quote of day %d", d, prev)
		}
		seen[q] = d
	}

	// periode = panjang daftar: tanggal 31 kembali ke kutipan tanggal 1
	assert.Len(t, Quotes(), 30)
	assert.Equal(t,
		DailyQuote(time.Date(2026, 3, 1, 0, 0, 0, 0, wib)),
		DailyQuote(time.Date(2026, 3, 31, 0, 0, 0, 0, wib)))
}
