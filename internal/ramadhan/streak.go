package ramadhan

import (
	"sort"
	"time"
)

const (
	StreakBonus3  = 30
	StreakBonus7  = 100
	StreakBonus14 = 250
	StreakBonus21 = 500
	StreakBonus30 = 1000
)

type Milestone struct {
	Days    int
	Label   string
	Emoji   string
	Reached bool
}

var milestones = [...]Milestone{
	{Days: 3, Label: "3 Hari", Emoji: "🔥"},
	{Days: 7, Label: "7 Hari", Emoji: "💪"},
	{Days: 14, Label: "14 Hari", Emoji: "🌟"},
	{Days: 21, Label: "21 Hari", Emoji: "🚀"},
	{Days: 30, Label: "Full!", Emoji: "👑"},
}

// dayNumber memetakan waktu ke nomor hari di loc. Dua waktu pada tanggal
// lokal yang sama mendapat nomor yang sama; hari bersebelahan selisih 1.
func dayNumber(t time.Time, loc *time.Location) int64 {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// Streak menghitung jumlah hari berturut-turut yang memiliki jurnal,
// dihitung mundur dari hari ini atau kemarin (menurut lokasi now).
func Streak(journalDates []time.Time, now time.Time) int {
	if len(journalDates) == 0 {
		return 0
	}

	loc := now.Location()
	seen := make(map[int64]struct{}, len(journalDates))
	days := make([]int64, 0, len(journalDates))
	for _, d := range journalDates {
		n := dayNumber(d, loc)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		days = append(days, n)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })

	today := dayNumber(now, loc)
	if days[0] != today && days[0] != today-1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1]-days[i] != 1 {
			break
		}
		streak++
	}
	return streak
}

func StreakBonus(streak int) int {
	switch {
	case streak >= 30:
		return StreakBonus30
	case streak >= 21:
		return StreakBonus21
	case streak >= 14:
		return StreakBonus14
	case streak >= 7:
		return StreakBonus7
	case streak >= 3:
		return StreakBonus3
	}
	return 0
}

// StreakMilestones selalu mengembalikan semua milestone; Reached menandai yang tercapai.
func StreakMilestones(streak int) []Milestone {
	out := make([]Milestone, len(milestones))
	for i, m := range milestones {
		m.Reached = streak >= m.Days
		out[i] = m
	}
	return out
}
