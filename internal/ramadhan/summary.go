package ramadhan

import (
	"sort"
	"time"
)

// Summary adalah ringkasan gamifikasi seorang jamaah untuk ditampilkan.
type Summary struct {
	JournalPoints    int
	AttendancePoints int
	StreakBonus      int
	TotalPoints      int

	Streak     int
	Milestones []Milestone

	AttendanceSubuh   int
	AttendanceTarawih int
	AttendanceHarian  int

	Badge           Badge
	NextBadge       *Badge
	PointsToNext    int
	Quote           string
	JournalsCounted int
}

func Summarize(entries []JournalEntry, logs []AttendanceLog, now time.Time) Summary {
	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		dates = append(dates, e.Date)
	}

	s := Summary{
		JournalPoints:    TotalJournalPoints(entries),
		AttendancePoints: AttendancePoints(logs),
		Streak:           Streak(dates, now),
		Quote:            DailyQuote(now),
		JournalsCounted:  len(entries),
	}
	s.StreakBonus = StreakBonus(s.Streak)
	s.Milestones = StreakMilestones(s.Streak)
	s.TotalPoints = s.JournalPoints + s.AttendancePoints + s.StreakBonus

	for _, l := range logs {
		switch l.Session {
		case SessionSubuh:
			s.AttendanceSubuh++
		case SessionTarawih:
			s.AttendanceTarawih++
		case SessionKegiatanHarian:
			s.AttendanceHarian++
		}
	}

	s.Badge = BadgeFor(s.TotalPoints)
	if next, ok := NextBadgeFor(s.TotalPoints); ok {
		s.NextBadge = &next
		s.PointsToNext = next.Threshold - s.TotalPoints
	}
	return s
}

// PresenceDays mengembalikan tanggal unik (di loc, urut naik) yang punya log
// sah untuk sesi kind. Berbeda dari AttendancePoints, scan berulang pada hari
// yang sama dihitung sekali.
func PresenceDays(logs []AttendanceLog, kind SessionKind, loc *time.Location) []time.Time {
	seen := make(map[int64]struct{})
	var days []time.Time
	for _, l := range logs {
		if !l.IsValid || l.Session != kind {
			continue
		}
		n := dayNumber(l.ScannedAt, loc)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		y, m, d := l.ScannedAt.In(loc).Date()
		days = append(days, time.Date(y, m, d, 0, 0, 0, 0, loc))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

const RamadhanDays = 30

type GridDay struct {
	Day     int
	Date    time.Time
	Present bool
	Past    bool
	Today   bool
}

// RamadhanGrid menyusun kalender kehadiran 30 hari mulai dari start.
func RamadhanGrid(start time.Time, presentDays []time.Time, now time.Time) []GridDay {
	loc := now.Location()
	present := make(map[int64]struct{}, len(presentDays))
	for _, d := range presentDays {
		present[dayNumber(d, loc)] = struct{}{}
	}
	today := dayNumber(now, loc)

	y, m, d := start.In(loc).Date()
	grid := make([]GridDay, RamadhanDays)
	for i := range grid {
		date := time.Date(y, m, d+i, 0, 0, 0, 0, loc)
		n := dayNumber(date, loc)
		_, ok := present[n]
		grid[i] = GridDay{
			Day:     i + 1,
			Date:    date,
			Present: ok,
			Past:    n < today,
			Today:   n == today,
		}
	}
	return grid
}

func ProgressPercent(count, target int) int {
	if target <= 0 {
		return 100
	}
	p := count * 100 / target
	if p > 100 {
		return 100
	}
	return p
}

type Member struct {
	UserID string
	Name   string
	Role   string
}

type MemberLog struct {
	UserID string
	Log    AttendanceLog
}

type MemberJournal struct {
	UserID string
	Entry  JournalEntry
}

type RecapRow struct {
	Member
	Subuh   int
	Tarawih int
	Harian  int
	Total   int
}

// Recap menghitung rekap kehadiran per jamaah, urut dari total terbanyak.
// Log milik user yang tidak ada di members diabaikan.
func Recap(members []Member, logs []MemberLog) []RecapRow {
	index := make(map[string]int, len(members))
	rows := make([]RecapRow, len(members))
	for i, m := range members {
		rows[i] = RecapRow{Member: m}
		index[m.UserID] = i
	}

	for _, l := range logs {
		i, ok := index[l.UserID]
		if !ok {
			continue
		}
		switch l.Log.Session {
		case SessionSubuh:
			rows[i].Subuh++
		case SessionTarawih:
			rows[i].Tarawih++
		case SessionKegiatanHarian:
			rows[i].Harian++
		default:
			continue
		}
		rows[i].Total++
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

type Standing struct {
	Member
	Summary Summary
}

// Leaderboard mengurutkan anggota menurut total poin. limit <= 0 berarti tanpa batas.
func Leaderboard(members []Member, journals []MemberJournal, logs []MemberLog, now time.Time, limit int) []Standing {
	entriesByUser := make(map[string][]JournalEntry)
	for _, j := range journals {
		entriesByUser[j.UserID] = append(entriesByUser[j.UserID], j.Entry)
	}
	logsByUser := make(map[string][]AttendanceLog)
	for _, l := range logs {
		logsByUser[l.UserID] = append(logsByUser[l.UserID], l.Log)
	}

	standings := make([]Standing, 0, len(members))
	for _, m := range members {
		standings = append(standings, Standing{
			Member:  m,
			Summary: Summarize(entriesByUser[m.UserID], logsByUser[m.UserID], now),
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Summary.TotalPoints != standings[j].Summary.TotalPoints {
			return standings[i].Summary.TotalPoints > standings[j].Summary.TotalPoints
		}
		return standings[i].Name < standings[j].Name
	})
	if limit > 0 && len(standings) > limit {
		standings = standings[:limit]
	}
	return standings
}
