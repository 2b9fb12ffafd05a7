package ramadhan

import "time"

const (
	PointsPuasa   = 50
	PointsSholat  = 10 // per waktu sholat
	PointsTadarus = 20

	PointsAttendanceSubuh          = 50
	PointsAttendanceTarawih        = 50
	PointsAttendanceKegiatanHarian = 30
)

// JournalEntry adalah checklist ibadah harian seorang jamaah.
type JournalEntry struct {
	Date          time.Time
	Puasa         bool
	SholatSubuh   bool
	SholatZuhur   bool
	SholatAshar   bool
	SholatMaghrib bool
	SholatIsya    bool
	Tadarus       bool
}

func (e JournalEntry) PrayersCompleted() int {
	n := 0
	for _, done := range []bool{e.SholatSubuh, e.SholatZuhur, e.SholatAshar, e.SholatMaghrib, e.SholatIsya} {
		if done {
			n++
		}
	}
	return n
}

type AttendanceLog struct {
	Session   SessionKind
	IsValid   bool
	ScannedAt time.Time
}

// JournalPoints bernilai 0 untuk entry nil.
func JournalPoints(entry *JournalEntry) int {
	if entry == nil {
		return 0
	}

	points := 0
	if entry.Puasa {
		points += PointsPuasa
	}
	if entry.Tadarus {
		points += PointsTadarus
	}
	points += entry.PrayersCompleted() * PointsSholat
	return points
}

func SessionPoints(kind SessionKind) int {
	switch kind {
	case SessionSubuh:
		return PointsAttendanceSubuh
	case SessionTarawih:
		return PointsAttendanceTarawih
	case SessionKegiatanHarian:
		return PointsAttendanceKegiatanHarian
	}
	return 0
}

// AttendancePoints menjumlahkan poin setiap log tanpa deduplikasi per hari.
func AttendancePoints(logs []AttendanceLog) int {
	total := 0
	for _, l := range logs {
		total += SessionPoints(l.Session)
	}
	return total
}

func TotalJournalPoints(entries []JournalEntry) int {
	total := 0
	for i := range entries {
		total += JournalPoints(&entries[i])
	}
	return total
}
