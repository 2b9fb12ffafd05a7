package ramadhan

import "time"

type SessionKind string

const (
	SessionNone           SessionKind = ""
	SessionSubuh          SessionKind = "subuh"
	SessionKegiatanHarian SessionKind = "kegiatan_harian"
	SessionTarawih        SessionKind = "tarawih"
)

// Jendela sesi (jam lokal, [mulai, selesai)). Sengaja dilebarkan untuk uji coba.
const (
	SubuhStartHour          = 4
	SubuhEndHour            = 7
	KegiatanHarianStartHour = 15
	KegiatanHarianEndHour   = 19
	TarawihStartHour        = 19
	TarawihEndHour          = 23
)

// ClassifySession menentukan sesi absensi yang sedang aktif berdasarkan jam
// dari now. Konversi zona waktu menjadi tanggung jawab pemanggil.
func ClassifySession(now time.Time) SessionKind {
	hour := now.Hour()

	switch {
	case hour >= SubuhStartHour && hour < SubuhEndHour:
		return SessionSubuh
	case hour >= KegiatanHarianStartHour && hour < KegiatanHarianEndHour:
		return SessionKegiatanHarian
	case hour >= TarawihStartHour && hour < TarawihEndHour:
		return SessionTarawih
	}
	return SessionNone
}

// ParseSessionKind mengembalikan SessionNone untuk nilai di luar tiga jenis
// sesi yang dikenal.
func ParseSessionKind(s string) SessionKind {
	switch k := SessionKind(s); k {
	case SessionSubuh, SessionKegiatanHarian, SessionTarawih:
		return k
	}
	return SessionNone
}

func (k SessionKind) Valid() bool {
	return ParseSessionKind(string(k)) != SessionNone
}

func (k SessionKind) String() string {
	if k == SessionNone {
		return "none"
	}
	return string(k)
}
