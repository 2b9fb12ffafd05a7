package ramadhan

type Badge struct {
	Name      string
	Threshold int
	Icon      string
	Color     string
}

// Katalog lencana, urut naik berdasarkan ambang poin.
var badges = [...]Badge{
	{Name: "Pemula", Threshold: 0, Icon: "🌱", Color: "#94a3b8"},
	{Name: "Pejuang Subuh", Threshold: 200, Icon: "🌅", Color: "#38bdf8"},
	{Name: "Rajin Ibadah", Threshold: 500, Icon: "⭐", Color: "#facc15"},
	{Name: "Sahabat Quran", Threshold: 1000, Icon: "📖", Color: "#34d399"},
	{Name: "Bintang Masjid", Threshold: 1800, Icon: "🕌", Color: "#f59e0b"},
	{Name: "Pendekar Puasa", Threshold: 2800, Icon: "⚔️", Color: "#f87171"},
	{Name: "Super Muslim", Threshold: 4000, Icon: "🦸", Color: "#a78bfa"},
	{Name: "Juara Ramadhan", Threshold: 5500, Icon: "🏆", Color: "#fde047"},
	{Name: "Legenda", Threshold: 7500, Icon: "👑", Color: "#fcd34d"},
}

// Badges mengembalikan salinan katalog.
func Badges() []Badge {
	out := make([]Badge, len(badges))
	copy(out, badges[:])
	return out
}

// BadgeFor mengembalikan lencana tertinggi yang ambangnya <= totalPoints.
// Lencana pertama berambang 0 sehingga selalu menjadi cadangan.
func BadgeFor(totalPoints int) Badge {
	for i := len(badges) - 1; i >= 0; i-- {
		if totalPoints >= badges[i].Threshold {
			return badges[i]
		}
	}
	return badges[0]
}

// NextBadgeFor bernilai false bila semua ambang sudah terlewati.
func NextBadgeFor(totalPoints int) (Badge, bool) {
	for _, b := range badges {
		if totalPoints < b.Threshold {
			return b, true
		}
	}
	return Badge{}, false
}

// BadgeUnlocked mengembalikan lencana yang baru tercapai saat poin naik
// dari before ke after.
func BadgeUnlocked(before, after int) (Badge, bool) {
	prev, next := BadgeFor(before), BadgeFor(after)
	if after > before && next.Threshold > prev.Threshold {
		return next, true
	}
	return Badge{}, false
}
