package ramadhan

import "time"

var quotes = [...]string{
	"Puasa itu perisai dari api neraka. Semangat ya! 🛡️",
	"Sholat adalah tiang agama. Jangan lupa sholat 5 waktu! 🕌",
	"Senyummu kepada saudaramu adalah sedekah 😊",
	"Barangsiapa berpuasa Ramadhan karena iman, diampuni dosanya ✨",
	"Makan sahur itu ada keberkahannya 🍚",
	"Sebaik-baik kalian adalah yang mempelajari Al-Quran 📖",
	"Kebersihan itu sebagian dari iman 🧹",
	"Allah bersama orang-orang yang sabar 💪",
	"Doa orang yang berpuasa tidak akan ditolak 🤲",
	"Berbuat baik kepada tetangga itu sunnah 🏘️",
	"Sedekah tidak mengurangi harta 💰",
	"Bacalah Quran, ia akan menjadi syafaat bagimu 📿",
	"Saling memaafkan itu indah 🤝",
	"Orang kuat bukan yang menang gulat, tapi yang menahan marah 🧘",
	"Tarawih berjamaah pahalanya berlipat! 🌙",
	"Niatkan semua amalan karena Allah 💎",
	"Bersyukurlah, niscaya Aku tambah nikmat-Ku 🙏",
	"Jaga lisan dari kata-kata yang buruk 🤫",
	"Setiap kebaikan kecil tetap dihitung Allah ⚖️",
	"Tahajud adalah sholat paling utama setelah wajib 🌃",
	"Berbagi makanan berbuka itu pahala besar! 🥤",
	"Istiqomah lebih baik dari seribu karamah 📈",
	"Jadilah anak sholeh/sholehah, doakan orangtua 💝",
	"Sampaikanlah dariku walau satu ayat 🌍",
	"Orang beriman itu ramah dan mudah senyum 😄",
	"Puasa melatih kita menjadi pribadi yang sabar 🎯",
	"Malam Lailatul Qadar lebih baik dari 1000 bulan 🌟",
	"Ramadhan adalah bulan penuh rahmat dan ampunan 🌈",
	"Jaga shaum, jaga sholat, jaga akhlak! 💯",
	"Alhamdulillah, kita masih diberi kesempatan Ramadhan 🎉",
}

func Quotes() []string {
	out := make([]string, len(quotes))
	copy(out, quotes[:])
	return out
}

// DailyQuote dipilih dari tanggal (hari dalam bulan) saja.
func DailyQuote(date time.Time) string {
	return quotes[date.Day()%len(quotes)]
}
