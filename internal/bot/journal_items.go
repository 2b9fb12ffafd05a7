package bot

import "ramadhan-masjid-bot/internal/db"

// Urutan item checklist jurnal seperti yang ditampilkan ke jamaah.
var journalItems = []string{
	"puasa",
	"sholat_subuh",
	"sholat_zuhur",
	"sholat_ashar",
	"sholat_maghrib",
	"sholat_isya",
	"tadarus",
}

func IsJournalItem(item string) bool {
	for _, it := range journalItems {
		if it == item {
			return true
		}
	}
	return false
}

func JournalItemValue(row db.JournalRow, item string) bool {
	switch item {
	case "puasa":
		return row.Puasa
	case "sholat_subuh":
		return row.SholatSubuh
	case "sholat_zuhur":
		return row.SholatZuhur
	case "sholat_ashar":
		return row.SholatAshar
	case "sholat_maghrib":
		return row.SholatMaghrib
	case "sholat_isya":
		return row.SholatIsya
	case "tadarus":
		return row.Tadarus
	}
	return false
}

func setJournalItem(row *db.JournalRow, item string, v bool) {
	switch item {
	case "puasa":
		row.Puasa = v
	case "sholat_subuh":
		row.SholatSubuh = v
	case "sholat_zuhur":
		row.SholatZuhur = v
	case "sholat_ashar":
		row.SholatAshar = v
	case "sholat_maghrib":
		row.SholatMaghrib = v
	case "sholat_isya":
		row.SholatIsya = v
	case "tadarus":
		row.Tadarus = v
	}
}
