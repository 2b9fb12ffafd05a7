package bot

import (
	"ramadhan-masjid-bot/internal/config"
	"ramadhan-masjid-bot/internal/db"
)

// Store adalah bagian dari *db.Client yang dipakai bot.
type Store interface {
	GetOrCreateJamaah(tgUser *config.User) (*db.Jamaah, error)
	GetJamaahByQRToken(token string) (*db.Jamaah, error)
	ListJamaah() ([]db.Jamaah, error)
	AddJamaah(nama, gender, role string) (*db.Jamaah, error)
	UpdateJamaahRole(userID, role string) error
	DeleteJamaah(userID string) error

	GetJournal(userID, date string) (*db.JournalRow, error)
	UpsertJournal(row db.JournalRow) error
	ListJournals(userID string) ([]db.JournalRow, error)

	InsertAttendance(row db.AttendanceRow) (*db.AttendanceRow, error)
	ListValidAttendance(userID string) ([]db.AttendanceRow, error)

	ListActiveKajian() ([]db.KajianRow, error)
	InsertKajian(row db.KajianRow) (*db.KajianRow, error)
	InsertPenilaian(row db.PenilaianRow) (*db.PenilaianRow, error)
	InsertWarta(row db.WartaRow) (*db.WartaRow, error)
	ListWarta(limit int) ([]db.WartaRow, error)

	GetOrCreateChat(chatID int64, chatType string) error
	GetAllChatsByType(chatType string) ([]int64, error)
}

var _ Store = (*db.Client)(nil)
