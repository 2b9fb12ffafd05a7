package db

import (
	"time"
)

const (
	RoleJamaahDewasa = "jamaah_dewasa"
	RoleJamaahAnak   = "jamaah_anak"
	RolePanitia      = "panitia"
	RoleAdminUtama   = "admin_utama"
	RoleAdminMedia   = "admin_media"
)

// DemoSession disimpan bila scan terjadi di luar semua jendela sesi.
const DemoSession = "demo_session"

type Jamaah struct {
	UserID         string     `json:"user_id"`
	TelegramUserID int64      `json:"telegram_user_id,omitempty"`
	Nama           string     `json:"nama"`
	Username       string     `json:"username,omitempty"`
	Gender         string     `json:"gender,omitempty"`
	Role           string     `json:"role"`
	QRCodeToken    string     `json:"qr_code_token"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

var Roles = []string{RoleJamaahDewasa, RoleJamaahAnak, RolePanitia, RoleAdminMedia, RoleAdminUtama}

func IsRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (j *Jamaah) IsPanitia() bool {
	switch j.Role {
	case RolePanitia, RoleAdminUtama, RoleAdminMedia:
		return true
	}
	return false
}

// CanViewRecap: admin media tidak boleh membuka rekap.
func (j *Jamaah) CanViewRecap() bool {
	return j.Role == RolePanitia || j.Role == RoleAdminUtama
}

// CanManageMembers: hanya admin utama yang boleh mengubah peran atau menghapus anggota.
func (j *Jamaah) CanManageMembers() bool {
	return j.Role == RoleAdminUtama
}

type JournalRow struct {
	UserID        string `json:"user_id" validate:"required"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Puasa         bool   `json:"puasa"`
	SholatSubuh   bool   `json:"sholat_subuh"`
	SholatZuhur   bool   `json:"sholat_zuhur"`
	SholatAshar   bool   `json:"sholat_ashar"`
	SholatMaghrib bool   `json:"sholat_maghrib"`
	SholatIsya    bool   `json:"sholat_isya"`
	Tadarus       bool   `json:"tadarus"`
}

type LocationData struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

type AttendanceRow struct {
	ID           string        `json:"id,omitempty"`
	UserID       string        `json:"user_id" validate:"required"`
	SeasonID     int           `json:"season_id"`
	SessionType  string        `json:"session_type" validate:"required,oneof=subuh kegiatan_harian tarawih demo_session"`
	IsValid      bool          `json:"is_valid"`
	ScannedAt    *time.Time    `json:"scanned_at,omitempty"`
	LocationData *LocationData `json:"location_data,omitempty"`
}
