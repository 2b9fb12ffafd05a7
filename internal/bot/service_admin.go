package bot

import (
	"strings"
	"time"

	"ramadhan-masjid-bot/internal/db"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var hariNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

type KajianInput struct {
	Tanggal  string
	Pemateri string
	Tema     string
	Hijriah  string
}

func (s *Service) countAdmin(action string) {
	if s.metrics != nil {
		s.metrics.AdminActions.WithLabelValues(action).Inc()
	}
}

func (s *Service) Kajian() ([]db.KajianRow, error) {
	return s.store.ListActiveKajian()
}

// AddKajian menambah jadwal kajian subuh. Nama hari diturunkan dari tanggal.
func (s *Service) AddKajian(author *db.Jamaah, isSuperAdmin bool, in KajianInput) (*db.KajianRow, error) {
	if !author.IsPanitia() && !isSuperAdmin {
		return nil, ErrNotPanitia
	}
	if in.Tanggal == "" || in.Pemateri == "" || in.Tema == "" {
		return nil, ErrBadKajian
	}
	date, err := time.ParseInLocation(db.DateLayout, in.Tanggal, s.cfg.Location)
	if err != nil {
		return nil, errors.Wrap(ErrBadKajian, in.Tanggal)
	}

	row, err := s.store.InsertKajian(db.KajianRow{
		Tanggal:  in.Tanggal,
		Hari:     hariNames[date.Weekday()],
		Hijriah:  in.Hijriah,
		Pemateri: in.Pemateri,
		Tema:     in.Tema,
		IsActive: true,
	})
	if err != nil {
		return nil, err
	}
	s.countAdmin("kajian")
	s.log.Info("Kajian added", zap.String("tanggal", row.Tanggal), zap.String("pemateri", row.Pemateri), zap.Int64("by", author.TelegramUserID))
	return row, nil
}

type AssessResult struct {
	Target *db.Jamaah
	Row    *db.PenilaianRow
}

// Assess mencatat penilaian panitia untuk seorang jamaah anak.
func (s *Service) Assess(assessor *db.Jamaah, isSuperAdmin bool, token, kategori string, nilai int, catatan string) (AssessResult, error) {
	if !assessor.CanViewRecap() && !isSuperAdmin {
		return AssessResult{}, ErrNotPanitia
	}
	if !db.IsPenilaianKategori(kategori) {
		return AssessResult{}, errors.Wrap(ErrBadCategory, kategori)
	}
	if nilai < 1 || nilai > 5 {
		return AssessResult{}, ErrBadScore
	}

	target, err := s.lookupToken(token)
	if err != nil {
		return AssessResult{}, err
	}
	if target.Role != db.RoleJamaahAnak {
		return AssessResult{}, errors.Wrap(ErrNotChild, target.UserID)
	}

	row, err := s.store.InsertPenilaian(db.PenilaianRow{
		UserID:    target.UserID,
		PenilaiID: assessor.UserID,
		Kategori:  kategori,
		Nilai:     nilai,
		Catatan:   catatan,
	})
	if err != nil {
		return AssessResult{}, err
	}
	s.countAdmin("penilaian")
	s.log.Info("Penilaian recorded", zap.String("user_id", target.UserID), zap.String("kategori", kategori), zap.Int("nilai", nilai))
	return AssessResult{Target: target, Row: row}, nil
}

// PostWarta menyimpan warta. Baris pertama menjadi judul, sisanya isi.
func (s *Service) PostWarta(author *db.Jamaah, isSuperAdmin bool, text string) (*db.WartaRow, error) {
	if !author.IsPanitia() && !isSuperAdmin {
		return nil, ErrNotPanitia
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyWarta
	}

	title, content, _ := strings.Cut(text, "\n")
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if content == "" {
		content = title
	}

	row, err := s.store.InsertWarta(db.WartaRow{Title: title, Content: content, AuthorID: author.UserID})
	if err != nil {
		return nil, err
	}
	s.countAdmin("warta")
	return row, nil
}

func (s *Service) LatestWarta(limit int) ([]db.WartaRow, error) {
	return s.store.ListWarta(limit)
}

// AddMember mendaftarkan jamaah dewasa/anak yang tidak memakai Telegram.
func (s *Service) AddMember(adder *db.Jamaah, isSuperAdmin bool, role, gender, nama string) (*db.Jamaah, error) {
	if !adder.CanViewRecap() && !isSuperAdmin {
		return nil, ErrNotPanitia
	}
	role = memberRole(role)
	if role != db.RoleJamaahDewasa && role != db.RoleJamaahAnak {
		return nil, ErrBadRole
	}
	gender = strings.ToUpper(gender)
	if gender != "L" && gender != "P" {
		return nil, ErrBadGender
	}
	nama = strings.TrimSpace(nama)
	if nama == "" {
		return nil, ErrEmptyName
	}

	j, err := s.store.AddJamaah(nama, gender, role)
	if err != nil {
		return nil, err
	}
	s.countAdmin("tambah")
	s.log.Info("Jamaah added", zap.String("user_id", j.UserID), zap.String("role", role), zap.Int64("by", adder.TelegramUserID))
	return j, nil
}

func (s *Service) ChangeRole(admin *db.Jamaah, isSuperAdmin bool, token, role string) (*db.Jamaah, error) {
	if !admin.CanManageMembers() && !isSuperAdmin {
		return nil, ErrNotAdmin
	}
	role = memberRole(role)
	if !db.IsRole(role) {
		return nil, errors.Wrap(ErrBadRole, role)
	}

	target, err := s.lookupToken(token)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateJamaahRole(target.UserID, role); err != nil {
		return nil, err
	}
	s.countAdmin("peran")
	s.log.Info("Role changed", zap.String("user_id", target.UserID), zap.String("from", target.Role), zap.String("to", role))
	target.Role = role
	return target, nil
}

func (s *Service) RemoveMember(admin *db.Jamaah, isSuperAdmin bool, token string) (*db.Jamaah, error) {
	if !admin.CanManageMembers() && !isSuperAdmin {
		return nil, ErrNotAdmin
	}
	target, err := s.lookupToken(token)
	if err != nil {
		return nil, err
	}
	if target.UserID == admin.UserID {
		return nil, ErrSelfRemove
	}
	if err := s.store.DeleteJamaah(target.UserID); err != nil {
		return nil, err
	}
	s.countAdmin("hapus")
	s.log.Info("Jamaah removed", zap.String("user_id", target.UserID), zap.Int64("by", admin.TelegramUserID))
	return target, nil
}

func (s *Service) lookupToken(token string) (*db.Jamaah, error) {
	if token == "" {
		return nil, ErrEmptyQRToken
	}
	target, err := s.store.GetJamaahByQRToken(token)
	if db.IsNotFound(err) {
		return nil, errors.Wrap(ErrInvalidQR, token)
	}
	return target, err
}

// memberRole menerima nama pendek "dewasa"/"anak" selain nama peran lengkap.
func memberRole(role string) string {
	switch role = strings.ToLower(role); role {
	case "dewasa":
		return db.RoleJamaahDewasa
	case "anak":
		return db.RoleJamaahAnak
	}
	return role
}
