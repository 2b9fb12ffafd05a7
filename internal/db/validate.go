package db

import (
	"time"

	"ramadhan-masjid-bot/internal/ramadhan"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

var validate = validator.New()

func (r JournalRow) Validate() error {
	return errors.Wrapf(validate.Struct(r), "journal %s/%s", r.UserID, r.Date)
}

func (r AttendanceRow) Validate() error {
	return errors.Wrapf(validate.Struct(r), "attendance %s", r.UserID)
}

func (r KajianRow) Validate() error {
	return errors.Wrapf(validate.Struct(r), "kajian %s", r.Tanggal)
}

func (r PenilaianRow) Validate() error {
	return errors.Wrapf(validate.Struct(r), "penilaian %s", r.UserID)
}

func (r WartaRow) Validate() error {
	return errors.Wrapf(validate.Struct(r), "warta %q", r.Title)
}

// Entry mengonversi baris yang lolos validasi; Date adalah pukul 00.00
// tanggal baris di loc.
func (r JournalRow) Entry(loc *time.Location) (ramadhan.JournalEntry, error) {
	if err := r.Validate(); err != nil {
		return ramadhan.JournalEntry{}, err
	}
	date, err := time.ParseInLocation(DateLayout, r.Date, loc)
	if err != nil {
		return ramadhan.JournalEntry{}, errors.Wrapf(err, "journal %s/%s", r.UserID, r.Date)
	}
	return ramadhan.JournalEntry{
		Date:          date,
		Puasa:         r.Puasa,
		SholatSubuh:   r.SholatSubuh,
		SholatZuhur:   r.SholatZuhur,
		SholatAshar:   r.SholatAshar,
		SholatMaghrib: r.SholatMaghrib,
		SholatIsya:    r.SholatIsya,
		Tadarus:       r.Tadarus,
	}, nil
}

func (r AttendanceRow) Log() (ramadhan.AttendanceLog, error) {
	if err := r.Validate(); err != nil {
		return ramadhan.AttendanceLog{}, err
	}
	l := ramadhan.AttendanceLog{
		Session: ramadhan.ParseSessionKind(r.SessionType),
		IsValid: r.IsValid,
	}
	if r.ScannedAt != nil {
		l.ScannedAt = *r.ScannedAt
	}
	return l, nil
}

// JournalEntries mengonversi baris dan melewati yang gagal validasi.
func JournalEntries(rows []JournalRow, loc *time.Location) ([]ramadhan.JournalEntry, []error) {
	var errs []error
	entries := make([]ramadhan.JournalEntry, 0, len(rows))
	for _, r := range rows {
		e, err := r.Entry(loc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, errs
}

func AttendanceLogs(rows []AttendanceRow) ([]ramadhan.AttendanceLog, []error) {
	var errs []error
	logs := make([]ramadhan.AttendanceLog, 0, len(rows))
	for _, r := range rows {
		l, err := r.Log()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		logs = append(logs, l)
	}
	return logs, errs
}

func MemberJournals(rows []JournalRow, loc *time.Location) ([]ramadhan.MemberJournal, []error) {
	var errs []error
	out := make([]ramadhan.MemberJournal, 0, len(rows))
	for _, r := range rows {
		e, err := r.Entry(loc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, ramadhan.MemberJournal{UserID: r.UserID, Entry: e})
	}
	return out, errs
}

func MemberLogs(rows []AttendanceRow) ([]ramadhan.MemberLog, []error) {
	var errs []error
	out := make([]ramadhan.MemberLog, 0, len(rows))
	for _, r := range rows {
		l, err := r.Log()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, ramadhan.MemberLog{UserID: r.UserID, Log: l})
	}
	return out, errs
}

func Members(jamaah []Jamaah) []ramadhan.Member {
	out := make([]ramadhan.Member, len(jamaah))
	for i, j := range jamaah {
		out[i] = ramadhan.Member{UserID: j.UserID, Name: j.Nama, Role: j.Role}
	}
	return out
}
