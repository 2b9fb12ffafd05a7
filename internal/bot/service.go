package bot

import (
	"time"

	"ramadhan-masjid-bot/internal/config"
	"ramadhan-masjid-bot/internal/db"
	"ramadhan-masjid-bot/internal/metrics"
	"ramadhan-masjid-bot/internal/ramadhan"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// jumlah query anggota yang boleh berjalan bersamaan
const memberFetchLimit = 4

var (
	ErrNotPanitia   = errors.New("only panitia can do this")
	ErrInvalidQR    = errors.New("qr code not valid")
	ErrUnknownItem  = errors.New("unknown journal item")
	ErrEmptyQRToken = errors.New("empty qr token")
	ErrNotAdmin     = errors.New("only admin utama can do this")
	ErrNotChild     = errors.New("only jamaah anak can be assessed")
	ErrBadCategory  = errors.New("unknown assessment category")
	ErrBadScore     = errors.New("score must be between 1 and 5")
	ErrBadRole      = errors.New("unknown role")
	ErrBadGender    = errors.New("gender must be L or P")
	ErrEmptyName    = errors.New("empty name")
	ErrEmptyWarta   = errors.New("empty warta")
	ErrBadKajian    = errors.New("kajian needs date, pemateri and tema")
	ErrSelfRemove   = errors.New("cannot remove yourself")
)

// Service berisi use case bot dan tidak bergantung pada Telegram.
type Service struct {
	store   Store
	cfg     *config.Config
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(store Store, cfg *config.Config, log *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{store: store, cfg: cfg, log: log, metrics: m, now: time.Now}
}

// Now mengembalikan waktu sekarang di zona waktu masjid.
func (s *Service) Now() time.Time {
	return s.now().In(s.cfg.Location)
}

func (s *Service) CurrentSession() ramadhan.SessionKind {
	return ramadhan.ClassifySession(s.Now())
}

func (s *Service) today() string {
	return s.Now().Format(db.DateLayout)
}

func (s *Service) TodayJournal(j *db.Jamaah) (db.JournalRow, error) {
	date := s.today()
	row, err := s.store.GetJournal(j.UserID, date)
	if db.IsNotFound(err) {
		return db.JournalRow{UserID: j.UserID, Date: date}, nil
	}
	if err != nil {
		return db.JournalRow{}, err
	}
	return *row, nil
}

func (s *Service) history(j *db.Jamaah) ([]db.JournalRow, []db.AttendanceRow, error) {
	journals, err := s.store.ListJournals(j.UserID)
	if err != nil {
		return nil, nil, err
	}
	logs, err := s.store.ListValidAttendance(j.UserID)
	if err != nil {
		return nil, nil, err
	}
	return journals, logs, nil
}

func (s *Service) summarize(journals []db.JournalRow, logs []db.AttendanceRow) ramadhan.Summary {
	entries, errs := db.JournalEntries(journals, s.cfg.Location)
	s.logDropped("journal", errs)
	attendance, errs := db.AttendanceLogs(logs)
	s.logDropped("attendance", errs)
	return ramadhan.Summarize(entries, attendance, s.Now())
}

func (s *Service) logDropped(kind string, errs []error) {
	for _, err := range errs {
		s.log.Warn("Skipping invalid row", zap.String("kind", kind), zap.Error(err))
	}
}

func (s *Service) Summary(j *db.Jamaah) (ramadhan.Summary, error) {
	journals, logs, err := s.history(j)
	if err != nil {
		return ramadhan.Summary{}, err
	}
	return s.summarize(journals, logs), nil
}

type ToggleResult struct {
	Row      db.JournalRow
	Checked  bool
	Summary  ramadhan.Summary
	Unlocked *ramadhan.Badge
}

// ToggleJournal membalik satu item checklist hari ini lalu menyimpannya.
// Unlocked terisi bila total poin baru melewati ambang lencana berikutnya.
func (s *Service) ToggleJournal(j *db.Jamaah, item string) (ToggleResult, error) {
	if !IsJournalItem(item) {
		return ToggleResult{}, errors.Wrap(ErrUnknownItem, item)
	}

	row, err := s.TodayJournal(j)
	if err != nil {
		return ToggleResult{}, err
	}
	journals, logs, err := s.history(j)
	if err != nil {
		return ToggleResult{}, err
	}
	before := s.summarize(journals, logs)

	checked := !JournalItemValue(row, item)
	setJournalItem(&row, item, checked)
	if err := s.store.UpsertJournal(row); err != nil {
		return ToggleResult{}, err
	}
	if s.metrics != nil {
		s.metrics.JournalToggles.WithLabelValues(item).Inc()
	}

	after := s.summarize(replaceJournal(journals, row), logs)
	res := ToggleResult{Row: row, Checked: checked, Summary: after}
	if b, ok := ramadhan.BadgeUnlocked(before.TotalPoints, after.TotalPoints); ok {
		res.Unlocked = &b
	}
	return res, nil
}

func replaceJournal(rows []db.JournalRow, row db.JournalRow) []db.JournalRow {
	out := make([]db.JournalRow, 0, len(rows)+1)
	replaced := false
	for _, r := range rows {
		if r.Date == row.Date {
			out = append(out, row)
			replaced = true
			continue
		}
		out = append(out, r)
	}
	if !replaced {
		out = append(out, row)
	}
	return out
}

type ScanResult struct {
	Target      *db.Jamaah
	Session     ramadhan.SessionKind
	Row         *db.AttendanceRow
	HasLocation bool
	Within      bool
	Distance    float64
}

// Scan mencatat kehadiran pemilik token QR. Di luar jendela sesi log tetap
// disimpan sebagai demo_session (tanpa poin). Lokasi pemindai dipakai untuk
// geofence; bila tidak ada, titik (0,0) yang dipakai.
func (s *Service) Scan(scanner *db.Jamaah, isSuperAdmin bool, token string, at *ramadhan.Coordinate) (ScanResult, error) {
	if !scanner.IsPanitia() && !isSuperAdmin {
		return ScanResult{}, ErrNotPanitia
	}
	if token == "" {
		return ScanResult{}, ErrEmptyQRToken
	}

	target, err := s.store.GetJamaahByQRToken(token)
	if db.IsNotFound(err) {
		s.countScan(ramadhan.SessionNone, "invalid_qr")
		return ScanResult{}, errors.Wrap(ErrInvalidQR, token)
	}
	if err != nil {
		return ScanResult{}, err
	}

	now := s.Now()
	res := ScanResult{Target: target, Session: ramadhan.ClassifySession(now)}

	var loc db.LocationData
	if at != nil {
		res.HasLocation = true
		loc = db.LocationData{Lat: at.Latitude, Lng: at.Longitude}
	}
	res.Within, res.Distance = s.cfg.Geofence.Check(loc.Lat, loc.Lng)
	s.log.Debug("Distance to masjid",
		zap.Float64("distance_m", res.Distance),
		zap.Bool("has_location", res.HasLocation),
		zap.String("geofence_mode", string(s.cfg.Geofence.Mode)))
	if s.metrics != nil && res.HasLocation {
		s.metrics.GeofenceDistance.Observe(res.Distance)
	}

	sessionType := string(res.Session)
	if res.Session == ramadhan.SessionNone {
		sessionType = db.DemoSession
	}
	row, err := s.store.InsertAttendance(db.AttendanceRow{
		UserID:       target.UserID,
		SeasonID:     s.cfg.SeasonID,
		SessionType:  sessionType,
		IsValid:      res.Within,
		ScannedAt:    &now,
		LocationData: &loc,
	})
	if err != nil {
		s.countScan(res.Session, "error")
		return ScanResult{}, err
	}
	res.Row = row

	result := "ok"
	if !res.Within {
		result = "outside_geofence"
	}
	s.countScan(res.Session, result)
	s.log.Info("Attendance recorded",
		zap.String("user_id", target.UserID),
		zap.String("session", sessionType),
		zap.Bool("valid", res.Within),
		zap.Int64("scanner", scanner.TelegramUserID))
	return res, nil
}

func (s *Service) countScan(session ramadhan.SessionKind, result string) {
	if s.metrics != nil {
		s.metrics.AttendanceScans.WithLabelValues(session.String(), result).Inc()
	}
}

type HistoryView struct {
	Logs      []db.AttendanceRow
	SubuhDays []time.Time
	Grid      []ramadhan.GridDay
	Progress  int
}

func (s *Service) History(j *db.Jamaah) (HistoryView, error) {
	rows, err := s.store.ListValidAttendance(j.UserID)
	if err != nil {
		return HistoryView{}, err
	}
	logs, errs := db.AttendanceLogs(rows)
	s.logDropped("attendance", errs)

	days := ramadhan.PresenceDays(logs, ramadhan.SessionSubuh, s.cfg.Location)
	return HistoryView{
		Logs:      rows,
		SubuhDays: days,
		Grid:      ramadhan.RamadhanGrid(s.cfg.RamadhanStart, days, s.Now()),
		Progress:  ramadhan.ProgressPercent(len(days), s.cfg.TargetSubuh),
	}, nil
}

func (s *Service) Recap(viewer *db.Jamaah, isSuperAdmin bool) ([]ramadhan.RecapRow, error) {
	if !viewer.CanViewRecap() && !isSuperAdmin {
		return nil, ErrNotPanitia
	}
	jamaah, err := s.store.ListJamaah()
	if err != nil {
		return nil, err
	}
	_, rows, err := s.memberHistories(jamaah, false)
	if err != nil {
		return nil, err
	}
	logs, errs := db.MemberLogs(rows)
	s.logDropped("attendance", errs)
	return ramadhan.Recap(db.Members(jamaah), logs), nil
}

func (s *Service) Leaderboard(limit int) ([]ramadhan.Standing, error) {
	jamaah, err := s.store.ListJamaah()
	if err != nil {
		return nil, err
	}
	journalRows, attendanceRows, err := s.memberHistories(jamaah, true)
	if err != nil {
		return nil, err
	}

	journals, errs := db.MemberJournals(journalRows, s.cfg.Location)
	s.logDropped("journal", errs)
	logs, errs := db.MemberLogs(attendanceRows)
	s.logDropped("attendance", errs)
	return ramadhan.Leaderboard(db.Members(jamaah), journals, logs, s.Now(), limit), nil
}

type memberHistory struct {
	journals []db.JournalRow
	logs     []db.AttendanceRow
}

// memberHistories membaca baris tiap anggota dengan query terpisah. Membaca
// satu tabel penuh akan terpotong oleh batas max-rows PostgREST.
func (s *Service) memberHistories(jamaah []db.Jamaah, withJournals bool) ([]db.JournalRow, []db.AttendanceRow, error) {
	histories := make([]memberHistory, len(jamaah))

	var g errgroup.Group
	g.SetLimit(memberFetchLimit)
	for i := range jamaah {
		i := i
		g.Go(func() error {
			userID := jamaah[i].UserID
			logs, err := s.store.ListValidAttendance(userID)
			if err != nil {
				return err
			}
			histories[i].logs = logs
			if !withJournals {
				return nil
			}
			journals, err := s.store.ListJournals(userID)
			if err != nil {
				return err
			}
			histories[i].journals = journals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var journals []db.JournalRow
	var logs []db.AttendanceRow
	for _, h := range histories {
		journals = append(journals, h.journals...)
		logs = append(logs, h.logs...)
	}
	return journals, logs, nil
}
