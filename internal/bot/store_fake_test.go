package bot

import (
	"sort"
	"sync"

	"ramadhan-masjid-bot/internal/config"
	"ramadhan-masjid-bot/internal/db"

	"github.com/pkg/errors"
)

// fakeStore menyimpan semuanya di memori. failOn membuat method bernama itu
// gagal; maxRows memotong hasil list seperti max-rows PostgREST.
type fakeStore struct {
	mu         sync.Mutex
	jamaah     []db.Jamaah
	journals   []db.JournalRow
	attendance []db.AttendanceRow
	kajian     []db.KajianRow
	penilaian  []db.PenilaianRow
	warta      []db.WartaRow
	chats      map[int64]string
	failOn     string
	maxRows    int
	queries    map[string]int
}

var _ Store = (*fakeStore)(nil)

var errFake = errors.New("fake store failure")

func newFakeStore(jamaah ...db.Jamaah) *fakeStore {
	return &fakeStore{jamaah: jamaah, chats: make(map[int64]string), queries: make(map[string]int)}
}

func capRows[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

func (f *fakeStore) fail(method string) error {
	if f.failOn == method {
		return errors.Wrap(errFake, method)
	}
	return nil
}

func (f *fakeStore) GetOrCreateJamaah(u *config.User) (*db.Jamaah, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.jamaah {
		if f.jamaah[i].TelegramUserID == u.ID {
			return &f.jamaah[i], nil
		}
	}
	j := db.Jamaah{UserID: u.Username, TelegramUserID: u.ID, Nama: u.FirstName, Role: db.RoleJamaahDewasa}
	f.jamaah = append(f.jamaah, j)
	return &j, nil
}

func (f *fakeStore) GetJamaahByQRToken(token string) (*db.Jamaah, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("GetJamaahByQRToken"); err != nil {
		return nil, err
	}
	for i := range f.jamaah {
		if f.jamaah[i].QRCodeToken == token {
			j := f.jamaah[i]
			return &j, nil
		}
	}
	return nil, errors.Wrap(db.ErrNotFound, "qr token")
}

func (f *fakeStore) ListJamaah() ([]db.Jamaah, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.Jamaah
	for _, j := range f.jamaah {
		if j.Role == db.RoleJamaahDewasa || j.Role == db.RoleJamaahAnak {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeStore) AddJamaah(nama, gender, role string) (*db.Jamaah, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("AddJamaah"); err != nil {
		return nil, err
	}
	j := db.Jamaah{UserID: "u-" + nama, Nama: nama, Gender: gender, Role: role, QRCodeToken: "qr-" + nama}
	f.jamaah = append(f.jamaah, j)
	return &j, nil
}

func (f *fakeStore) UpdateJamaahRole(userID, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("UpdateJamaahRole"); err != nil {
		return err
	}
	for i := range f.jamaah {
		if f.jamaah[i].UserID == userID {
			f.jamaah[i].Role = role
			return nil
		}
	}
	return errors.Wrap(db.ErrNotFound, userID)
}

func (f *fakeStore) DeleteJamaah(userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("DeleteJamaah"); err != nil {
		return err
	}
	out := f.jamaah[:0]
	for _, j := range f.jamaah {
		if j.UserID != userID {
			out = append(out, j)
		}
	}
	f.jamaah = out
	return nil
}

func (f *fakeStore) GetJournal(userID, date string) (*db.JournalRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("GetJournal"); err != nil {
		return nil, err
	}
	for _, r := range f.journals {
		if r.UserID == userID && r.Date == date {
			row := r
			return &row, nil
		}
	}
	return nil, errors.Wrap(db.ErrNotFound, "journal")
}

func (f *fakeStore) UpsertJournal(row db.JournalRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("UpsertJournal"); err != nil {
		return err
	}
	for i, r := range f.journals {
		if r.UserID == row.UserID && r.Date == row.Date {
			f.journals[i] = row
			return nil
		}
	}
	f.journals = append(f.journals, row)
	return nil
}

func (f *fakeStore) ListJournals(userID string) ([]db.JournalRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries["ListJournals"]++
	if err := f.fail("ListJournals"); err != nil {
		return nil, err
	}
	var out []db.JournalRow
	for _, r := range f.journals {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return capRows(out, f.maxRows), nil
}

func (f *fakeStore) InsertAttendance(row db.AttendanceRow) (*db.AttendanceRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("InsertAttendance"); err != nil {
		return nil, err
	}
	f.attendance = append(f.attendance, row)
	return &row, nil
}

func (f *fakeStore) ListValidAttendance(userID string) ([]db.AttendanceRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries["ListValidAttendance"]++
	if err := f.fail("ListValidAttendance"); err != nil {
		return nil, err
	}
	var out []db.AttendanceRow
	for _, r := range f.attendance {
		if r.UserID == userID && r.IsValid {
			out = append(out, r)
		}
	}
	return capRows(out, f.maxRows), nil
}

func (f *fakeStore) ListActiveKajian() ([]db.KajianRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("ListActiveKajian"); err != nil {
		return nil, err
	}
	var out []db.KajianRow
	for _, k := range f.kajian {
		if k.IsActive {
			out = append(out, k)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Tanggal < out[j].Tanggal })
	return out, nil
}

func (f *fakeStore) InsertKajian(row db.KajianRow) (*db.KajianRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("InsertKajian"); err != nil {
		return nil, err
	}
	if err := row.Validate(); err != nil {
		return nil, err
	}
	f.kajian = append(f.kajian, row)
	return &row, nil
}

func (f *fakeStore) InsertPenilaian(row db.PenilaianRow) (*db.PenilaianRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("InsertPenilaian"); err != nil {
		return nil, err
	}
	if err := row.Validate(); err != nil {
		return nil, err
	}
	f.penilaian = append(f.penilaian, row)
	return &row, nil
}

func (f *fakeStore) InsertWarta(row db.WartaRow) (*db.WartaRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("InsertWarta"); err != nil {
		return nil, err
	}
	if err := row.Validate(); err != nil {
		return nil, err
	}
	f.warta = append(f.warta, row)
	return &row, nil
}

// ListWarta: baris yang disisipkan belakangan dianggap lebih baru.
func (f *fakeStore) ListWarta(limit int) ([]db.WartaRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]db.WartaRow, 0, len(f.warta))
	for i := len(f.warta) - 1; i >= 0; i-- {
		out = append(out, f.warta[i])
	}
	return capRows(out, limit), nil
}

func (f *fakeStore) GetOrCreateChat(chatID int64, chatType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chats[chatID] = chatType
	return nil
}

func (f *fakeStore) GetAllChatsByType(chatType string) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []int64
	for id, t := range f.chats {
		if t == chatType {
			out = append(out, id)
		}
	}
	return out, nil
}
