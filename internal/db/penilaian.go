package db

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var PenilaianKategori = []string{"hafalan", "adab", "keaktifan", "kebersihan"}

type PenilaianRow struct {
	ID        string     `json:"id,omitempty"`
	UserID    string     `json:"user_id" validate:"required"`
	PenilaiID string     `json:"penilai_id" validate:"required"`
	Kategori  string     `json:"kategori" validate:"required,oneof=hafalan adab keaktifan kebersihan"`
	Nilai     int        `json:"nilai" validate:"min=1,max=5"`
	Catatan   string     `json:"catatan,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func IsPenilaianKategori(k string) bool {
	for _, kategori := range PenilaianKategori {
		if kategori == k {
			return true
		}
	}
	return false
}

func (c *Client) InsertPenilaian(row PenilaianRow) (*PenilaianRow, error) {
	if err := row.Validate(); err != nil {
		return nil, err
	}

	var results []PenilaianRow
	err := c.DB.From("penilaian_anak").Insert(row).Execute(&results)
	if err != nil {
		c.log.Error("Error inserting penilaian", zap.String("user_id", row.UserID), zap.String("kategori", row.Kategori), zap.Error(err))
		return nil, errors.Wrap(err, "insert penilaian")
	}
	if len(results) == 0 {
		return &row, nil
	}
	return &results[0], nil
}
