package db

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type KajianRow struct {
	KajianID     string `json:"kajian_id,omitempty"`
	Tanggal      string `json:"tanggal" validate:"required,datetime=2006-01-02"`
	Hari         string `json:"hari"`
	Hijriah      string `json:"hijriah,omitempty"`
	Pemateri     string `json:"pemateri" validate:"required"`
	Tema         string `json:"tema" validate:"required"`
	IsActive     bool   `json:"is_active"`
	FotoPemateri string `json:"foto_pemateri,omitempty"`
}

// ListActiveKajian mengambil jadwal kajian subuh yang aktif, urut tanggal.
func (c *Client) ListActiveKajian() ([]KajianRow, error) {
	var results []KajianRow
	err := c.DB.From("kajian_subuh").Select("*").Eq("is_active", "true").Execute(&results)
	if err != nil {
		c.log.Error("Error fetching kajian", zap.Error(err))
		return nil, errors.Wrap(err, "select kajian")
	}
	sortKajian(results)
	return results, nil
}

func (c *Client) InsertKajian(row KajianRow) (*KajianRow, error) {
	if err := row.Validate(); err != nil {
		return nil, err
	}

	var results []KajianRow
	err := c.DB.From("kajian_subuh").Insert(row).Execute(&results)
	if err != nil {
		c.log.Error("Error inserting kajian", zap.String("tanggal", row.Tanggal), zap.Error(err))
		return nil, errors.Wrap(err, "insert kajian")
	}
	if len(results) == 0 {
		return &row, nil
	}
	return &results[0], nil
}

// tanggal berformat YYYY-MM-DD sehingga urutan string = urutan waktu
func sortKajian(rows []KajianRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Tanggal < rows[j].Tanggal
	})
}
