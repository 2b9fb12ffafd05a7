package db

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type WartaAuthor struct {
	Nama string `json:"nama"`
}

type WartaRow struct {
	NewsID    string       `json:"news_id,omitempty"`
	Title     string       `json:"title" validate:"required"`
	Content   string       `json:"content" validate:"required"`
	ImageURL  string       `json:"image_url,omitempty"`
	AuthorID  string       `json:"author_id" validate:"required"`
	CreatedAt *time.Time   `json:"created_at,omitempty"`
	Author    *WartaAuthor `json:"author,omitempty"`
}

func (c *Client) InsertWarta(row WartaRow) (*WartaRow, error) {
	if err := row.Validate(); err != nil {
		return nil, err
	}

	var results []WartaRow
	err := c.DB.From("warta_berita").Insert(row).Execute(&results)
	if err != nil {
		c.log.Error("Error inserting warta", zap.String("author_id", row.AuthorID), zap.Error(err))
		return nil, errors.Wrap(err, "insert warta")
	}
	if len(results) == 0 {
		return &row, nil
	}
	return &results[0], nil
}

// ListWarta mengembalikan warta terbaru lebih dulu. limit <= 0 berarti semua.
func (c *Client) ListWarta(limit int) ([]WartaRow, error) {
	var results []WartaRow
	err := c.DB.From("warta_berita").Select("news_id,title,content,image_url,created_at,author:users!author_id(nama)").Execute(&results)
	if err != nil {
		c.log.Error("Error fetching warta", zap.Error(err))
		return nil, errors.Wrap(err, "select warta")
	}
	sortWartaNewestFirst(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func sortWartaNewestFirst(rows []WartaRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].CreatedAt, rows[j].CreatedAt
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})
}
