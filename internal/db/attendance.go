package db

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (c *Client) InsertAttendance(row AttendanceRow) (*AttendanceRow, error) {
	if err := row.Validate(); err != nil {
		return nil, err
	}

	var results []AttendanceRow
	err := c.DB.From("attendance_logs").Insert(row).Execute(&results)
	if err != nil {
		c.log.Error("Error inserting attendance log", zap.String("user_id", row.UserID), zap.String("session", row.SessionType), zap.Error(err))
		return nil, errors.Wrap(err, "insert attendance")
	}
	if len(results) == 0 {
		return &row, nil
	}
	return &results[0], nil
}

// ListValidAttendance mengembalikan log sah milik user, terbaru lebih dulu.
func (c *Client) ListValidAttendance(userID string) ([]AttendanceRow, error) {
	var results []AttendanceRow
	err := c.DB.From("attendance_logs").Select("*").Eq("user_id", userID).Eq("is_valid", "true").Execute(&results)
	if err != nil {
		c.log.Error("Error fetching attendance", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.Wrapf(err, "select attendance %s", userID)
	}
	sortNewestFirst(results)
	return results, nil
}

func sortNewestFirst(rows []AttendanceRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].ScannedAt, rows[j].ScannedAt
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})
}
