package db

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (c *Client) GetJournal(userID, date string) (*JournalRow, error) {
	var results []JournalRow
	err := c.DB.From("journal_entries").Select("*").Eq("user_id", userID).Eq("date", date).Execute(&results)
	if err != nil {
		return nil, errors.Wrapf(err, "select journal %s/%s", userID, date)
	}
	if len(results) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "journal %s/%s", userID, date)
	}
	return &results[0], nil
}

// UpsertJournal menyimpan jurnal harian. Satu baris per (user_id, date):
// baris yang sudah ada di-update, selain itu di-insert.
func (c *Client) UpsertJournal(row JournalRow) error {
	if err := row.Validate(); err != nil {
		return err
	}

	_, err := c.GetJournal(row.UserID, row.Date)
	switch {
	case err == nil:
		var updated []JournalRow
		err = c.DB.From("journal_entries").Update(row).Eq("user_id", row.UserID).Eq("date", row.Date).Execute(&updated)
		if err != nil {
			c.log.Error("Error updating journal", zap.String("user_id", row.UserID), zap.String("date", row.Date), zap.Error(err))
			return errors.Wrap(err, "update journal")
		}
	case IsNotFound(err):
		var inserted []JournalRow
		err = c.DB.From("journal_entries").Insert(row).Execute(&inserted)
		if err != nil {
			c.log.Error("Error inserting journal", zap.String("user_id", row.UserID), zap.String("date", row.Date), zap.Error(err))
			return errors.Wrap(err, "insert journal")
		}
	default:
		return err
	}
	return nil
}

func (c *Client) ListJournals(userID string) ([]JournalRow, error) {
	var results []JournalRow
	err := c.DB.From("journal_entries").Select("*").Eq("user_id", userID).Execute(&results)
	if err != nil {
		c.log.Error("Error fetching journals", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.Wrapf(err, "select journals %s", userID)
	}
	return results, nil
}
