package db

import (
	"sort"
	"strconv"

	"ramadhan-masjid-bot/internal/config"

	"github.com/google/uuid"
	"github.com/nedpals/supabase-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("not found")

type Client struct {
	*supabase.Client
	log *zap.Logger
}

func NewClient(cfg *config.Config, log *zap.Logger) *Client {
	sbClient := supabase.CreateClient(cfg.SupabaseURL, cfg.SupabaseKey)
	log.Info("Supabase client ready", zap.String("url", cfg.SupabaseURL))
	return &Client{Client: sbClient, log: log}
}

// GetOrCreateJamaah mencari jamaah berdasarkan akun Telegram, atau
// mendaftarkannya sebagai jamaah dewasa dengan token kartu QR baru.
func (c *Client) GetOrCreateJamaah(tgUser *config.User) (*Jamaah, error) {
	var results []Jamaah
	err := c.DB.From("users").Select("*").Eq("telegram_user_id", strconv.FormatInt(tgUser.ID, 10)).Execute(&results)
	if err != nil {
		c.log.Error("Error checking for jamaah", zap.Int64("telegram_user_id", tgUser.ID), zap.Error(err))
		return nil, errors.Wrap(err, "select users")
	}

	if len(results) > 0 {
		return &results[0], nil
	}

	c.log.Info("Jamaah not found, registering", zap.Int64("telegram_user_id", tgUser.ID), zap.String("name", tgUser.FirstName))
	newJamaah := Jamaah{
		UserID:         uuid.NewString(),
		TelegramUserID: tgUser.ID,
		Nama:           tgUser.FirstName,
		Username:       tgUser.Username,
		Role:           RoleJamaahDewasa,
		QRCodeToken:    uuid.NewString(),
	}

	var newResults []Jamaah
	err = c.DB.From("users").Insert(newJamaah).Execute(&newResults)
	if err != nil {
		c.log.Error("Error registering jamaah", zap.Int64("telegram_user_id", tgUser.ID), zap.Error(err))
		return nil, errors.Wrap(err, "insert users")
	}

	if len(newResults) == 0 {
		return &newJamaah, nil
	}
	return &newResults[0], nil
}

func (c *Client) GetJamaahByQRToken(token string) (*Jamaah, error) {
	var results []Jamaah
	err := c.DB.From("users").Select("user_id,telegram_user_id,nama,role,qr_code_token").Eq("qr_code_token", token).Execute(&results)
	if err != nil {
		return nil, errors.Wrap(err, "select users by qr token")
	}
	if len(results) == 0 {
		return nil, errors.Wrap(ErrNotFound, "qr token")
	}
	return &results[0], nil
}

// ListJamaah mengembalikan jamaah dewasa dan anak, urut nama.
func (c *Client) ListJamaah() ([]Jamaah, error) {
	var results []Jamaah
	filter := "(" + RoleJamaahDewasa + "," + RoleJamaahAnak + ")"
	err := c.DB.From("users").Select("user_id,telegram_user_id,nama,role").Filter("role", "in", filter).Execute(&results)
	if err != nil {
		c.log.Error("Error fetching jamaah list", zap.Error(err))
		return nil, errors.Wrap(err, "select users by role")
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Nama < results[j].Nama
	})
	return results, nil
}

// AddJamaah mendaftarkan anggota tanpa akun Telegram (mis. anak-anak TPA).
// Kehadirannya dicatat lewat token kartu QR yang dikembalikan.
func (c *Client) AddJamaah(nama, gender, role string) (*Jamaah, error) {
	newJamaah := Jamaah{
		UserID:      uuid.NewString(),
		Nama:        nama,
		Gender:      gender,
		Role:        role,
		QRCodeToken: uuid.NewString(),
	}

	var results []Jamaah
	err := c.DB.From("users").Insert(newJamaah).Execute(&results)
	if err != nil {
		c.log.Error("Error adding jamaah", zap.String("name", nama), zap.String("role", role), zap.Error(err))
		return nil, errors.Wrap(err, "insert users")
	}
	if len(results) == 0 {
		return &newJamaah, nil
	}
	return &results[0], nil
}

func (c *Client) UpdateJamaahRole(userID, role string) error {
	var results []Jamaah
	err := c.DB.From("users").Update(map[string]string{"role": role}).Eq("user_id", userID).Execute(&results)
	if err != nil {
		c.log.Error("Error updating role", zap.String("user_id", userID), zap.String("role", role), zap.Error(err))
		return errors.Wrapf(err, "update role %s", userID)
	}
	return nil
}

func (c *Client) DeleteJamaah(userID string) error {
	var results []Jamaah
	err := c.DB.From("users").Delete().Eq("user_id", userID).Execute(&results)
	if err != nil {
		c.log.Error("Error deleting jamaah", zap.String("user_id", userID), zap.Error(err))
		return errors.Wrapf(err, "delete users %s", userID)
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
