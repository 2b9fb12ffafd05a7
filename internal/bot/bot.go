package bot

import (
	"context"
	"sync"
	"time"

	"ramadhan-masjid-bot/internal/config"
	"ramadhan-masjid-bot/internal/i18n"
	"ramadhan-masjid-bot/internal/metrics"
	"ramadhan-masjid-bot/internal/ramadhan"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	limiterCleanupEvery = 5 * time.Minute
	limiterMaxIdle      = 30 * time.Minute
	// lokasi pemindai kadaluarsa setelah ini; panitia harus kirim ulang
	scannerLocationTTL = 15 * time.Minute
)

type scannerLocation struct {
	coord ramadhan.Coordinate
	at    time.Time
}

type Bot struct {
	api       *tgbotapi.BotAPI
	cfg       *config.Config
	localizer *i18n.Localizer
	store     Store
	svc       *Service
	log       *zap.Logger
	metrics   *metrics.Metrics
	limiter   *userLimiter

	mu        sync.RWMutex
	locations map[int64]scannerLocation
}

func New(cfg *config.Config, localizer *i18n.Localizer, store Store, log *zap.Logger, m *metrics.Metrics) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, errors.Wrap(err, "create telegram bot")
	}

	log.Info("Authorized on account", zap.String("username", api.Self.UserName))

	return &Bot{
		api:       api,
		cfg:       cfg,
		localizer: localizer,
		store:     store,
		svc:       NewService(store, cfg, log, m),
		log:       log,
		metrics:   m,
		limiter:   newUserLimiter(cfg.RateLimitPerSec, cfg.RateLimitBurst),
		locations: make(map[int64]scannerLocation),
	}, nil
}

// Start berjalan sampai ctx dibatalkan. ctx juga menghentikan warta yang
// sedang dikirim.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	ticker := time.NewTicker(limiterCleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.log.Info("Stopping update loop")
			b.api.StopReceivingUpdates()
			return
		case <-ticker.C:
			b.limiter.cleanup(limiterMaxIdle)
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) rememberLocation(userID int64, c ramadhan.Coordinate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.locations[userID] = scannerLocation{coord: c, at: b.svc.Now()}
}

func (b *Bot) lastLocation(userID int64) *ramadhan.Coordinate {
	b.mu.RLock()
	defer b.mu.RUnlock()
	l, ok := b.locations[userID]
	if !ok || b.svc.Now().Sub(l.at) > scannerLocationTTL {
		return nil
	}
	c := l.coord
	return &c
}
