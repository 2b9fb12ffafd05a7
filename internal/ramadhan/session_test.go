package ramadhan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifySession(t *testing.T) {
	tests := []struct {
		hour int
		want SessionKind
	}{
		{0, SessionNone},
		{3, SessionNone},
		{4, SessionSubuh},
		{6, SessionSubuh},
		{7, SessionNone},
		{14, SessionNone},
		{15, SessionKegiatanHarian},
		{18, SessionKegiatanHarian},
		{19, SessionTarawih},
		{22, SessionTarawih},
		{23, SessionNone},
	}
	for _, tt := range tests {
		now := time.Date(2026, 3, 1, tt.hour, 59, 59, 0, time.UTC)
		assert.Equal(t, tt.want, ClassifySession(now), "hour %d", tt.hour)
	}
}

func TestClassifySessionUsesWallClockOfGivenLocation(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	utc := time.Date(2026, 3, 1, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, SessionNone, ClassifySession(utc))
	assert.Equal(t, SessionSubuh, ClassifySession(utc.In(wib)))
}

func TestParseSessionKind(t *testing.T) {
	assert.Equal(t, SessionSubuh, ParseSessionKind("subuh"))
	assert.Equal(t, SessionKegiatanHarian, ParseSessionKind("kegiatan_harian"))
	assert.Equal(t, SessionTarawih, ParseSessionKind("tarawih"))
	assert.Equal(t, SessionNone, ParseSessionKind("demo_session"))
	assert.Equal(t, SessionNone, ParseSessionKind(""))

	assert.True(t, SessionTarawih.Valid())
	assert.False(t, SessionNone.Valid())
	assert.Equal(t, "none", SessionNone.String())
}
