package jobs

import (
	"escritorio_app_go/config"
	"escritorio_app_go/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeDeadlines []models.Prazo

func (f fakeDeadlines) ComputeDeadlines() []models.Prazo { return f }

var now = time.Date(2025, 6, 20, 8, 0, 0, 0, time.UTC)

func TestRunDeadlineDigest(t *testing.T) {
	urgent := fakeDeadlines{
		{Numero: "001/2025", Cliente: "Maria", StatusPrazo: models.DeadlineOverdue, DiasRestantes: -1},
		{Numero: "002/2025", Cliente: "João", StatusPrazo: models.DeadlineNormal, DiasRestantes: 9},
	}
	calm := fakeDeadlines{
		{Numero: "002/2025", Cliente: "João", StatusPrazo: models.DeadlineAttention, DiasRestantes: 4},
	}

	tests := []struct {
		name     string
		source   fakeDeadlines
		cfg      *config.Config
		wantSent bool
		wantErr  bool
	}{
		{
			name:     "Urgent deadlines in test mode",
			source:   urgent,
			cfg:      &config.Config{EmailTestMode: true, DigestRecipients: []string{"socios@escritorio.com"}},
			wantSent: true,
		},
		{
			name:   "Nothing urgent",
			source: calm,
			cfg:    &config.Config{EmailTestMode: true, DigestRecipients: []string{"socios@escritorio.com"}},
		},
		{
			name:   "No recipients",
			source: urgent,
			cfg:    &config.Config{EmailTestMode: true},
		},
		{
			name:    "Send failure",
			source:  urgent,
			cfg:     &config.Config{DigestRecipients: []string{"socios@escritorio.com"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sent, err := RunDeadlineDigest(tt.source, tt.cfg, now)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantSent, sent)
		})
	}
}

func TestStartScheduler(t *testing.T) {
	t.Run("Digest and session cleanup", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)

		cfg := &config.Config{DigestSchedule: "0 8 * * 1-5", Timezone: "America/Sao_Paulo", EmailTestMode: true}
		c, err := StartScheduler(fakeDeadlines{}, db, cfg)
		require.NoError(t, err)
		defer c.Stop()

		assert.Len(t, c.Entries(), 2)
	})

	t.Run("Digest disabled without database", func(t *testing.T) {
		cfg := &config.Config{DigestSchedule: "off", Timezone: "Nowhere/Invalid"}
		c, err := StartScheduler(fakeDeadlines{}, nil, cfg)
		require.NoError(t, err)
		defer c.Stop()

		assert.Empty(t, c.Entries())
	})

	t.Run("Invalid schedule", func(t *testing.T) {
		cfg := &config.Config{DigestSchedule: "every day", Timezone: "UTC"}
		_, err := StartScheduler(fakeDeadlines{}, nil, cfg)
		assert.Error(t, err)
	})
}
