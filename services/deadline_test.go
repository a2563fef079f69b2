package services

import (
	"escritorio_app_go/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		remaining int
		expected  models.DeadlineBucket
	}{
		{-30, models.DeadlineOverdue},
		{-1, models.DeadlineOverdue},
		{0, models.DeadlineCritical},
		{2, models.DeadlineCritical},
		{3, models.DeadlineAttention},
		{5, models.DeadlineAttention},
		{6, models.DeadlineNormal},
		{120, models.DeadlineNormal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BucketFor(tt.remaining), "remaining=%d", tt.remaining)
	}
}

func TestClassifyDeadline(t *testing.T) {
	today := time.Date(2025, 6, 20, 15, 45, 0, 0, time.UTC)
	notice := today.AddDate(0, 0, -10)

	t.Run("Attention when five days remain", func(t *testing.T) {
		got := ClassifyDeadline(notice, 15, today)
		assert.Equal(t, "2025-06-25", FormatDate(got.PrazoFinal))
		assert.Equal(t, 5, got.DiasRestantes)
		assert.Equal(t, models.DeadlineAttention, got.Bucket)
	})

	t.Run("Overdue when deadline passed", func(t *testing.T) {
		got := ClassifyDeadline(notice, 8, today)
		assert.Equal(t, "2025-06-18", FormatDate(got.PrazoFinal))
		assert.Equal(t, -2, got.DiasRestantes)
		assert.Equal(t, models.DeadlineOverdue, got.Bucket)
	})

	t.Run("Deadline today is critical", func(t *testing.T) {
		got := ClassifyDeadline(notice, 10, today)
		assert.Equal(t, 0, got.DiasRestantes)
		assert.Equal(t, models.DeadlineCritical, got.Bucket)
	})

	t.Run("Crosses month boundary", func(t *testing.T) {
		got := ClassifyDeadline(time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC), 15, today)
		assert.Equal(t, "2025-02-09", FormatDate(got.PrazoFinal))
		assert.Equal(t, models.DeadlineOverdue, got.Bucket)
	})
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 2, 27, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(a, b)) // leap year
	assert.Equal(t, -3, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}
