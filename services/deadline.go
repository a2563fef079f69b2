package services

import (
	"escritorio_app_go/models"
	"time"
)

// Bucket thresholds, in days remaining
const (
	CriticalDays  = 2
	AttentionDays = 5
)

// DeadlineResult is the outcome of classifying one deadline
type DeadlineResult struct {
	PrazoFinal    time.Time
	DiasRestantes int
	Bucket        models.DeadlineBucket
}

// ClassifyDeadline computes the deadline date (notice + days, in calendar
// days) and the bucket for the days remaining until it as of today.
func ClassifyDeadline(notice time.Time, days int, today time.Time) DeadlineResult {
	prazoFinal := DateOnly(notice).AddDate(0, 0, days)
	remaining := DaysBetween(DateOnly(today), prazoFinal)

	return DeadlineResult{
		PrazoFinal:    prazoFinal,
		DiasRestantes: remaining,
		Bucket:        BucketFor(remaining),
	}
}

// BucketFor maps days remaining to a deadline bucket
func BucketFor(remaining int) models.DeadlineBucket {
	switch {
	case remaining < 0:
		return models.DeadlineOverdue
	case remaining <= CriticalDays:
		return models.DeadlineCritical
	case remaining <= AttentionDays:
		return models.DeadlineAttention
	default:
		return models.DeadlineNormal
	}
}

// DaysBetween returns the whole calendar days from a to b (negative when b is earlier)
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
