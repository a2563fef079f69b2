package jobs

import (
	"escritorio_app_go/config"
	"escritorio_app_go/models"
	"escritorio_app_go/services"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DeadlineSource is the part of the ledger the digest reads
type DeadlineSource interface {
	ComputeDeadlines() []models.Prazo
}

// StartScheduler registers the background jobs and starts the cron runner.
// The deadline digest runs on DIGEST_SCHEDULE; expired sessions are purged
// hourly when a session database is open.
func StartScheduler(ledger DeadlineSource, database *gorm.DB, cfg *config.Config) (*cron.Cron, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("[CRON] Unknown timezone %q, using UTC: %v", cfg.Timezone, err)
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	if cfg.DigestEnabled() {
		_, err := c.AddFunc(cfg.DigestSchedule, func() {
			log.Println("[CRON] Running deadline digest...")
			if _, err := RunDeadlineDigest(ledger, cfg, time.Now().In(loc)); err != nil {
				log.Printf("[CRON] Deadline digest failed: %v", err)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("invalid DIGEST_SCHEDULE %q: %w", cfg.DigestSchedule, err)
		}
	}

	if database != nil {
		_, err := c.AddFunc("@hourly", func() {
			if err := services.CleanupExpiredSessions(database); err != nil {
				log.Printf("[CRON] Session cleanup failed: %v", err)
			}
		})
		if err != nil {
			return nil, err
		}
	}

	c.Start()
	log.Printf("[CRON] Scheduler started with %d job(s)", len(c.Entries()))
	return c, nil
}

// RunDeadlineDigest emails the overdue and critical deadlines to the
// configured recipients. It reports whether an email went out.
func RunDeadlineDigest(ledger DeadlineSource, cfg *config.Config, now time.Time) (bool, error) {
	if len(cfg.DigestRecipients) == 0 {
		log.Println("[CRON] No DIGEST_RECIPIENTS configured, skipping digest")
		return false, nil
	}

	email, err := services.BuildDeadlineDigestEmail(cfg.DigestRecipients, ledger.ComputeDeadlines(), now)
	if err != nil {
		return false, err
	}
	if email == nil {
		log.Println("[CRON] No overdue or critical deadlines, nothing to send")
		return false, nil
	}

	if err := services.SendEmail(cfg, email); err != nil {
		return false, err
	}

	log.Printf("[CRON] Deadline digest sent to %d recipient(s)", len(email.To))
	return true, nil
}
