package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/agendly-app/booking-api/internal/domain/booking"
	"github.com/agendly-app/booking-api/internal/models"
	"github.com/agendly-app/booking-api/internal/timezone"
)

// Completer sweeps scheduled bookings whose end already passed and
// marks them completed, so staff day views and conflict data stay
// tidy without manual bookkeeping. Legacy rows without end_time are
// skipped; those are completed manually through the staff surface.
type Completer struct {
	db   *gorm.DB
	cron *cron.Cron
}

func NewCompleter(db *gorm.DB) *Completer {
	return &Completer{
		db:   db,
		cron: cron.New(),
	}
}

func (j *Completer) Start() {
	// hourly; the sweep is idempotent
	if _, err := j.cron.AddFunc("@hourly", j.Run); err != nil {
		log.Fatalf("failed to schedule booking completer: %v", err)
	}
	j.cron.Start()
}

func (j *Completer) Stop() {
	j.cron.Stop()
}

func (j *Completer) Run() {
	now := timezone.Now()
	grace := now.Add(-1 * time.Hour)

	res := j.db.
		Model(&models.Booking{}).
		Where(
			"status = ? AND end_time IS NOT NULL AND end_time < ?",
			string(booking.StatusScheduled), grace,
		).
		Updates(map[string]any{
			"status":       string(booking.StatusCompleted),
			"completed_at": now,
		})

	if res.Error != nil {
		log.Println("booking completer error:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("booking completer: marked %d bookings completed", res.RowsAffected)
	}
}
