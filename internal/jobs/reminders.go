package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/naimkchao/barbershop-backend/internal/models"
	"github.com/naimkchao/barbershop-backend/internal/notify"
)

type ReminderJob struct {
	db     *gorm.DB
	notify *notify.Service
	loc    *time.Location
}

func NewReminderJob(db *gorm.DB, n *notify.Service, loc *time.Location) *ReminderJob {
	return &ReminderJob{db: db, notify: n, loc: loc}
}

// StartScheduler sends reminders for tomorrow's confirmed bookings
// every evening at 18:00 salon time.
func (j *ReminderJob) StartScheduler() *cron.Cron {
	c := cron.New(cron.WithLocation(j.loc))

	if _, err := c.AddFunc("0 18 * * *", j.SendTomorrowReminders); err != nil {
		log.Fatalf("failed to schedule reminder job: %v", err)
	}

	c.Start()
	log.Println("reminder scheduler started")
	return c
}

func (j *ReminderJob) SendTomorrowReminders() {
	now := time.Now().In(j.loc)
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, j.loc).AddDate(0, 0, 1)
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var bookings []models.Booking
	if err := j.db.
		Where(
			"status = ? AND start_time >= ? AND start_time < ?",
			"confirmed", tomorrow.UTC(), dayAfter.UTC(),
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		log.Printf("reminder job: failed to list bookings: %v", err)
		return
	}

	if len(bookings) == 0 {
		log.Println("reminder job: nothing to send")
		return
	}

	log.Printf("reminder job: sending %d reminders", len(bookings))
	for i := range bookings {
		j.notify.BookingReminder(&bookings[i])
	}
}
