package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/naimkchao/barbershop-backend/internal/config"
	"github.com/naimkchao/barbershop-backend/internal/db"
	"github.com/naimkchao/barbershop-backend/internal/infra/cache"
	"github.com/naimkchao/barbershop-backend/internal/infra/storage"
	"github.com/naimkchao/barbershop-backend/internal/jobs"
	"github.com/naimkchao/barbershop-backend/internal/middleware"
	"github.com/naimkchao/barbershop-backend/internal/notify"
	"github.com/naimkchao/barbershop-backend/internal/routes"
	"github.com/naimkchao/barbershop-backend/internal/timezone"
)

func main() {
	cfg := config.Load()

	loc := timezone.Location(cfg.Timezone)

	database := db.NewDB(cfg)
	catalogCache := cache.New(cfg.RedisAddr)
	mediaStorage := storage.NewS3Storage(cfg)
	notifier := notify.New(cfg, loc)

	reminders := jobs.NewReminderJob(database, notifier, loc)
	reminders.StartScheduler()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	routes.RegisterRoutes(r, routes.Deps{
		DB:       database,
		Cfg:      cfg,
		Cache:    catalogCache,
		Storage:  mediaStorage,
		Notifier: notifier,
		Loc:      loc,
	})

	log.Printf("listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
