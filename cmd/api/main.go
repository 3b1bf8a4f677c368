package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/salonops/salon-manager/internal/cache"
	"github.com/salonops/salon-manager/internal/config"
	dbpkg "github.com/salonops/salon-manager/internal/db"
	"github.com/salonops/salon-manager/internal/routes"
	"github.com/salonops/salon-manager/internal/webhook"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := cache.NewRedis(cfg.RedisAddr)
	scheduleCache := cache.NewScheduleCache(rdb)

	notifier := webhook.NewNotifier(cfg.BookingWebhookURL)

	reminders := webhook.NewReminderJob(db, notifier)
	reminders.Start()
	defer reminders.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auditDispatcher := routes.RegisterRoutes(r, db, cfg, scheduleCache, notifier)

	log.Printf("Server running on %s", cfg.Addr())
	err := r.Run(cfg.Addr())

	// flush queued audit events before exiting
	auditDispatcher.Close()

	if err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
