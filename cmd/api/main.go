package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Lex0104/Saphir/internal/cache"
	"github.com/Lex0104/Saphir/internal/config"
	dbpkg "github.com/Lex0104/Saphir/internal/db"
	infraRepo "github.com/Lex0104/Saphir/internal/infra/repository"
	"github.com/Lex0104/Saphir/internal/middleware"
	"github.com/Lex0104/Saphir/internal/notify"
	"github.com/Lex0104/Saphir/internal/routes"
	"github.com/Lex0104/Saphir/internal/sweep"
	"github.com/Lex0104/Saphir/internal/timezone"
)

func newMailer(cfg *config.Config) notify.Mailer {
	if cfg.SMTPAddr != "" {
		return notify.SMTPMailer{Addr: cfg.SMTPAddr, From: cfg.MailFrom}
	}
	return notify.LogMailer{}
}

// newQueue prefers the durable AMQP queue and falls back to the in-process
// worker pool when no broker is configured. With AMQP, a delivery consumer
// runs alongside the server.
func newQueue(ctx context.Context, cfg *config.Config, mailer notify.Mailer) notify.Queue {
	if cfg.AMQPUrl == "" {
		return notify.NewChanQueue(mailer, 2)
	}

	queue, err := notify.NewAMQPQueue(cfg.AMQPUrl)
	if err != nil {
		log.WithError(err).Warn("amqp unavailable, using in-process mail queue")
		return notify.NewChanQueue(mailer, 2)
	}

	consumer := notify.NewMailConsumer(cfg.AMQPUrl, "saphir.mail.delivery", mailer)
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("mail consumer stopped")
		}
	}()

	return queue
}

func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := cache.NewRedis(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := newMailer(cfg)
	queue := newQueue(ctx, cfg, mailer)

	// periodic expiry + reminder sweeps
	repo := infraRepo.NewReservationGormRepository(db)
	sweeper := sweep.NewSweeper(repo, queue, timezone.Location(cfg.Timezone))
	go func() {
		if err := sweep.NewScheduler(sweeper).Run(ctx); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("sweep scheduler stopped")
		}
	}()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, queue, rdb)

	log.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
