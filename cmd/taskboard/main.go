package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/app"
	"taskboard/internal/config"
	"taskboard/internal/notify"
	"taskboard/internal/report"
	"taskboard/internal/repository"
	"taskboard/internal/schedule"
	"taskboard/internal/session"
	"taskboard/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	remote := repository.NewRemote(db)
	provider := session.NewStaticProvider(cfg.OwnerID, cfg.OwnerEmail)

	board := app.New(provider, store.NewDemo(), func(owner string) store.Backend {
		return remote.WithOwner(owner)
	})

	if cfg.Demo {
		if err := board.EnterDemo(ctx); err != nil {
			log.Fatalf("enter demo: %v", err)
		}
		log.Println("[info] running in demo mode")
	} else {
		if err := board.Start(ctx); err != nil {
			log.Fatalf("start: %v", err)
		}
		log.Printf("[info] session mode: %s", board.Mode())
	}

	var notifier notify.Notifier = notify.Log{}
	if cfg.TelegramToken != "" {
		notifier, err = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("notifier: %v", err)
		}
	}

	sendDigest := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := board.Load(jobCtx); err != nil {
			log.Printf("[warn] digest reload: %v", err)
			return
		}
		text := report.Digest(board.Projects(), board.Tasks(), time.Now())
		if err := notifier.Send(text); err != nil {
			log.Printf("[warn] digest send: %v", err)
		}
	}

	scheduler := schedule.New(time.Local)
	if cfg.ReportTime != "" {
		if _, err := scheduler.ScheduleDaily(cfg.ReportTime, sendDigest); err != nil {
			log.Fatalf("schedule digest: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	} else if cfg.ReportInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.ReportInterval, sendDigest); err != nil {
			log.Fatalf("schedule digest: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	sendDigest()

	log.Println("Taskboard started.")
	<-ctx.Done()
	log.Println("Shutdown complete.")
}
