package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"fundcircle-backend/internal/adapter/repository/mysql"
	"fundcircle-backend/internal/config"
	"fundcircle-backend/internal/infrastructure/cache"
	"fundcircle-backend/internal/infrastructure/db"
	portfolioUC "fundcircle-backend/internal/usecase/portfolio"
)

func main() {
	log.Println("starting portfolio scheduler...")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	portfolio := portfolioUC.NewUsecase(
		mysql.NewUserRepository(gdb),
		mysql.NewDepositRepository(gdb),
		mysql.NewLoanRepository(gdb),
		rdb,
	)

	c := cron.New(cron.WithSeconds())

	// Daily refresh of the cached portfolio snapshot (runs at midnight UTC).
	if _, err := c.AddFunc("0 0 0 * * *", func() { refreshSummary(portfolio) }); err != nil {
		log.Fatalf("schedule summary refresh: %v", err)
	}
	// Daily overdue-installment report (runs right after the refresh).
	if _, err := c.AddFunc("0 5 0 * * *", func() { reportOverdue(portfolio) }); err != nil {
		log.Fatalf("schedule overdue report: %v", err)
	}

	c.Start()
	log.Println("scheduler started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down scheduler...")
	c.Stop()
	log.Println("scheduler stopped")
}

func refreshSummary(portfolio *portfolioUC.Usecase) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := portfolio.RefreshSummary(ctx)
	if err != nil {
		log.Printf("summary refresh failed: %v", err)
		return
	}
	log.Printf("portfolio snapshot refreshed: balance=%s members=%d", s.CurrentBalance, s.TotalMembers)
}

func reportOverdue(portfolio *portfolioUC.Usecase) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := portfolio.OverdueCount(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("overdue count failed: %v", err)
		return
	}
	log.Printf("overdue installments: %d", n)
}
