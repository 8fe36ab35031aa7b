package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "fundcircle-backend/internal/adapter/http"
	"fundcircle-backend/internal/adapter/middleware"
	"fundcircle-backend/internal/adapter/repository/mysql"
	"fundcircle-backend/internal/config"
	"fundcircle-backend/internal/infrastructure/cache"
	"fundcircle-backend/internal/infrastructure/db"
	authUC "fundcircle-backend/internal/usecase/auth"
	backupUC "fundcircle-backend/internal/usecase/backup"
	depositUC "fundcircle-backend/internal/usecase/deposit"
	loanUC "fundcircle-backend/internal/usecase/loan"
	requestUC "fundcircle-backend/internal/usecase/loanrequest"
	portfolioUC "fundcircle-backend/internal/usecase/portfolio"
	userUC "fundcircle-backend/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// repositories + unit of work
	users := mysql.NewUserRepository(gdb)
	deposits := mysql.NewDepositRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	requests := mysql.NewLoanRequestRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// usecases
	sessions := cache.NewSessionStore(rdb)
	auth := authUC.NewUsecase(users, sessions, cfg.JWTSecret, cfg.SessionTTL)
	usersSvc := userUC.NewUsecase(users)
	depositsSvc := depositUC.NewUsecase(deposits, tx)
	loansSvc := loanUC.NewUsecase(loans, tx)
	requestsSvc := requestUC.NewUsecase(requests, tx)
	portfolioSvc := portfolioUC.NewUsecase(users, deposits, loans, rdb)
	backupSvc := backupUC.NewUsecase(tx)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(auth, usersSvc)
	userH := httpadp.NewUserHandler(usersSvc)
	depositH := httpadp.NewDepositHandler(depositsSvc)
	loanH := httpadp.NewLoanHandler(loansSvc)
	requestH := httpadp.NewLoanRequestHandler(requestsSvc)
	portfolioH := httpadp.NewPortfolioHandler(portfolioSvc)
	backupH := httpadp.NewBackupHandler(backupSvc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// public
	e.GET("/health", h.Health)
	e.POST("/signup", authH.Signup)
	e.POST("/login", authH.Login)

	// everything else sits behind a live session
	sess := middleware.RequireSession(auth)
	admin := middleware.RequireAdmin()
	idemp := middleware.Idempotency(rdb, cfg.IdempTTL)

	authed := e.Group("", sess)
	authed.POST("/logout", authH.Logout)
	authed.PATCH("/me", userH.UpdateProfile)

	// member self-service
	authed.GET("/me/deposits", depositH.ListMine)
	authed.GET("/me/loans", loanH.ListMine)
	authed.GET("/me/loan-requests", requestH.ListMine)
	authed.POST("/loan-requests", requestH.Submit, idemp)

	// admin management
	mgmt := e.Group("", sess, admin)
	mgmt.GET("/users", userH.List)
	mgmt.PATCH("/users/:user_id/status", userH.Review, idemp)

	mgmt.GET("/deposits", depositH.List)
	mgmt.POST("/deposits", depositH.Add, idemp)
	mgmt.PUT("/deposits/:deposit_id", depositH.Update, idemp)
	mgmt.DELETE("/deposits/:deposit_id", depositH.Delete, idemp)

	mgmt.GET("/loans", loanH.List)
	mgmt.GET("/loans/:loan_id", loanH.Get)
	mgmt.POST("/loans", loanH.Issue, idemp)
	mgmt.PUT("/loans/:loan_id", loanH.Reissue, idemp)
	mgmt.DELETE("/loans/:loan_id", loanH.Delete, idemp)
	mgmt.POST("/loans/:loan_id/installments/:installment_id/pay", loanH.PayInstallment, idemp)

	mgmt.GET("/loan-requests", requestH.List)
	mgmt.POST("/loan-requests/:request_id/approve", requestH.Approve, idemp)
	mgmt.POST("/loan-requests/:request_id/reject", requestH.Reject, idemp)

	mgmt.GET("/portfolio/summary", portfolioH.Summary)
	mgmt.GET("/portfolio/contributions", portfolioH.Contributions)
	mgmt.GET("/portfolio/loans/:loan_id/outstanding", portfolioH.Outstanding)

	mgmt.GET("/backup", backupH.Export)
	mgmt.POST("/restore", backupH.Restore, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
