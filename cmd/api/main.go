package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catfoodtracker "github.com/RaoulHolzer/cat-food-tracker/internal"
	"github.com/RaoulHolzer/cat-food-tracker/internal/config"
	"github.com/RaoulHolzer/cat-food-tracker/internal/repositories"
	"github.com/RaoulHolzer/cat-food-tracker/internal/services"
	"github.com/RaoulHolzer/cat-food-tracker/internal/sessions"
	"github.com/RaoulHolzer/cat-food-tracker/internal/storage"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	db := initDBConnection(cfg.DBDSN)
	defer db.Close()

	if err := storage.RunMigrations(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	catRepo := repositories.NewMySQLCatRepository(db)
	feedingRepo := repositories.NewMySQLFeedingRepository(db)
	purchaseRepo := repositories.NewMySQLCanPurchaseRepository(db)

	sessionStore := sessions.NewMemoryStore(cfg.SessionTTL)
	authService := services.NewDefaultAuthService(sessionStore, cfg.AppUsername, cfg.AppPassword)
	catService := services.NewDefaultCatService(catRepo, feedingRepo)
	feedingService := services.NewDefaultFeedingService(feedingRepo)
	purchaseService := services.NewDefaultCanPurchaseService(purchaseRepo)

	server := catfoodtracker.NewServer(cfg, authService, catService, feedingService, purchaseService)

	go func() {
		log.Printf("listening on port %s", cfg.Port)
		if err := server.Run(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDBConnection(dsn string) *sql.DB {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal(err)
	}
	db.SetConnMaxLifetime(time.Minute * 3)
	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(10)
	return db
}
