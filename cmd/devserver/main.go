// Command devserver runs a stub PrimeForm backend for local client
// development: real auth (bcrypt + JWT) and real presigned photo URLs, but
// all state in memory and trainer replies canned. It serves exactly the
// endpoint shapes the client core consumes.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/config"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting PrimeForm dev server...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		// Dev-only default.
		cfg.JWT.Secret = "primeform-dev-secret"
	}

	// Photo storage is optional: without S3 credentials the photo
	// endpoints respond 503 and everything else still works.
	var photoStorage storage.PhotoStorage
	if cfg.S3.BucketName != "" {
		photoStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
		log.Printf("Photo storage ready (bucket %s)", cfg.S3.BucketName)
	} else {
		log.Println("No S3 bucket configured; photo endpoints disabled")
	}

	srv := newDevServer(cfg, photoStorage)

	router := gin.Default()
	srv.registerRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()
	log.Printf("Dev server listening on %s", cfg.Server.Address)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}
	log.Println("Dev server exiting.")
}
