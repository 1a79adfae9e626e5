package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/montbiel/controle-cozinha-ibft/internal/api"
	"github.com/montbiel/controle-cozinha-ibft/internal/checkin"
	"github.com/montbiel/controle-cozinha-ibft/internal/config"
	"github.com/montbiel/controle-cozinha-ibft/internal/database"
	"github.com/montbiel/controle-cozinha-ibft/internal/estoque"
	"github.com/montbiel/controle-cozinha-ibft/internal/funcionario"
	"github.com/montbiel/controle-cozinha-ibft/internal/prato"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Initialize the SQLite database
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 3. Initialize repositories and the API server
	server := api.NewServer(
		estoque.NewRepository(db.SQL),
		funcionario.NewRepository(db.SQL),
		prato.NewRepository(db.SQL),
		checkin.NewRepository(db.SQL),
		cfg.EstoqueMinimo,
	)

	// 4. Start server with graceful shutdown
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.Handler(),
	}

	go func() {
		log.Printf("Controle de Cozinha API listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
