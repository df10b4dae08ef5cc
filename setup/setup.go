package setup

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-server/config"
	"campus-server/db"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func MustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	return cfg
}

func MustInitDb(cfg *config.Config) *db.Store {
	conn, err := db.Connect()
	if err != nil {
		log.Fatal("Error initializing database: ", err)
	}

	if err := db.MigrationsUp(conn, cfg.MigrationsDir); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	store := db.NewStore(conn)

	if err := store.SeedClubAdmins(context.Background()); err != nil {
		log.Fatal("Error seeding club admins: ", err)
	}

	return store
}

func StartServer(cfg *config.Config, r *mux.Router) {
	if cfg.Env == "development" {
		log.Println("In development mode.")
	}

	handler := gorilla.CORS(
		gorilla.AllowedOrigins(cfg.CorsOrigins),
		gorilla.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilla.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: gorilla.LoggingHandler(os.Stdout, handler),
	}

	go func() {
		log.Println("Started server on port " + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server on port %s: %v", cfg.Port, err)
		}
	}()

	sigTermChan := make(chan os.Signal, 1)
	signal.Notify(sigTermChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigTermChan

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v\n", err)
	}
}
