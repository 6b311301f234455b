package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"

	"github.com/Williamriis/bookshelf-api/configs"
	"github.com/Williamriis/bookshelf-api/internal/daemon"
	"github.com/Williamriis/bookshelf-api/internal/db"
	"github.com/Williamriis/bookshelf-api/internal/handlers"
	"github.com/Williamriis/bookshelf-api/internal/middleware"
	"github.com/Williamriis/bookshelf-api/internal/seed"
	"github.com/Williamriis/bookshelf-api/internal/utils"
	logger "github.com/Williamriis/bookshelf-api/loggers"
)

func main() {
	logger.Init()
	cfg := configs.LoadConfig()

	store, err := db.Connect(cfg.MongoURI)
	if err != nil {
		logger.Logger.Fatalf("mongo connect failed: %v", err)
	}

	bookColl := store.GetCollection(cfg.DBName, "books")
	userColl := store.GetCollection(cfg.DBName, "users")
	auditColl := store.GetCollection(cfg.DBName, "audit_logs")

	if cfg.SeedRandom {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		if err := seed.Run(ctx, bookColl, cfg.SeedCount); err != nil {
			logger.Logger.Fatalf("seeding failed: %v", err)
		}
		cancel()
	}

	auditLogger := utils.AuditLogger{Collection: auditColl}

	exporter := &daemon.AuditExporter{
		Coll:     auditColl,
		Interval: time.Duration(cfg.AuditExportInterval) * time.Second,
	}
	exporter.Start()
	defer exporter.Stop()

	r := mux.NewRouter()
	r.Use(middleware.Recovery)
	r.Use(middleware.Cors)
	r.Use(middleware.JSONMiddleware)
	r.Use(middleware.ReadinessGate(store.Ready))

	r.HandleFunc("/", handlers.Home).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"OK"`))
	}).Methods("GET")

	bookHandler := handlers.NewBookHandler(bookColl, auditLogger)
	r.HandleFunc("/books", bookHandler.GetBooks).Methods("GET")
	r.HandleFunc("/books/{id}", bookHandler.GetBook).Methods("GET")
	r.HandleFunc("/books/{id}", bookHandler.RateBook).Methods("PUT")
	r.HandleFunc("/addbook", bookHandler.AddBook).Methods("POST")

	userHandler := handlers.NewUserHandler(userColl, auditLogger)
	r.HandleFunc("/createuser", userHandler.CreateUser).Methods("POST")
	r.HandleFunc("/login", userHandler.Login).Methods("POST")

	var server = http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Logger.Infof("Server starting on port %s", cfg.Port)
		logger.Logger.Fatal(server.ListenAndServe())
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	logger.Logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Fatalf("Graceful shutdown failed: %v", err)
	}
	if err := store.Disconnect(ctx); err != nil {
		logger.Logger.Errorf("Mongo disconnect failed: %v", err)
	}
	logger.Logger.Info("Server shut down.")
}
