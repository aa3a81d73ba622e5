package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"memories-backend/internal/config"
	"memories-backend/internal/database"
	"memories-backend/internal/handlers"
	"memories-backend/internal/middleware"
	"memories-backend/internal/repository"
	"memories-backend/internal/services"
	"memories-backend/internal/storage"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	memoryRepo := repository.NewMemoryPostgres(db)
	userRepo := repository.NewUserPostgres(db)
	fileStore := storage.NewDiskStore(cfg.UploadDir)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)
	authHandler := handlers.NewAuthHandler(services.NewAuthService(userRepo, cfg.JWTSecret))
	memoryHandler := handlers.NewMemoryHandler(services.NewMemoryService(memoryRepo))
	uploadHandler := handlers.NewUploadHandler(services.NewUploadService(fileStore), cfg.MaxUploadSize)

	router := http.NewServeMux()

	router.HandleFunc("POST /auth/register", authHandler.Register)
	router.HandleFunc("POST /auth/login", authHandler.Login)

	router.Handle("GET /memories", authMiddleware.RequireAuth(http.HandlerFunc(memoryHandler.List)))
	router.Handle("POST /memories", authMiddleware.RequireAuth(http.HandlerFunc(memoryHandler.Create)))
	router.Handle("GET /memories/{id}", authMiddleware.RequireAuth(http.HandlerFunc(memoryHandler.Get)))
	router.Handle("PUT /memories/{id}", authMiddleware.RequireAuth(http.HandlerFunc(memoryHandler.Update)))
	router.Handle("DELETE /memories/{id}", authMiddleware.RequireAuth(http.HandlerFunc(memoryHandler.Delete)))

	router.HandleFunc("POST /upload", uploadHandler.Upload)
	router.HandleFunc("DELETE /upload/{fileName}", uploadHandler.Delete)

	// Stored uploads are served back byte-for-byte under /uploads/.
	router.Handle("GET "+handlers.StaticPrefix,
		http.StripPrefix(handlers.StaticPrefix, http.FileServer(http.Dir(cfg.UploadDir))))

	handler := corsMiddleware(cfg.AllowedOrigin, requestLogger(logger, router))

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	logger.Info("server listening", "addr", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func corsMiddleware(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
