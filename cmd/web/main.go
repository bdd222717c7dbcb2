package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"lmsportal/internal/api"
	"lmsportal/internal/httpx"
	"lmsportal/internal/session"
	"lmsportal/internal/web"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	backendURL := mustGetEnv("BACKEND_URL")
	sessionDB := getEnv("SESSION_DB", "data/sessions.db")
	cookieSecret := mustGetEnv("COOKIE_SECRET")
	sessionTTL := getEnvDuration("SESSION_TTL", 12*time.Hour)
	secureCookies := getEnv("SECURE_COOKIES", "false") == "true"
	backendRPS := getEnvInt("BACKEND_RPS", 20)

	store, err := session.OpenStore(sessionDB)
	if err != nil {
		log.Fatalf("cannot open session store (%s): %v", sessionDB, err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if n, err := store.PurgeExpired(ctx, time.Now()); err != nil {
		log.Printf("purge expired sessions: %v", err)
	} else if n > 0 {
		log.Printf("purged %d expired sessions", n)
	}
	cancel()

	sessions := session.NewManager(store, cookieSecret, sessionTTL, secureCookies)
	client := api.NewClient(backendURL, backendRPS)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("cannot parse templates: %v", err)
	}

	handlers := web.Handlers{
		Auth:      web.NewAuthHandler(client, sessions, renderer),
		Admin:     web.NewAdminHandler(client, renderer),
		Student:   web.NewStudentHandler(client, client, client, client, client, renderer),
		Librarian: web.NewLibrarianHandler(client, client, client, client, renderer),
		Reports:   web.NewReportHandler(client, renderer),
	}

	loginLimit := httpx.NewRateLimit(1, 5)
	router := web.NewRouter(handlers, sessions, loginLimit)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/", router)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting portal on %s (backend %s)", serverAddress, backendURL)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustGetEnv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	log.Fatalf("missing required environment variable: %s", key)
	return ""
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
