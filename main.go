// Psychro: moist-air state service.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"Psychro/internal/auth"
	"Psychro/internal/calc/export"
	"Psychro/internal/calc/point"
	"Psychro/internal/calc/premium/batch"
	"Psychro/internal/calc/premium/importer"
	"Psychro/internal/calc/pressure"
	"Psychro/internal/calc/process"
	"Psychro/internal/calc/report"
	chartpkg "Psychro/internal/chart"
	"Psychro/internal/profile"
	"Psychro/internal/repo"
	"Psychro/internal/session"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func setupLogger() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	h := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(h).With("app", "psychro"))
}

func HandleList(router *mux.Router, userRepo repo.Repository) {
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		slog.Error("TOKEN_KEY environment variable is not set")
		os.Exit(1)
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Repo: userRepo}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureAPI := api.PathPrefix("/user").Subrouter()
	secureAPI.Use(authEnv.Middleware)

	profileH := &profile.Handler{Repo: userRepo}
	secureAPI.HandleFunc("/prefs", profileH.GetPreferences).Methods("GET")
	secureAPI.HandleFunc("/prefs", profileH.UpdatePreferences).Methods("PUT", "PATCH")

	pressureH := &pressure.Handler{}
	pointH := &point.Handler{}
	chartH := &chartpkg.Handler{}
	processH := &process.Handler{}
	exportH := &export.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	reportH := &report.Handler{}

	secureAPI.HandleFunc("/tools/pressure/calc", pressureH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/point/calc", pointH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/chart/generate", chartH.Generate).Methods("POST")
	secureAPI.HandleFunc("/tools/chart/export/csv", exportH.CSV).Methods("POST")
	secureAPI.HandleFunc("/tools/chart/export/xlsx", exportH.XLSX).Methods("POST")
	secureAPI.HandleFunc("/tools/process/calc", processH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/batch/points", batchH.Points).Methods("POST")
	secureAPI.HandleFunc("/tools/import/points", importerH.Points).Methods("POST")
	secureAPI.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	sessionH := &session.Handler{Store: session.NewStore()}
	secureAPI.HandleFunc("/session", sessionH.Get).Methods("GET")
	secureAPI.HandleFunc("/session/altitude", sessionH.Altitude).Methods("POST")
	secureAPI.HandleFunc("/session/inputs", sessionH.Inputs).Methods("POST")
	secureAPI.HandleFunc("/session/click", sessionH.Click).Methods("POST")
	secureAPI.HandleFunc("/session/clear", sessionH.Clear).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// A .env file is optional; the environment itself may carry the config.
	_ = godotenv.Load()
	setupLogger()

	db := auth.InitDB()
	defer db.Close()
	userRepo := repo.NewPostgresUserDB(db)

	router := mux.NewRouter()
	HandleList(router, userRepo)
	handler := CORS(router)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")

	wg.Wait()
}
