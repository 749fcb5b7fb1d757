package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/logger"

	api "github.com/mind-engage/mindengage-rounds/internal/api/http"
	auth "github.com/mind-engage/mindengage-rounds/internal/auth/middleware"
	"github.com/mind-engage/mindengage-rounds/internal/config"
	"github.com/mind-engage/mindengage-rounds/internal/exercise"
	"github.com/mind-engage/mindengage-rounds/internal/form"
	"github.com/mind-engage/mindengage-rounds/internal/grading"
	"github.com/mind-engage/mindengage-rounds/internal/hub"
	"github.com/mind-engage/mindengage-rounds/internal/item"
	"github.com/mind-engage/mindengage-rounds/internal/journal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logOut := io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		logOut = f
	}
	defer logger.Init("roundd", cfg.LogVerbose, false, logOut).Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Exercises ---
	catalog, err := item.OpenCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Fatalf("catalog: %v", err)
	}
	policy, err := grading.ParsePolicy(cfg.MatchPolicy)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	overflow, err := form.ParseOverflow(cfg.NameOverflow)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	reg := exercise.NewRegistry(
		exercise.NewTrivia(catalog, exercise.TriviaOptions{
			NameMaxLen:   cfg.NameMaxLen,
			NameOverflow: overflow,
			Policy:       policy,
		}),
		exercise.NewGreeting(),
	)

	// --- Journal ---
	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	j, err := journal.Open(openCtx, cfg.JournalDriver, cfg.JournalDSN)
	cancel()
	if err != nil {
		logger.Fatalf("journal open failed: %v", err)
	}
	defer j.Close()

	h := hub.New(reg, hub.WithJournal(j))
	go h.Run(ctx, time.Minute, cfg.SessionIdleTTL)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.AdminPassHash == "" {
		logger.Warning("ADMIN_PASS_HASH not set; admin login disabled")
	}
	api.Mount(r, api.Deps{
		Hub:           h,
		Auth:          auth.NewAuthService(cfg.AuthSecret, cfg.TokenTTL),
		Journal:       j,
		AdminUser:     cfg.AdminUser,
		AdminPassHash: cfg.AdminPassHash,
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("listening on %s (mode=%s, journal=%s, kinds=%v)", cfg.HTTPAddr, cfg.Mode, cfg.JournalDriver, reg.Kinds())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("server: %v", err)
	}
	logger.Info("server closed")
}
