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

	"github.com/joho/godotenv"

	"taskflow/internal/clock"
	"taskflow/internal/config"
	"taskflow/internal/model"
	"taskflow/internal/recurrence"
	"taskflow/internal/server"
	"taskflow/internal/storage"
	"taskflow/internal/store"
)

func main() {
	// Optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load("taskflow.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := log.Default()
	repo := storage.NewFileRepo(cfg.DataFile)

	st := store.New(store.Options{
		Clock:     clock.RealClock{},
		Persister: repo,
		Logger:    logger,
		UndoDepth: cfg.Undo.MaxDepth,
	})
	st.Load(loadOrSeed(repo, logger))

	handler, err := server.NewHandler(server.Options{
		Store:  st,
		Clock:  clock.RealClock{},
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := recurrence.NewScheduler(st, clock.RealClock{}, time.Duration(cfg.Scheduler.IntervalSeconds)*time.Second, logger)
	go sched.Run(ctx)

	srv := &http.Server{Addr: cfg.Addr, Handler: handler}
	go func() {
		logger.Printf("listening on http://localhost%s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("[warn] shutdown: %v", err)
	}
}

// loadOrSeed reads the persisted collection, falling back to the demo seed on
// first run or when the blob is unreadable. A corrupt file is left on disk
// for inspection; the next successful save overwrites it.
func loadOrSeed(repo *storage.FileRepo, logger *log.Logger) []model.Project {
	projects, ok, err := repo.Load()
	if err != nil {
		logger.Printf("[warn] load %s: %v, starting from seed", repo.Path(), err)
		return store.SeedProjects()
	}
	if !ok {
		logger.Printf("no data file at %s, starting from seed", repo.Path())
		return store.SeedProjects()
	}
	return projects
}
