package main

import (
	"bufio"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jafar554/satr-panel/internal/app"
	"github.com/jafar554/satr-panel/internal/clock"
	"github.com/jafar554/satr-panel/internal/config"
	"github.com/jafar554/satr-panel/internal/kv"
	"github.com/jafar554/satr-panel/internal/notify"
	transporthttp "github.com/jafar554/satr-panel/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.Default()
	loadEnvFile(logger)

	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.AdminPassword == config.DefaultAdminPassword {
		logger.Printf("WARN: ADMIN_PASSWORD not set, using the default password")
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := kv.OpenSQLite(startupCtx, cfg.StoragePath)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer store.Close()

	center := notify.NewCenter(clock.NewSystem())

	sessionSvc, err := app.NewSessionService(startupCtx, store, cfg.AdminPassword,
		app.WithSessionNotifier(center))
	if err != nil {
		log.Fatalf("init session: %v", err)
	}

	restaurantSvc := app.NewRestaurantService(store, sessionSvc, app.WithNotifier(center))
	recovered, err := restaurantSvc.Load(startupCtx)
	if err != nil {
		log.Fatalf("load restaurants: %v", err)
	}
	if recovered {
		logger.Printf("WARN: stored restaurant data was unreadable, restored defaults")
	}

	searchSvc := app.NewSearchService(restaurantSvc)

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn := notify.NewSignal(true)
	watcher := notify.NewWatcher(center, true)
	go watcher.Run(stopCtx, conn)

	if cfg.ProbeURL != "" {
		prober := notify.NewProber(cfg.ProbeURL, cfg.ProbeInterval, conn)
		go prober.Run(stopCtx)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/restaurants", transporthttp.HandleRestaurants(restaurantSvc, sessionSvc))
	mux.Handle("/restaurants/", transporthttp.HandleRestaurantByID(restaurantSvc, sessionSvc))
	mux.Handle("/search", transporthttp.HandleSearch(searchSvc))
	mux.Handle("/session", transporthttp.HandleSession(sessionSvc))
	mux.Handle("/session/", transporthttp.HandleSession(sessionSvc))
	mux.Handle("/notifications", transporthttp.HandleNotifications(center))
	mux.Handle("/status", transporthttp.HandleStatus(watcher))
	mux.Handle("/", transporthttp.NotFoundHandler())

	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, mux), logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	log.Printf("panel listening on :%s", cfg.Port)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	case <-stopCtx.Done():
		log.Printf("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server shutdown error: %v", err)
	}
	log.Printf("server stopped")
}

func loadEnvFile(logger *log.Logger) {
	path, err := findEnvFile()
	if err != nil {
		logger.Printf("WARN: failed to locate .env: %v", err)
		return
	}
	if path == "" {
		return
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Printf("WARN: failed to open %s: %v", path, err)
		return
	}
	if err := parseEnvFile(logger, file); err != nil {
		logger.Printf("WARN: failed to load %s: %v", path, err)
	} else {
		logger.Printf("loaded env from %s", path)
	}
	_ = file.Close()
}

func findEnvFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for i := 0; i < 6; i++ {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}

func parseEnvFile(logger *log.Logger, file *os.File) error {
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}
		value = trimQuotes(value)
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			logger.Printf("WARN: failed to set %s from env file", key)
		}
	}
	return scanner.Err()
}

func trimQuotes(value string) string {
	if len(value) < 2 {
		return value
	}
	if (value[0] == '"' && value[len(value)-1] == '"') ||
		(value[0] == '\'' && value[len(value)-1] == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
