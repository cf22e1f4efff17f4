package common

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"
)

// ShutdownHook runs after a termination signal, before the servers stop.
// Errors are logged and shutdown continues.
type ShutdownHook func(ctx context.Context) error

// RunServersWithShutdown starts every server and blocks until SIGINT or
// SIGTERM. Hooks then run in order, each with its own timeout, and the
// servers are shut down within cfg.Shutdown.
func RunServersWithShutdown(servers []*http.Server, cfg TimeoutConfig, hooks ...ShutdownHook) {
	for _, srv := range servers {
		go func(srv *http.Server) {
			log.Printf("starting server on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("listen error on %s: %v", srv.Addr, err)
			}
		}(srv)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Printf("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown)
	defer cancel()

	for i, h := range hooks {
		if h == nil {
			continue
		}
		hCtx, hCancel := context.WithTimeout(ctx, cfg.Hook)
		if err := h(hCtx); err != nil {
			log.Printf("shutdown hook %d failed: %v", i, err)
		}
		hCancel()
	}

	wg := sync.WaitGroup{}
	for _, srv := range servers {
		wg.Add(1)
		go func(srv *http.Server) {
			defer wg.Done()
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("graceful shutdown of %s failed: %v", srv.Addr, err)
			}
		}(srv)
	}
	wg.Wait()
	log.Printf("shutdown complete")
}

type TimeoutConfig struct {
	ReadHeader time.Duration
	Read       time.Duration
	Write      time.Duration
	Idle       time.Duration
	Shutdown   time.Duration
	Hook       time.Duration
}

func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       15 * time.Second,
		Write:      15 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	}
}

// LoadTimeoutConfig overrides defaults with whole seconds from READ_HEADER_TIMEOUT,
// READ_TIMEOUT, WRITE_TIMEOUT, IDLE_TIMEOUT, SHUTDOWN_TIMEOUT and HOOK_TIMEOUT.
// Unparsable or non positive values are ignored.
func LoadTimeoutConfig(defaults TimeoutConfig) TimeoutConfig {
	return loadTimeoutConfig(defaults, os.Getenv)
}

func loadTimeoutConfig(defaults TimeoutConfig, getenv func(string) string) TimeoutConfig {
	apply := func(curr *time.Duration, env string) {
		if v := getenv(env); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				*curr = time.Duration(n) * time.Second
			}
		}
	}
	apply(&defaults.ReadHeader, "READ_HEADER_TIMEOUT")
	apply(&defaults.Read, "READ_TIMEOUT")
	apply(&defaults.Write, "WRITE_TIMEOUT")
	apply(&defaults.Idle, "IDLE_TIMEOUT")
	apply(&defaults.Shutdown, "SHUTDOWN_TIMEOUT")
	apply(&defaults.Hook, "HOOK_TIMEOUT")
	return defaults
}

func NewServer(addr string, handler http.Handler, cfg TimeoutConfig) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeader,
		ReadTimeout:       cfg.Read,
		WriteTimeout:      cfg.Write,
		IdleTimeout:       cfg.Idle,
	}
}
