package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matst80/humidor/pkg/common"
	"github.com/matst80/humidor/pkg/messaging"
	"github.com/matst80/humidor/pkg/server"
	"github.com/matst80/humidor/pkg/storage"
	"github.com/matst80/humidor/pkg/tracking"
)

var enableProfiling = flag.Bool("profiling", false, "enable profiling endpoints")
var catalogFolder = envOrDefault("CATALOG_FOLDER", "data")
var catalogFile = envOrDefault("CATALOG_FILE", "catalog.json")
var site = envOrDefault("SITE", "lounge")
var rabbitUrl = os.Getenv("RABBIT_URL")
var redisUrl = os.Getenv("REDIS_URL")
var redisPassword = os.Getenv("REDIS_PASSWORD")
var listenAddress = envOrDefault("LISTEN_ADDRESS", ":8080")
var debugAddress = envOrDefault("DEBUG_ADDRESS", ":8081")

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func main() {
	flag.Parse()
	var ready atomic.Bool

	db := storage.NewDiskStorage(catalogFolder)
	items, err := db.LoadCatalog(catalogFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	srv := server.NewWebServer(items)
	hooks := []common.ShutdownHook{}

	if redisUrl != "" {
		cache := server.NewRedisCache(redisUrl, redisPassword, 0)
		if err := cache.Ping(context.Background()); err != nil {
			log.Printf("Redis not reachable, running without cache: %v", err)
			_ = cache.Close()
		} else {
			srv.Cache = cache
			hooks = append(hooks, func(ctx context.Context) error { return cache.Close() })
			log.Printf("Response cache enabled, url: %s", redisUrl)
		}
	}

	if rabbitUrl != "" {
		trk, err := tracking.NewRabbitTracking(rabbitUrl, site)
		if err != nil {
			log.Printf("Failed to create rabbit tracking: %v", err)
		} else {
			srv.Tracking = trk
			hooks = append(hooks, func(ctx context.Context) error { return trk.Close() })
		}
		conn, err := listenForCatalogChanges(db, srv)
		if err != nil {
			log.Printf("Failed to listen for catalog changes: %v", err)
		} else {
			hooks = append(hooks, func(ctx context.Context) error { return conn.Close() })
		}
	}
	ready.Store(true)

	timeouts := common.LoadTimeoutConfig(common.DefaultTimeoutConfig())

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", srv.ClientHandler()))

	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if !ready.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	debugMux.Handle("/metrics", promhttp.Handler())
	if *enableProfiling {
		log.Println("Profiling enabled")
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}

	common.RunServersWithShutdown([]*http.Server{
		common.NewServer(listenAddress, mux, timeouts),
		common.NewServer(debugAddress, debugMux, timeouts),
	}, timeouts, hooks...)
}

// listenForCatalogChanges reloads the catalog when the converter announces a new file.
func listenForCatalogChanges(db *storage.DiskStorage, srv *server.WebServer) (*amqp.Connection, error) {
	conn, err := amqp.Dial(rabbitUrl)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err = messaging.DefineTopic(ch, site, messaging.CatalogChanged); err != nil {
		conn.Close()
		return nil, err
	}
	err = messaging.ListenToTopic(ch, site, messaging.CatalogChanged, func(change messaging.CatalogChange) error {
		name := change.File
		if name == "" {
			name = catalogFile
		}
		items, err := db.LoadCatalog(name)
		if err != nil {
			return err
		}
		srv.SetCatalog(items)
		log.Printf("Catalog reloaded from %s", name)
		return nil
	})
	if err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
