package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/matst80/humidor/pkg/common"
	"github.com/matst80/humidor/pkg/tracking"
	"github.com/matst80/humidor/pkg/types"
)

type WebServer struct {
	Cache         Cache
	CacheDuration time.Duration
	Tracking      tracking.Tracking

	mu      sync.RWMutex
	items   []types.CatalogItem
	lookup  types.ItemMap
	version uint64
}

func NewWebServer(items []types.CatalogItem) *WebServer {
	ws := &WebServer{
		CacheDuration: 5 * time.Minute,
	}
	ws.SetCatalog(items)
	return ws
}

// SetCatalog replaces the served catalog. Cached responses of the previous
// catalog are no longer used.
func (ws *WebServer) SetCatalog(items []types.CatalogItem) {
	lookup := types.NewItemMap(items)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.items = items
	ws.lookup = lookup
	ws.version++
}

// snapshot returns the current catalog; callers must not modify the slice.
func (ws *WebServer) snapshot() ([]types.CatalogItem, types.ItemMap, uint64) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.items, ws.lookup, ws.version
}

func (ws *WebServer) ClientHandler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/items", common.JsonHandler(ws.Tracking, ws.Items))
	mux.HandleFunc("GET /items/{id}", common.JsonHandler(ws.Tracking, ws.GetItem))
	mux.HandleFunc("/compare/{action}", common.JsonHandler(ws.Tracking, ws.Compare))
	mux.HandleFunc("/shuffle", common.JsonHandler(ws.Tracking, ws.Shuffle))
	return mux
}
