package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/matst80/humidor/pkg/catalog"
	"github.com/matst80/humidor/pkg/common"
	"github.com/matst80/humidor/pkg/compare"
	"github.com/matst80/humidor/pkg/types"
	"github.com/matst80/humidor/pkg/window"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "humidor_searches_total",
		Help: "The total number of processed item searches",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "humidor_search_cache_hits_total",
		Help: "The total number of item searches answered from cache",
	})
	compareActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "humidor_compare_actions_total",
		Help: "The total number of compare actions by action and outcome",
	}, []string{"action", "outcome"})
	noShuffles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "humidor_shuffles_total",
		Help: "The total number of shuffled listings",
	})
)

func (ws *WebServer) Items(w http.ResponseWriter, r *http.Request, sessionId string) (any, error) {
	req, err := types.GetItemsRequest(r)
	if err != nil {
		return nil, common.NewHandlerError(http.StatusBadRequest, err.Error())
	}
	go noSearches.Inc()

	items, _, version := ws.snapshot()
	if len(req.FavoriteIds) > 0 {
		items = types.MarkFavorites(items, req.FavoriteIds)
	}

	if req.Window != nil {
		res := catalog.ApplyFilters(items, req.FilterState)
		ws.trackSearch(sessionId, req.FilterState, len(res), r)
		rng := window.Range{Start: req.Window.Start, End: req.Window.End}.Clamp(len(res))
		return WindowResponse{
			Window:      window.WindowFor(res, rng, req.Window.Height),
			Range:       rng,
			Total:       len(res),
			TotalHeight: window.TotalHeight(len(res), req.Window.Height),
			Facets:      catalog.FacetCounts(items, req.FilterState),
		}, nil
	}

	build := func() ItemsResponse {
		res := catalog.ApplyFilters(items, req.FilterState)
		ws.trackSearch(sessionId, req.FilterState, len(res), r)
		return ItemsResponse{
			Items:  res,
			Total:  len(res),
			Facets: catalog.FacetCounts(items, req.FilterState),
		}
	}

	if len(req.FavoriteIds) > 0 || ws.Cache == nil {
		return build(), nil
	}

	key := fmt.Sprintf("items:%d:%s", version, req.FilterState.CacheKey())
	data, hit, err := NewCacheHelper[ItemsResponse](ws.Cache, ws.CacheDuration).Handle(r.Context(), key, build)
	if err != nil {
		return nil, err
	}
	if hit {
		go cacheHits.Inc()
		ws.trackSearch(sessionId, req.FilterState, -1, r)
	}
	return common.RawJson(data), nil
}

func (ws *WebServer) trackSearch(sessionId string, state types.FilterState, results int, r *http.Request) {
	if ws.Tracking != nil {
		go ws.Tracking.TrackSearch(sessionId, state, results, r)
	}
}

func (ws *WebServer) GetItem(w http.ResponseWriter, r *http.Request, sessionId string) (any, error) {
	_, lookup, _ := ws.snapshot()
	item, ok := lookup.Get(r.PathValue("id"))
	if !ok {
		return nil, common.NewHandlerError(http.StatusNotFound, "item not found")
	}
	return item, nil
}

func (ws *WebServer) Compare(w http.ResponseWriter, r *http.Request, sessionId string) (any, error) {
	if r.Method != http.MethodPost {
		return nil, common.NewHandlerError(http.StatusMethodNotAllowed, "use POST")
	}
	req := CompareRequest{State: compare.Empty()}
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, common.NewHandlerError(http.StatusBadRequest, err.Error())
	}
	state := compare.Normalize(req.State)
	_, lookup, _ := ws.snapshot()

	action := r.PathValue("action")
	res := CompareResponse{}
	outcome := "ok"
	switch action {
	case "add":
		item, ok := lookup.Get(req.Id)
		if !ok {
			return nil, common.NewHandlerError(http.StatusNotFound, "item not found")
		}
		next, result := compare.TryAdd(state, item)
		state = next
		res.Result = &result
		outcome = string(result.Outcome)
	case "remove":
		state = compare.Remove(state, req.Id)
	case "swap":
		state = compare.Swap(state)
	case "clear":
		state = compare.Clear(state)
	default:
		return nil, common.NewHandlerError(http.StatusNotFound, "unknown compare action")
	}

	go compareActions.WithLabelValues(action, outcome).Inc()
	if ws.Tracking != nil {
		go ws.Tracking.TrackCompare(sessionId, action, req.Id, outcome)
	}
	res.State = state
	res.CanAdd = compare.CanAdd(state)
	return res, nil
}

func (ws *WebServer) Shuffle(w http.ResponseWriter, r *http.Request, sessionId string) (any, error) {
	query := r.URL.Query()
	state, err := types.FilterStateFromQuery(query)
	if err != nil {
		return nil, common.NewHandlerError(http.StatusBadRequest, err.Error())
	}
	seed := window.SessionSeed(sessionId)
	if s := query.Get("seed"); s != "" {
		seed, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, common.NewHandlerError(http.StatusBadRequest, "seed must be an unsigned integer")
		}
	}
	go noShuffles.Inc()

	items, _, _ := ws.snapshot()
	filtered := catalog.ApplyFilters(items, state)
	return ShuffleResponse{
		Seed:  seed,
		Items: window.Shuffle(filtered, window.NewSeededSource(seed)),
	}, nil
}
