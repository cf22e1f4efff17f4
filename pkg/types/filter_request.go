package types

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// WindowRequest is the optional virtual list part of an items request.
type WindowRequest struct {
	Start  int     `json:"start" schema:"start"`
	End    int     `json:"end" schema:"end"`
	Height float64 `json:"height" schema:"height"`
}

const (
	MaxWindowSize     = 500
	DefaultItemHeight = 120.0
)

func (w *WindowRequest) Sanitize() {
	w.Start = max(w.Start, 0)
	w.End = clamp(w.End, w.Start, w.Start+MaxWindowSize)
	if w.Height <= 0 {
		w.Height = DefaultItemHeight
	}
	w.Height = min(w.Height, 2000)
}

type ItemsRequest struct {
	FilterState
	Window      *WindowRequest `json:"window,omitempty"`
	FavoriteIds []string       `json:"favoriteIds"`
}

func (r *ItemsRequest) Sanitize() {
	r.FilterState.Sanitize()
	r.FavoriteIds = dedupe(r.FavoriteIds)
	if r.Window != nil {
		r.Window.Sanitize()
	}
}

func GetItemsRequest(r *http.Request) (*ItemsRequest, error) {
	ir := &ItemsRequest{
		FilterState: DefaultFilterState(),
	}
	var err error
	if r.Method == http.MethodGet {
		err = itemsRequestFromQuery(r.URL.Query(), ir)
	} else {
		err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(ir)
	}
	ir.Sanitize()
	return ir, err
}

func itemsRequestFromQuery(query url.Values, result *ItemsRequest) error {
	if err := decoder.Decode(&result.FilterState, query); err != nil {
		return err
	}
	result.FavoriteIds = append(result.FavoriteIds, query["fav"]...)
	if query.Has("end") {
		window := &WindowRequest{}
		if err := decoder.Decode(window, query); err != nil {
			return err
		}
		result.Window = window
	}
	splitMultiValues(&result.FilterState)
	return nil
}

// FilterStateFromQuery decodes a filter state from query values, accepting both
// repeated keys (origin=Cuba&origin=Mexico) and "||" separated values.
func FilterStateFromQuery(query url.Values) (FilterState, error) {
	fs := DefaultFilterState()
	err := decoder.Decode(&fs, query)
	splitMultiValues(&fs)
	fs.Sanitize()
	return fs, err
}

func splitMultiValues(fs *FilterState) {
	split := func(values []string) []string {
		ret := make([]string, 0, len(values))
		for _, v := range values {
			ret = append(ret, strings.Split(v, "||")...)
		}
		return ret
	}
	fs.Origins = split(fs.Origins)
	fs.Strengths = split(fs.Strengths)
	fs.PriceTiers = split(fs.PriceTiers)
	fs.Rarities = split(fs.Rarities)
}
