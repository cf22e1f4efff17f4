package tracking

import (
	"net/http"

	"github.com/matst80/humidor/pkg/types"
)

// Tracking receives visitor interactions. results is -1 when a search was
// answered from cache.
type Tracking interface {
	TrackSession(sessionId string, r *http.Request)
	TrackSearch(sessionId string, state types.FilterState, results int, r *http.Request)
	TrackCompare(sessionId string, action string, itemId string, outcome string)
}
