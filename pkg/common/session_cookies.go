package common

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/matst80/humidor/pkg/tracking"
)

const SessionCookieName = "sid"

func setSessionCookie(w http.ResponseWriter, r *http.Request, sessionId string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionId,
		Domain:   strings.TrimPrefix(r.Host, "."),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		MaxAge:   60 * 60 * 24 * 30,
		Path:     "/",
	})
}

// HandleSessionCookie returns the visitor's session id, issuing a new one when
// the cookie is missing or not a uuid.
func HandleSessionCookie(trk tracking.Tracking, w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	sessionId := uuid.NewString()
	if trk != nil {
		go trk.TrackSession(sessionId, r)
	}
	setSessionCookie(w, r, sessionId)
	return sessionId
}
