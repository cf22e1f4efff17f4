package common

import (
	"log"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/matst80/humidor/pkg/tracking"
)

// HandlerError carries the status code a handler wants to answer with.
type HandlerError struct {
	Status  int
	Message string
}

func (e *HandlerError) Error() string {
	return e.Message
}

func NewHandlerError(status int, message string) *HandlerError {
	return &HandlerError{Status: status, Message: message}
}

type JsonHandlerFunc func(w http.ResponseWriter, r *http.Request, sessionId string) (any, error)

// JsonHandler answers OPTIONS, resolves the session and writes the returned
// value as json. A *HandlerError selects the status, other errors give 500.
func JsonHandler(trk tracking.Tracking, fn JsonHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			RespondToOptions(w, r)
			return
		}
		sessionId := HandleSessionCookie(trk, w, r)

		data, err := fn(w, r, sessionId)
		if err != nil {
			status := http.StatusInternalServerError
			if he, ok := err.(*HandlerError); ok {
				status = he.Status
			} else {
				log.Printf("Error handling request: %v", err)
			}
			http.Error(w, err.Error(), status)
			return
		}
		WriteJson(w, r, data)
	}
}

// RawJson is written as is, for responses that were encoded earlier.
type RawJson []byte

func WriteJson(w http.ResponseWriter, r *http.Request, data any) {
	if raw, ok := data.(RawJson); ok {
		WriteJsonBytes(w, r, raw)
		return
	}
	body, err := sonic.Marshal(data)
	if err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	WriteJsonBytes(w, r, body)
}

func WriteJsonBytes(w http.ResponseWriter, r *http.Request, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	if origin := r.Header.Get("Origin"); origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
	w.WriteHeader(http.StatusAccepted)
}
