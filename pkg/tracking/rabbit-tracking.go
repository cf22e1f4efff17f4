package tracking

import (
	"log"
	"net/http"

	"github.com/matst80/humidor/pkg/messaging"
	"github.com/matst80/humidor/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventSession uint16 = iota
	EventSearch
	EventCompare
)

type RabbitTracking struct {
	site       string
	connection *amqp.Connection
}

func NewRabbitTracking(url, site string) (*RabbitTracking, error) {
	ret := RabbitTracking{
		site: site,
	}
	err := ret.connect(url)
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	t.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return messaging.DefineTopic(ch, t.site, messaging.Tracking)
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) error {
	return messaging.SendChange(t.connection, t.site, messaging.Tracking, data)
}

type BaseEvent struct {
	SessionId string `json:"session_id"`
	Site      string `json:"site,omitempty"`
	Event     uint16 `json:"event"`
}

type Session struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

func clientIp(r *http.Request) string {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	return ip
}

func (t *RabbitTracking) TrackSession(sessionId string, r *http.Request) {
	err := t.send(Session{
		BaseEvent: &BaseEvent{Event: EventSession, SessionId: sessionId, Site: t.site},
		Language:  r.Header.Get("Accept-Language"),
		UserAgent: r.UserAgent(),
		Ip:        clientIp(r),
	})
	if err != nil {
		log.Println("Error sending session event: ", err)
	}
}

type SearchEvent struct {
	*BaseEvent
	Filter          types.FilterState `json:"filter"`
	NumberOfResults int               `json:"noi"`
	Referer         string            `json:"referer,omitempty"`
}

func (t *RabbitTracking) TrackSearch(sessionId string, state types.FilterState, results int, r *http.Request) {
	err := t.send(&SearchEvent{
		BaseEvent:       &BaseEvent{Event: EventSearch, SessionId: sessionId, Site: t.site},
		Filter:          state,
		NumberOfResults: results,
		Referer:         r.Header.Get("Referer"),
	})
	if err != nil {
		log.Println("Error sending search event: ", err)
	}
}

type CompareEvent struct {
	*BaseEvent
	Action  string `json:"action"`
	Item    string `json:"item,omitempty"`
	Outcome string `json:"outcome,omitempty"`
}

func (t *RabbitTracking) TrackCompare(sessionId string, action string, itemId string, outcome string) {
	err := t.send(&CompareEvent{
		BaseEvent: &BaseEvent{Event: EventCompare, SessionId: sessionId, Site: t.site},
		Action:    action,
		Item:      itemId,
		Outcome:   outcome,
	})
	if err != nil {
		log.Println("Error sending compare event: ", err)
	}
}
