package engine

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Event types sent to spectators.
const (
	EventConnected = "connected"
	EventFrame     = "frame"
	EventGameEnded = "game_ended"
)

const (
	writeWait   = 10 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = 54 * time.Second // Must be less than pongWait
	maxMsgSize  = 512
	sendBufSize = 256
)

// Event is the envelope for every websocket message.
type Event struct {
	Type    string `json:"type"`
	MatchID string `json:"game_id"`
	Data    any    `json:"data"`
}

// Spectator is one websocket connection. An empty match follows every match.
type Spectator struct {
	conn  *websocket.Conn
	match string
	send  chan []byte
}

func (s *Spectator) follows(matchID string) bool {
	return s.match == "" || s.match == matchID
}

// Hub fans match events out to spectators. It is an Observer.
type Hub struct {
	mu         sync.RWMutex
	spectators map[*Spectator]bool
	upgrader   websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		spectators: make(map[*Spectator]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Read-only feed
			},
		},
	}
}

func (h *Hub) Register(s *Spectator) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.spectators[s] = true
}

// Unregister removes the spectator and closes its send channel.
func (h *Hub) Unregister(s *Spectator) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.spectators[s] {
		delete(h.spectators, s)
		close(s.send)
	}
}

// Broadcast queues an event for every spectator following its match,
// dropping it for spectators whose buffer is full.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("match", event.MatchID).Msg("failed to marshal spectator event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.spectators {
		if !s.follows(event.MatchID) {
			continue
		}
		select {
		case s.send <- data:
		default:
			log.Warn().Str("match", event.MatchID).Msg("dropping spectator event, buffer full")
		}
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.spectators)
}

func (h *Hub) Observe(matchID string, update Update) {
	h.Broadcast(Event{Type: EventFrame, MatchID: matchID, Data: update})
}

func (h *Hub) End(matchID string, result Result) {
	h.Broadcast(Event{Type: EventGameEnded, MatchID: matchID, Data: result})
}

// ServeWS upgrades the request to a websocket. The optional match query
// parameter restricts the feed to one match.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	s := &Spectator{
		conn:  conn,
		match: r.URL.Query().Get("match"),
		send:  make(chan []byte, sendBufSize),
	}
	h.Register(s)

	welcome, _ := json.Marshal(Event{Type: EventConnected, MatchID: s.match, Data: map[string]any{}})
	s.send <- welcome

	go h.writePump(s)
	go h.readPump(s)

	log.Info().Str("match", s.match).Int("total", h.Count()).Msg("spectator connected")
}

// ServeHTTP lets the hub be mounted directly on a mux.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.ServeWS(w, r)
}

// readPump only keeps the read deadline alive; spectators send nothing.
func (h *Hub) readPump(s *Spectator) {
	defer func() {
		h.Unregister(s)
		s.conn.Close()
		log.Info().Str("match", s.match).Msg("spectator disconnected")
	}()

	s.conn.SetReadLimit(maxMsgSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("spectator closed unexpectedly")
			}
			return
		}
	}
}

func (h *Hub) writePump(s *Spectator) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
