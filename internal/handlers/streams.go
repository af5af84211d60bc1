package handlers

import (
	"net/http"
	"time"

	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/models"
	"tableside/backend/internal/store"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 45 * time.Second
)

// Streams relays the live order and table subscriptions to websocket
// clients. Each socket holds exactly one store subscription; every
// backend change ships the full current collection as one JSON frame.
// Frames are full state, so a slow client skipping straight to the
// newest one loses nothing.
type Streams struct {
	store    *store.Store
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

func NewStreams(st *store.Store, log zerolog.Logger, allowedOrigins []string) *Streams {
	allowed := map[string]bool{}
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &Streams{
		store: st,
		log:   log.With().Str("component", "streams").Logger(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

type streamFrame struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// push replaces any undelivered frame with the newer one.
func push(frames chan streamFrame, f streamFrame) {
	for {
		select {
		case frames <- f:
			return
		default:
			select {
			case <-frames:
			default:
			}
		}
	}
}

func (h *Streams) Orders(w http.ResponseWriter, r *http.Request) {
	frames := make(chan streamFrame, 1)
	unsubscribe := h.store.SubscribeOrders(r.Context(), func(orders []models.Order) {
		push(frames, streamFrame{Type: "orders", Data: orders})
	})
	h.serve(w, r, "orders", frames, unsubscribe)
}

func (h *Streams) Tables(w http.ResponseWriter, r *http.Request) {
	frames := make(chan streamFrame, 1)
	unsubscribe := h.store.SubscribeTables(r.Context(), func(tables []models.Table) {
		push(frames, streamFrame{Type: "tables", Data: tables})
	})
	h.serve(w, r, "tables", frames, unsubscribe)
}

func (h *Streams) serve(w http.ResponseWriter, r *http.Request, kind string, frames chan streamFrame, unsubscribe func()) {
	if unsubscribe == nil {
		httpjson.Error(w, http.StatusServiceUnavailable, "live updates unavailable without a configured backend")
		return
	}
	defer unsubscribe()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// Reader: only there to notice the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frame := <-frames:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(frame); err != nil {
				h.log.Debug().Err(err).Str("stream", kind).Msg("client write failed, closing")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
