package net

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"VectorDisplay/internal/log"
	"VectorDisplay/internal/render"
	"VectorDisplay/internal/state"
	"VectorDisplay/internal/wire"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var logger = log.New("net")

// Path is where the command channel is served.
const Path = "/ws"

const writeWait = 5 * time.Second

// sendBuffer is how many commands a display may fall behind before it is
// dropped.
const sendBuffer = 256

type peer struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (p *peer) stop() {
	p.once.Do(func() { close(p.done) })
}

// Hub is the command source end of the channel. Every command sent
// through it is recorded in the scene and queued for all connected
// displays; a display that connects late first receives the scene's
// current frame. Each display has its own writer, so a display that stops
// reading only loses its own connection.
type Hub struct {
	scene    *state.Scene
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	peers map[string]*peer
}

func NewHub(scene *state.Scene) *Hub {
	return &Hub{
		scene: scene,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		peers: make(map[string]*peer),
	}
}

// ServeHTTP upgrades the request and keeps the display registered until
// its connection drops.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warningf("upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}

	p := h.add(conn)
	defer h.drop(p)
	go h.writeLoop(p)

	// Displays never send anything; reading only notices the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logger.Infof("display %s (%s) disconnected: %v", p.id, r.RemoteAddr, err)
			return
		}
	}
}

// add registers conn with the current frame already queued.
func (h *Hub) add(conn *websocket.Conn) *peer {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot := h.scene.Snapshot()
	p := &peer{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, len(snapshot)+sendBuffer),
		done: make(chan struct{}),
	}
	for _, cmd := range snapshot {
		data, err := wire.Encode(cmd)
		if err != nil {
			logger.Errorf("could not encode %s: %v", cmd.Kind, err)
			continue
		}
		p.send <- data
	}
	h.peers[p.id] = p
	logger.Infof("display %s connected from %s", p.id, conn.RemoteAddr())
	return p
}

func (h *Hub) drop(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(p)
}

func (h *Hub) dropLocked(p *peer) {
	if h.peers[p.id] == p {
		delete(h.peers, p.id)
	}
	p.stop()
}

// writeLoop owns all data writes to p's connection and closes it on exit.
func (h *Hub) writeLoop(p *peer) {
	defer p.conn.Close()
	for {
		select {
		case data := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Warningf("dropping display %s: %v", p.id, err)
				h.drop(p)
				return
			}
		case <-p.done:
			p.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
			return
		}
	}
}

// Send records cmd and queues it for every display. A display whose queue
// is full is dropped.
func (h *Hub) Send(cmd render.Command) {
	data, err := wire.Encode(cmd)
	if err != nil {
		logger.Errorf("could not encode %s: %v", cmd.Kind, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.scene.Record(cmd)
	for id, p := range h.peers {
		select {
		case p.send <- data:
		default:
			logger.Warningf("display %s is not keeping up, dropping it", id)
			h.dropLocked(p)
		}
	}
}

// Count is the number of connected displays.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Close drops every display.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, p := range h.peers {
		h.dropLocked(p)
	}
}

// ListenAndServe serves the hub on addr until ctx is done. When static is
// not nil it is served on every other path, which is how the browser
// display gets its page.
func (h *Hub) ListenAndServe(ctx context.Context, addr string, static http.Handler) error {
	mux := http.NewServeMux()
	mux.Handle(Path, h)
	if static != nil {
		mux.Handle("/", static)
	}
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		h.Close()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Noticef("command source listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve on %s: %w", addr, err)
	}
	return nil
}
