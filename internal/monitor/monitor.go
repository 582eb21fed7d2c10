// Package monitor serves the planner's best-known state over a
// websocket as the search runs, grounded on the Server type in the
// example pack's tabular/server package: an index page plus a single
// /ws endpoint, a ping/pong liveness loop driving a cooperative
// shutdown, and JSON-encoded updates dropped rather than queued when
// the client can't keep up.
package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/paiv/icfpc2012/internal/core"
)

const (
	writeWait        = 1 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	closeGracePeriod = 10 * time.Second
	publishInterval  = 200 * time.Millisecond
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Update is one snapshot of search progress. Each connection's publish
// loop sends at most one Update per publishInterval; an Update that
// arrives sooner is discarded.
type Update struct {
	Board            string `json:"board"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	Score            int    `json:"score"`
	LambdasCollected int    `json:"lambdasCollected"`
	NodesExplored    int    `json:"nodesExplored"`
}

// Server publishes Updates pushed onto its channel to websocket
// clients, each served on its own goroutine. All connections read the
// same channel, so each Update reaches exactly one client; with several
// clients connected, the snapshots are divided among them rather than
// copied to each.
type Server struct {
	addr    string
	updates chan Update
}

// NewServer returns a monitor bound to addr (e.g. ":8089"). Call
// Publish to push a new snapshot and Serve to start accepting
// connections; Serve blocks until ctx is cancelled.
func NewServer(addr string) *Server {
	return &Server{addr: addr, updates: make(chan Update, 1)}
}

// Publish replaces the most recent snapshot. Like the example pack's
// publishUpdates, a snapshot is dropped rather than queued if the
// previous one hasn't been consumed yet, since only the latest state
// matters to a live viewer.
func (s *Server) Publish(m *core.MapInfo, state core.SimState, nodesExplored int) {
	board := make([]byte, len(state.Board))
	for i, c := range state.Board {
		board[i] = byte(c)
	}
	update := Update{
		Board:            string(board),
		Width:            m.Width,
		Height:           m.Height,
		Score:            state.Score,
		LambdasCollected: state.LambdasCollected,
		NodesExplored:    nodesExplored,
	}
	select {
	case s.updates <- update:
	default:
		select {
		case <-s.updates:
		default:
		}
		s.updates <- update
	}
}

// Serve starts the HTTP server and blocks until ctx is cancelled or
// ListenAndServe fails.
func (s *Server) Serve(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/ws", s.serveWebsocket)

	srv := &http.Server{Addr: s.addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), closeGracePeriod)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("monitor: serve: %w", err)
	}
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	_, _ = fmt.Fprint(w, indexHTML)
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("monitor: upgrade:", err)
		return
	}
	defer s.closeWebsocket(ws)
	s.publishLoop(r.Context(), ws)
}

func (s *Server) publishLoop(ctx context.Context, ws *websocket.Conn) {
	pubCtx, cancelPub := context.WithCancel(ctx)
	defer cancelPub()

	lastPong := time.Now()
	pong := make(chan struct{}, 1)
	ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(pongWait))
		select {
		case pong <- struct{}{}:
		default:
		}
		return nil
	})

	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				cancelPub()
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	var last time.Time
	for {
		select {
		case <-pubCtx.Done():
			return
		case <-pong:
			lastPong = time.Now()
		case <-ticker.C:
			if time.Since(lastPong) > pongWait {
				return
			}
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case update := <-s.updates:
			if time.Since(last) < publishInterval {
				continue
			}
			last = time.Now()
			payload, err := json.Marshal(update)
			if err != nil {
				continue
			}
			if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}
}

func (s *Server) closeWebsocket(ws *websocket.Conn) {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	ws.Close()
}

const indexHTML = `<!DOCTYPE html>
<html><head><title>lambdalift monitor</title></head>
<body>
<pre id="board"></pre>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => {
  const u = JSON.parse(ev.data);
  let rows = [];
  for (let y = 0; y < u.height; y++) {
    rows.push(u.board.slice(y*u.width, (y+1)*u.width));
  }
  document.getElementById("board").textContent =
    rows.join("\n") + "\nscore=" + u.score + " lambdas=" + u.lambdasCollected + " nodes=" + u.nodesExplored;
};
</script>
</body></html>
`
