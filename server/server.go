package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/katalvlaran/cavern/dungeon"
	"github.com/katalvlaran/cavern/floor"
	"github.com/katalvlaran/cavern/render"
)

// ErrNoDungeon indicates a server built without a dungeon.
var ErrNoDungeon = errors.New("server: nil dungeon")

// FloorMessage is one floor on the websocket.
type FloorMessage struct {
	ID     int      `json:"id"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

// Request asks the websocket for one floor.
type Request struct {
	Floor int `json:"floor"`
}

// ErrorMessage reports a bad Request on the websocket.
type ErrorMessage struct {
	Error string `json:"error"`
}

// Server serves one dungeon.
type Server struct {
	d   *dungeon.Dungeon
	log *slog.Logger
	mux *http.ServeMux
}

// New builds the routes for d.
func New(d *dungeon.Dungeon, log *slog.Logger) (*Server, error) {
	if d == nil {
		return nil, ErrNoDungeon
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Server{d: d, log: log, mux: http.NewServeMux()}
	s.mux.Handle("GET /{$}", templ.Handler(indexPage(d)))
	s.mux.HandleFunc("GET /dungeon", s.handleJSON)
	s.mux.HandleFunc("GET /dungeon.msgpack", s.handleMsgPack)
	s.mux.HandleFunc("GET /dungeon.gif", s.handleGIF)
	s.mux.HandleFunc("GET /floors/{id}", s.handleFloor)
	s.mux.HandleFunc("GET /floors/{id}/gif", s.handleFloorGIF)
	s.mux.HandleFunc("GET /ws", s.handleStream)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

// ListenAndServe serves on addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("serving dungeon", "addr", addr, "floors", len(s.d.Floors))

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) write(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(data); err != nil {
		s.log.Debug("write response", "err", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, err error, code int) {
	s.log.Warn("request failed", "err", err, "code", code)
	http.Error(w, err.Error(), code)
}

func (s *Server) handleJSON(w http.ResponseWriter, _ *http.Request) {
	data, err := s.d.ToJSON()
	if err != nil {
		s.fail(w, err, http.StatusInternalServerError)
		return
	}
	s.write(w, "application/json", data)
}

func (s *Server) handleMsgPack(w http.ResponseWriter, _ *http.Request) {
	data, err := s.d.ToMsgPack()
	if err != nil {
		s.fail(w, err, http.StatusInternalServerError)
		return
	}
	s.write(w, "application/msgpack", data)
}

func (s *Server) handleGIF(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := s.d.ToGIF(&buf); err != nil {
		s.fail(w, err, http.StatusInternalServerError)
		return
	}
	s.write(w, "image/gif", buf.Bytes())
}

// floorAt resolves the {id} path value.
func (s *Server) floorAt(r *http.Request) (*floor.Floor, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 0 || id >= len(s.d.Floors) {
		return nil, fmt.Errorf("no floor %q", r.PathValue("id"))
	}

	return s.d.Floors[id], nil
}

func (s *Server) handleFloor(w http.ResponseWriter, r *http.Request) {
	f, err := s.floorAt(r)
	if err != nil {
		s.fail(w, err, http.StatusNotFound)
		return
	}
	data, err := f.MarshalJSON()
	if err != nil {
		s.fail(w, err, http.StatusInternalServerError)
		return
	}
	s.write(w, "application/json", data)
}

func (s *Server) handleFloorGIF(w http.ResponseWriter, r *http.Request) {
	f, err := s.floorAt(r)
	if err != nil {
		s.fail(w, err, http.StatusNotFound)
		return
	}
	var buf bytes.Buffer
	if err = render.EncodeGIF(&buf, []render.Frame{{Image: render.Image(f), Delay: 0}}); err != nil {
		s.fail(w, err, http.StatusInternalServerError)
		return
	}
	s.write(w, "image/gif", buf.Bytes())
}

func floorMessage(f *floor.Floor) FloorMessage {
	return FloorMessage{
		ID:     f.ID,
		Width:  f.Width.Value(),
		Height: f.Height.Value(),
		Rows:   strings.Split(strings.TrimSuffix(render.ASCII(f), "\n"), "\n"),
	}
}

// handleStream sends every floor, then serves Requests until the client
// goes away.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.log.Debug("websocket accept", "err", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	ctx := r.Context()

	for _, f := range s.d.Floors {
		if err = wsjson.Write(ctx, conn, floorMessage(f)); err != nil {
			s.log.Debug("websocket write", "err", err)
			return
		}
	}

	for {
		var req Request
		if err = wsjson.Read(ctx, conn, &req); err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				s.log.Debug("websocket read", "err", err)
			}
			return
		}
		var msg any = ErrorMessage{Error: fmt.Sprintf("no floor %d", req.Floor)}
		if req.Floor >= 0 && req.Floor < len(s.d.Floors) {
			msg = floorMessage(s.d.Floors[req.Floor])
		}
		if err = wsjson.Write(ctx, conn, msg); err != nil {
			return
		}
	}
}
