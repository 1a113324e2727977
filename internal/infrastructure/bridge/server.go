package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/logging"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// SnapshotFunc returns the current preferences.
type SnapshotFunc func() entity.SystemPreferences

// RouterOptions configures the bridge routes.
type RouterOptions struct {
	Hub      *Hub
	Snapshot SnapshotFunc
	// AllowedOrigins lists origins accepted for WebSocket upgrades.
	// Empty means same host only; "*" accepts any origin.
	AllowedOrigins []string
}

// NewRouter mounts /healthz, /preferences and /ws.
func NewRouter(opts RouterOptions) chi.Router {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(opts.AllowedOrigins),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/preferences", func(w http.ResponseWriter, _ *http.Request) {
		prefs := entity.DefaultPreferences()
		if opts.Snapshot != nil {
			prefs = opts.Snapshot()
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(prefs)
	})

	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		log := logging.FromContext(req.Context())
		if opts.Hub == nil {
			http.Error(w, "bridge unavailable", http.StatusServiceUnavailable)
			return
		}
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			// Upgrade already wrote the error response.
			log.Debug().Err(err).Msg("websocket upgrade failed")
			return
		}
		if _, err := opts.Hub.Attach(conn); err != nil {
			_ = conn.Close()
		}
	})

	return r
}

// originChecker accepts requests without an Origin header (non-browser
// clients), then applies the allow list.
func originChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if slices.Contains(allowed, "*") {
			return true
		}
		if len(allowed) > 0 {
			return slices.ContainsFunc(allowed, func(a string) bool {
				return strings.EqualFold(strings.TrimRight(a, "/"), origin)
			})
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}

// Server runs the bridge HTTP server.
type Server struct {
	log     zerolog.Logger
	addr    string
	handler http.Handler
	hub     *Hub
}

// NewServer creates a server listening on addr.
func NewServer(ctx context.Context, addr string, opts RouterOptions) *Server {
	return &Server{
		log:     logging.Component(ctx, "bridge-server"),
		addr:    addr,
		handler: NewRouter(opts),
		hub:     opts.Hub,
	}
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return logging.WithContext(context.Background(), s.log) },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("bridge listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		// Hijacked WebSocket connections are not tracked by Shutdown.
		if s.hub != nil {
			s.hub.Close()
		}
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
