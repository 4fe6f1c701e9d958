package mapserver

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/coder/websocket"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/regionforge/internal/mapgen"
	"github.com/samdwyer/regionforge/internal/regiondata"
	"github.com/samdwyer/regionforge/internal/telemetry"
)

// Server generates region maps on demand. Every generated snapshot is
// also broadcast to websocket subscribers, so a viewer can watch maps
// as other clients request them.
type Server struct {
	registry *regiondata.RegionRegistry
	hub      *Hub
	log      logr.Logger
}

// New creates a server over the given region registry.
func New(registry *regiondata.RegionRegistry, log logr.Logger) *Server {
	return &Server{
		registry: registry,
		hub:      NewHub(),
		log:      log,
	}
}

// Subscribers returns the number of connected websocket subscribers.
func (s *Server) Subscribers() int {
	return s.hub.Count()
}

// Routes returns the server's HTTP mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /regions", s.handleRegions)
	mux.HandleFunc("GET /maps/{region}", s.handleMap)
	mux.HandleFunc("GET /ws", s.handleSubscribe)
	return mux
}

// ListenAndServe binds addr and serves until ctx is cancelled. The bind
// is retried with exponential backoff so rapid restarts survive a
// lingering listener.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := backoff.Retry(ctx, func() (net.Listener, error) {
		return net.Listen("tcp", addr)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(5))
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}
	s.log.Info("listening", "addr", ln.Addr().String())

	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// regionInfo is one entry of the region listing.
type regionInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *Server) handleRegions(w http.ResponseWriter, _ *http.Request) {
	regions := make([]regionInfo, 0, s.registry.Count())
	for _, def := range s.registry.All() {
		regions = append(regions, regionInfo{ID: def.ID, Name: def.Name})
	}
	writeJSON(w, http.StatusOK, regions)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	tracer := telemetry.Tracer("mapserver")
	ctx, span := tracer.Start(r.Context(), "mapserver.map")
	defer span.End()

	regionID := r.PathValue("region")
	def := s.registry.GetByID(regionID)
	if def == nil {
		http.Error(w, "unknown region", http.StatusNotFound)
		return
	}

	seed := time.Now().UnixNano()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid seed", http.StatusBadRequest)
			return
		}
		seed = parsed
	}
	span.SetAttributes(
		attribute.String("map.region", regionID),
		attribute.Int64("map.seed", seed),
	)

	rng := rand.New(rand.NewSource(seed))
	keyPoints := def.ResolveKeyPoints(rng)
	m, err := mapgen.Generate(ctx, def.Config(), keyPoints, rng)
	if err != nil {
		s.log.Error(err, "generation failed", "region", regionID, "seed", seed)
		http.Error(w, "generation failed", http.StatusInternalServerError)
		return
	}

	snapshot := NewSnapshot(m)
	payload, err := json.Marshal(snapshot)
	if err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
		return
	}

	s.log.Info("generated map", "region", regionID, "seed", seed,
		"items", len(m.Items), "landmarks", len(m.Landmarks))
	s.hub.Broadcast(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.Error(err, "websocket accept failed")
		return
	}
	s.hub.Add(conn)
	s.log.Info("subscriber connected", "subscribers", s.hub.Count())
	defer func() {
		s.hub.Remove(conn)
		_ = conn.Close(websocket.StatusNormalClosure, "")
		s.log.Info("subscriber disconnected", "subscribers", s.hub.Count())
	}()

	// Subscribers only listen; drain reads until the peer goes away.
	for {
		if _, _, err := conn.Read(r.Context()); err != nil {
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
