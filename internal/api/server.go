// Package api exposes the simulation engine over HTTP: process_step and
// resolve_conflict as POST endpoints, plus a small in-memory net
// registry that stores, returns, lists and deletes loaded nets. The step
// and resolve endpoints take the whole net in each request; they do not
// read nets from the registry.
package api

import (
	"log"
	"net/http"
	"sync"

	"go-petri-sim/internal/engine"
	"go-petri-sim/internal/mapper"
	"go-petri-sim/internal/models"
)

// Server holds the engine's HTTP-facing state: the compiled request
// schema, the net registry, and the randomness source used for
// non-deterministic firing.
type Server struct {
	schema *mapper.Schema
	source engine.Source

	mutex sync.RWMutex
	nets  map[string]*models.Net
}

// NewServer creates a new API server with a freshly compiled schema and
// a default entropy-seeded random source.
func NewServer() (*Server, error) {
	schema, err := mapper.NewSchema()
	if err != nil {
		return nil, err
	}
	return &Server{
		schema: schema,
		source: engine.NewDefaultSource(),
		nets:   make(map[string]*models.Net),
	}, nil
}

// Close releases server resources. Present for symmetry with the
// registry's lifecycle and so callers can defer it unconditionally.
func (s *Server) Close() {}

// SetupRoutes registers every HTTP route.
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/simulation/step", s.corsMiddleware(s.SimulationStep))
	mux.HandleFunc("/api/simulation/resolve", s.corsMiddleware(s.ResolveConflict))

	mux.HandleFunc("/api/nets/load", s.corsMiddleware(s.LoadNet))
	mux.HandleFunc("/api/nets/get", s.corsMiddleware(s.GetNet))
	mux.HandleFunc("/api/nets/list", s.corsMiddleware(s.ListNets))
	mux.HandleFunc("/api/nets/delete", s.corsMiddleware(s.DeleteNet))

	mux.HandleFunc("/api/health", s.corsMiddleware(s.HealthCheck))
	mux.HandleFunc("/api/docs", s.corsMiddleware(s.APIDocs))

	return mux
}

// corsMiddleware adds CORS headers so a browser-hosted editor can call
// the API directly.
func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// HealthCheck reports service health and the size of the net registry.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only GET method is allowed")
		return
	}

	s.mutex.RLock()
	count := len(s.nets)
	s.mutex.RUnlock()

	s.writeSuccess(w, map[string]interface{}{
		"status":  "healthy",
		"service": "go-petri-sim",
		"version": "1.0.0",
		"nets":    count,
	}, "Service is healthy")
}

// APIDocs returns a short description of every endpoint.
func (s *Server) APIDocs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only GET method is allowed")
		return
	}

	docs := map[string]interface{}{
		"title":       "Go Petri Sim API",
		"version":     "1.0.0",
		"description": "REST API for Petri net simulation: enablement, firing, and deterministic-conflict arbitration",
		"endpoints": map[string]interface{}{
			"Simulation": map[string]interface{}{
				"POST /api/simulation/step":    "Evaluate and fire transitions for one step",
				"POST /api/simulation/resolve": "Fire a caller-chosen transition out of a paused conflict",
			},
			"Net Registry": map[string]interface{}{
				"POST /api/nets/load":     "Load a net from its wire definition",
				"GET /api/nets/get":       "Get a loaded net's current state",
				"GET /api/nets/list":      "List loaded net IDs",
				"DELETE /api/nets/delete": "Remove a loaded net",
			},
			"Utility": map[string]interface{}{
				"GET /api/health": "Health check",
				"GET /api/docs":   "API documentation",
			},
		},
	}

	s.writeSuccess(w, docs, "")
}

// StartServer starts the HTTP server on the given port.
func (s *Server) StartServer(port string) error {
	mux := s.SetupRoutes()

	log.Printf("Starting Go Petri Sim API server on port %s", port)
	log.Printf("API documentation available at: http://localhost:%s/api/docs", port)
	log.Printf("Health check available at: http://localhost:%s/api/health", port)

	return http.ListenAndServe("0.0.0.0:"+port, mux)
}
