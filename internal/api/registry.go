package api

import (
	"net/http"

	"github.com/google/uuid"

	"go-petri-sim/internal/mapper"
)

// loadNetRequest is the wire shape of a load request: a net ID is
// optional, a fresh one is minted when the caller omits it.
type loadNetRequest struct {
	mapper.NetDTO
	ID string `json:"id,omitempty"`
}

// LoadNet handles POST /api/nets/load: stores a net under its given or
// generated ID for later retrieval via GetNet.
func (s *Server) LoadNet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only POST method is allowed")
		return
	}

	var req loadNetRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	net, err := mapper.ToNet(&req.NetDTO)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "structural_error", err.Error())
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	s.mutex.Lock()
	s.nets[id] = net
	s.mutex.Unlock()

	s.writeSuccess(w, map[string]interface{}{"id": id}, "Net loaded")
}

// GetNet handles GET /api/nets/get?id=....
func (s *Server) GetNet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only GET method is allowed")
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		s.writeError(w, http.StatusBadRequest, "invalid_request", "id query parameter is required")
		return
	}

	s.mutex.RLock()
	net, ok := s.nets[id]
	s.mutex.RUnlock()
	if !ok {
		s.writeError(w, http.StatusNotFound, "not_found", "no net loaded with that id")
		return
	}

	s.writeSuccess(w, mapper.FromNet(net), "")
}

// ListNets handles GET /api/nets/list.
func (s *Server) ListNets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only GET method is allowed")
		return
	}

	s.mutex.RLock()
	ids := make([]string, 0, len(s.nets))
	for id := range s.nets {
		ids = append(ids, id)
	}
	s.mutex.RUnlock()

	s.writeSuccess(w, map[string]interface{}{"ids": ids}, "")
}

// DeleteNet handles DELETE /api/nets/delete?id=....
func (s *Server) DeleteNet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only DELETE method is allowed")
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		s.writeError(w, http.StatusBadRequest, "invalid_request", "id query parameter is required")
		return
	}

	s.mutex.Lock()
	_, ok := s.nets[id]
	delete(s.nets, id)
	s.mutex.Unlock()

	if !ok {
		s.writeError(w, http.StatusNotFound, "not_found", "no net loaded with that id")
		return
	}

	s.writeSuccess(w, nil, "Net deleted")
}
