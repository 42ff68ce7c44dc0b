package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"go-petri-sim/internal/engine"
	"go-petri-sim/internal/mapper"
)

// resolveRequest is the wire shape of a resolve_conflict call: the net
// DTO plus the transition the caller picked out of the paused set.
type resolveRequest struct {
	mapper.NetDTO
	SelectedTransitionID string `json:"selectedTransitionId"`
}

// stepResponse is the response of both the step and the resolve call:
// the net DTO, stamped with an operation ID for client-side correlation and a paused flag
// mirroring the orchestrator's mode decision.
type stepResponse struct {
	*mapper.NetDTO
	OperationID string `json:"operationId"`
	Paused      bool   `json:"paused"`
}

// decodeAndValidate reads the request body, validates it against the net
// schema, and unmarshals it into dst. The schema pass runs against a
// generic decode so it catches shape errors -- wrong types, missing
// fields, an arc type outside the enum -- before dst's struct tags ever
// get a chance to silently zero-value them.
func (s *Server) decodeAndValidate(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return engine.NewStructuralError("failed to read request body: %s", err.Error())
	}

	var generic interface{}
	if err := json.Unmarshal(body, &generic); err != nil {
		return engine.NewStructuralError("invalid JSON: %s", err.Error())
	}
	if err := s.schema.ValidateDecoded(generic); err != nil {
		return engine.NewStructuralError("request failed schema validation: %s", err.Error())
	}

	return json.Unmarshal(body, dst)
}

// SimulationStep handles POST /api/simulation/step.
func (s *Server) SimulationStep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only POST method is allowed")
		return
	}

	var dto mapper.NetDTO
	if err := s.decodeAndValidate(r, &dto); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	net, err := mapper.ToNet(&dto)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "structural_error", err.Error())
		return
	}

	result, err := engine.ProcessStep(net, dto.DeterministicMode, s.source)
	if err != nil {
		s.handleEngineError(w, err)
		return
	}

	s.writeSuccess(w, &stepResponse{
		NetDTO:      mapper.FromNet(net),
		OperationID: uuid.New().String(),
		Paused:      result.Paused,
	}, "")
}

// ResolveConflict handles POST /api/simulation/resolve.
func (s *Server) ResolveConflict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only POST method is allowed")
		return
	}

	var req resolveRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if req.SelectedTransitionID == "" {
		s.writeError(w, http.StatusBadRequest, "invalid_request", "selectedTransitionId is required")
		return
	}

	net, err := mapper.ToNet(&req.NetDTO)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "structural_error", err.Error())
		return
	}

	result, err := engine.ResolveConflict(net, req.SelectedTransitionID, req.DeterministicMode, s.source)
	if err != nil {
		s.handleEngineError(w, err)
		return
	}

	s.writeSuccess(w, &stepResponse{
		NetDTO:      mapper.FromNet(net),
		OperationID: uuid.New().String(),
		Paused:      result.Paused,
	}, "")
}

// handleEngineError maps the engine's error taxonomy onto HTTP status
// codes (spec §7): a StructuralError is the caller's fault, anything
// else is an internal invariant violation.
func (s *Server) handleEngineError(w http.ResponseWriter, err error) {
	if structErr, ok := err.(*engine.StructuralError); ok {
		s.writeError(w, http.StatusBadRequest, "structural_error", structErr.Error())
		return
	}
	s.writeError(w, http.StatusInternalServerError, "invariant_error", err.Error())
}
