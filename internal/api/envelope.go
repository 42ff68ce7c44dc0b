package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// successEnvelope is the response shape for every successful call.
type successEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// errorEnvelope is the response shape for every failed call.
type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (s *Server) writeSuccess(w http.ResponseWriter, data interface{}, message string) {
	s.writeJSON(w, http.StatusOK, successEnvelope{Success: true, Data: data, Message: message})
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	if status >= http.StatusInternalServerError {
		log.Printf("api error [%s]: %s", code, message)
	}
	s.writeJSON(w, status, errorEnvelope{Success: false, Error: errorBody{Code: code, Message: message}})
}
