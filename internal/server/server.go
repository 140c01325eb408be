// Package server exposes the pricing kernel over HTTP for hosts that prefer
// a REST boundary to linking the library directly.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/contactkeval/option-greeks/internal/chain"
	"github.com/contactkeval/option-greeks/internal/logger"
	"github.com/contactkeval/option-greeks/internal/pricing"
)

// GreeksRequest is the payload for a single-contract calculation.
// Unlike the kernel itself, the HTTP boundary rejects degenerate inputs
// instead of letting them propagate as NaN/Inf.
type GreeksRequest struct {
	Type        string  `json:"type" validate:"oneof=call put"`
	Spot        float64 `json:"spot" validate:"gt=0"`
	Strike      float64 `json:"strike" validate:"gt=0"`
	ExpiryYears float64 `json:"expiry_years" validate:"gte=0"`
	Rate        float64 `json:"rate"`
	Vol         float64 `json:"vol" validate:"gt=0"`
}

// ChainRequest is the payload for a full-chain tabulation.
type ChainRequest struct {
	Spot        float64 `json:"spot" validate:"gt=0"`
	Strikes     int     `json:"strikes" validate:"gte=0"`
	StrikeStep  float64 `json:"strike_step" validate:"gte=0"`
	ExpiryYears float64 `json:"expiry_years" validate:"gte=0"`
	Rate        float64 `json:"rate"`
	Vol         float64 `json:"vol" validate:"gt=0"`
}

// Server holds the shared request validator.
type Server struct {
	validate *validator.Validate
}

func New() *Server {
	return &Server{validate: validator.New()}
}

// Handler returns the route mux for the calculator endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/greeks", s.handleGreeks)
	mux.HandleFunc("/chain", s.handleChain)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) handleGreeks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GreeksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	logger.Debugf("greeks request: %s spot=%.2f strike=%.2f T=%.4f",
		req.Type, req.Spot, req.Strike, req.ExpiryYears)

	g := pricing.CalculateGreeks(req.Type == "call",
		req.Spot, req.Strike, req.ExpiryYears, req.Rate, req.Vol)

	writeJSON(w, g)
}

func (s *Server) handleChain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := chain.Build(req.Spot, chain.Spec{
		Strikes:     req.Strikes,
		StrikeStep:  req.StrikeStep,
		ExpiryYears: req.ExpiryYears,
		Rate:        req.Rate,
		Vol:         req.Vol,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, rows)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("encoding response: %v", err)
	}
}
