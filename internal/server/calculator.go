package server

import (
	"encoding/json"
	"net/http"

	"goldshop/internal/pricing"
)

func (s *Server) calcFinalPrice(w http.ResponseWriter, r *http.Request) {
	var in pricing.QuoteInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quote, err := pricing.FinalPrice(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.respondJSON(w, http.StatusOK, quote)
}

func (s *Server) calcMakingFee(w http.ResponseWriter, r *http.Request) {
	var in pricing.MakingFeeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := pricing.MakingFee(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) calcProfitLoss(w http.ResponseWriter, r *http.Request) {
	var in pricing.ProfitLossInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := pricing.ProfitLoss(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) calcKarat(w http.ResponseWriter, r *http.Request) {
	var in pricing.KaratInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := pricing.ConvertKarat(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}
