package server

import (
	"net/http"

	"github.com/go-chi/chi"

	"goldshop/internal/domain"
)

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("category"); raw != "" {
		category := domain.Category(raw)
		if !category.Valid() {
			http.Error(w, "unknown category", http.StatusBadRequest)
			return
		}
		s.respondJSON(w, http.StatusOK, s.catalog.ByCategory(category))
		return
	}

	s.respondJSON(w, http.StatusOK, s.catalog.List())
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := s.catalog.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	s.respondJSON(w, http.StatusOK, product)
}
