package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
)

type addItemRequest struct {
	ProductID string `json:"productId"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	store := s.sessionCart(w, r)
	s.respondJSON(w, http.StatusOK, store.State())
}

func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, ok := s.catalog.Get(req.ProductID)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	store := s.sessionCart(w, r)
	s.respondJSON(w, http.StatusOK, store.Add(product))
}

func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	store := s.sessionCart(w, r)
	s.respondJSON(w, http.StatusOK, store.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity))
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	store := s.sessionCart(w, r)
	s.respondJSON(w, http.StatusOK, store.Remove(chi.URLParam(r, "id")))
}

func (s *Server) containsCartItem(w http.ResponseWriter, r *http.Request) {
	store := s.sessionCart(w, r)
	s.respondJSON(w, http.StatusOK, map[string]bool{
		"inCart": store.Contains(chi.URLParam(r, "id")),
	})
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	store := s.sessionCart(w, r)
	s.respondJSON(w, http.StatusOK, store.Clear())
}

// checkout is a placeholder: online checkout is not offered, the
// storefront directs shoppers to the seller.
func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "در حال حاضر امکان تسویه حساب آنلاین وجود ندارد. لطفا با فروشنده تماس بگیرید.",
	})
}
