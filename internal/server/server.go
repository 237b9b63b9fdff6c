// Package server exposes the storefront HTTP API: catalog, cart,
// calculator and the aggregated gold news feed.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"

	"goldshop/internal/cart"
	"goldshop/internal/catalog"
	"goldshop/internal/domain"
)

const sessionCookie = "cart_session"

// NewsProvider serves the aggregated news feed. It never fails; worst
// case it returns fallback content.
type NewsProvider interface {
	GetNews(ctx context.Context) []domain.NewsItem
}

// Server handles all storefront routes.
type Server struct {
	catalog *catalog.Catalog
	carts   *cart.Manager
	news    NewsProvider
	logger  *slog.Logger
}

func New(cat *catalog.Catalog, carts *cart.Manager, news NewsProvider, logger *slog.Logger) *Server {
	return &Server{
		catalog: cat,
		carts:   carts,
		news:    news,
		logger:  logger.With("component", "http"),
	}
}

// Route mounts all routes.
func (s *Server) Route() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/api/gold-news", s.getNews)

	r.Get("/api/products", s.listProducts)
	r.Get("/api/products/{id}", s.getProduct)

	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", s.getCart)
		r.Delete("/", s.clearCart)
		r.Post("/items", s.addCartItem)
		r.Get("/items/{id}", s.containsCartItem)
		r.Put("/items/{id}", s.updateCartItem)
		r.Delete("/items/{id}", s.removeCartItem)
	})

	r.Post("/api/checkout", s.checkout)

	r.Route("/api/calculator", func(r chi.Router) {
		r.Post("/final-price", s.calcFinalPrice)
		r.Post("/making-fee", s.calcMakingFee)
		r.Post("/profit-loss", s.calcProfitLoss)
		r.Post("/karat", s.calcKarat)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// sessionCart returns the cart for the request's session, issuing a
// session cookie on first access.
func (s *Server) sessionCart(w http.ResponseWriter, r *http.Request) *cart.Store {
	cookie, err := r.Cookie(sessionCookie)
	if err == nil && cookie.Value != "" {
		return s.carts.Get(cookie.Value)
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s.carts.Get(id)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
