package server

import "net/http"

// getNews serves the aggregated gold/coin feed. The handler never
// produces an error status; the pipeline degrades to cached or static
// content internally. A short public cache window keeps rapid repeat
// requests off the pipeline entirely.
func (s *Server) getNews(w http.ResponseWriter, r *http.Request) {
	items := s.news.GetNews(r.Context())

	w.Header().Set("Cache-Control", "public, s-maxage=300, stale-while-revalidate=600")
	s.respondJSON(w, http.StatusOK, items)
}
