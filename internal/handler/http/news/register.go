package news

import (
	"net/http"

	newsUC "news-proxy/internal/usecase/news"
)

// Register registers the news search route with the given mux.
// Preflight requests are answered by the CORS middleware before routing.
func Register(mux *http.ServeMux, svc *newsUC.Service) {
	mux.Handle("GET /api/news", SearchHandler{Svc: svc})
}
