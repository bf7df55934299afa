// Package news serves the news search endpoint.
package news

import (
	"log/slog"
	"net/http"

	"news-proxy/internal/handler/http/respond"
	"news-proxy/internal/observability/logging"
	newsUC "news-proxy/internal/usecase/news"
)

// QueryParam is the name of the search term parameter.
const QueryParam = "query"

// ErrorResponse documents the error body shape.
type ErrorResponse struct {
	Error string `json:"error" example:"Query parameter 'query' is required"`
}

// MessageResponse documents the no-results body shape.
type MessageResponse struct {
	Message string `json:"message" example:"No news found for this search, or the news provider returned no articles. Check the query or your plan limits."`
}

type SearchHandler struct {
	Svc *newsUC.Service
}

// ServeHTTP ニュース検索
// @Summary      Search news
// @Description  Searches the configured news provider and returns normalized articles.
// @Description  Without the query parameter the default search phrase is used.
// @Tags         news
// @Produce      json
// @Param        query  query     string  false  "Search term (must not be blank when present)"
// @Success      200    {array}   entity.Article
// @Failure      400    {object}  ErrorResponse    "Blank query"
// @Failure      401    {object}  ErrorResponse    "Provider rejected the API key"
// @Failure      403    {object}  ErrorResponse    "Provider denied access"
// @Failure      404    {object}  MessageResponse  "No articles found"
// @Failure      429    {object}  ErrorResponse    "Provider rate limit reached"
// @Failure      500    {object}  ErrorResponse    "Configuration, upstream or connection error"
// @Router       /api/news [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	values := r.URL.Query()
	_, present := values[QueryParam]
	term := values.Get(QueryParam)

	articles, err := h.Svc.Search(ctx, term, present)
	if err != nil {
		out := newsUC.Classify(err)
		if out.Internal {
			respond.SafeError(w, out.Status, err)
			return
		}
		if out.Status >= http.StatusInternalServerError {
			logger.Error("news search failed",
				slog.Int("status", out.Status),
				slog.String("error", respond.SanitizeError(err)))
		}
		respond.JSON(w, out.Status, map[string]string{out.Key: out.Message})
		return
	}

	respond.JSON(w, http.StatusOK, articles)
}
