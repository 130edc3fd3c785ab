package article

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/articles/internal/apperrors"
	"github.com/SergeyParamoshkin/articles/internal/errresponse"
	"github.com/SergeyParamoshkin/articles/internal/logging"
)

type ctxKey int8

const ctxKeyArticleID ctxKey = iota

// ArticleCtx middleware parses the articleID URL parameter onto the request
// context. Existence is checked by the service, so an unknown id still
// reaches the handler and comes back as a 404 from there.
func ArticleCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "articleID")

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			renderError(w, r, apperrors.Invalid("invalid article id %q", raw))

			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyArticleID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IDFromContext returns the id stored by ArticleCtx.
func IDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKeyArticleID).(int64)

	return id, ok
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errresponse.FromError(err)
	if resp.HTTPStatusCode >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Errorw("article request failed", "error", err)
	}

	if err := render.Render(w, r, resp); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
