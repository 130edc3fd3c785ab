package author

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/articles/internal/apperrors"
	"github.com/SergeyParamoshkin/articles/internal/authorpayload"
	"github.com/SergeyParamoshkin/articles/internal/errresponse"
	"github.com/SergeyParamoshkin/articles/internal/logging"
)

type ctxKey int8

const ctxKeyAuthorID ctxKey = iota

type API struct {
	service *Service
}

func NewAPI(service *Service) *API {
	return &API{service: service}
}

// Routes mounts the handlers on r, relative to /authors.
func (a *API) Routes(r chi.Router) {
	r.Get("/", a.ListAuthors)
	r.Post("/", a.CreateAuthor)
	r.With(AuthorCtx).Get("/{authorID}", a.GetAuthor)
}

// AuthorCtx middleware parses the authorID URL parameter onto the request context.
func AuthorCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "authorID")

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			renderError(w, r, apperrors.Invalid("invalid author id %q", raw))

			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyAuthorID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *API) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := a.service.ListAuthors(r.Context())
	if err != nil {
		renderError(w, r, err)

		return
	}

	if err := render.RenderList(w, r, authorpayload.NewAuthorListResponse(authors)); err != nil {
		renderFailure(w, r, errresponse.ErrRender(err))
	}
}

func (a *API) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, _ := r.Context().Value(ctxKeyAuthorID).(int64)

	author, err := a.service.GetAuthor(r.Context(), id)
	if err != nil {
		renderError(w, r, err)

		return
	}

	if err := render.Render(w, r, authorpayload.NewAuthorPayloadResponse(author)); err != nil {
		renderFailure(w, r, errresponse.ErrRender(err))
	}
}

func (a *API) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	data := &authorpayload.AuthorPayload{}
	if err := render.Bind(r, data); err != nil {
		renderFailure(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	author, err := a.service.AddAuthor(r.Context(), data.Author)
	if err != nil {
		renderError(w, r, err)

		return
	}

	render.Status(r, http.StatusCreated)
	if err := render.Render(w, r, authorpayload.NewAuthorPayloadResponse(author)); err != nil {
		renderFailure(w, r, errresponse.ErrRender(err))
	}
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errresponse.FromError(err)
	if resp.HTTPStatusCode >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Errorw("author request failed", "error", err)
	}

	if err := render.Render(w, r, resp); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

// renderFailure renders a bind or render error response.
func renderFailure(w http.ResponseWriter, r *http.Request, resp render.Renderer) {
	if err := render.Render(w, r, resp); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
