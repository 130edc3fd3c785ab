package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/articles/internal/articlerequest"
	"github.com/SergeyParamoshkin/articles/internal/articleresponse"
	"github.com/SergeyParamoshkin/articles/internal/errresponse"
	"github.com/SergeyParamoshkin/articles/internal/logging"
	"github.com/SergeyParamoshkin/articles/internal/model"
)

// API holds the HTTP handlers for the articles resource.
type API struct {
	service *Service
}

func NewAPI(service *Service) *API {
	return &API{service: service}
}

// Routes mounts the handlers on r, relative to /articles.
func (a *API) Routes(r chi.Router) {
	r.Get("/", a.ListArticles)
	r.Post("/", a.CreateArticle)
	r.Get("/by-name/{articleName}", a.GetArticleByName)

	r.Route("/{articleID}", func(r chi.Router) {
		r.Use(ArticleCtx)
		r.Get("/", a.GetArticle)       // GET /articles/123
		r.Put("/", a.UpdateArticle)    // PUT /articles/123
		r.Delete("/", a.DeleteArticle) // DELETE /articles/123
	})
}

// ListArticles returns all articles, or only those whose author contains
// the author query parameter when it is present.
func (a *API) ListArticles(w http.ResponseWriter, r *http.Request) {
	var (
		articles []*model.Article
		err      error
	)

	if author, ok := r.URL.Query()["author"]; ok {
		articles, err = a.service.ListArticlesByAuthor(r.Context(), author[0])
	} else {
		articles, err = a.service.ListArticles(r.Context())
	}
	if err != nil {
		renderError(w, r, err)

		return
	}

	if err := render.RenderList(w, r, articleresponse.NewArticleListResponse(articles)); err != nil {
		renderFailure(w, r, errresponse.ErrRender(err))
	}
}

// CreateArticle persists the posted Article and returns it
// back to the client as an acknowledgement.
func (a *API) CreateArticle(w http.ResponseWriter, r *http.Request) {
	data := &articlerequest.ArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		renderFailure(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	article, err := a.service.AddArticle(r.Context(), data.Article)
	if err != nil {
		renderError(w, r, err)

		return
	}

	render.Status(r, http.StatusCreated)
	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		renderFailure(w, r, errresponse.ErrRender(err))
	}
}

func (a *API) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, _ := IDFromContext(r.Context())

	article, err := a.service.GetArticle(r.Context(), id)
	if err != nil {
		renderError(w, r, err)

		return
	}

	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		renderFailure(w, r, errresponse.ErrRender(err))
	}
}

func (a *API) GetArticleByName(w http.ResponseWriter, r *http.Request) {
	article, err := a.service.GetArticleByName(r.Context(), chi.URLParam(r, "articleName"))
	if err != nil {
		renderError(w, r, err)

		return
	}

	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		renderFailure(w, r, errresponse.ErrRender(err))
	}
}

// UpdateArticle replaces an existing Article in our persistent store.
func (a *API) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, _ := IDFromContext(r.Context())

	data := &articlerequest.ArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		renderFailure(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	article, err := a.service.UpdateArticle(r.Context(), id, data.Article)
	if err != nil {
		renderError(w, r, err)

		return
	}

	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		renderFailure(w, r, errresponse.ErrRender(err))
	}
}

// DeleteArticle removes an existing Article from our persistent store.
func (a *API) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, _ := IDFromContext(r.Context())

	if err := a.service.DeleteArticle(r.Context(), id); err != nil {
		renderError(w, r, err)

		return
	}

	render.NoContent(w, r)
}

// renderFailure renders a bind or render error. When rendering the error
// fails too there is nothing left to send, so it is only logged.
func renderFailure(w http.ResponseWriter, r *http.Request, resp render.Renderer) {
	if err := render.Render(w, r, resp); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
