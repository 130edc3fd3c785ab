package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SergeyParamoshkin/articles/internal/links"
	"github.com/SergeyParamoshkin/articles/internal/mocks"
	"github.com/SergeyParamoshkin/articles/internal/model"
)

func newRouter(repo Repository) http.Handler {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Route("/v1/articles", NewAPI(NewService(repo, links.NewBuilder(""))).Routes)

	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestAPIArticleLifecycle(t *testing.T) {
	h := newRouter(NewMemoryStore())

	w := do(t, h, http.MethodPost, "/v1/articles", `{"name":"A1","author":"Jane","authorId":1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Article
	decode(t, w, &created)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Jane", created.Author)
	assert.NotContains(t, w.Body.String(), "_links", "create responses are not decorated")

	w = do(t, h, http.MethodPost, "/v1/articles", `{"name":"A1","author":"Jane","authorId":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Article with name A1 already exists")

	w = do(t, h, http.MethodGet, "/v1/articles/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got model.Article
	decode(t, w, &got)
	assert.Equal(t, []model.Link{
		{Rel: "self", Href: "/v1/articles/1"},
		{Rel: "author", Href: "/v1/authors/1"},
	}, got.Links)
	assert.Contains(t, w.Body.String(), `"_links"`)
	assert.Contains(t, w.Body.String(), `"authorId":1`)

	w = do(t, h, http.MethodGet, "/v1/articles/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "The Article with id '99' was not found")

	w = do(t, h, http.MethodPut, "/v1/articles/1", `{"id":5,"name":"A2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated model.Article
	decode(t, w, &updated)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "A2", updated.Name)

	w = do(t, h, http.MethodPut, "/v1/articles/42", `{"name":"A3"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodDelete, "/v1/articles/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, h, http.MethodGet, "/v1/articles/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodDelete, "/v1/articles/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIListArticles(t *testing.T) {
	h := newRouter(NewMemoryStore())

	w := do(t, h, http.MethodGet, "/v1/articles", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	for _, body := range []string{
		`{"name":"A1","author":"Jane Doe","authorId":1}`,
		`{"name":"A2","author":"John","authorId":2}`,
		`{"name":"A3","author":"Mary Jane","authorId":3}`,
	} {
		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/v1/articles", body).Code)
	}

	w = do(t, h, http.MethodGet, "/v1/articles", "")
	var all []model.Article
	decode(t, w, &all)
	assert.Len(t, all, 3)
	for _, a := range all {
		assert.Len(t, a.Links, 2)
	}

	w = do(t, h, http.MethodGet, "/v1/articles?author=Jane", "")
	require.Equal(t, http.StatusOK, w.Code)
	var byAuthor []model.Article
	decode(t, w, &byAuthor)
	require.Len(t, byAuthor, 2)
	assert.Equal(t, "A1", byAuthor[0].Name)
	assert.Equal(t, "A3", byAuthor[1].Name)
	assert.Equal(t, "/v1/authors/3", byAuthor[1].Links[1].Href)

	w = do(t, h, http.MethodGet, "/v1/articles?author=Nobody", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAPIGetArticleByName(t *testing.T) {
	h := newRouter(NewMemoryStore())
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/v1/articles", `{"name":"A1","author":"Jane","authorId":1}`).Code)

	w := do(t, h, http.MethodGet, "/v1/articles/by-name/A1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "_links")

	w = do(t, h, http.MethodGet, "/v1/articles/by-name/B1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIBadRequests(t *testing.T) {
	h := newRouter(NewMemoryStore())

	w := do(t, h, http.MethodGet, "/v1/articles/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/v1/articles", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/v1/articles", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIInternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockArticleRepository(ctrl)
	h := newRouter(repo)

	repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection refused"))

	w := do(t, h, http.MethodGet, "/v1/articles", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestAPIRenderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockArticleRepository(ctrl)
	h := newRouter(repo)

	repo.EXPECT().FindByName(gomock.Any(), "ghost").Return(nil, nil)

	w := do(t, h, http.MethodGet, "/v1/articles/by-name/ghost", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "missing article")
}
