package articlerequest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bind(t *testing.T, body string) (*ArticleRequest, error) {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/v1/articles", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	data := &ArticleRequest{}

	return data, render.Bind(r, data)
}

func TestBind(t *testing.T) {
	data, err := bind(t, `{"id":42,"name":"A1","author":"Jane","authorId":1,"_links":[{"rel":"self","href":"x"}]}`)
	require.NoError(t, err)
	assert.Equal(t, "A1", data.Name)
	assert.Equal(t, "Jane", data.Author)
	assert.Equal(t, int64(1), data.AuthorID)
	assert.Zero(t, data.Article.ID)
	assert.Nil(t, data.Article.Links)
}

func TestBindRejectsMissingFields(t *testing.T) {
	_, err := bind(t, `{}`)
	assert.Error(t, err)

	_, err = bind(t, `{"author":"Jane"}`)
	assert.Error(t, err)

	_, err = bind(t, `{"name":`)
	assert.Error(t, err)
}
