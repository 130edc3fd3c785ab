package links

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

func TestBuilderArticle(t *testing.T) {
	a := &model.Article{ID: 3, AuthorID: 12}

	got := NewBuilder("").Article(a)
	assert.Equal(t, []model.Link{
		{Rel: "self", Href: "/v1/articles/3"},
		{Rel: "author", Href: "/v1/authors/12"},
	}, got)

	got = NewBuilder("http://localhost:3333/").Article(a)
	assert.Equal(t, "http://localhost:3333/v1/articles/3", got[0].Href)
	assert.Equal(t, "http://localhost:3333/v1/authors/12", got[1].Href)
}

func TestBuilderDecorateReplaces(t *testing.T) {
	a := &model.Article{ID: 1, AuthorID: 1, Links: []model.Link{{Rel: "stale", Href: "x"}}}

	NewBuilder("").Decorate(a)
	assert.Len(t, a.Links, 2)
	assert.Equal(t, RelSelf, a.Links[0].Rel)
	assert.Equal(t, RelAuthor, a.Links[1].Rel)
}
