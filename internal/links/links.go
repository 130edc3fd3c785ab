// Package links builds the hypermedia links attached to Article responses.
package links

import (
	"strconv"
	"strings"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

const (
	RelSelf   = "self"
	RelAuthor = "author"
)

// Route templates for the read endpoints links point at. They mirror the
// paths registered by the server under /v1.
const (
	ArticleRoute = "/v1/articles/{articleID}"
	AuthorRoute  = "/v1/authors/{authorID}"
)

// Builder resolves route templates against an optional public base URL.
type Builder struct {
	BaseURL string
}

func NewBuilder(baseURL string) Builder {
	return Builder{BaseURL: strings.TrimSuffix(baseURL, "/")}
}

// Article returns the self and author links for a, in that order.
func (b Builder) Article(a *model.Article) []model.Link {
	return []model.Link{
		{Rel: RelSelf, Href: b.resolve(ArticleRoute, "{articleID}", a.ID)},
		{Rel: RelAuthor, Href: b.resolve(AuthorRoute, "{authorID}", a.AuthorID)},
	}
}

// Decorate sets fresh links on a and returns it.
func (b Builder) Decorate(a *model.Article) *model.Article {
	a.Links = b.Article(a)

	return a
}

func (b Builder) resolve(template, param string, id int64) string {
	return b.BaseURL + strings.Replace(template, param, strconv.FormatInt(id, 10), 1)
}
