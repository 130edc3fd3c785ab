package articlerequest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// ArticleRequest is the request payload for Article data model.
//
// The id and _links fields are shadowed so clients cannot set them: the id
// comes from the server (or the URL on update) and links are computed.
type ArticleRequest struct {
	*model.Article

	ProtectedID    int64        `json:"id"`
	ProtectedLinks []model.Link `json:"_links"`
}

func (a *ArticleRequest) Bind(r *http.Request) error {
	// a.Article is nil if no Article fields are sent in the request. Return an
	// error to avoid a nil pointer dereference.
	if a.Article == nil {
		return errors.New("missing required Article fields")
	}

	if strings.TrimSpace(a.Article.Name) == "" {
		return errors.New("article name is required")
	}

	// just a post-process after a decode..
	a.ProtectedID = 0
	a.ProtectedLinks = nil

	return nil
}
