package authorpayload

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// AuthorPayload is both the request and the response payload for Author.
type AuthorPayload struct {
	*model.Author
}

func NewAuthorPayloadResponse(author *model.Author) *AuthorPayload {
	return &AuthorPayload{Author: author}
}

func NewAuthorListResponse(authors []*model.Author) []render.Renderer {
	list := []render.Renderer{}
	for _, author := range authors {
		list = append(list, NewAuthorPayloadResponse(author))
	}

	return list
}

// Bind on AuthorPayload will run after the unmarshalling is complete. The
// id is always server generated.
func (u *AuthorPayload) Bind(r *http.Request) error {
	if u.Author == nil {
		return errors.New("missing required Author fields")
	}
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("author name is required")
	}

	u.ID = 0

	return nil
}

func (u *AuthorPayload) Render(w http.ResponseWriter, r *http.Request) error {
	if u.Author == nil {
		return errors.New("missing author")
	}

	return nil
}
