package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SergeyParamoshkin/articles/internal/apperrors"
	"github.com/SergeyParamoshkin/articles/internal/model"
)

// Client talks to the /v1 articles API.
type Client struct {
	http.Client
	Addr string
}

// APIError is returned for any non 2xx response. It unwraps to the matching
// apperrors kind for 400, 404 and 409.
type APIError struct {
	StatusCode int
	Status     string `json:"status"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Status, e.Message)
	}

	return fmt.Sprintf("%d %s", e.StatusCode, e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	case http.StatusConflict:
		return apperrors.ErrConflict
	case http.StatusBadRequest:
		return apperrors.ErrInvalid
	}

	return nil
}

func (c *Client) Ping() (string, error) {
	req, err := http.NewRequest(http.MethodGet, c.Addr+"/ping", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), err
}

func (c *Client) ListArticles(ctx context.Context) ([]model.Article, error) {
	var out []model.Article

	return out, c.do(ctx, http.MethodGet, "/v1/articles", nil, &out)
}

func (c *Client) ListArticlesByAuthor(ctx context.Context, author string) ([]model.Article, error) {
	var out []model.Article

	return out, c.do(ctx, http.MethodGet, "/v1/articles?author="+url.QueryEscape(author), nil, &out)
}

func (c *Client) GetArticle(ctx context.Context, id int64) (*model.Article, error) {
	var out model.Article
	if err := c.do(ctx, http.MethodGet, "/v1/articles/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) CreateArticle(ctx context.Context, a *model.Article) (*model.Article, error) {
	var out model.Article
	if err := c.do(ctx, http.MethodPost, "/v1/articles", a, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) UpdateArticle(ctx context.Context, id int64, a *model.Article) (*model.Article, error) {
	var out model.Article
	if err := c.do(ctx, http.MethodPut, "/v1/articles/"+strconv.FormatInt(id, 10), a, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) DeleteArticle(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/v1/articles/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) ListAuthors(ctx context.Context) ([]model.Author, error) {
	var out []model.Author

	return out, c.do(ctx, http.MethodGet, "/v1/authors", nil, &out)
}

func (c *Client) GetAuthor(ctx context.Context, id int64) (*model.Author, error) {
	var out model.Author
	if err := c.do(ctx, http.MethodGet, "/v1/authors/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) CreateAuthor(ctx context.Context, a *model.Author) (*model.Author, error) {
	var out model.Author
	if err := c.do(ctx, http.MethodPost, "/v1/authors", a, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Addr+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		if apiErr.Status == "" {
			apiErr.Status = http.StatusText(resp.StatusCode)
		}

		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
