// client_integration_test.go
//go:build integration
// +build integration

package client

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyParamoshkin/articles/internal/apperrors"
	"github.com/SergeyParamoshkin/articles/internal/model"
)

func addr() string {
	if v := os.Getenv("REST_TEST_ADDR"); v != "" {
		return v
	}

	return "http://localhost:3333"
}

var c = Client{
	Addr:   addr(),
	Client: http.Client{Timeout: 5 * time.Second},
}

func TestPing(t *testing.T) {
	if s, err := c.Ping(); err != nil || s != "pong" {
		t.Fail()
	}
}

func TestLiveArticleLifecycle(t *testing.T) {
	ctx := context.Background()
	name := fmt.Sprintf("integration-%d", time.Now().UnixNano())

	author, err := c.CreateAuthor(ctx, &model.Author{Name: "Integration"})
	require.NoError(t, err)

	created, err := c.CreateArticle(ctx, &model.Article{Name: name, Author: author.Name, AuthorID: author.ID})
	require.NoError(t, err)

	_, err = c.CreateArticle(ctx, &model.Article{Name: name})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	got, err := c.GetArticle(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Links, 2)

	require.NoError(t, c.DeleteArticle(ctx, created.ID))
	_, err = c.GetArticle(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
