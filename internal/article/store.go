package article

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/SergeyParamoshkin/articles/internal/apperrors"
	"github.com/SergeyParamoshkin/articles/internal/model"
)

//go:generate mockgen -source=store.go -destination=../mocks/article_repository.go -package=mocks -mock_names=Repository=MockArticleRepository

// Repository is the persistence port for articles. Lookups that find
// nothing return apperrors.ErrNotFound, name collisions on Save return
// apperrors.ErrConflict.
type Repository interface {
	FindAll(ctx context.Context) ([]*model.Article, error)
	FindByID(ctx context.Context, id int64) (*model.Article, error)
	FindByName(ctx context.Context, name string) (*model.Article, error)
	FindByAuthorContains(ctx context.Context, author string) ([]*model.Article, error)
	Save(ctx context.Context, article *model.Article) (*model.Article, error)
	Delete(ctx context.Context, id int64) error
}

// MemoryStore keeps articles in insertion order. Returned values are copies.
type MemoryStore struct {
	mu       sync.RWMutex
	articles []*model.Article
	nextID   int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) FindAll(_ context.Context) ([]*model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Article, 0, len(s.articles))
	for _, a := range s.articles {
		out = append(out, clone(a))
	}

	return out, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id int64) (*model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.ID == id {
			return clone(a), nil
		}
	}

	return nil, apperrors.ErrNotFound
}

func (s *MemoryStore) FindByName(_ context.Context, name string) (*model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.Name == name {
			return clone(a), nil
		}
	}

	return nil, apperrors.ErrNotFound
}

func (s *MemoryStore) FindByAuthorContains(_ context.Context, author string) ([]*model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*model.Article{}
	for _, a := range s.articles {
		if strings.Contains(a.Author, author) {
			out = append(out, clone(a))
		}
	}

	return out, nil
}

// Save inserts article when its ID is zero or unknown, otherwise replaces
// the stored row.
func (s *MemoryStore) Save(_ context.Context, article *model.Article) (*model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.articles {
		if a.Name == article.Name && a.ID != article.ID {
			return nil, fmt.Errorf("article name %q: %w", article.Name, apperrors.ErrConflict)
		}
	}

	stored := clone(article)
	stored.Links = nil

	if stored.ID != 0 {
		for i, a := range s.articles {
			if a.ID == stored.ID {
				s.articles[i] = stored

				return clone(stored), nil
			}
		}
		if stored.ID >= s.nextID {
			s.nextID = stored.ID + 1
		}
	} else {
		stored.ID = s.nextID
		s.nextID++
	}

	s.articles = append(s.articles, stored)

	return clone(stored), nil
}

func (s *MemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.articles {
		if a.ID == id {
			s.articles = append(s.articles[:i], s.articles[i+1:]...)

			return nil
		}
	}

	return apperrors.ErrNotFound
}

func clone(a *model.Article) *model.Article {
	c := *a
	if a.Links != nil {
		c.Links = append([]model.Link(nil), a.Links...)
	}

	return &c
}
