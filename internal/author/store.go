package author

import (
	"context"
	"sync"

	"github.com/SergeyParamoshkin/articles/internal/apperrors"
	"github.com/SergeyParamoshkin/articles/internal/model"
)

//go:generate mockgen -source=store.go -destination=../mocks/author_repository.go -package=mocks -mock_names=Repository=MockAuthorRepository

// Repository is the persistence port for authors.
type Repository interface {
	FindAll(ctx context.Context) ([]*model.Author, error)
	FindByID(ctx context.Context, id int64) (*model.Author, error)
	Save(ctx context.Context, author *model.Author) (*model.Author, error)
}

type MemoryStore struct {
	mu      sync.RWMutex
	authors []model.Author
	nextID  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) FindAll(_ context.Context) ([]*model.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Author, 0, len(s.authors))
	for i := range s.authors {
		a := s.authors[i]
		out = append(out, &a)
	}

	return out, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id int64) (*model.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.authors {
		if s.authors[i].ID == id {
			a := s.authors[i]

			return &a, nil
		}
	}

	return nil, apperrors.ErrNotFound
}

func (s *MemoryStore) Save(_ context.Context, author *model.Author) (*model.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *author
	if stored.ID == 0 {
		stored.ID = s.nextID
		s.nextID++
	} else {
		for i := range s.authors {
			if s.authors[i].ID == stored.ID {
				s.authors[i] = stored

				return &stored, nil
			}
		}
		if stored.ID >= s.nextID {
			s.nextID = stored.ID + 1
		}
	}

	s.authors = append(s.authors, stored)

	return &stored, nil
}
