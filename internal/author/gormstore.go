package author

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SergeyParamoshkin/articles/internal/apperrors"
	"github.com/SergeyParamoshkin/articles/internal/model"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindAll(ctx context.Context) ([]*model.Author, error) {
	var out []*model.Author
	if err := s.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}

	return out, nil
}

func (s *GormStore) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	var a model.Author
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}

		return nil, fmt.Errorf("find author %d: %w", id, err)
	}

	return &a, nil
}

func (s *GormStore) Save(ctx context.Context, author *model.Author) (*model.Author, error) {
	a := *author
	if err := s.db.WithContext(ctx).Save(&a).Error; err != nil {
		return nil, fmt.Errorf("save author: %w", err)
	}

	return &a, nil
}
