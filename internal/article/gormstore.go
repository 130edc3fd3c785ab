package article

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/SergeyParamoshkin/articles/internal/apperrors"
	"github.com/SergeyParamoshkin/articles/internal/model"
)

const uniqueViolation = "23505"

// GormStore persists articles through gorm. Name uniqueness is backed by
// the unique index on articles.name.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindAll(ctx context.Context) ([]*model.Article, error) {
	var out []*model.Article
	if err := s.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}

	return out, nil
}

func (s *GormStore) FindByID(ctx context.Context, id int64) (*model.Article, error) {
	var a model.Article
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, notFound(err, "find article %d", id)
	}

	return &a, nil
}

func (s *GormStore) FindByName(ctx context.Context, name string) (*model.Article, error) {
	var a model.Article
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&a).Error; err != nil {
		return nil, notFound(err, "find article %q", name)
	}

	return &a, nil
}

// FindByAuthorContains uses strpos so the match is a case-sensitive
// substring test without LIKE wildcards.
func (s *GormStore) FindByAuthorContains(ctx context.Context, author string) ([]*model.Article, error) {
	out := []*model.Article{}
	err := s.db.WithContext(ctx).
		Where("strpos(author, ?) > 0", author).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("find articles by author %q: %w", author, err)
	}

	return out, nil
}

func (s *GormStore) Save(ctx context.Context, article *model.Article) (*model.Article, error) {
	a := *article
	a.Links = nil

	if err := s.db.WithContext(ctx).Save(&a).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("article name %q: %w", a.Name, apperrors.ErrConflict)
		}

		return nil, fmt.Errorf("save article: %w", err)
	}

	return &a, nil
}

func (s *GormStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Article{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete article %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}

	return fmt.Errorf(format+": %w", append(args, err)...)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
