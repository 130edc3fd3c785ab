package article

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/SergeyParamoshkin/articles/internal/apperrors"
	"github.com/SergeyParamoshkin/articles/internal/links"
	"github.com/SergeyParamoshkin/articles/internal/model"
)

const tracerName = "article/service"

// Option configures a Service.
type Option func(*Service)

// WithTracerProvider records the service spans on tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// Service enforces the article existence and name uniqueness rules and
// decorates read results with links.
type Service struct {
	repo   Repository
	links  links.Builder
	tracer trace.Tracer
}

func NewService(repo Repository, lb links.Builder, opts ...Option) *Service {
	s := &Service{repo: repo, links: lb, tracer: otel.GetTracerProvider().Tracer(tracerName)}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListArticles returns every stored article with its links.
func (s *Service) ListArticles(ctx context.Context) (articles []*model.Article, err error) {
	ctx, span := s.tracer.Start(ctx, "ArticleService.ListArticles")
	defer func() { finish(span, err) }()

	articles, err = s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.decorateAll(articles), nil
}

// ListArticlesByAuthor returns the articles whose author contains author.
func (s *Service) ListArticlesByAuthor(ctx context.Context, author string) (articles []*model.Article, err error) {
	ctx, span := s.tracer.Start(ctx, "ArticleService.ListArticlesByAuthor",
		trace.WithAttributes(attribute.String("article.author", author)))
	defer func() { finish(span, err) }()

	articles, err = s.repo.FindByAuthorContains(ctx, author)
	if err != nil {
		return nil, err
	}

	return s.decorateAll(articles), nil
}

func (s *Service) GetArticle(ctx context.Context, id int64) (a *model.Article, err error) {
	ctx, span := s.tracer.Start(ctx, "ArticleService.GetArticle",
		trace.WithAttributes(attribute.Int64("article.id", id)))
	defer func() { finish(span, err) }()

	a, err = s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.links.Decorate(a), nil
}

// GetArticleByName looks an article up by exact name. The result carries no
// links, unlike the other read paths.
func (s *Service) GetArticleByName(ctx context.Context, name string) (a *model.Article, err error) {
	ctx, span := s.tracer.Start(ctx, "ArticleService.GetArticleByName",
		trace.WithAttributes(attribute.String("article.name", name)))
	defer func() { finish(span, err) }()

	a, err = s.repo.FindByName(ctx, name)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NotFound("The Article with name '%s' was not found", name)
	}

	return a, err
}

// Exists reports whether an article named name is stored.
func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperrors.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// AddArticle stores a new article under a fresh id. The store reports a
// conflict too, so concurrent adds of the same name cannot both succeed.
func (s *Service) AddArticle(ctx context.Context, a *model.Article) (created *model.Article, err error) {
	ctx, span := s.tracer.Start(ctx, "ArticleService.AddArticle",
		trace.WithAttributes(attribute.String("article.name", a.Name)))
	defer func() { finish(span, err) }()

	exists, err := s.Exists(ctx, a.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflict(a.Name)
	}

	a.ID = 0
	a.Links = nil

	created, err = s.repo.Save(ctx, a)
	if errors.Is(err, apperrors.ErrConflict) {
		return nil, conflict(a.Name)
	}

	return created, err
}

// UpdateArticle replaces every field of the article stored under id. Any
// id carried by a is ignored.
func (s *Service) UpdateArticle(ctx context.Context, id int64, a *model.Article) (updated *model.Article, err error) {
	ctx, span := s.tracer.Start(ctx, "ArticleService.UpdateArticle",
		trace.WithAttributes(attribute.Int64("article.id", id)))
	defer func() { finish(span, err) }()

	if _, err = s.find(ctx, id); err != nil {
		return nil, err
	}

	a.ID = id
	a.Links = nil

	updated, err = s.repo.Save(ctx, a)
	if errors.Is(err, apperrors.ErrConflict) {
		return nil, conflict(a.Name)
	}

	return updated, err
}

func (s *Service) DeleteArticle(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "ArticleService.DeleteArticle",
		trace.WithAttributes(attribute.Int64("article.id", id)))
	defer func() { finish(span, err) }()

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	err = s.repo.Delete(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return notFoundID(id)
	}

	return err
}

func (s *Service) find(ctx context.Context, id int64) (*model.Article, error) {
	a, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, notFoundID(id)
	}

	return a, err
}

func (s *Service) decorateAll(articles []*model.Article) []*model.Article {
	for _, a := range articles {
		s.links.Decorate(a)
	}

	return articles
}

func notFoundID(id int64) error {
	return apperrors.NotFound("The Article with id '%d' was not found", id)
}

func conflict(name string) error {
	return apperrors.Conflict("Article with name %s already exists", name)
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
