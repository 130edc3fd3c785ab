package author

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/SergeyParamoshkin/articles/internal/apperrors"
	"github.com/SergeyParamoshkin/articles/internal/model"
)

const tracerName = "author/service"

// Option configures a Service.
type Option func(*Service)

// WithTracerProvider records the service spans on tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(tracerName)
	}
}

type Service struct {
	repo   Repository
	tracer trace.Tracer
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, tracer: otel.GetTracerProvider().Tracer(tracerName)}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) ListAuthors(ctx context.Context) (authors []*model.Author, err error) {
	ctx, span := s.tracer.Start(ctx, "AuthorService.ListAuthors")
	defer func() { finish(span, err) }()

	return s.repo.FindAll(ctx)
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (a *model.Author, err error) {
	ctx, span := s.tracer.Start(ctx, "AuthorService.GetAuthor",
		trace.WithAttributes(attribute.Int64("author.id", id)))
	defer func() { finish(span, err) }()

	a, err = s.repo.FindByID(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NotFound("The Author with id '%d' was not found", id)
	}

	return a, err
}

// AddAuthor stores a new author. Names are not unique.
func (s *Service) AddAuthor(ctx context.Context, a *model.Author) (created *model.Author, err error) {
	ctx, span := s.tracer.Start(ctx, "AuthorService.AddAuthor")
	defer func() { finish(span, err) }()

	a.ID = 0

	return s.repo.Save(ctx, a)
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
