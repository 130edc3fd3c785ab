package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/docgen"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/articles/internal/article"
	"github.com/SergeyParamoshkin/articles/internal/author"
	"github.com/SergeyParamoshkin/articles/internal/logging"
	"github.com/SergeyParamoshkin/articles/internal/telemetry"
)

const APIVersion = "/v1"

type Options struct {
	Logger   *zap.SugaredLogger
	Metrics  *telemetry.Metrics
	Articles *article.API
	Authors  *author.API
	// Ready reports whether the backing store is reachable. Nil means always ready.
	Ready    func(ctx context.Context) error
}

// NewRouter wires middleware and every route of the service.
func NewRouter(o Options) chi.Router {
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(logger))
	r.Use(middleware.Recoverer)
	if o.Metrics != nil {
		r.Use(o.Metrics.Middleware)
	}
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", text("root."))
	r.Get("/ping", text("pong"))
	r.Get("/healthz", text("ok"))
	r.Get("/readyz", ready(o.Ready))

	r.Route(APIVersion, func(r chi.Router) {
		r.Get("/hi", text("Hello from"))
		r.Route("/articles", o.Articles.Routes)
		r.Route("/authors", o.Authors.Routes)
	})

	r.Get("/docs/routes", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(docgen.JSONRoutesDoc(r))); err != nil {
			logging.FromContext(req.Context()).Errorw(err.Error())
		}
	})

	return r
}

// RoutesDoc renders the markdown route documentation for router.
func RoutesDoc(router chi.Router) string {
	return docgen.MarkdownRoutesDoc(router, docgen.MarkdownOpts{
		ProjectPath: "github.com/SergeyParamoshkin/articles",
		Intro:       "Articles and authors REST API.",
	})
}

func text(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(body)); err != nil {
			logging.FromContext(r.Context()).Errorw(err.Error())
		}
	}
}

func ready(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()

			if err := check(ctx); err != nil {
				logging.FromContext(r.Context()).Warnw("store not ready", "error", err)
				http.Error(w, "db not ready", http.StatusServiceUnavailable)

				return
			}
		}

		text("ready")(w, r)
	}
}
