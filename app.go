package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SergeyParamoshkin/articles/internal/article"
	"github.com/SergeyParamoshkin/articles/internal/author"
	"github.com/SergeyParamoshkin/articles/internal/config"
	"github.com/SergeyParamoshkin/articles/internal/database"
	"github.com/SergeyParamoshkin/articles/internal/links"
	"github.com/SergeyParamoshkin/articles/internal/server"
	"github.com/SergeyParamoshkin/articles/internal/telemetry"
)

type App struct {
	sugarLogger *zap.SugaredLogger
	config      *config.Config
	db          *gorm.DB
	articles    article.Repository
	authors     author.Repository
}

func newApp(ctx context.Context, cfg *config.Config, sugar *zap.SugaredLogger) (*App, error) {
	a := &App{sugarLogger: sugar, config: cfg}

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err := database.Open(ctx, cfg.DB.DSN, sugar)
		if err != nil {
			return nil, err
		}
		if cfg.DB.AutoMigrate {
			if err := database.Migrate(ctx, db); err != nil {
				_ = database.Close(db)

				return nil, fmt.Errorf("migrate: %w", err)
			}
		}

		a.db = db
		a.articles = article.NewGormStore(db)
		a.authors = author.NewGormStore(db)
	default:
		sugar.Warnw("using in-memory store, data is lost on restart")
		a.articles = article.NewMemoryStore()
		a.authors = author.NewMemoryStore()
	}

	return a, nil
}

// RouterOptions assembles the services and handlers for the configured store.
func (a *App) RouterOptions(metrics *telemetry.Metrics) server.Options {
	opts := server.Options{
		Logger:   a.sugarLogger,
		Metrics:  metrics,
		Articles: article.NewAPI(article.NewService(a.articles, links.NewBuilder(a.config.PublicURL))),
		Authors:  author.NewAPI(author.NewService(a.authors)),
	}
	if a.db != nil {
		opts.Ready = func(ctx context.Context) error {
			return database.Ping(ctx, a.db)
		}
	}

	return opts
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}

	return database.Close(a.db)
}
