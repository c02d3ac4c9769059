package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/amdkholil/django-blog/internal/cache"
	"github.com/amdkholil/django-blog/internal/config"
	"github.com/amdkholil/django-blog/internal/db"
	"github.com/amdkholil/django-blog/internal/models"
	"github.com/amdkholil/django-blog/internal/search"
	"github.com/amdkholil/django-blog/internal/transport/http"
)

type Application struct {
	Config *config.Config
	DB     *db.Database
	Cache  *cache.RedisClient
	Search *search.Elastic
	Router http.Router
}

func Initialize() (*Application, error) {
	cfg := config.Load()

	database, err := db.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	err = database.AutoMigrate(
		&models.User{},
		&models.Image{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.Comment{},
		&models.ActivityLog{},
	)
	if err != nil {
		return nil, fmt.Errorf("db migrate: %w", err)
	}
	if err := database.EnsurePostIndexes(); err != nil {
		return nil, fmt.Errorf("ensure post indexes: %w", err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	es, err := search.NewElastic(cfg)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := es.EnsurePostsIndex(ctx); err != nil {
		return nil, fmt.Errorf("ensure ES index: %w", err)
	}

	r := http.NewRouter(cfg, database, redisClient, es)

	return &Application{
		Config: cfg,
		DB:     database,
		Cache:  redisClient,
		Search: es,
		Router: r,
	}, nil
}

func (a *Application) Close() {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
}
