package http

import (
	"github.com/gin-gonic/gin"

	"github.com/amdkholil/django-blog/internal/admin"
	"github.com/amdkholil/django-blog/internal/cache"
	"github.com/amdkholil/django-blog/internal/config"
	"github.com/amdkholil/django-blog/internal/db"
	"github.com/amdkholil/django-blog/internal/repository"
	"github.com/amdkholil/django-blog/internal/search"
	"github.com/amdkholil/django-blog/internal/service"
	"github.com/amdkholil/django-blog/internal/transport/http/handlers"
)

type Router = *gin.Engine

func NewRouter(cfg *config.Config, database *db.Database, c *cache.RedisClient, es *search.Elastic) Router {
	if mode := gin.Mode(); mode == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	postSvc := service.NewPostService(database, c, es, nil)
	commentSvc := service.NewCommentService(database, nil)
	registry := admin.NewRegistry(database, c, nil)

	posts := handlers.NewPostHandler(postSvc)
	categories := handlers.NewCategoryHandler(repository.NewCategoryRepository(database.Gorm))
	tags := handlers.NewTagHandler(repository.NewTagRepository(database.Gorm))
	comments := handlers.NewCommentHandler(commentSvc)
	adminH := handlers.NewAdminHandler(registry)

	r.POST("/posts", posts.CreatePost)
	r.GET("/posts", posts.ListPosts)
	r.GET("/posts/search", posts.Search)
	r.GET("/posts/:slug", posts.GetPost)
	r.GET("/posts/:slug/comments", comments.List)
	r.PUT("/posts/:id", posts.UpdatePost)
	r.DELETE("/posts/:id", posts.DeletePost)
	r.POST("/posts/:id/views", posts.RecordView)
	r.POST("/posts/:id/comments", comments.Submit)

	r.POST("/categories", categories.Create)
	r.GET("/categories", categories.List)
	r.GET("/categories/:slug", categories.Get)
	r.PUT("/categories/:slug", categories.Update)
	r.DELETE("/categories/:slug", categories.Delete)

	r.POST("/tags", tags.Create)
	r.GET("/tags", tags.List)
	r.GET("/tags/:slug", tags.Get)
	r.PUT("/tags/:slug", tags.Update)
	r.DELETE("/tags/:slug", tags.Delete)

	r.POST("/admin/posts/actions/:action", adminH.PostAction)
	r.POST("/admin/comments/actions/:action", adminH.CommentAction)

	return r
}
