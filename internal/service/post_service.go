package service

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/amdkholil/django-blog/internal/cache"
	"github.com/amdkholil/django-blog/internal/db"
	"github.com/amdkholil/django-blog/internal/models"
	"github.com/amdkholil/django-blog/internal/repository"
	"github.com/amdkholil/django-blog/internal/search"
)

type PostService struct {
	db    *db.Database
	cache *cache.RedisClient
	es    *search.Elastic
	posts *repository.PostRepository
	tags  *repository.TagRepository
}

func NewPostService(database *db.Database, cache *cache.RedisClient, es *search.Elastic, now repository.Clock) *PostService {
	return &PostService{
		db:    database,
		cache: cache,
		es:    es,
		posts: repository.NewPostRepository(database.Gorm, now),
		tags:  repository.NewTagRepository(database.Gorm),
	}
}

type CreatePostInput struct {
	Title           string
	Slug            string
	Content         string
	MetaTitle       string
	MetaDescription string
	AuthorID        uint
	CategoryID      *uint
	TagIDs          []uint
	Status          models.PostStatus
	PublishDate     *time.Time
	FeaturedImageID *uint
	AllowComments   bool
	IsFeatured      bool
}

type UpdatePostInput struct {
	Title           string
	Slug            string
	Content         string
	MetaTitle       string
	MetaDescription string
	CategoryID      *uint
	TagIDs          []uint
	Status          models.PostStatus
	PublishDate     *time.Time
	FeaturedImageID *uint
	AllowComments   bool
	IsFeatured      bool
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	tags, err := s.tags.GetByIDs(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}
	post := &models.Post{
		Title:           in.Title,
		Slug:            in.Slug,
		Content:         in.Content,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		AuthorID:        in.AuthorID,
		CategoryID:      in.CategoryID,
		Tags:            tags,
		Status:          in.Status,
		FeaturedImageID: in.FeaturedImageID,
		AllowComments:   in.AllowComments,
		IsFeatured:      in.IsFeatured,
	}
	if post.Status == "" {
		post.Status = models.StatusDraft
	}
	if in.PublishDate != nil {
		post.PublishDate = *in.PublishDate
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.posts.Create(ctx, tx, post); err != nil {
			return err
		}
		return s.posts.LogActivity(ctx, tx, "post_created", "post", post.ID)
	})
	if err != nil {
		return nil, err
	}
	s.indexPost(ctx, post)
	return post, nil
}

func (s *PostService) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	key := cache.PostKey(slug)
	var cached models.Post
	if found, err := s.cache.GetJSON(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, key, post); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
	return post, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldSlug := post.Slug

	tags, err := s.tags.GetByIDs(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Slug = in.Slug
	post.Content = in.Content
	post.MetaTitle = in.MetaTitle
	post.MetaDescription = in.MetaDescription
	post.CategoryID = in.CategoryID
	post.Status = in.Status
	post.FeaturedImageID = in.FeaturedImageID
	post.AllowComments = in.AllowComments
	post.IsFeatured = in.IsFeatured
	if in.PublishDate != nil {
		post.PublishDate = *in.PublishDate
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.posts.Save(ctx, tx, post); err != nil {
			return err
		}
		if err := s.posts.ReplaceTags(ctx, tx, post, tags); err != nil {
			return err
		}
		return s.posts.LogActivity(ctx, tx, "post_updated", "post", post.ID)
	})
	if err != nil {
		return nil, err
	}
	post.Tags = tags

	s.invalidate(ctx, oldSlug, post.Slug)
	s.indexPost(ctx, post)
	return s.posts.GetByID(ctx, id)
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.posts.Delete(ctx, id); err != nil {
			return err
		}
		return s.posts.LogActivity(ctx, tx, "post_deleted", "post", id)
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, post.Slug)
	if err := s.es.DeletePost(ctx, id); err != nil {
		log.Printf("es delete post %d: %v", id, err)
	}
	return nil
}

// ViewPost bumps the view counter and drops the cached copy so the next
// read reflects it.
func (s *PostService) ViewPost(ctx context.Context, id uint) error {
	if err := s.posts.IncrementViewCount(ctx, id); err != nil {
		return err
	}
	if slugs, err := s.posts.SlugsByIDs(ctx, []uint{id}); err == nil {
		s.invalidate(ctx, slugs...)
	}
	return nil
}

func (s *PostService) Published(ctx context.Context) ([]models.Post, error) {
	return s.posts.Published(ctx)
}

func (s *PostService) Scheduled(ctx context.Context) ([]models.Post, error) {
	return s.posts.Scheduled(ctx)
}

func (s *PostService) Featured(ctx context.Context) ([]models.Post, error) {
	return s.posts.Featured(ctx)
}

func (s *PostService) RelatedPosts(ctx context.Context, id uint, limit int) ([]models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.posts.Related(ctx, post, limit)
}

func (s *PostService) Search(ctx context.Context, q string) ([]map[string]interface{}, error) {
	return s.es.SearchPosts(ctx, q)
}

// indexPost is best effort; a search outage must not fail the write.
func (s *PostService) indexPost(ctx context.Context, post *models.Post) {
	if err := s.es.IndexPost(ctx, post); err != nil {
		log.Printf("es index post %d: %v", post.ID, err)
	}
}

func (s *PostService) invalidate(ctx context.Context, slugs ...string) {
	keys := make([]string, 0, len(slugs))
	for _, sl := range slugs {
		keys = append(keys, cache.PostKey(sl))
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		log.Printf("cache del: %v", err)
	}
}
