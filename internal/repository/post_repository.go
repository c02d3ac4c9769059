package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/amdkholil/django-blog/internal/models"
)

// DefaultRelatedLimit caps related-post lookups when the caller does
// not ask for a specific count.
const DefaultRelatedLimit = 3

type PostRepository struct {
	db  *gorm.DB
	now Clock
}

func NewPostRepository(db *gorm.DB, now Clock) *PostRepository {
	if now == nil {
		now = time.Now
	}
	return &PostRepository{db: db, now: now}
}

func (r *PostRepository) Create(ctx context.Context, tx *gorm.DB, p *models.Post) error {
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		return err
	}
	// gorm skips zero-value fields whose column carries a default, so
	// an explicit "comments off" needs a follow-up write.
	if !p.AllowComments {
		return tx.WithContext(ctx).Model(p).UpdateColumn("allow_comments", false).Error
	}
	return nil
}

// Save persists the post's own columns; slug and meta derivation run in
// the model's BeforeSave hook.
func (r *PostRepository) Save(ctx context.Context, tx *gorm.DB, p *models.Post) error {
	return tx.WithContext(ctx).Omit("Author", "Category", "Tags", "FeaturedImage", "Comments").Save(p).Error
}

// ReplaceTags swaps the post's tag set for the given one.
func (r *PostRepository) ReplaceTags(ctx context.Context, tx *gorm.DB, p *models.Post, tags []models.Tag) error {
	return tx.WithContext(ctx).Model(p).Association("Tags").Replace(tags)
}

func (r *PostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Tags").Preload("FeaturedImage").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Tags").Preload("FeaturedImage").
		Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes the post; its comments go with it via the cascade
// constraint.
func (r *PostRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}

// Published returns posts visible right now, in the default order. The
// filter is re-evaluated against the clock on every call.
func (r *PostRepository) Published(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Scopes(publishedAt(r.now()), defaultPostOrder).
		Preload("Category").Preload("Tags").
		Find(&posts).Error
	return posts, err
}

// Scheduled returns published posts whose publish date has not passed.
func (r *PostRepository) Scheduled(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Scopes(scheduledAt(r.now()), defaultPostOrder).
		Preload("Category").Preload("Tags").
		Find(&posts).Error
	return posts, err
}

// Featured returns the featured subset of the published scope.
func (r *PostRepository) Featured(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Scopes(publishedAt(r.now()), defaultPostOrder).
		Where("posts.is_featured = ?", true).
		Preload("Category").Preload("Tags").
		Find(&posts).Error
	return posts, err
}

// Related returns up to limit currently-published posts near the given
// one: same category when it has one, sharing at least one tag when it
// has tags. A plain filter, no relevance scoring.
func (r *PostRepository) Related(ctx context.Context, post *models.Post, limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	q := r.db.WithContext(ctx).Model(&models.Post{}).
		Scopes(publishedAt(r.now()), defaultPostOrder).
		Where("posts.id <> ?", post.ID)

	if post.CategoryID != nil {
		q = q.Where("posts.category_id = ?", *post.CategoryID)
	}
	if len(post.Tags) > 0 {
		tagIDs := make([]uint, 0, len(post.Tags))
		for _, t := range post.Tags {
			tagIDs = append(tagIDs, t.ID)
		}
		q = q.Distinct("posts.*").
			Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id IN ?", tagIDs)
	}

	var posts []models.Post
	err := q.Limit(limit).Find(&posts).Error
	return posts, err
}

// IncrementViewCount bumps the counter by one and writes back only that
// column. Concurrent increments can lose updates; exactness is not
// promised.
func (r *PostRepository) IncrementViewCount(ctx context.Context, id uint) error {
	var post models.Post
	if err := r.db.WithContext(ctx).Select("id", "view_count").First(&post, id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&models.Post{ID: id}).
		UpdateColumn("view_count", post.ViewCount+1).Error
}

// UpdateStatus sets the status on every selected post and reports how
// many rows changed.
func (r *PostRepository) UpdateStatus(ctx context.Context, ids []uint, status models.PostStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id IN ?", ids).Update("status", status)
	return res.RowsAffected, res.Error
}

// SetFeatured flips the featured flag on every selected post.
func (r *PostRepository) SetFeatured(ctx context.Context, ids []uint, featured bool) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id IN ?", ids).Update("is_featured", featured)
	return res.RowsAffected, res.Error
}

// ExistingIDs narrows a selection to ids actually present, so callers
// don't act on phantom records.
func (r *PostRepository) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	var out []uint
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id IN ?", ids).Pluck("id", &out).Error
	return out, err
}

// SlugsByIDs resolves post ids to slugs, used to invalidate per-slug
// cache entries after bulk updates.
func (r *PostRepository) SlugsByIDs(ctx context.Context, ids []uint) ([]string, error) {
	var slugs []string
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id IN ?", ids).Pluck("slug", &slugs).Error
	return slugs, err
}

func (r *PostRepository) LogActivity(ctx context.Context, tx *gorm.DB, action, entityType string, entityID uint) error {
	entry := models.ActivityLog{Action: action, EntityType: entityType, EntityID: entityID}
	return tx.WithContext(ctx).Create(&entry).Error
}
