package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amdkholil/django-blog/internal/models"
)

type CommentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// ListByPost returns a post's comments oldest first. approvedOnly is
// the public view; moderators pass false to see the queue.
func (r *CommentRepository) ListByPost(ctx context.Context, postID uint, approvedOnly bool) ([]models.Comment, error) {
	q := r.db.WithContext(ctx).Where("post_id = ?", postID)
	if approvedOnly {
		q = q.Where("is_approved = ?", true)
	}
	var comments []models.Comment
	err := q.Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// SetApproved flips the moderation flag on every selected comment and
// reports how many rows changed.
func (r *CommentRepository) SetApproved(ctx context.Context, ids []uint, approved bool) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id IN ?", ids).Update("is_approved", approved)
	return res.RowsAffected, res.Error
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
}
