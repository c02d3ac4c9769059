package service

import (
	"context"
	"errors"

	"github.com/amdkholil/django-blog/internal/db"
	"github.com/amdkholil/django-blog/internal/models"
	"github.com/amdkholil/django-blog/internal/repository"
)

// ErrCommentsDisabled is returned when a reader comments on a post
// whose author turned comments off.
var ErrCommentsDisabled = errors.New("comments are disabled for this post")

type CommentService struct {
	comments *repository.CommentRepository
	posts    *repository.PostRepository
}

func NewCommentService(database *db.Database, now repository.Clock) *CommentService {
	return &CommentService{
		comments: repository.NewCommentRepository(database.Gorm),
		posts:    repository.NewPostRepository(database.Gorm, now),
	}
}

type SubmitCommentInput struct {
	Name    string
	Email   string
	Website string
	Content string
}

// SubmitComment validates and stores a comment. It lands unapproved and
// stays invisible until moderated.
func (s *CommentService) SubmitComment(ctx context.Context, postID uint, in SubmitCommentInput) (*models.Comment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.AllowComments {
		return nil, ErrCommentsDisabled
	}
	comment := &models.Comment{
		PostID:  post.ID,
		Name:    in.Name,
		Email:   in.Email,
		Website: in.Website,
		Content: in.Content,
	}
	if err := comment.Validate(); err != nil {
		return nil, err
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ApprovedComments lists a post's visible comments, oldest first.
func (s *CommentService) ApprovedComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.comments.ListByPost(ctx, postID, true)
}

// ApprovedCommentsBySlug is ApprovedComments addressed the way readers
// address posts.
func (s *CommentService) ApprovedCommentsBySlug(ctx context.Context, slug string) ([]models.Comment, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, post.ID, true)
}

// ModerationQueue lists every comment on a post, including unapproved.
func (s *CommentService) ModerationQueue(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.comments.ListByPost(ctx, postID, false)
}
