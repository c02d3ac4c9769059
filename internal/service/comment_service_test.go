package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amdkholil/django-blog/internal/models"
)

func TestSubmitCommentModerationGate(t *testing.T) {
	database, _, _ := newTestEnv(t)
	svc := NewCommentService(database, fixedClock)
	user := seedUser(t, database.Gorm)
	ctx := context.Background()

	post := &models.Post{Title: "Open thread", Content: "x", AuthorID: user.ID}
	require.NoError(t, database.Gorm.Create(post).Error)

	comment, err := svc.SubmitComment(ctx, post.ID, SubmitCommentInput{
		Name: "Reader", Email: "reader@example.com", Content: "First!",
	})
	require.NoError(t, err)
	assert.False(t, comment.IsApproved)

	visible, err := svc.ApprovedComments(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, visible, "unapproved comments stay hidden")

	queue, err := svc.ModerationQueue(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, queue, 1)
}

func TestSubmitCommentRejectsMalformedInput(t *testing.T) {
	database, _, _ := newTestEnv(t)
	svc := NewCommentService(database, fixedClock)
	user := seedUser(t, database.Gorm)
	ctx := context.Background()

	post := &models.Post{Title: "Strict", Content: "x", AuthorID: user.ID}
	require.NoError(t, database.Gorm.Create(post).Error)

	_, err := svc.SubmitComment(ctx, post.ID, SubmitCommentInput{
		Name: "Reader", Email: "not-an-email", Content: "hi",
	})
	assert.Error(t, err)

	_, err = svc.SubmitComment(ctx, post.ID, SubmitCommentInput{
		Name: "Reader", Email: "reader@example.com", Website: "not a url", Content: "hi",
	})
	assert.Error(t, err)
}

func TestSubmitCommentDisabled(t *testing.T) {
	database, _, _ := newTestEnv(t)
	svc := NewCommentService(database, fixedClock)
	user := seedUser(t, database.Gorm)
	ctx := context.Background()

	post := &models.Post{Title: "Closed thread", Content: "x", AuthorID: user.ID}
	require.NoError(t, database.Gorm.Create(post).Error)
	require.NoError(t, database.Gorm.Model(post).Update("allow_comments", false).Error)

	_, err := svc.SubmitComment(ctx, post.ID, SubmitCommentInput{
		Name: "Reader", Email: "reader@example.com", Content: "hi",
	})
	assert.ErrorIs(t, err, ErrCommentsDisabled)
}
