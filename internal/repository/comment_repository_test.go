package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amdkholil/django-blog/internal/models"
)

func TestCommentsOrderedOldestFirst(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	post := createPost(t, db, &models.Post{Title: "Thread", Content: "x", AuthorID: user.ID})

	base := testNow.Add(-time.Hour)
	for i, name := range []string{"first", "second", "third"} {
		c := &models.Comment{
			PostID: post.ID, Name: name, Email: name + "@example.com",
			Content: "hi", IsApproved: true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(c).Error)
	}

	comments, err := repo.ListByPost(ctx, post.ID, true)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Name)
	assert.Equal(t, "third", comments[2].Name)
}

func TestModerationGate(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	post := createPost(t, db, &models.Post{Title: "Moderated", Content: "x", AuthorID: user.ID})

	pending := &models.Comment{PostID: post.ID, Name: "r", Email: "r@example.com", Content: "hi"}
	require.NoError(t, repo.Create(ctx, pending))
	assert.False(t, pending.IsApproved, "comments start unapproved")

	visible, err := repo.ListByPost(ctx, post.ID, true)
	require.NoError(t, err)
	assert.Empty(t, visible)

	count, err := repo.SetApproved(ctx, []uint{pending.ID}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	visible, err = repo.ListByPost(ctx, post.ID, true)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}
