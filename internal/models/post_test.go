package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostSlugDerivation(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		slug     string
		wantSlug string
	}{
		{
			name:     "derived from title",
			title:    "Hello World",
			wantSlug: "hello-world",
		},
		{
			name:     "punctuation collapses to hyphens",
			title:    "Go 1.23: New Features!",
			wantSlug: "go-1-23-new-features",
		},
		{
			name:     "explicit slug wins",
			title:    "Hello World",
			slug:     "custom-slug",
			wantSlug: "custom-slug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &Post{Title: tt.title, Slug: tt.slug}
			require.NoError(t, post.BeforeSave(nil))
			assert.Equal(t, tt.wantSlug, post.Slug)
			assert.NotEmpty(t, post.Slug)
		})
	}
}

func TestPostMetaDerivation(t *testing.T) {
	longTitle := strings.Repeat("a", 200)

	post := &Post{Title: longTitle}
	require.NoError(t, post.BeforeSave(nil))
	assert.Equal(t, longTitle[:MetaTitleMaxLen], post.MetaTitle)
	assert.Equal(t, longTitle[:MetaDescriptionMaxLen], post.MetaDescription)

	// Short titles are carried over whole.
	post = &Post{Title: "Short"}
	require.NoError(t, post.BeforeSave(nil))
	assert.Equal(t, "Short", post.MetaTitle)
	assert.Equal(t, "Short", post.MetaDescription)

	// Set values survive later saves with a changed title.
	post.Title = "A different title entirely"
	require.NoError(t, post.BeforeSave(nil))
	assert.Equal(t, "Short", post.MetaTitle)
	assert.Equal(t, "Short", post.MetaDescription)
}

func TestPostMetaDerivationMultibyte(t *testing.T) {
	title := strings.Repeat("é", 100)
	post := &Post{Title: title}
	require.NoError(t, post.BeforeSave(nil))
	assert.Equal(t, MetaTitleMaxLen, len([]rune(post.MetaTitle)))
	assert.Equal(t, 100, len([]rune(post.MetaDescription)))
}

func TestPublicationPredicates(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tests := []struct {
		name          string
		status        PostStatus
		publishDate   time.Time
		wantPublished bool
		wantScheduled bool
	}{
		{"published in the past", StatusPublished, yesterday, true, false},
		{"published right now", StatusPublished, now, true, false},
		{"published in the future", StatusPublished, tomorrow, false, true},
		{"draft in the past", StatusDraft, yesterday, false, false},
		{"draft in the future", StatusDraft, tomorrow, false, false},
		{"archived in the past", StatusArchived, yesterday, false, false},
		{"archived in the future", StatusArchived, tomorrow, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &Post{Status: tt.status, PublishDate: tt.publishDate}
			assert.Equal(t, tt.wantPublished, post.IsPublished(now))
			assert.Equal(t, tt.wantScheduled, post.IsScheduled(now))
			assert.False(t, post.IsPublished(now) && post.IsScheduled(now),
				"predicates must be mutually exclusive")
		})
	}
}
