package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/amdkholil/django-blog/internal/models"
)

// Clock supplies "now" to time-dependent queries. Repositories default
// to time.Now; tests inject a fixed instant.
type Clock func() time.Time

// publishedAt filters to posts visible at the given instant.
func publishedAt(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.status = ? AND posts.publish_date <= ?", models.StatusPublished, now)
	}
}

// scheduledAt filters to posts published with a future publish date.
func scheduledAt(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.status = ? AND posts.publish_date > ?", models.StatusPublished, now)
	}
}

// defaultPostOrder is the canonical listing order: most recent publish
// date first, ties broken by most recent creation.
func defaultPostOrder(db *gorm.DB) *gorm.DB {
	return db.Order("posts.publish_date DESC, posts.created_at DESC")
}
