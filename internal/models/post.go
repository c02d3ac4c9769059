package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusArchived  PostStatus = "archived"
)

const (
	MetaTitleMaxLen       = 60
	MetaDescriptionMaxLen = 160
)

type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"type:varchar(200);not null" json:"title"`
	Slug    string `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`
	Content string `gorm:"type:text;not null" json:"content"`

	MetaTitle       string `gorm:"type:varchar(60)" json:"meta_title"`
	MetaDescription string `gorm:"type:varchar(160)" json:"meta_description"`

	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	Author     User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Tags       []Tag     `gorm:"many2many:post_tags" json:"tags,omitempty"`

	Status      PostStatus `gorm:"type:varchar(20);not null;default:draft;index" json:"status"`
	PublishDate time.Time  `gorm:"not null;index" json:"publish_date"`

	FeaturedImageID *uint  `json:"featured_image_id"`
	FeaturedImage   *Image `gorm:"foreignKey:FeaturedImageID;constraint:OnDelete:SET NULL" json:"featured_image,omitempty"`

	ViewCount     uint `gorm:"not null;default:0" json:"view_count"`
	AllowComments bool `gorm:"not null;default:true" json:"allow_comments"`
	IsFeatured    bool `gorm:"not null;default:false" json:"is_featured"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// BeforeSave derives the slug and SEO meta fields when they are empty.
// Already-set values are never overwritten, so the derivation is
// idempotent across saves. Slug collisions surface as a uniqueness
// violation from the database.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	if p.MetaTitle == "" {
		p.MetaTitle = truncateRunes(p.Title, MetaTitleMaxLen)
	}
	if p.MetaDescription == "" {
		p.MetaDescription = truncateRunes(p.Title, MetaDescriptionMaxLen)
	}
	return nil
}

// BeforeCreate defaults the publish date to the creation time.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.PublishDate.IsZero() {
		p.PublishDate = time.Now()
	}
	return nil
}

// IsPublished reports whether the post is visible at the given instant.
// The caller supplies the clock so the predicate stays deterministic.
func (p *Post) IsPublished(now time.Time) bool {
	return p.Status == StatusPublished && !p.PublishDate.After(now)
}

// IsScheduled reports whether the post is published but not yet visible.
// Mutually exclusive with IsPublished; both are false for drafts and
// archived posts.
func (p *Post) IsScheduled(now time.Time) bool {
	return p.Status == StatusPublished && p.PublishDate.After(now)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
