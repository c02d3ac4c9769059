package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Comment is reader feedback on a post. New comments start unapproved
// and stay hidden until a moderator flips the flag.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PostID     uint      `gorm:"not null;index" json:"post_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Email      string    `gorm:"type:varchar(254);not null" json:"email" validate:"required,email"`
	Website    string    `gorm:"type:varchar(500)" json:"website" validate:"omitempty,url"`
	Content    string    `gorm:"type:text;not null" json:"content" validate:"required"`
	IsApproved bool      `gorm:"not null;default:false" json:"is_approved"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Validate rejects malformed comments before they reach the database.
func (c *Comment) Validate() error {
	return validate.Struct(c)
}
