package models

import "time"

// User is the identity collaborator. Authentication lives outside this
// service; posts only hold a required author reference.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"type:varchar(150);not null;uniqueIndex" json:"username"`
	Email       string    `gorm:"type:varchar(254)" json:"email"`
	DisplayName string    `gorm:"type:varchar(150)" json:"display_name"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
