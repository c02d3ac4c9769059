package models

import "time"

// ActivityLog records content-management events (post created, bulk
// publish, comment approved) for the audit trail in the admin UI.
type ActivityLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Action     string    `gorm:"type:varchar(50);not null" json:"action"`
	EntityType string    `gorm:"type:varchar(30);not null;index" json:"entity_type"`
	EntityID   uint      `gorm:"index;not null" json:"entity_id"`
	LoggedAt   time.Time `gorm:"autoCreateTime" json:"logged_at"`
}
