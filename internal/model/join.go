package model

import "time"

// Join 用户与活动的成员关系，携带活动内角色
type Join struct {
	UserID    uint      `gorm:"not null;index:idx_user_event,unique" json:"user_id"`
	EventID   uint      `gorm:"not null;index:idx_user_event,unique" json:"event_id"`
	UserRole  string    `gorm:"type:varchar(20);not null;default:participant" json:"user_role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Join) TableName() string {
	return "joins"
}
