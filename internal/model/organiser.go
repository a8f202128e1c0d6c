package model

// Organiser 主办方档案，在用户第一次创建活动时惰性创建
type Organiser struct {
	Model
	Name   string `gorm:"type:varchar(100);not null" json:"name"`
	Phone  string `gorm:"type:varchar(20)" json:"phone"`
	Email  string `gorm:"type:varchar(100)" json:"email"`
	Post   string `gorm:"type:varchar(100)" json:"post"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"` // 唯一索引封死并发重复创建
}
