package model

type Subevent struct {
	Model
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	Capacity    uint   `gorm:"not null;default:0" json:"capacity"` // 0 表示不限人数
}

func (Subevent) TableName() string {
	return "sub_event"
}

// EventSubevent 活动与子活动的关联表
type EventSubevent struct {
	EventID    uint `gorm:"not null;index" json:"event_id"`
	SubeventID uint `gorm:"not null;index" json:"sub_event_id"`
}

func (EventSubevent) TableName() string {
	return "have"
}
