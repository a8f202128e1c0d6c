package model

// 活动状态为自由字段，不做自动流转
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
)

type Event struct {
	Model
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Category    string `gorm:"type:varchar(100)" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	StartDate   int64  `gorm:"not null" json:"start_date"` // Unix 秒
	EndDate     int64  `gorm:"not null" json:"end_date"`
	StartTime   string `gorm:"type:varchar(10)" json:"start_time"` // "HH:MM"
	EndTime     string `gorm:"type:varchar(10)" json:"end_time"`
	Status      string `gorm:"type:varchar(20);not null;default:upcoming" json:"status"`
	EventCode   string `gorm:"type:varchar(32);uniqueIndex;not null" json:"event_code"` // 全大写入库
	OrganiserID uint   `gorm:"not null" json:"organiser_id"`
	Type        string `gorm:"type:varchar(50)" json:"type"`

	Organiser Organiser `gorm:"foreignKey:OrganiserID;references:ID" json:"organiser"`
}
