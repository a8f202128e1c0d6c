package model

type Announcement struct {
	Model
	Text           string `gorm:"type:text;not null" json:"text"`
	AuthorUsername string `gorm:"type:varchar(100);not null" json:"author_username"`
	FileName       string `gorm:"type:varchar(255)" json:"file_name,omitempty"`
	FileType       string `gorm:"type:varchar(100)" json:"file_type,omitempty"`
	FileURL        string `gorm:"type:varchar(512)" json:"file_url,omitempty"`
}

// EventAnnouncement 活动与公告的关联表
type EventAnnouncement struct {
	EventID        uint `gorm:"not null;index" json:"event_id"`
	AnnouncementID uint `gorm:"not null;index" json:"announcement_id"`
}

func (EventAnnouncement) TableName() string {
	return "containz"
}
