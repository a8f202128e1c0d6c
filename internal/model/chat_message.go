package model

// ChatMessage 活动聊天消息，SubeventName 为空表示主活动会话
type ChatMessage struct {
	Model
	EventID         uint   `gorm:"not null;index:idx_event_thread" json:"event_id"`
	SubeventName    string `gorm:"type:varchar(100);not null;default:'';index:idx_event_thread" json:"subevent_name"`
	SenderUsername  string `gorm:"type:varchar(100);not null" json:"sender_username"`
	Text            string `gorm:"type:text;not null" json:"text"`
	IdxEventChat    int    `gorm:"not null;default:0" json:"idx_event_chat"`    // 历史遗留计数字段
	IdxSubeventChat int    `gorm:"not null;default:0" json:"idx_subevent_chat"` // 同上
}
