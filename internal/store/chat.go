package store

import (
	"context"

	"event-contact-system/internal/model"

	"github.com/pkg/errors"
)

const defaultChatLimit = 50

type SendMessageParams struct {
	EventID         uint
	SenderUsername  string
	Text            string
	SubeventName    string // 空串表示主活动会话
	IdxEventChat    int
	IdxSubeventChat int
}

func (s *Store) SendMessage(ctx context.Context, p SendMessageParams) (uint, error) {
	msg := model.ChatMessage{
		EventID:         p.EventID,
		SubeventName:    p.SubeventName,
		SenderUsername:  p.SenderUsername,
		Text:            p.Text,
		IdxEventChat:    p.IdxEventChat,
		IdxSubeventChat: p.IdxSubeventChat,
	}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return 0, errors.Wrap(err, "发送消息失败")
	}
	return msg.ID, nil
}

// EventChat 主活动会话的最新 limit 条消息，按时间正序返回
func (s *Store) EventChat(ctx context.Context, eventID uint, limit int) ([]model.ChatMessage, error) {
	return s.SubeventChat(ctx, eventID, "", limit)
}

// SubeventChat 指定会话的最新 limit 条消息
// 先倒序取最新 limit 条再反转为时间正序：语义是"最近的 limit 条"，
// 而不是"最早的 limit 条"
func (s *Store) SubeventChat(ctx context.Context, eventID uint, subeventName string, limit int) ([]model.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultChatLimit
	}

	var msgs []model.ChatMessage
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND subevent_name = ?", eventID, subeventName).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, errors.Wrap(err, "查询聊天消息失败")
	}

	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
