package store

import (
	"context"

	"event-contact-system/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CreateAnnouncementParams struct {
	Text           string
	AuthorUsername string
	EventID        uint
	FileName       string
	FileType       string
	FileURL        string
}

// CreateAnnouncement 公告与关联记录在同一事务内写入
// 任一步失败整体回滚，不留孤儿公告行
func (s *Store) CreateAnnouncement(ctx context.Context, p CreateAnnouncementParams) (uint, error) {
	announcement := model.Announcement{
		Text:           p.Text,
		AuthorUsername: p.AuthorUsername,
		FileName:       p.FileName,
		FileType:       p.FileType,
		FileURL:        p.FileURL,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&announcement).Error; err != nil {
			return errors.Wrap(err, "创建公告失败")
		}
		link := model.EventAnnouncement{
			EventID:        p.EventID,
			AnnouncementID: announcement.ID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return errors.Wrap(err, "关联公告到活动失败")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return announcement.ID, nil
}

// EventAnnouncements 活动公告，最新的在前
func (s *Store) EventAnnouncements(ctx context.Context, eventID uint) ([]model.Announcement, error) {
	var list []model.Announcement
	err := s.db.WithContext(ctx).
		Joins("JOIN containz ON containz.announcement_id = announcement.id").
		Where("containz.event_id = ?", eventID).
		Order("announcement.created_at DESC").
		Order("announcement.id DESC").
		Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "查询活动公告失败")
	}
	return list, nil
}
