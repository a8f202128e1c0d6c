package store

import (
	"context"

	"event-contact-system/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CreateSubeventParams struct {
	Name        string
	Description string
	Capacity    uint // 0 表示不限人数
	EventID     uint
}

// CreateSubevent 子活动与关联记录在同一事务内写入
func (s *Store) CreateSubevent(ctx context.Context, p CreateSubeventParams) (uint, error) {
	subevent := model.Subevent{
		Name:        p.Name,
		Description: p.Description,
		Capacity:    p.Capacity,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&subevent).Error; err != nil {
			return errors.Wrap(err, "创建子活动失败")
		}
		link := model.EventSubevent{
			EventID:    p.EventID,
			SubeventID: subevent.ID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return errors.Wrap(err, "关联子活动到活动失败")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return subevent.ID, nil
}

// EventSubevents 活动的子活动列表，最新创建的在前
func (s *Store) EventSubevents(ctx context.Context, eventID uint) ([]model.Subevent, error) {
	var list []model.Subevent
	err := s.db.WithContext(ctx).
		Joins("JOIN have ON have.subevent_id = sub_event.id").
		Where("have.event_id = ?", eventID).
		Order("sub_event.created_at DESC").
		Order("sub_event.id DESC").
		Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "查询子活动失败")
	}
	return list, nil
}

// UpdateSubeventCapacity 类型化的容量调整，取代裸 SQL 覆盖
func (s *Store) UpdateSubeventCapacity(ctx context.Context, subeventID, capacity uint) error {
	res := s.db.WithContext(ctx).
		Model(&model.Subevent{}).
		Where("id = ?", subeventID).
		Update("capacity", capacity)
	if res.Error != nil {
		return errors.Wrap(res.Error, "更新子活动容量失败")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
