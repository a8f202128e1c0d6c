package store

import (
	"context"
	"strings"
	"time"

	"event-contact-system/internal/model"
	"event-contact-system/internal/role"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CreateEventParams struct {
	Title       string
	Category    string
	Description string
	StartDate   int64
	EndDate     int64
	StartTime   string
	EndTime     string
	Status      string
	EventCode   string
	Type        string
	OrganiserID uint
	// 创建者用户，事务内自动以 admin 角色加入
	CreatorUserID uint
}

// CreateEvent 创建活动并让创建者以 admin 身份入场，两步在同一事务内
func (s *Store) CreateEvent(ctx context.Context, p CreateEventParams) (uint, error) {
	event := model.Event{
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Status:      p.Status,
		EventCode:   strings.ToUpper(p.EventCode),
		OrganiserID: p.OrganiserID,
		Type:        p.Type,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			if isDuplicate(err) {
				return ErrDuplicateEventCode
			}
			return errors.Wrap(err, "创建活动失败")
		}

		join := model.Join{
			UserID:   p.CreatorUserID,
			EventID:  event.ID,
			UserRole: role.Admin,
		}
		if err := tx.Create(&join).Error; err != nil {
			return errors.Wrap(err, "创建者自动加入失败")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return event.ID, nil
}

// AllEvents 全部活动，按开始日期倒序，附带主办方信息
func (s *Store) AllEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := s.db.WithContext(ctx).
		Preload("Organiser").
		Order("start_date DESC").
		Find(&events).Error
	if err != nil {
		return nil, errors.Wrap(err, "查询活动列表失败")
	}
	return events, nil
}

// EventsByStatus 按状态筛选，状态值按库存原样精确匹配
func (s *Store) EventsByStatus(ctx context.Context, status string) ([]model.Event, error) {
	var events []model.Event
	err := s.db.WithContext(ctx).
		Preload("Organiser").
		Where("status = ?", status).
		Order("start_date DESC").
		Find(&events).Error
	if err != nil {
		return nil, errors.Wrap(err, "按状态查询活动失败")
	}
	return events, nil
}

func (s *Store) EventByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	err := s.db.WithContext(ctx).Preload("Organiser").First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "查询活动失败")
	}
	return &event, nil
}

// EventByCode 按活动码查询，活动码统一大写比较
func (s *Store) EventByCode(ctx context.Context, code string) (*model.Event, error) {
	var event model.Event
	err := s.db.WithContext(ctx).
		Preload("Organiser").
		Where("event_code = ?", strings.ToUpper(code)).
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "按活动码查询失败")
	}
	return &event, nil
}

// UserEvents 用户已加入的活动，按开始日期倒序
func (s *Store) UserEvents(ctx context.Context, userID uint) ([]model.Event, error) {
	var events []model.Event
	err := s.db.WithContext(ctx).
		Joins("JOIN joins ON joins.event_id = event.id").
		Where("joins.user_id = ?", userID).
		Preload("Organiser").
		Order("event.start_date DESC").
		Find(&events).Error
	if err != nil {
		return nil, errors.Wrap(err, "查询用户活动失败")
	}
	return events, nil
}

// JoinEvent 加入活动，角色单条插入一步到位（不再插入后补更新）
func (s *Store) JoinEvent(ctx context.Context, userID, eventID uint, r string) error {
	if r == "" {
		r = role.Participant
	}
	if !role.Valid(r) {
		return ErrInvalidRole
	}

	join := model.Join{
		UserID:   userID,
		EventID:  eventID,
		UserRole: role.Normalize(r),
	}
	if err := s.db.WithContext(ctx).Create(&join).Error; err != nil {
		if isDuplicate(err) {
			return ErrAlreadyJoined
		}
		return errors.Wrap(err, "加入活动失败")
	}
	return nil
}

// CheckUserJoined 成员关系存在性检查，存储错误原样上抛而不是折叠成 false
func (s *Store) CheckUserJoined(ctx context.Context, userID, eventID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Join{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "查询成员关系失败")
	}
	return count > 0, nil
}

// EventRole 用户在活动内的角色，未加入返回空串
func (s *Store) EventRole(ctx context.Context, userID, eventID uint) (string, error) {
	var join model.Join
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&join).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "查询活动角色失败")
	}
	return join.UserRole, nil
}

// SetEventRole 类型化的角色变更，取代裸 SQL 更新；枚举外的值一律拒绝
func (s *Store) SetEventRole(ctx context.Context, userID, eventID uint, r string) error {
	if !role.Valid(r) {
		return ErrInvalidRole
	}

	res := s.db.WithContext(ctx).
		Model(&model.Join{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Update("user_role", role.Normalize(r))
	if res.Error != nil {
		return errors.Wrap(res.Error, "更新活动角色失败")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Member 活动成员视图，供成员列表和导出使用
type Member struct {
	UserID    uint      `gorm:"column:user_id" json:"user_id"`
	FirstName string    `gorm:"column:first_name" json:"first_name"`
	LastName  string    `gorm:"column:last_name" json:"last_name"`
	Username  string    `gorm:"column:username" json:"username"`
	MobileNo  string    `gorm:"column:mobile_no" json:"mobile_no"`
	UserRole  string    `gorm:"column:user_role" json:"user_role"`
	JoinedAt  time.Time `gorm:"column:joined_at" json:"joined_at"`
}

func (s *Store) EventMembers(ctx context.Context, eventID uint) ([]Member, error) {
	var members []Member
	err := s.db.WithContext(ctx).
		Table("joins").
		Select(`joins.user_id,
			user.first_name,
			user.last_name,
			user.username,
			user.mobile_no,
			joins.user_role,
			joins.created_at AS joined_at`).
		Joins("JOIN user ON user.id = joins.user_id").
		Where("joins.event_id = ?", eventID).
		Order("joins.created_at ASC").
		Scan(&members).Error
	if err != nil {
		return nil, errors.Wrap(err, "查询活动成员失败")
	}
	return members, nil
}

// EventStats 活动维度的计数汇总
type EventStats struct {
	MemberCount       int64 `json:"member_count"`
	AnnouncementCount int64 `json:"announcement_count"`
	MessageCount      int64 `json:"message_count"`
	SubeventCount     int64 `json:"subevent_count"`
}

func (s *Store) EventStatistics(ctx context.Context, eventID uint) (*EventStats, error) {
	var stats EventStats
	db := s.db.WithContext(ctx)

	if err := db.Model(&model.Join{}).
		Where("event_id = ?", eventID).
		Count(&stats.MemberCount).Error; err != nil {
		return nil, errors.Wrap(err, "统计成员数失败")
	}
	if err := db.Model(&model.EventAnnouncement{}).
		Where("event_id = ?", eventID).
		Count(&stats.AnnouncementCount).Error; err != nil {
		return nil, errors.Wrap(err, "统计公告数失败")
	}
	if err := db.Model(&model.ChatMessage{}).
		Where("event_id = ?", eventID).
		Count(&stats.MessageCount).Error; err != nil {
		return nil, errors.Wrap(err, "统计消息数失败")
	}
	if err := db.Model(&model.EventSubevent{}).
		Where("event_id = ?", eventID).
		Count(&stats.SubeventCount).Error; err != nil {
		return nil, errors.Wrap(err, "统计子活动数失败")
	}
	return &stats, nil
}
