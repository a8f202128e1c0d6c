package subevent

import (
	"strconv"

	"event-contact-system/internal/global/jwt"
	"event-contact-system/internal/global/response"
	"event-contact-system/internal/role"
	"event-contact-system/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type CreateRequest struct {
	EventID     uint   `json:"event_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Capacity    uint   `json:"capacity"` // 0 表示不限人数
}

// Create 创建子活动，仅活动内 admin / core 可操作
func Create(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if !requireEventRole(c, payload.UserID, req.EventID, role.Admin, role.Core) {
		return
	}

	id, err := st.CreateSubevent(c.Request.Context(), store.CreateSubeventParams{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		EventID:     req.EventID,
	})
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("子活动创建成功", "event_id", req.EventID, "subevent_id", id)
	response.Success(c, gin.H{"subevent_id": id})
}

// List 活动的子活动列表，仅成员可见
func List(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 64)
	if err != nil || eventID == 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("非法的活动 ID"))
		return
	}

	joined, err := st.CheckUserJoined(c.Request.Context(), payload.UserID, uint(eventID))
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !joined {
		response.Fail(c, response.ErrForbidden.WithTips("未加入该活动"))
		return
	}

	list, err := st.EventSubevents(c.Request.Context(), uint(eventID))
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, list)
}

type UpdateCapacityRequest struct {
	EventID    uint `json:"event_id" binding:"required"`
	SubeventID uint `json:"subevent_id" binding:"required"`
	Capacity   uint `json:"capacity"`
}

// UpdateCapacity 调整子活动容量，0 表示不限人数
func UpdateCapacity(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req UpdateCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if !requireEventRole(c, payload.UserID, req.EventID, role.Admin, role.Core) {
		return
	}

	if err := st.UpdateSubeventCapacity(c.Request.Context(), req.SubeventID, req.Capacity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("子活动不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c)
}

func requireEventRole(c *gin.Context, userID, eventID uint, allowed ...string) bool {
	r, err := st.EventRole(c.Request.Context(), userID, eventID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return false
	}
	if !role.Has(r, allowed...) {
		response.Fail(c, response.ErrForbidden.WithTips("需要活动管理员或核心成员权限"))
		return false
	}
	return true
}
