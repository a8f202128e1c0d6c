package event

import (
	"strconv"
	"strings"

	"event-contact-system/internal/global/jwt"
	"event-contact-system/internal/global/response"
	"event-contact-system/internal/model"
	"event-contact-system/internal/role"
	"event-contact-system/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type CreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
	StartDate   int64  `json:"start_date" binding:"required"`
	EndDate     int64  `json:"end_date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Status      string `json:"status"`
	EventCode   string `json:"event_code"`
	Type        string `json:"type"`
}

// Create 创建活动：建立（或复用）主办方档案、生成活动码、创建者自动成为 admin
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
	if req.EndDate < req.StartDate {
		response.Fail(c, response.ErrInvalidRequest.WithTips("结束日期不能早于开始日期"))
		return
	}
	if req.Status == "" {
		req.Status = model.EventStatusUpcoming
	}

	code := strings.ToUpper(req.EventCode)
	if code == "" {
		code = newEventCode()
	}
	// 先查重给出友好提示，唯一索引兜底并发窗口
	if _, err := st.EventByCode(c.Request.Context(), code); err == nil {
		response.Fail(c, response.ErrAlreadyExists.WithTips("活动码已被使用"))
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	user, err := st.UserByID(c.Request.Context(), payload.UserID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	organiser, err := st.EnsureOrganiser(c.Request.Context(), store.OrganiserParams{
		Name:   user.FirstName + " " + user.LastName,
		Phone:  user.MobileNo,
		Email:  user.Username,
		Post:   "Event Organiser",
		UserID: user.ID,
	})
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	id, err := st.CreateEvent(c.Request.Context(), store.CreateEventParams{
		Title:         req.Title,
		Category:      req.Category,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        req.Status,
		EventCode:     code,
		Type:          req.Type,
		OrganiserID:   organiser.ID,
		CreatorUserID: user.ID,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEventCode) {
			response.Fail(c, response.ErrAlreadyExists.WithTips("活动码已被使用"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动创建成功", "event_id", id, "event_code", code, "creator", user.Username)
	response.Success(c, gin.H{"event_id": id, "event_code": code})
}

// List 活动列表，status 查询参数可选，按库存状态值精确匹配
func List(c *gin.Context) {
	status := c.Query("status")

	var (
		events []model.Event
		err    error
	)
	if status == "" {
		events, err = st.AllEvents(c.Request.Context())
	} else {
		events, err = st.EventsByStatus(c.Request.Context(), status)
	}
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, events)
}

// Mine 当前用户已加入的活动
func Mine(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	events, err := st.UserEvents(c.Request.Context(), payload.UserID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, events)
}

func GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	event, err := st.EventByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, event)
}

func GetByCode(c *gin.Context) {
	event, err := st.EventByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动码不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, event)
}

type JoinRequest struct {
	EventCode string `json:"event_code" binding:"required"`
	Role      string `json:"role"`
}

// Join 通过活动码加入活动，role 省略时为 participant
func Join(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	event, err := st.EventByCode(c.Request.Context(), req.EventCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动码不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := st.JoinEvent(c.Request.Context(), payload.UserID, event.ID, req.Role); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyJoined):
			response.Fail(c, response.ErrAlreadyExists.WithTips("已加入该活动"))
		case errors.Is(err, store.ErrInvalidRole):
			response.Fail(c, response.ErrInvalidRequest.WithTips("非法的角色取值"))
		default:
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
		}
		return
	}

	log.Info("用户加入活动", "user_id", payload.UserID, "event_id", event.ID)
	response.Success(c, gin.H{"event_id": event.ID, "title": event.Title})
}

// CheckJoined 成员关系检查，存储错误上抛而不是折叠成未加入
func CheckJoined(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	joined, err := st.CheckUserJoined(c.Request.Context(), payload.UserID, id)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"joined": joined})
}

// Members 活动成员列表，仅成员可见
func Members(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	joined, err := st.CheckUserJoined(c.Request.Context(), payload.UserID, id)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !joined {
		response.Fail(c, response.ErrForbidden.WithTips("未加入该活动"))
		return
	}

	members, err := st.EventMembers(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, members)
}

type SetRoleRequest struct {
	EventID uint   `json:"event_id" binding:"required"`
	UserID  uint   `json:"user_id" binding:"required"`
	Role    string `json:"role" binding:"required"`
}

// SetRole 活动内角色变更，仅本活动 admin 可操作
func SetRole(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	callerRole, err := st.EventRole(c.Request.Context(), payload.UserID, req.EventID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !role.Has(callerRole, role.Admin) {
		response.Fail(c, response.ErrForbidden.WithTips("仅活动管理员可变更角色"))
		return
	}

	if err := st.SetEventRole(c.Request.Context(), req.UserID, req.EventID, req.Role); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidRole):
			response.Fail(c, response.ErrInvalidRequest.WithTips("非法的角色取值"))
		case errors.Is(err, store.ErrNotFound):
			response.Fail(c, response.ErrNotFound.WithTips("该用户未加入活动"))
		default:
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
		}
		return
	}

	log.Info("活动角色变更", "event_id", req.EventID, "user_id", req.UserID, "role", req.Role)
	response.Success(c)
}

// newEventCode 生成 8 位大写活动码
func newEventCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:8])
}

// parseIDParam 解析路径中的数字 ID，非法时直接响应 400
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("非法的 ID"))
		return 0, false
	}
	return uint(id), true
}
