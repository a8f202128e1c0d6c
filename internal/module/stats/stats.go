package stats

import (
	"fmt"
	"strconv"

	"event-contact-system/internal/global/jwt"
	"event-contact-system/internal/global/response"
	"event-contact-system/internal/role"
	"event-contact-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// EventStats 活动维度计数汇总，仅成员可见
func EventStats(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	joined, err := st.CheckUserJoined(c.Request.Context(), payload.UserID, eventID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !joined {
		response.Fail(c, response.ErrForbidden.WithTips("未加入该活动"))
		return
	}

	result, err := st.EventStatistics(c.Request.Context(), eventID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, result)
}

type memberRow struct {
	UserID    uint   `excel:"用户ID"`
	FirstName string `excel:"名"`
	LastName  string `excel:"姓"`
	Username  string `excel:"邮箱"`
	MobileNo  string `excel:"手机号"`
	UserRole  string `excel:"活动角色"`
	JoinedAt  string `excel:"加入时间"`
}

// ExportMembers 导出活动成员名单为 Excel，仅活动管理员可操作
func ExportMembers(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	r, err := st.EventRole(c.Request.Context(), payload.UserID, eventID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !role.Has(r, role.Admin) {
		response.Fail(c, response.ErrForbidden.WithTips("仅活动管理员可导出成员名单"))
		return
	}

	members, err := st.EventMembers(c.Request.Context(), eventID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]memberRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, memberRow{
			UserID:    m.UserID,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Username:  m.Username,
			MobileNo:  m.MobileNo,
			UserRole:  m.UserRole,
			JoinedAt:  m.JoinedAt.Format("2006-01-02 15:04:05"),
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, "成员名单", rows); err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	if err := tools.SendExcel(c, f, fmt.Sprintf("event_%d_members.xlsx", eventID)); err != nil {
		log.Warn("成员名单导出写出失败", "err", err, "event_id", eventID)
	}
}

func parseEventID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("event_id"), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("非法的活动 ID"))
		return 0, false
	}
	return uint(id), true
}
