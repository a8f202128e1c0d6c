package chat

import (
	"strconv"

	"event-contact-system/internal/global/jwt"
	"event-contact-system/internal/global/response"
	"event-contact-system/internal/store"

	"github.com/gin-gonic/gin"
)

type SendRequest struct {
	EventID         uint   `json:"event_id" binding:"required"`
	Text            string `json:"text" binding:"required"`
	SubeventName    string `json:"subevent_name"`
	IdxEventChat    int    `json:"idx_event_chat"`
	IdxSubeventChat int    `json:"idx_subevent_chat"`
}

// Send 发送聊天消息，subevent_name 为空表示主活动会话；仅活动成员可发言
func Send(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	joined, err := st.CheckUserJoined(c.Request.Context(), payload.UserID, req.EventID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !joined {
		response.Fail(c, response.ErrForbidden.WithTips("未加入该活动"))
		return
	}

	id, err := st.SendMessage(c.Request.Context(), store.SendMessageParams{
		EventID:         req.EventID,
		SenderUsername:  payload.Username,
		Text:            req.Text,
		SubeventName:    req.SubeventName,
		IdxEventChat:    req.IdxEventChat,
		IdxSubeventChat: req.IdxSubeventChat,
	})
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"chat_id": id})
}

// History 会话历史：最新 limit 条消息按时间正序返回
// subevent 查询参数为空时读主活动会话，limit 默认 50
func History(c *gin.Context) {
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
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	subevent := c.Query("subevent")

	joined, err := st.CheckUserJoined(c.Request.Context(), payload.UserID, uint(eventID))
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !joined {
		response.Fail(c, response.ErrForbidden.WithTips("未加入该活动"))
		return
	}

	msgs, err := st.SubeventChat(c.Request.Context(), uint(eventID), subevent, limit)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, msgs)
}
