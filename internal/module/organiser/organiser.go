package organiser

import (
	"event-contact-system/internal/global/jwt"
	"event-contact-system/internal/global/response"
	"event-contact-system/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Me 当前用户的主办方档案，首次创建活动时自动生成
func Me(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	org, err := st.OrganiserByUserID(c.Request.Context(), payload.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("尚未创建主办方档案"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, org)
}

type UpdateRequest struct {
	Phone string `json:"phone"`
	Post  string `json:"post"`
}

// Update 更新主办方档案的联系电话和职务
func Update(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.Phone == "" && req.Post == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("没有要更新的字段"))
		return
	}

	if err := st.UpdateOrganiser(c.Request.Context(), payload.UserID, req.Phone, req.Post); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("尚未创建主办方档案"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c)
}
