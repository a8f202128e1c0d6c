package chat

import (
	"event-contact-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleChat) InitRouter(r *gin.RouterGroup) {
	group := r.Group("/chat")
	group.Use(middleware.Auth(rdb))
	{
		group.POST("/send", Send)
		group.GET("/event/:event_id", History)
	}
}
