package subevent

import (
	"event-contact-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleSubevent) InitRouter(r *gin.RouterGroup) {
	group := r.Group("/subevent")
	group.Use(middleware.Auth(rdb))
	{
		group.POST("/create", Create)
		group.GET("/event/:event_id", List)
		group.PUT("/capacity", UpdateCapacity)
	}
}
