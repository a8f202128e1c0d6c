package event

import (
	"event-contact-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (e *ModuleEvent) InitRouter(r *gin.RouterGroup) {
	eventGroup := r.Group("/event")
	eventGroup.Use(middleware.Auth(rdb))
	{
		eventGroup.POST("/create", Create)
		eventGroup.GET("/list", List)
		eventGroup.GET("/mine", Mine)
		eventGroup.GET("/:id", GetByID)
		eventGroup.GET("/code/:code", GetByCode)
		eventGroup.POST("/join", Join)
		eventGroup.GET("/:id/joined", CheckJoined)
		eventGroup.GET("/:id/members", Members)
		eventGroup.POST("/role", SetRole)
	}
}
