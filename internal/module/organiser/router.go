package organiser

import (
	"event-contact-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleOrganiser) InitRouter(r *gin.RouterGroup) {
	group := r.Group("/organiser")
	group.Use(middleware.Auth(rdb))
	{
		group.GET("/me", Me)
		group.PUT("/me", Update)
	}
}
