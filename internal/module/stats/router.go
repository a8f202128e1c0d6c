package stats

import (
	"event-contact-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleStats) InitRouter(r *gin.RouterGroup) {
	group := r.Group("/stats")
	group.Use(middleware.Auth(rdb))
	{
		group.GET("/event/:event_id", EventStats)
		group.GET("/event/:event_id/export", ExportMembers)
	}
}
