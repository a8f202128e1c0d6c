package announcement

import (
	"event-contact-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (a *ModuleAnnouncement) InitRouter(r *gin.RouterGroup) {
	group := r.Group("/announcement")
	group.Use(middleware.Auth(rdb))
	{
		group.POST("/create", Create)
		group.GET("/event/:event_id", List)
		group.POST("/upload", Upload)
		group.POST("/upload-url", UploadURL)
		group.GET("/download-url", DownloadURL)
	}
}
