package user

import (
	"event-contact-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	userGroup := r.Group("/user")
	{
		userGroup.POST("/register", middleware.RateLimit(10, 5), Register)
		userGroup.POST("/login", middleware.RateLimit(20, 10), Login)
	}

	authed := userGroup.Group("")
	authed.Use(middleware.Auth(rdb))
	{
		authed.GET("/me", GetMe)
		authed.POST("/logout", Logout)
	}
}
