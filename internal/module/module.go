package module

import (
	"event-contact-system/internal/global/filebed"
	"event-contact-system/internal/module/announcement"
	"event-contact-system/internal/module/chat"
	"event-contact-system/internal/module/event"
	"event-contact-system/internal/module/organiser"
	"event-contact-system/internal/module/ping"
	"event-contact-system/internal/module/stats"
	"event-contact-system/internal/module/subevent"
	"event-contact-system/internal/module/user"
	"event-contact-system/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Module interface {
	GetName() string
	Init(st *store.Store, rdb *redis.Client, bed *filebed.FileBed)
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&event.ModuleEvent{},
		&announcement.ModuleAnnouncement{},
		&chat.ModuleChat{},
		&subevent.ModuleSubevent{},
		&organiser.ModuleOrganiser{},
		&stats.ModuleStats{},
	})
}
