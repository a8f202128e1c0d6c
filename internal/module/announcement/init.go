package announcement

import (
	"event-contact-system/internal/global/filebed"
	"event-contact-system/internal/global/logger"
	"event-contact-system/internal/store"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

var (
	log *slog.Logger
	st  *store.Store
	rdb *redis.Client
	bed *filebed.FileBed
)

type ModuleAnnouncement struct{}

func (a *ModuleAnnouncement) GetName() string {
	return "Announcement"
}

func (a *ModuleAnnouncement) Init(s *store.Store, r *redis.Client, fb *filebed.FileBed) {
	log = logger.New("Announcement")
	st = s
	rdb = r
	bed = fb
}
