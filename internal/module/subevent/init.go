package subevent

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
)

type ModuleSubevent struct{}

func (m *ModuleSubevent) GetName() string {
	return "Subevent"
}

func (m *ModuleSubevent) Init(s *store.Store, r *redis.Client, _ *filebed.FileBed) {
	log = logger.New("Subevent")
	st = s
	rdb = r
}
