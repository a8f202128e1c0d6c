package event

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

type ModuleEvent struct{}

func (e *ModuleEvent) GetName() string {
	return "Event"
}

func (e *ModuleEvent) Init(s *store.Store, r *redis.Client, _ *filebed.FileBed) {
	log = logger.New("Event")
	st = s
	rdb = r
}
