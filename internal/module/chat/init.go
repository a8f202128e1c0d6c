package chat

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

type ModuleChat struct{}

func (m *ModuleChat) GetName() string {
	return "Chat"
}

func (m *ModuleChat) Init(s *store.Store, r *redis.Client, _ *filebed.FileBed) {
	log = logger.New("Chat")
	st = s
	rdb = r
}
