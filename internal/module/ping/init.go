package ping

import (
	"event-contact-system/internal/global/filebed"
	"event-contact-system/internal/global/logger"
	"event-contact-system/internal/store"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

var log *slog.Logger

type ModulePing struct{}

func (p *ModulePing) GetName() string {
	return "Ping"
}

func (p *ModulePing) Init(_ *store.Store, _ *redis.Client, _ *filebed.FileBed) {
	log = logger.New("Ping")
}
