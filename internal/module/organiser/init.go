package organiser

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

type ModuleOrganiser struct{}

func (m *ModuleOrganiser) GetName() string {
	return "Organiser"
}

func (m *ModuleOrganiser) Init(s *store.Store, r *redis.Client, _ *filebed.FileBed) {
	log = logger.New("Organiser")
	st = s
	rdb = r
}
