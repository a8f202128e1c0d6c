package stats

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

type ModuleStats struct{}

func (m *ModuleStats) GetName() string {
	return "Stats"
}

func (m *ModuleStats) Init(s *store.Store, r *redis.Client, _ *filebed.FileBed) {
	log = logger.New("Stats")
	st = s
	rdb = r
}
