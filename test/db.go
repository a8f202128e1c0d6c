package test

import (
	"fmt"
	"strings"
	"testing"

	"event-contact-system/internal/global/database"
	"event-contact-system/internal/store"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// NewStore 内存 sqlite 上的 Store，表结构与生产迁移保持一致
func NewStore(t *testing.T) *store.Store {
	t.Helper()

	// 每个测试用独立命名的内存库，cache=shared 让连接池内的连接看到同一份数据
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return store.New(db)
}
