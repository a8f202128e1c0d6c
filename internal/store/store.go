// Package store 是持久层的唯一入口，每个领域操作一个方法
// 多语句序列一律在单个事务内完成
package store

import (
	"log/slog"
	"strings"

	"event-contact-system/internal/global/logger"

	gosqlmysql "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Store struct {
	db  *gorm.DB
	log *slog.Logger
}

// New 由组合根注入已建好的连接池
func New(db *gorm.DB) *Store {
	return &Store{
		db:  db,
		log: logger.New("Store"),
	}
}

// isDuplicate 判断是否唯一约束冲突
// MySQL 1062 / gorm 翻译错误 / sqlite（测试用内存库）三种形态
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *gosqlmysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
