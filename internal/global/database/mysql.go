package database

import (
	"fmt"

	"event-contact-system/config"
	"event-contact-system/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// autoMigrateModels 需要自动迁移的模型列表
var autoMigrateModels = []any{
	&model.User{},
	&model.Event{},
	&model.Join{},
	&model.Announcement{},
	&model.EventAnnouncement{},
	&model.ChatMessage{},
	&model.Subevent{},
	&model.EventSubevent{},
	&model.Organiser{},
}

// New 打开 MySQL 连接并完成迁移
// 连接池由 gorm 持有，调用方（组合根）负责注入到 store
func New(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Mysql.Username,
		cfg.Mysql.Password,
		cfg.Mysql.Host,
		cfg.Mysql.Port,
		cfg.Mysql.DBName,
	)
	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	}

	switch cfg.Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(autoMigrateModels...); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate 对外暴露迁移列表，供测试用内存库复用
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(autoMigrateModels...)
}
