package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"event-contact-system/config"
	"event-contact-system/internal/global/cache"
	"event-contact-system/internal/global/database"
	"event-contact-system/internal/global/filebed"
	"event-contact-system/internal/global/httpclient"
	"event-contact-system/internal/global/logger"
	"event-contact-system/internal/global/middleware"
	internalOtel "event-contact-system/internal/global/otel"
	internalSentry "event-contact-system/internal/global/sentry"
	"event-contact-system/internal/module"
	"event-contact-system/internal/store"
	"event-contact-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

// Init 组装所有依赖并初始化各业务模块
func Init() {
	config.Init()
	log = logger.New("Server")
	cfg := config.Get()

	if err := internalSentry.Init(); err != nil {
		log.Warn("Sentry 初始化失败", "err", err)
	}

	db, err := database.New(cfg)
	tools.PanicOnErr(err)
	st := store.New(db)

	rdb := cache.New()
	if rdb == nil {
		log.Info("未配置 Redis，令牌吊销降级为关闭")
	}

	bed := filebed.New(cfg)
	if bed.S3Enabled() {
		if err := bed.InitS3(context.Background()); err != nil {
			log.Warn("S3 初始化失败，附件回退到本地存储", "err", err)
		}
	}

	httpclient.Init()

	if cfg.OTel.Enable {
		log.Info("OTel Enabled")
		internalOtel.Init()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init(st, rdb, bed)
	}
}

func Run() {
	cfg := config.Get()
	gin.SetMode(string(cfg.Mode))
	r := gin.New()

	switch cfg.Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(internalSentry.Middleware())
	r.Use(middleware.Recovery())

	if cfg.OTel.Enable {
		r.Use(middleware.Trace())
	}

	// 本地附件的静态访问通道
	r.Static("/static/announcement", cfg.Storage.Home+"/announcement")

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + cfg.Prefix))
	}

	defer internalSentry.Flush(2 * time.Second)
	defer func() {
		if err := internalOtel.Shutdown(context.Background()); err != nil {
			log.Error("关闭 TracerProvider 失败", "err", err)
		}
	}()

	err := r.Run(cfg.Host + ":" + cfg.Port)
	tools.PanicOnErr(err)
}
