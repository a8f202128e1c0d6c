package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var config Config

// Init 加载配置：先读 config.yaml（可选），再用环境变量覆盖
func Init() {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(&config); err != nil {
			panic(err)
		}
	}

	if err := envconfig.Process("", &config); err != nil {
		panic(err)
	}

	fillDefaults(&config)
}

func fillDefaults(c *Config) {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.Prefix == "" {
		c.Prefix = "api"
	}
	if c.Mode == "" {
		c.Mode = ModeDebug
	}
	if c.JWT.AccessExpire <= 0 {
		c.JWT.AccessExpire = 7 * 24 * 3600
	}
	if c.Storage.Home == "" {
		c.Storage.Home = "./upload"
	}
}

func Get() *Config {
	return &config
}
