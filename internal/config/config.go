package config

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/bigredeye/gradebook/pkg/conf"
)

type Config struct {
	Server struct {
		ListenAddress   string
		ShutdownTimeout time.Duration
	}

	DataBase struct {
		Host           string
		Port           uint16
		User           string
		Pass           string
		Name           string
		SSLMode        string
		ConnectRetries uint64
	}

	Log struct {
		// dev or prod
		Mode       string
		File       string
		MaxSize    string
		MaxBackups int
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DataBase.Host,
		c.DataBase.Port,
		c.DataBase.User,
		c.DataBase.Pass,
		c.DataBase.Name,
		c.DataBase.SSLMode,
	)
}

var defaults = map[string]interface{}{
	"server.listenaddress":    ":8080",
	"server.shutdowntimeout":  "10s",
	"database.host":           "localhost",
	"database.port":           5432,
	"database.name":           "gradebook",
	"database.sslmode":        "disable",
	"database.connectretries": 5,
	"log.mode":                "dev",
	"log.maxsize":             "100MB",
	"log.maxbackups":          3,
}

func ParseConfig(path string) (*Config, error) {
	options := []conf.Option{conf.EnvPrefix("GB"), conf.ConfigFile(path)}
	for key, value := range defaults {
		options = append(options, conf.Default(key, value))
	}

	config := &Config{}
	if err := conf.ParseConfig(config, options...); err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}
	return config, nil
}
