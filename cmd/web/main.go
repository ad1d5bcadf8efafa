package main

import (
	"flag"
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bigredeye/gradebook/internal/config"
	"github.com/bigredeye/gradebook/internal/web"
	zlog "github.com/bigredeye/gradebook/pkg/log"
)

var configPath = flag.String("config", "", "Path to the config")

func run() error {
	flag.Parse()

	conf, err := config.ParseConfig(*configPath)
	if err != nil {
		return err
	}

	logger, err := zlog.Init(conf.Log.Mode, zlog.FileOptions{
		Path:       conf.Log.File,
		MaxSize:    conf.Log.MaxSize,
		MaxBackups: conf.Log.MaxBackups,
	})
	if err != nil {
		return err
	}
	defer zlog.Sync()

	return web.Run(logger, conf)
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
