package web

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/internal/config"
	"github.com/bigredeye/gradebook/internal/database"
	"github.com/bigredeye/gradebook/internal/records"
)

func Run(logger *zap.Logger, config *config.Config) error {
	db, err := database.OpenDataBase(logger, config.DSN(), config.DataBase.ConnectRetries)
	if err != nil {
		return errors.Wrap(err, "Failed to open database")
	}

	s := newServer(config, logger, records.NewService(db, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return errors.Wrap(s.run(ctx), "Server failed")
}
