package main

import (
	"log"
	"os"

	"github.com/SergeyKozhin/event-reminder-backend/internal/config"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "event-reminder",
		Usage: "Events, invitations and email reminders.",
		Before: func(c *cli.Context) error {
			return config.Load()
		},
		Commands: []*cli.Command{
			apiCommand(),
			workerCommand(),
			migrateCommand(),
			tokenCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("event-reminder: %v", err)
	}
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
