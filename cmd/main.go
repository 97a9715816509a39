package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"clinic_queue/cmd/command"
	"clinic_queue/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// @Title						Электронная очередь клиники
// @Version					1.0
// @Description				Doctor queues: enqueue, advance, complete, skip and admin reporting
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithContext(ctx).Fatal(err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(cfg.LogLevel)
	if cfg.AppEnv == config.ProductionEnv {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	root := &cobra.Command{Short: "Clinic queue service"}
	root.AddCommand(
		command.Server{Logger: logger}.Command(ctx, cfg),
		command.MigrateCommand{Logger: logger}.Command(ctx, cfg),
		command.PurgeCommand{Logger: logger}.Command(ctx, cfg),
	)

	if err := root.Execute(); err != nil {
		logger.WithContext(ctx).Fatalf("failed to execute root command: \n%v", err)
	}
}
