package storage

import (
	"context"
	"fmt"

	"clinic_queue/internal/config"
	"clinic_queue/internal/models"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func ConnectDatabase(cfg config.Postgres, logger *logrus.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgresql")
	}

	logger.Infof("connected to postgresql %s:%d/%s", cfg.Host, cfg.Port, cfg.Database)
	return db, nil
}

// Migrate creates the queue table and, for local setups, the directory tables
// owned by the records service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.QueueEntry{}, &models.Doctor{}, &models.Patient{}); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}

func InitRedis(ctx context.Context, cfg config.Redis, logger *logrus.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
	}

	logger.Infof("redis is running on %s db %d", cfg.Addr, cfg.Database)
	return client, nil
}
