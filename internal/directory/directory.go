package directory

import (
	"context"
	"time"

	"clinic_queue/internal/models"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

type records interface {
	FindDoctor(ctx context.Context, id string) (*models.Doctor, error)
	FindPatient(ctx context.Context, id string) (*models.Patient, error)
}

// Directory resolves display names for doctors and patients, caching them in
// redis. A nil redis client disables the cache.
type Directory struct {
	records records
	redis   *redis.Client
	ttl     time.Duration
	logger  *logrus.Logger
}

func New(records records, redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) *Directory {
	return &Directory{
		records: records,
		redis:   redisClient,
		ttl:     ttl,
		logger:  logger,
	}
}

func (d *Directory) DoctorName(ctx context.Context, id string) (string, error) {
	return d.name(ctx, "directory_doctor_"+id, func() (string, error) {
		doctor, err := d.records.FindDoctor(ctx, id)
		if err != nil {
			return "", err
		}
		return doctor.Name, nil
	})
}

func (d *Directory) PatientName(ctx context.Context, id string) (string, error) {
	return d.name(ctx, "directory_patient_"+id, func() (string, error) {
		patient, err := d.records.FindPatient(ctx, id)
		if err != nil {
			return "", err
		}
		return patient.Name, nil
	})
}

func (d *Directory) name(ctx context.Context, cacheKey string, load func() (string, error)) (string, error) {
	if d.redis != nil {
		cached, err := d.redis.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			return cached, nil
		}
		if err != nil && err != redis.Nil {
			d.logger.WithError(err).WithField("key", cacheKey).Warn("directory cache read failed")
		}
	}

	name, err := load()
	if err != nil {
		return "", err
	}

	if d.redis != nil {
		if err := d.redis.Set(ctx, cacheKey, name, d.ttl).Err(); err != nil {
			d.logger.WithError(err).WithField("key", cacheKey).Warn("directory cache write failed")
		}
	}
	return name, nil
}
