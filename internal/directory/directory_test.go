package directory

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic_queue/internal/models"
	"clinic_queue/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecords struct {
	doctorCalls  int
	patientCalls int
}

func (s *stubRecords) FindDoctor(_ context.Context, id string) (*models.Doctor, error) {
	s.doctorCalls++
	if id != "doc-1" {
		return nil, storage.ErrNotFound
	}
	return &models.Doctor{ID: id, Name: "Dr. Grace Hopper"}, nil
}

func (s *stubRecords) FindPatient(_ context.Context, id string) (*models.Patient, error) {
	s.patientCalls++
	if id != "pat-1" {
		return nil, storage.ErrNotFound
	}
	return &models.Patient{ID: id, Name: "Alan Turing"}, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestNamesAreCachedInRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	records := &stubRecords{}
	dir := New(records, client, time.Minute, quietLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		name, err := dir.DoctorName(ctx, "doc-1")
		require.NoError(t, err)
		assert.Equal(t, "Dr. Grace Hopper", name)
	}
	assert.Equal(t, 1, records.doctorCalls)

	cached, err := mr.Get("directory_doctor_doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Grace Hopper", cached)

	mr.FastForward(2 * time.Minute)
	_, err = dir.DoctorName(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, records.doctorCalls)
}

func TestMissingRecordIsNotCached(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	records := &stubRecords{}
	dir := New(records, client, time.Minute, quietLogger())

	_, err := dir.PatientName(context.Background(), "pat-404")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	assert.False(t, mr.Exists("directory_patient_pat-404"))
}

func TestRedisOutageFallsBackToRecords(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	records := &stubRecords{}
	dir := New(records, client, time.Minute, quietLogger())

	name, err := dir.PatientName(context.Background(), "pat-1")
	require.NoError(t, err)
	assert.Equal(t, "Alan Turing", name)
}

func TestWithoutCache(t *testing.T) {
	records := &stubRecords{}
	dir := New(records, nil, time.Minute, quietLogger())

	_, _ = dir.PatientName(context.Background(), "pat-1")
	_, _ = dir.PatientName(context.Background(), "pat-1")
	assert.Equal(t, 2, records.patientCalls)
}
