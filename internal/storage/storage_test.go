package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clinic_queue/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func sampleEntry(id string) models.QueueEntry {
	return models.QueueEntry{
		ID:        id,
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Position:  1,
		Status:    models.StatusWaiting,
		CreatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestSaveEntryUpserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db)

	mock.ExpectExec(`INSERT INTO "queue_entries" .+ ON CONFLICT`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveEntry(context.Background(), sampleEntry("e-1")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEntryWrapsDriverError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db)

	mock.ExpectExec(`INSERT INTO "queue_entries"`).WillReturnError(fmt.Errorf("connection reset"))

	err := repo.SaveEntry(context.Background(), sampleEntry("e-1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "e-1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEntriesRunsInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "queue_entries"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "queue_entries"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SaveEntries(context.Background(), []models.QueueEntry{sampleEntry("e-1"), sampleEntry("e-2")})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEntriesRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "queue_entries"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "queue_entries"`).WillReturnError(fmt.Errorf("deadlock detected"))
	mock.ExpectRollback()

	err := repo.SaveEntries(context.Background(), []models.QueueEntry{sampleEntry("e-1"), sampleEntry("e-2")})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEntries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db)

	mock.ExpectExec(`DELETE FROM "queue_entries" WHERE id = \$1`).
		WithArgs("e-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "queue_entries" WHERE id IN`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteEntry(context.Background(), "e-1"))
	require.NoError(t, repo.DeleteEntries(context.Background(), []string{"e-2", "e-3"}))
	require.NoError(t, repo.DeleteEntries(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadEntries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db)
	created := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "doctor_id", "patient_id", "position", "status", "created_at"}).
		AddRow("e-1", "doc-1", "pat-1", 1, "IN_PROGRESS", created).
		AddRow("e-2", "doc-1", "pat-2", 2, "WAITING", created)
	mock.ExpectQuery(`SELECT \* FROM "queue_entries" ORDER BY doctor_id, position`).WillReturnRows(rows)

	entries, err := repo.LoadEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.StatusInProgress, entries[0].Status)
	assert.Equal(t, 2, entries[1].Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindDoctor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDirectoryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "doctors" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "specialization", "department"}).
			AddRow("doc-1", "Dr. Ada Byron", "Cardiology", "Heart"))

	doctor, err := repo.FindDoctor(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Ada Byron", doctor.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPatientMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDirectoryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "email"}))
	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE id = \$1`).
		WillReturnError(fmt.Errorf("too many connections"))

	_, err := repo.FindPatient(context.Background(), "pat-404")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = repo.FindPatient(context.Background(), "pat-1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
