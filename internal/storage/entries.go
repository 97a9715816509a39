package storage

import (
	"context"

	"clinic_queue/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryRepository is the postgres side of the queue engine's write-through.
type EntryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

func upsert(db *gorm.DB, entry *models.QueueEntry) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"position", "status"}),
	}).Create(entry).Error
}

func (r *EntryRepository) SaveEntry(ctx context.Context, entry models.QueueEntry) error {
	if err := upsert(r.db.WithContext(ctx), &entry); err != nil {
		return errors.Wrapf(err, "failed to save queue entry %s", entry.ID)
	}
	return nil
}

// SaveEntries stores all entries in one transaction.
func (r *EntryRepository) SaveEntries(ctx context.Context, entries []models.QueueEntry) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range entries {
			if err := upsert(tx, &entries[i]); err != nil {
				return errors.Wrapf(err, "failed to save queue entry %s", entries[i].ID)
			}
		}
		return nil
	})
	return err
}

func (r *EntryRepository) DeleteEntry(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.QueueEntry{}).Error; err != nil {
		return errors.Wrapf(err, "failed to delete queue entry %s", id)
	}
	return nil
}

func (r *EntryRepository) DeleteEntries(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.QueueEntry{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete queue entries")
	}
	return nil
}

func (r *EntryRepository) LoadEntries(ctx context.Context) ([]models.QueueEntry, error) {
	var entries []models.QueueEntry
	if err := r.db.WithContext(ctx).Order("doctor_id, position").Find(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load queue entries")
	}
	return entries, nil
}
