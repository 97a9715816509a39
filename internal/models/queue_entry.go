package models

import (
	"time"
)

type QueueStatus string

const (
	StatusWaiting    QueueStatus = "WAITING"
	StatusInProgress QueueStatus = "IN_PROGRESS"
	StatusCompleted  QueueStatus = "COMPLETED"
	StatusSkipped    QueueStatus = "SKIPPED"
)

// ParseQueueStatus accepts the canonical upper-case names only.
func ParseQueueStatus(s string) (QueueStatus, bool) {
	switch QueueStatus(s) {
	case StatusWaiting, StatusInProgress, StatusCompleted, StatusSkipped:
		return QueueStatus(s), true
	}
	return "", false
}

// Active reports whether the entry still occupies a slot in the doctor's queue.
func (s QueueStatus) Active() bool {
	return s == StatusWaiting || s == StatusInProgress
}

type QueueEntry struct {
	ID        string      `gorm:"primaryKey;size:36"`
	DoctorID  string      `gorm:"index;not null"`
	PatientID string      `gorm:"index;not null"`
	Position  int         `gorm:"index;not null"` // insertion-order token, never renumbered
	Status    QueueStatus `gorm:"index;size:16;not null"`
	CreatedAt time.Time   `gorm:"not null"`
}
