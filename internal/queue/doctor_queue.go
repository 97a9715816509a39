package queue

import (
	"cmp"
	"slices"
	"sync"

	"clinic_queue/internal/models"
)

// doctorQueue holds every entry of one doctor. All reads and writes of the
// partition happen under mu; entries are stored by value and replaced whole.
type doctorQueue struct {
	mu      sync.Mutex
	entries map[string]models.QueueEntry
}

func newDoctorQueue() *doctorQueue {
	return &doctorQueue{entries: make(map[string]models.QueueEntry)}
}

func (q *doctorQueue) activeCount() int {
	n := 0
	for _, e := range q.entries {
		if e.Status.Active() {
			n++
		}
	}
	return n
}

func (q *doctorQueue) hasInProgress() bool {
	for _, e := range q.entries {
		if e.Status == models.StatusInProgress {
			return true
		}
	}
	return false
}

// nextWaiting picks the WAITING entry with the smallest position.
// Duplicate positions fall back to createdAt, then id.
func (q *doctorQueue) nextWaiting() (models.QueueEntry, bool) {
	var (
		best  models.QueueEntry
		found bool
	)
	for _, e := range q.entries {
		if e.Status != models.StatusWaiting {
			continue
		}
		if !found || compareEntries(e, best) < 0 {
			best, found = e, true
		}
	}
	return best, found
}

func (q *doctorQueue) collect(keep func(models.QueueEntry) bool) []models.QueueEntry {
	out := make([]models.QueueEntry, 0, len(q.entries))
	for _, e := range q.entries {
		if keep == nil || keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func compareEntries(a, b models.QueueEntry) int {
	if c := cmp.Compare(a.Position, b.Position); c != 0 {
		return c
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func sortByPosition(entries []models.QueueEntry) {
	slices.SortFunc(entries, compareEntries)
}
