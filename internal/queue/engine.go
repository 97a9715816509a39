package queue

import (
	"context"
	"slices"
	"sync"
	"time"

	"clinic_queue/internal/metrics"
	"clinic_queue/internal/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Repository persists queue entries. The engine calls it while holding the
// owning doctor's lock and applies a change in memory only after it succeeds.
type Repository interface {
	SaveEntry(ctx context.Context, entry models.QueueEntry) error
	SaveEntries(ctx context.Context, entries []models.QueueEntry) error
	DeleteEntry(ctx context.Context, id string) error
	DeleteEntries(ctx context.Context, ids []string) error
	LoadEntries(ctx context.Context) ([]models.QueueEntry, error)
}

// Engine is the only writer of queue entry status and position.
// Entries are partitioned per doctor; operations on different doctors never
// contend with each other.
type Engine struct {
	queues sync.Map // doctorID -> *doctorQueue
	index  sync.Map // entryID -> doctorID

	repo          Repository
	wait          WaitPolicy
	strictAdvance bool
	now           func() time.Time
	newID         func() string
	logger        *logrus.Logger
	metrics       *metrics.QueueMetrics
}

type Option func(*Engine)

func WithRepository(repo Repository) Option {
	return func(e *Engine) { e.repo = repo }
}

func WithWaitPolicy(p WaitPolicy) Option {
	return func(e *Engine) { e.wait = p }
}

// WithStrictAdvance makes AdvanceQueue refuse to start a consultation while
// another one is IN_PROGRESS for the same doctor.
func WithStrictAdvance(strict bool) Option {
	return func(e *Engine) { e.strictAdvance = strict }
}

func WithLogger(logger *logrus.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

func WithMetrics(m *metrics.QueueMetrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		wait:   WaitPolicy{ConsultationMinutes: DefaultConsultationMinutes},
		now:    time.Now,
		newID:  uuid.NewString,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load rebuilds the in-memory partitions from the repository.
func (e *Engine) Load(ctx context.Context) (int, error) {
	if e.repo == nil {
		return 0, nil
	}
	entries, err := e.repo.LoadEntries(ctx)
	if err != nil {
		return 0, &internalError{op: "load", err: err}
	}
	for _, entry := range entries {
		q := e.partition(entry.DoctorID)
		q.mu.Lock()
		q.entries[entry.ID] = entry
		q.mu.Unlock()
		e.index.Store(entry.ID, entry.DoctorID)
	}
	e.logger.WithField("entries", len(entries)).Info("queue state loaded")
	return len(entries), nil
}

// Enqueue appends a patient to the doctor's queue. The position is the number of
// active entries plus one, computed and stored under the doctor's lock.
func (e *Engine) Enqueue(ctx context.Context, doctorID, patientID string) (models.QueueEntry, error) {
	q := e.partition(doctorID)
	q.mu.Lock()
	defer q.mu.Unlock()

	entry := models.QueueEntry{
		ID:        e.newID(),
		DoctorID:  doctorID,
		PatientID: patientID,
		Position:  q.activeCount() + 1,
		Status:    models.StatusWaiting,
		CreatedAt: e.now(),
	}
	if err := e.save(ctx, "enqueue", entry); err != nil {
		e.observe("enqueue", err)
		return models.QueueEntry{}, err
	}
	q.entries[entry.ID] = entry
	e.index.Store(entry.ID, doctorID)

	e.observe("enqueue", nil)
	e.entryLog(entry).Debug("patient joined queue")
	return entry, nil
}

func (e *Engine) Get(id string) (models.QueueEntry, error) {
	q, ok := e.lookup(id)
	if !ok {
		return models.QueueEntry{}, errors.Wrapf(ErrNotFound, "entry %s", id)
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	entry, ok := q.entries[id]
	if !ok {
		return models.QueueEntry{}, errors.Wrapf(ErrNotFound, "entry %s", id)
	}
	return entry, nil
}

// ListAll returns every entry ordered by position across all doctors.
func (e *Engine) ListAll() []models.QueueEntry {
	entries := e.Snapshot()
	sortByPosition(entries)
	return entries
}

func (e *Engine) ListByDoctor(doctorID string) []models.QueueEntry {
	return e.listDoctor(doctorID, nil)
}

func (e *Engine) ListActiveByDoctor(doctorID string) []models.QueueEntry {
	return e.listDoctor(doctorID, func(entry models.QueueEntry) bool {
		return entry.Status.Active()
	})
}

// ListByPatient has no ordering contract; entries come back oldest first.
func (e *Engine) ListByPatient(patientID string) []models.QueueEntry {
	var out []models.QueueEntry
	for _, entry := range e.Snapshot() {
		if entry.PatientID == patientID {
			out = append(out, entry)
		}
	}
	slices.SortFunc(out, func(a, b models.QueueEntry) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

// Snapshot copies all entries. Each doctor's partition is copied under its lock,
// so no entry is ever observed half-written.
func (e *Engine) Snapshot() []models.QueueEntry {
	out := make([]models.QueueEntry, 0)
	e.queues.Range(func(_, v any) bool {
		q := v.(*doctorQueue)
		q.mu.Lock()
		out = append(out, q.collect(nil)...)
		q.mu.Unlock()
		return true
	})
	return out
}

// SetStatus overwrites the status without any transition check. It is the
// administrative override; the guarded transitions are AdvanceQueue,
// CompleteConsultation and Skip.
func (e *Engine) SetStatus(ctx context.Context, id string, status models.QueueStatus) (models.QueueEntry, error) {
	if _, ok := models.ParseQueueStatus(string(status)); !ok {
		return models.QueueEntry{}, errors.Wrapf(ErrInvalidState, "unknown status %q", status)
	}
	entry, err := e.mutate(ctx, "set_status", id, func(entry models.QueueEntry) (models.QueueEntry, error) {
		entry.Status = status
		return entry, nil
	})
	e.observe("set_status", err)
	return entry, err
}

// AdvanceQueue promotes the doctor's lowest-position WAITING entry to IN_PROGRESS.
func (e *Engine) AdvanceQueue(ctx context.Context, doctorID string) (models.QueueEntry, error) {
	entry, err := e.advance(ctx, doctorID)
	e.observe("advance", err)
	return entry, err
}

func (e *Engine) advance(ctx context.Context, doctorID string) (models.QueueEntry, error) {
	v, ok := e.queues.Load(doctorID)
	if !ok {
		return models.QueueEntry{}, errors.Wrapf(ErrNotFound, "no waiting patients for doctor %s", doctorID)
	}
	q := v.(*doctorQueue)
	q.mu.Lock()
	defer q.mu.Unlock()

	if e.strictAdvance && q.hasInProgress() {
		return models.QueueEntry{}, errors.Wrapf(ErrInvalidState, "doctor %s already has a consultation in progress", doctorID)
	}
	next, ok := q.nextWaiting()
	if !ok {
		return models.QueueEntry{}, errors.Wrapf(ErrNotFound, "no waiting patients for doctor %s", doctorID)
	}
	next.Status = models.StatusInProgress
	if err := e.save(ctx, "advance", next); err != nil {
		return models.QueueEntry{}, err
	}
	q.entries[next.ID] = next

	e.metrics.ObserveWait(e.now().Sub(next.CreatedAt).Seconds())
	e.entryLog(next).Debug("consultation started")
	return next, nil
}

// CompleteConsultation requires the entry to be IN_PROGRESS.
func (e *Engine) CompleteConsultation(ctx context.Context, id string) (models.QueueEntry, error) {
	entry, err := e.mutate(ctx, "complete", id, func(entry models.QueueEntry) (models.QueueEntry, error) {
		if entry.Status != models.StatusInProgress {
			return entry, &stateError{id: id, have: entry.Status, want: models.StatusInProgress}
		}
		entry.Status = models.StatusCompleted
		return entry, nil
	})
	e.observe("complete", err)
	return entry, err
}

// Skip marks the entry SKIPPED whatever its current status.
func (e *Engine) Skip(ctx context.Context, id string) (models.QueueEntry, error) {
	entry, err := e.mutate(ctx, "skip", id, func(entry models.QueueEntry) (models.QueueEntry, error) {
		entry.Status = models.StatusSkipped
		return entry, nil
	})
	e.observe("skip", err)
	return entry, err
}

// Remove deletes the entry. Positions of the remaining entries are left as they are.
func (e *Engine) Remove(ctx context.Context, id string) error {
	err := e.remove(ctx, id)
	e.observe("remove", err)
	return err
}

func (e *Engine) remove(ctx context.Context, id string) error {
	q, ok := e.lookup(id)
	if !ok {
		return errors.Wrapf(ErrNotFound, "entry %s", id)
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, ok := q.entries[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "entry %s", id)
	}
	if e.repo != nil {
		if err := e.repo.DeleteEntry(ctx, id); err != nil {
			return &internalError{op: "remove", err: err}
		}
	}
	delete(q.entries, id)
	e.index.Delete(id)

	e.entryLog(entry).Debug("queue entry removed")
	return nil
}

// ResetDoctorQueue puts every IN_PROGRESS or SKIPPED entry of the doctor back to
// WAITING and returns how many entries changed. COMPLETED entries and all
// positions stay untouched.
func (e *Engine) ResetDoctorQueue(ctx context.Context, doctorID string) (int, error) {
	n, err := e.reset(ctx, doctorID)
	e.observe("reset", err)
	return n, err
}

func (e *Engine) reset(ctx context.Context, doctorID string) (int, error) {
	v, ok := e.queues.Load(doctorID)
	if !ok {
		return 0, nil
	}
	q := v.(*doctorQueue)
	q.mu.Lock()
	defer q.mu.Unlock()

	changed := q.collect(func(entry models.QueueEntry) bool {
		return entry.Status == models.StatusInProgress || entry.Status == models.StatusSkipped
	})
	if len(changed) == 0 {
		return 0, nil
	}
	for i := range changed {
		changed[i].Status = models.StatusWaiting
	}
	if e.repo != nil {
		if err := e.repo.SaveEntries(ctx, changed); err != nil {
			return 0, &internalError{op: "reset", err: err}
		}
	}
	for _, entry := range changed {
		q.entries[entry.ID] = entry
	}

	e.logger.WithFields(logrus.Fields{"doctor_id": doctorID, "reset_count": len(changed)}).Warn("doctor queue reset")
	return len(changed), nil
}

// PurgeCompleted deletes COMPLETED entries of every doctor. Doctors are purged
// one at a time; on a storage failure the count of what was already deleted is
// returned along with the error.
func (e *Engine) PurgeCompleted(ctx context.Context) (int, error) {
	total := 0
	var purgeErr error
	e.queues.Range(func(_, v any) bool {
		n, err := e.purgePartition(ctx, v.(*doctorQueue))
		total += n
		if err != nil {
			purgeErr = err
			return false
		}
		return true
	})
	e.observe("purge", purgeErr)
	return total, purgeErr
}

func (e *Engine) purgePartition(ctx context.Context, q *doctorQueue) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var ids []string
	for id, entry := range q.entries {
		if entry.Status == models.StatusCompleted {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if e.repo != nil {
		if err := e.repo.DeleteEntries(ctx, ids); err != nil {
			return 0, &internalError{op: "purge", err: err}
		}
	}
	for _, id := range ids {
		delete(q.entries, id)
		e.index.Delete(id)
	}
	return len(ids), nil
}

func (e *Engine) EstimateWaitMinutes(position int) int {
	return e.wait.EstimateMinutes(position)
}

// EstimateFor returns the wait estimate of a WAITING entry.
func (e *Engine) EstimateFor(entry models.QueueEntry) (int, bool) {
	return e.wait.EstimateFor(entry)
}

func (e *Engine) partition(doctorID string) *doctorQueue {
	if v, ok := e.queues.Load(doctorID); ok {
		return v.(*doctorQueue)
	}
	v, _ := e.queues.LoadOrStore(doctorID, newDoctorQueue())
	return v.(*doctorQueue)
}

func (e *Engine) lookup(id string) (*doctorQueue, bool) {
	doctorID, ok := e.index.Load(id)
	if !ok {
		return nil, false
	}
	v, ok := e.queues.Load(doctorID)
	if !ok {
		return nil, false
	}
	return v.(*doctorQueue), true
}

func (e *Engine) listDoctor(doctorID string, keep func(models.QueueEntry) bool) []models.QueueEntry {
	v, ok := e.queues.Load(doctorID)
	if !ok {
		return []models.QueueEntry{}
	}
	q := v.(*doctorQueue)
	q.mu.Lock()
	entries := q.collect(keep)
	q.mu.Unlock()
	sortByPosition(entries)
	return entries
}

// mutate applies fn to the entry under its doctor's lock and writes the result through.
func (e *Engine) mutate(ctx context.Context, op, id string, fn func(models.QueueEntry) (models.QueueEntry, error)) (models.QueueEntry, error) {
	q, ok := e.lookup(id)
	if !ok {
		return models.QueueEntry{}, errors.Wrapf(ErrNotFound, "entry %s", id)
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	current, ok := q.entries[id]
	if !ok {
		return models.QueueEntry{}, errors.Wrapf(ErrNotFound, "entry %s", id)
	}
	next, err := fn(current)
	if err != nil {
		return models.QueueEntry{}, err
	}
	if err := e.save(ctx, op, next); err != nil {
		return models.QueueEntry{}, err
	}
	q.entries[id] = next

	e.entryLog(next).WithField("previous_status", current.Status).Debugf("queue entry %s", op)
	return next, nil
}

func (e *Engine) save(ctx context.Context, op string, entry models.QueueEntry) error {
	if e.repo == nil {
		return nil
	}
	if err := e.repo.SaveEntry(ctx, entry); err != nil {
		return &internalError{op: op, err: err}
	}
	return nil
}

func (e *Engine) observe(op string, err error) {
	e.metrics.ObserveOperation(op, Result(err))
	if err != nil && errors.Is(err, ErrInternal) {
		e.logger.WithError(err).WithField("operation", op).Error("queue storage failure")
	}
}

func (e *Engine) entryLog(entry models.QueueEntry) *logrus.Entry {
	return e.logger.WithFields(logrus.Fields{
		"doctor_id": entry.DoctorID,
		"entry_id":  entry.ID,
		"position":  entry.Position,
		"status":    entry.Status,
	})
}
