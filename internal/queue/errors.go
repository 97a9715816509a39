package queue

import (
	"fmt"

	"clinic_queue/internal/models"

	"github.com/pkg/errors"
)

var (
	ErrNotFound     = errors.New("queue entry not found")
	ErrInvalidState = errors.New("queue transition not permitted")
	ErrInternal     = errors.New("queue storage failure")
)

// stateError is returned by guarded transitions. It matches both ErrInvalidState
// and ErrNotFound so callers may treat "absent" and "not in the right state" alike.
type stateError struct {
	id   string
	have models.QueueStatus
	want models.QueueStatus
}

func (e *stateError) Error() string {
	return fmt.Sprintf("queue entry %s is %s, expected %s", e.id, e.have, e.want)
}

func (e *stateError) Is(target error) bool {
	return target == ErrInvalidState || target == ErrNotFound
}

type internalError struct {
	op  string
	err error
}

func (e *internalError) Error() string {
	return fmt.Sprintf("queue %s: %v", e.op, e.err)
}

func (e *internalError) Unwrap() error { return e.err }

func (e *internalError) Is(target error) bool { return target == ErrInternal }

// Result maps an engine error onto a short label used by metrics and logs.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInternal):
		return "error"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
