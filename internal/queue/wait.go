package queue

import (
	"math"

	"clinic_queue/internal/models"
)

const DefaultConsultationMinutes = 15

// WaitPolicy turns a queue position into a rough wait estimate. The duration is a
// flat per-consultation figure, not derived from history.
type WaitPolicy struct {
	ConsultationMinutes int
}

// EstimateMinutes saturates at math.MaxInt for absurdly large positions.
func (p WaitPolicy) EstimateMinutes(position int) int {
	if position <= 1 || p.ConsultationMinutes <= 0 {
		return 0
	}
	ahead := position - 1
	if ahead > math.MaxInt/p.ConsultationMinutes {
		return math.MaxInt
	}
	return ahead * p.ConsultationMinutes
}

// EstimateFor only answers for WAITING entries.
func (p WaitPolicy) EstimateFor(entry models.QueueEntry) (int, bool) {
	if entry.Status != models.StatusWaiting {
		return 0, false
	}
	return p.EstimateMinutes(entry.Position), true
}
