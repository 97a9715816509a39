// Package report aggregates a snapshot of queue entries for dashboards.
// Nothing here mutates queue state.
package report

import (
	"cmp"
	"slices"
	"time"

	"clinic_queue/internal/models"
)

const dayLayout = "2006-01-02"

type Stats struct {
	TotalQueueEntries int `json:"total_queue_entries"`
	WaitingInQueue    int `json:"waiting_in_queue"`
	InProgressQueue   int `json:"in_progress_queue"`
	CompletedQueue    int `json:"completed_queue"`
	SkippedQueue      int `json:"skipped_queue"`
}

func DashboardStats(entries []models.QueueEntry) Stats {
	stats := Stats{TotalQueueEntries: len(entries)}
	for _, e := range entries {
		switch e.Status {
		case models.StatusWaiting:
			stats.WaitingInQueue++
		case models.StatusInProgress:
			stats.InProgressQueue++
		case models.StatusCompleted:
			stats.CompletedQueue++
		case models.StatusSkipped:
			stats.SkippedQueue++
		}
	}
	return stats
}

type Filter struct {
	DoctorID string
	// Day keeps entries created on that local calendar day. Zero means any day.
	Day time.Time
}

// ParseDay reads a YYYY-MM-DD date in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, loc)
}

type QueueReport struct {
	Entries         []models.QueueEntry
	TotalCount      int
	StatusBreakdown map[models.QueueStatus]int
}

func BuildQueueReport(entries []models.QueueEntry, f Filter) QueueReport {
	var start, end time.Time
	if !f.Day.IsZero() {
		start = time.Date(f.Day.Year(), f.Day.Month(), f.Day.Day(), 0, 0, 0, 0, f.Day.Location())
		end = start.AddDate(0, 0, 1)
	}

	r := QueueReport{
		Entries:         make([]models.QueueEntry, 0),
		StatusBreakdown: make(map[models.QueueStatus]int),
	}
	for _, e := range entries {
		if f.DoctorID != "" && e.DoctorID != f.DoctorID {
			continue
		}
		if !start.IsZero() && (e.CreatedAt.Before(start) || !e.CreatedAt.Before(end)) {
			continue
		}
		r.Entries = append(r.Entries, e)
		r.StatusBreakdown[e.Status]++
	}
	slices.SortFunc(r.Entries, func(a, b models.QueueEntry) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	r.TotalCount = len(r.Entries)
	return r
}

// RecentActivity returns the newest entries first.
func RecentActivity(entries []models.QueueEntry, limit int) []models.QueueEntry {
	out := slices.Clone(entries)
	slices.SortFunc(out, func(a, b models.QueueEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type DoctorUtilization struct {
	DoctorID               string
	TotalQueueEntries      int
	CompletedConsultations int
}

func Utilization(entries []models.QueueEntry) []DoctorUtilization {
	byDoctor := make(map[string]*DoctorUtilization)
	for _, e := range entries {
		u, ok := byDoctor[e.DoctorID]
		if !ok {
			u = &DoctorUtilization{DoctorID: e.DoctorID}
			byDoctor[e.DoctorID] = u
		}
		u.TotalQueueEntries++
		if e.Status == models.StatusCompleted {
			u.CompletedConsultations++
		}
	}

	out := make([]DoctorUtilization, 0, len(byDoctor))
	for _, u := range byDoctor {
		out = append(out, *u)
	}
	slices.SortFunc(out, func(a, b DoctorUtilization) int {
		return cmp.Compare(a.DoctorID, b.DoctorID)
	})
	return out
}
