package handlers

import (
	"context"

	"clinic_queue/internal/models"
	"clinic_queue/internal/response"

	"github.com/sirupsen/logrus"
)

type nameDirectory interface {
	DoctorName(ctx context.Context, id string) (string, error)
	PatientName(ctx context.Context, id string) (string, error)
}

type waitEstimator interface {
	EstimateFor(entry models.QueueEntry) (int, bool)
}

// presenter turns engine entries into API responses. Name lookups that fail are
// logged and left out; they never fail the request.
type presenter struct {
	estimator waitEstimator
	directory nameDirectory
	logger    *logrus.Logger
}

func (p presenter) entry(ctx context.Context, e models.QueueEntry) response.QueueEntryResponse {
	dto := response.QueueEntryResponse{
		QueueID:   e.ID,
		DoctorID:  e.DoctorID,
		PatientID: e.PatientID,
		Position:  e.Position,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}

	if minutes, ok := p.estimator.EstimateFor(e); ok {
		dto.EstimatedWaitTime = &minutes
	}

	if p.directory == nil {
		return dto
	}
	if name, err := p.directory.DoctorName(ctx, e.DoctorID); err == nil {
		dto.DoctorName = name
	} else {
		p.logger.WithError(err).WithField("doctor_id", e.DoctorID).Warn("doctor name lookup failed")
	}
	if name, err := p.directory.PatientName(ctx, e.PatientID); err == nil {
		dto.PatientName = name
	} else {
		p.logger.WithError(err).WithField("patient_id", e.PatientID).Warn("patient name lookup failed")
	}
	return dto
}

func (p presenter) entries(ctx context.Context, entries []models.QueueEntry) []response.QueueEntryResponse {
	out := make([]response.QueueEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, p.entry(ctx, e))
	}
	return out
}
