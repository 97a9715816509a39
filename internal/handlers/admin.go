package handlers

import (
	"context"
	"net/http"
	"time"

	"clinic_queue/internal/models"
	"clinic_queue/internal/report"
	"clinic_queue/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const recentActivityLimit = 10

type adminEngine interface {
	ResetDoctorQueue(ctx context.Context, doctorID string) (int, error)
	PurgeCompleted(ctx context.Context) (int, error)
	Snapshot() []models.QueueEntry
	EstimateFor(entry models.QueueEntry) (int, bool)
}

type AdminHandler struct {
	engine adminEngine
	presenter
	now func() time.Time
}

func NewAdminHandler(engine adminEngine, directory nameDirectory, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		engine: engine,
		presenter: presenter{
			estimator: engine,
			directory: directory,
			logger:    logger,
		},
		now: time.Now,
	}
}

// ResetQueue экстренный сброс очереди врача
// @Summary		Emergency reset of a doctor's queue
// @Description	Every IN_PROGRESS and SKIPPED entry of the doctor goes back to WAITING
// @Tags			admin
// @Produce		json
// @Security		BearerAuth
// @Param			doctorId	path		string	true	"Doctor ID"
// @Success		200			{object}	response.ResetResponse
// @Failure		401			{object}	response.ErrorResponse
// @Failure		500			{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/admin/emergency/reset-queue/{doctorId} [post]
func (h *AdminHandler) ResetQueue(c *gin.Context) {
	doctorID := c.Param("doctorId")
	count, err := h.engine.ResetDoctorQueue(c.Request.Context(), doctorID)
	if err != nil {
		writeEngineError(c, err, entryNotFound)
		return
	}
	c.JSON(http.StatusOK, response.ResetResponse{
		ResetCount: count,
		DoctorID:   doctorID,
		Message:    "Queue reset for doctor",
		Timestamp:  h.now(),
	})
}

// CleanupCompleted
// @Summary		Delete completed queue entries
// @Tags			admin
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	response.CleanupResponse
// @Failure		401	{object}	response.ErrorResponse
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/admin/cleanup/completed-queues [delete]
func (h *AdminHandler) CleanupCompleted(c *gin.Context) {
	count, err := h.engine.PurgeCompleted(c.Request.Context())
	if err != nil {
		writeEngineError(c, err, entryNotFound)
		return
	}
	c.JSON(http.StatusOK, response.CleanupResponse{
		DeletedCount: count,
		Message:      "Completed queue entries removed",
		Timestamp:    h.now(),
	})
}

// DashboardStats
// @Summary		Queue counters by status
// @Tags			admin
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	report.Stats
// @Failure		401	{object}	response.ErrorResponse
// @Router			/api/admin/dashboard/stats [get]
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, report.DashboardStats(h.engine.Snapshot()))
}

// RecentActivity
// @Summary		Latest queue entries
// @Description	The ten most recently created entries, newest first
// @Tags			admin
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		response.QueueEntryResponse
// @Failure		401	{object}	response.ErrorResponse
// @Router			/api/admin/dashboard/recent-activities [get]
func (h *AdminHandler) RecentActivity(c *gin.Context) {
	recent := report.RecentActivity(h.engine.Snapshot(), recentActivityLimit)
	c.JSON(http.StatusOK, h.entries(c.Request.Context(), recent))
}

// QueueReport
// @Summary		Queue report
// @Description	Entries filtered by doctor and creation day with a per-status breakdown
// @Tags			admin
// @Produce		json
// @Security		BearerAuth
// @Param			doctor_id	query		string	false	"Doctor ID"
// @Param			date		query		string	false	"Day (YYYY-MM-DD)"
// @Success		200			{object}	response.QueueReportResponse
// @Failure		400			{object}	response.ErrorResponse	"INVALID_DATE"
// @Failure		401			{object}	response.ErrorResponse
// @Router			/api/admin/reports/queue [get]
func (h *AdminHandler) QueueReport(c *gin.Context) {
	filter := report.Filter{DoctorID: c.Query("doctor_id")}
	if raw := c.Query("date"); raw != "" {
		day, err := report.ParseDay(raw, h.now().Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "INVALID_DATE",
				Message: "date must be formatted as YYYY-MM-DD",
				Details: err.Error(),
			})
			return
		}
		filter.Day = day
	}

	r := report.BuildQueueReport(h.engine.Snapshot(), filter)
	c.JSON(http.StatusOK, response.QueueReportResponse{
		QueueEntries:    h.entries(c.Request.Context(), r.Entries),
		TotalCount:      r.TotalCount,
		StatusBreakdown: r.StatusBreakdown,
	})
}

// DoctorUtilization
// @Summary		Per-doctor utilization
// @Tags			admin
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		response.DoctorUtilizationResponse
// @Failure		401	{object}	response.ErrorResponse
// @Router			/api/admin/reports/doctor-utilization [get]
func (h *AdminHandler) DoctorUtilization(c *gin.Context) {
	rows := report.Utilization(h.engine.Snapshot())
	out := make([]response.DoctorUtilizationResponse, 0, len(rows))
	for _, u := range rows {
		dto := response.DoctorUtilizationResponse{
			DoctorID:               u.DoctorID,
			TotalQueueEntries:      u.TotalQueueEntries,
			CompletedConsultations: u.CompletedConsultations,
		}
		if h.directory != nil {
			if name, err := h.directory.DoctorName(c.Request.Context(), u.DoctorID); err == nil {
				dto.DoctorName = name
			}
		}
		out = append(out, dto)
	}
	c.JSON(http.StatusOK, out)
}
