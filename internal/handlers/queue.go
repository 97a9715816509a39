package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"clinic_queue/internal/models"
	"clinic_queue/internal/queue"
	"clinic_queue/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type queueEngine interface {
	Enqueue(ctx context.Context, doctorID, patientID string) (models.QueueEntry, error)
	Get(id string) (models.QueueEntry, error)
	ListAll() []models.QueueEntry
	ListByDoctor(doctorID string) []models.QueueEntry
	ListActiveByDoctor(doctorID string) []models.QueueEntry
	ListByPatient(patientID string) []models.QueueEntry
	SetStatus(ctx context.Context, id string, status models.QueueStatus) (models.QueueEntry, error)
	AdvanceQueue(ctx context.Context, doctorID string) (models.QueueEntry, error)
	CompleteConsultation(ctx context.Context, id string) (models.QueueEntry, error)
	Skip(ctx context.Context, id string) (models.QueueEntry, error)
	Remove(ctx context.Context, id string) error
	EstimateWaitMinutes(position int) int
	EstimateFor(entry models.QueueEntry) (int, bool)
}

type QueueHandler struct {
	engine queueEngine
	presenter
}

func NewQueueHandler(engine queueEngine, directory nameDirectory, logger *logrus.Logger) *QueueHandler {
	return &QueueHandler{
		engine: engine,
		presenter: presenter{
			estimator: engine,
			directory: directory,
			logger:    logger,
		},
	}
}

type EnqueueRequest struct {
	DoctorID  string `json:"doctor_id" binding:"required" example:"doc-17"`
	PatientID string `json:"patient_id" binding:"required" example:"pat-203"`
}

// Enqueue добавляет пациента в очередь врача
// @Summary		Add patient to a doctor's queue
// @Description	Appends the patient at position (active entries + 1) with status WAITING
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			request	body		EnqueueRequest				true	"Doctor and patient"
// @Success		201		{object}	response.QueueEntryResponse
// @Failure		400		{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		500		{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/queue [post]
func (h *QueueHandler) Enqueue(c *gin.Context) {
	var req EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "doctor_id and patient_id are required",
			Details: err.Error(),
		})
		return
	}

	doctorID, patientID := strings.TrimSpace(req.DoctorID), strings.TrimSpace(req.PatientID)
	if doctorID == "" || patientID == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "doctor_id and patient_id are required",
			Details: "ids must not be blank",
		})
		return
	}

	entry, err := h.engine.Enqueue(c.Request.Context(), doctorID, patientID)
	if err != nil {
		writeEngineError(c, err, entryNotFound)
		return
	}

	c.JSON(http.StatusCreated, h.entry(c.Request.Context(), entry))
}

// ListAll
// @Summary		List all queue entries
// @Description	Every entry of every doctor, ordered by position
// @Tags			queue
// @Produce		json
// @Success		200	{array}	response.QueueEntryResponse
// @Router			/api/queue [get]
func (h *QueueHandler) ListAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.entries(c.Request.Context(), h.engine.ListAll()))
}

// Get
// @Summary		Get queue entry
// @Tags			queue
// @Produce		json
// @Param			id	path		string	true	"Queue entry ID"
// @Success		200	{object}	response.QueueEntryResponse
// @Failure		404	{object}	response.ErrorResponse	"QUEUE_ENTRY_NOT_FOUND"
// @Router			/api/queue/{id} [get]
func (h *QueueHandler) Get(c *gin.Context) {
	entry, err := h.engine.Get(c.Param("id"))
	if err != nil {
		writeEngineError(c, err, entryNotFound)
		return
	}
	c.JSON(http.StatusOK, h.entry(c.Request.Context(), entry))
}

// ListByDoctor
// @Summary		Doctor's queue
// @Description	All entries of the doctor ordered by position
// @Tags			queue
// @Produce		json
// @Param			doctorId	path	string	true	"Doctor ID"
// @Success		200			{array}	response.QueueEntryResponse
// @Router			/api/queue/doctor/{doctorId} [get]
func (h *QueueHandler) ListByDoctor(c *gin.Context) {
	c.JSON(http.StatusOK, h.entries(c.Request.Context(), h.engine.ListByDoctor(c.Param("doctorId"))))
}

// ListActiveByDoctor
// @Summary		Doctor's active queue
// @Description	WAITING and IN_PROGRESS entries of the doctor ordered by position
// @Tags			queue
// @Produce		json
// @Param			doctorId	path	string	true	"Doctor ID"
// @Success		200			{array}	response.QueueEntryResponse
// @Router			/api/queue/doctor/{doctorId}/active [get]
func (h *QueueHandler) ListActiveByDoctor(c *gin.Context) {
	c.JSON(http.StatusOK, h.entries(c.Request.Context(), h.engine.ListActiveByDoctor(c.Param("doctorId"))))
}

// ListByPatient
// @Summary		Patient's queue entries
// @Tags			queue
// @Produce		json
// @Param			patientId	path	string	true	"Patient ID"
// @Success		200			{array}	response.QueueEntryResponse
// @Router			/api/queue/patient/{patientId} [get]
func (h *QueueHandler) ListByPatient(c *gin.Context) {
	c.JSON(http.StatusOK, h.entries(c.Request.Context(), h.engine.ListByPatient(c.Param("patientId"))))
}

// UpdateStatus is the administrative override: any status may be set.
// @Summary		Overwrite queue entry status
// @Tags			queue
// @Produce		json
// @Param			id		path		string	true	"Queue entry ID"
// @Param			status	query		string	true	"New status"	Enums(WAITING, IN_PROGRESS, COMPLETED, SKIPPED)
// @Success		200		{object}	response.QueueEntryResponse
// @Failure		400		{object}	response.ErrorResponse	"INVALID_STATUS"
// @Failure		404		{object}	response.ErrorResponse	"QUEUE_ENTRY_NOT_FOUND"
// @Failure		500		{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/queue/{id}/status [patch]
func (h *QueueHandler) UpdateStatus(c *gin.Context) {
	status, ok := models.ParseQueueStatus(strings.ToUpper(c.Query("status")))
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_STATUS",
			Message: "status must be one of WAITING, IN_PROGRESS, COMPLETED, SKIPPED",
		})
		return
	}

	entry, err := h.engine.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		writeEngineError(c, err, entryNotFound)
		return
	}
	c.JSON(http.StatusOK, h.entry(c.Request.Context(), entry))
}

// Next вызывает следующего пациента
// @Summary		Move to next patient
// @Description	Starts the consultation of the lowest-position WAITING patient
// @Tags			queue
// @Produce		json
// @Param			doctorId	path		string	true	"Doctor ID"
// @Success		200			{object}	response.QueueEntryResponse
// @Failure		404			{object}	response.ErrorResponse	"NO_WAITING_PATIENTS"
// @Failure		409			{object}	response.ErrorResponse	"INVALID_STATE (consultation already in progress)"
// @Failure		500			{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/queue/doctor/{doctorId}/next [post]
func (h *QueueHandler) Next(c *gin.Context) {
	entry, err := h.engine.AdvanceQueue(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		writeEngineError(c, err, response.ErrorResponse{
			Code:    "NO_WAITING_PATIENTS",
			Message: "No waiting patients for this doctor",
		})
		return
	}
	c.JSON(http.StatusOK, h.entry(c.Request.Context(), entry))
}

// Complete
// @Summary		Complete consultation
// @Description	Only an IN_PROGRESS entry can be completed; absent and not-in-progress entries get the same answer
// @Tags			queue
// @Produce		json
// @Param			id	path		string	true	"Queue entry ID"
// @Success		200	{object}	response.QueueEntryResponse
// @Failure		404	{object}	response.ErrorResponse	"QUEUE_ENTRY_NOT_IN_PROGRESS"
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/queue/complete/{id} [post]
func (h *QueueHandler) Complete(c *gin.Context) {
	entry, err := h.engine.CompleteConsultation(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queue.ErrNotFound) && !errors.Is(err, queue.ErrInternal) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "QUEUE_ENTRY_NOT_IN_PROGRESS",
				Message: "Queue entry not found or not in progress",
				Details: err.Error(),
			})
			return
		}
		writeEngineError(c, err, entryNotFound)
		return
	}
	c.JSON(http.StatusOK, h.entry(c.Request.Context(), entry))
}

// Skip
// @Summary		Skip patient
// @Tags			queue
// @Produce		json
// @Param			id	path		string	true	"Queue entry ID"
// @Success		200	{object}	response.QueueEntryResponse
// @Failure		404	{object}	response.ErrorResponse	"QUEUE_ENTRY_NOT_FOUND"
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/queue/skip/{id} [post]
func (h *QueueHandler) Skip(c *gin.Context) {
	entry, err := h.engine.Skip(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeEngineError(c, err, entryNotFound)
		return
	}
	c.JSON(http.StatusOK, h.entry(c.Request.Context(), entry))
}

// Remove
// @Summary		Remove from queue
// @Description	Deletes the entry; other positions are not renumbered
// @Tags			queue
// @Produce		json
// @Param			id	path		string	true	"Queue entry ID"
// @Success		200	{object}	response.SuccessResponse
// @Failure		404	{object}	response.ErrorResponse	"QUEUE_ENTRY_NOT_FOUND"
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/queue/{id} [delete]
func (h *QueueHandler) Remove(c *gin.Context) {
	if err := h.engine.Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeEngineError(c, err, entryNotFound)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Queue entry removed successfully"})
}

// Estimate
// @Summary		Estimate wait time
// @Description	(position - 1) x consultation minutes
// @Tags			queue
// @Produce		json
// @Param			position	query		int	true	"Queue position (>= 1)"
// @Success		200			{object}	response.EstimateResponse
// @Failure		400			{object}	response.ErrorResponse	"INVALID_POSITION"
// @Router			/api/queue/estimate [get]
func (h *QueueHandler) Estimate(c *gin.Context) {
	position, err := strconv.Atoi(c.Query("position"))
	if err != nil || position < 1 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_POSITION",
			Message: "position must be a positive integer",
		})
		return
	}
	c.JSON(http.StatusOK, response.EstimateResponse{
		Position:             position,
		EstimatedWaitMinutes: h.engine.EstimateWaitMinutes(position),
	})
}
