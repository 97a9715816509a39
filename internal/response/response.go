package response

import (
	"time"

	"clinic_queue/internal/models"
)

// SuccessResponse представляет успешный ответ API
type SuccessResponse struct {
	Message string `json:"message" example:"Queue entry removed successfully"`
}

// ErrorResponse представляет ответ с ошибкой API
type ErrorResponse struct {
	// Код ошибки для программной обработки
	// example: QUEUE_ENTRY_NOT_FOUND
	Code string `json:"code"`

	// Человекочитаемое сообщение об ошибке
	// example: Queue entry not found
	Message string `json:"message"`

	// Дополнительные детали об ошибке (опционально)
	Details string `json:"details,omitempty"`
}

// QueueEntryResponse is a queue entry decorated for display. Names are missing
// when the records service could not resolve them; the wait estimate is only
// present for WAITING entries.
type QueueEntryResponse struct {
	QueueID           string             `json:"queue_id" example:"7f8c1a52-0d7e-4a43-9d55-3f1f0f0b8e11"`
	DoctorID          string             `json:"doctor_id" example:"doc-17"`
	PatientID         string             `json:"patient_id" example:"pat-203"`
	DoctorName        string             `json:"doctor_name,omitempty" example:"Dr. Amelia Watson"`
	PatientName       string             `json:"patient_name,omitempty" example:"John Carter"`
	Position          int                `json:"position" example:"3"`
	Status            models.QueueStatus `json:"status" example:"WAITING"`
	CreatedAt         time.Time          `json:"created_at"`
	EstimatedWaitTime *int               `json:"estimated_wait_time,omitempty" example:"30"`
}

type EstimateResponse struct {
	Position             int `json:"position" example:"4"`
	EstimatedWaitMinutes int `json:"estimated_wait_minutes" example:"45"`
}

type ResetResponse struct {
	ResetCount int       `json:"reset_count" example:"1"`
	DoctorID   string    `json:"doctor_id" example:"doc-17"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

type CleanupResponse struct {
	DeletedCount int       `json:"deleted_count" example:"12"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

type QueueReportResponse struct {
	QueueEntries    []QueueEntryResponse       `json:"queue_entries"`
	TotalCount      int                        `json:"total_count"`
	StatusBreakdown map[models.QueueStatus]int `json:"status_breakdown"`
}

type DoctorUtilizationResponse struct {
	DoctorID               string `json:"doctor_id"`
	DoctorName             string `json:"doctor_name,omitempty"`
	TotalQueueEntries      int    `json:"total_queue_entries"`
	CompletedConsultations int    `json:"completed_consultations"`
}
