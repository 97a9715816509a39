package handlers

import (
	"net/http"
	"testing"
	"time"

	"clinic_queue/internal/models"
	"clinic_queue/internal/queue"
	"clinic_queue/internal/report"
	"clinic_queue/internal/response"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminSecret = []byte("admin-secret")

func bearer(t *testing.T) []string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString(adminSecret)
	require.NoError(t, err)
	return []string{"Authorization", "Bearer " + token}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(adminSecret)

	w := s.do(http.MethodGet, "/api/admin/dashboard/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "NO_AUTH_HEADER", decode[response.ErrorResponse](t, w).Code)

	w = s.do(http.MethodGet, "/api/admin/dashboard/stats", nil, bearer(t)...)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetQueueHandler(t *testing.T) {
	s := newTestServer(adminSecret)
	a := s.enqueue(t, "doc-1", "pat-1")
	s.enqueue(t, "doc-1", "pat-2")
	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/queue/doctor/doc-1/next", nil).Code)

	w := s.do(http.MethodPost, "/api/admin/emergency/reset-queue/doc-1", nil, bearer(t)...)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[response.ResetResponse](t, w)
	assert.Equal(t, 1, got.ResetCount)
	assert.Equal(t, "doc-1", got.DoctorID)

	entry, err := s.engine.Get(a.QueueID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaiting, entry.Status)

	w = s.do(http.MethodPost, "/api/admin/emergency/reset-queue/doc-unknown", nil, bearer(t)...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[response.ResetResponse](t, w).ResetCount)
}

func TestCleanupCompletedHandler(t *testing.T) {
	s := newTestServer(adminSecret)
	a := s.enqueue(t, "doc-1", "pat-1")
	b := s.enqueue(t, "doc-2", "pat-2")
	s.enqueue(t, "doc-2", "pat-3")
	for _, id := range []string{a.QueueID, b.QueueID} {
		require.Equal(t, http.StatusOK, s.do(http.MethodPatch, "/api/queue/"+id+"/status?status=COMPLETED", nil).Code)
	}

	w := s.do(http.MethodDelete, "/api/admin/cleanup/completed-queues", nil, bearer(t)...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[response.CleanupResponse](t, w).DeletedCount)
	assert.Len(t, s.engine.ListAll(), 1)
}

func TestDashboardHandlers(t *testing.T) {
	s := newTestServer(adminSecret)
	for i, patient := range []string{"pat-1", "pat-2", "pat-3"} {
		e := s.enqueue(t, "doc-1", patient)
		if i == 0 {
			s.do(http.MethodPatch, "/api/queue/"+e.QueueID+"/status?status=SKIPPED", nil)
		}
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/queue/doctor/doc-1/next", nil).Code)

	w := s.do(http.MethodGet, "/api/admin/dashboard/stats", nil, bearer(t)...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.Stats{
		TotalQueueEntries: 3,
		WaitingInQueue:    1,
		InProgressQueue:   1,
		SkippedQueue:      1,
	}, decode[report.Stats](t, w))

	w = s.do(http.MethodGet, "/api/admin/dashboard/recent-activities", nil, bearer(t)...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]response.QueueEntryResponse](t, w), 3)
}

func TestRecentActivityHandlerLimit(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s := newTestServer(adminSecret, queue.WithClock(func() time.Time {
		now = now.Add(time.Minute)
		return now
	}))
	var last response.QueueEntryResponse
	for i := 0; i < 12; i++ {
		last = s.enqueue(t, "doc-1", "pat-1")
	}

	w := s.do(http.MethodGet, "/api/admin/dashboard/recent-activities", nil, bearer(t)...)
	require.Equal(t, http.StatusOK, w.Code)
	recent := decode[[]response.QueueEntryResponse](t, w)
	require.Len(t, recent, 10)
	assert.Equal(t, last.QueueID, recent[0].QueueID)
}

func TestQueueReportHandler(t *testing.T) {
	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	now := day
	s := newTestServer(adminSecret, queue.WithClock(func() time.Time { return now }))

	s.enqueue(t, "doc-1", "pat-1")
	s.enqueue(t, "doc-2", "pat-2")
	now = day.AddDate(0, 0, 1)
	s.enqueue(t, "doc-1", "pat-3")

	w := s.do(http.MethodGet, "/api/admin/reports/queue?doctor_id=doc-1&date=2026-03-02", nil, bearer(t)...)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[response.QueueReportResponse](t, w)
	assert.Equal(t, 1, got.TotalCount)
	require.Len(t, got.QueueEntries, 1)
	assert.Equal(t, "pat-1", got.QueueEntries[0].PatientID)
	assert.Equal(t, map[models.QueueStatus]int{models.StatusWaiting: 1}, got.StatusBreakdown)

	w = s.do(http.MethodGet, "/api/admin/reports/queue", nil, bearer(t)...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[response.QueueReportResponse](t, w).TotalCount)

	w = s.do(http.MethodGet, "/api/admin/reports/queue?date=02.03.2026", nil, bearer(t)...)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATE", decode[response.ErrorResponse](t, w).Code)
}

func TestDoctorUtilizationHandler(t *testing.T) {
	s := newTestServer(adminSecret)
	a := s.enqueue(t, "doc-1", "pat-1")
	s.enqueue(t, "doc-1", "pat-2")
	s.enqueue(t, "doc-2", "pat-3")
	s.do(http.MethodPatch, "/api/queue/"+a.QueueID+"/status?status=COMPLETED", nil)

	w := s.do(http.MethodGet, "/api/admin/reports/doctor-utilization", nil, bearer(t)...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []response.DoctorUtilizationResponse{
		{DoctorID: "doc-1", DoctorName: "Dr. Watson", TotalQueueEntries: 2, CompletedConsultations: 1},
		{DoctorID: "doc-2", TotalQueueEntries: 1},
	}, decode[[]response.DoctorUtilizationResponse](t, w))
}
