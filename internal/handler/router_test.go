package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/repository"
	"github.com/noah-isme/myclassprogress/internal/service"
	"github.com/noah-isme/myclassprogress/internal/store"
)

const prefix = "/api/v1"

type envelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *struct{ Code string } `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

type testServer struct {
	router  *gin.Engine
	store   *store.Store
	metrics *service.MetricsService
}

func newTestServer(t *testing.T, checks map[string]ReadinessCheck) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	n := 0
	metrics := service.NewMetricsService()
	st := store.New(context.Background(), repository.NewMemoryBackend(0), nil,
		store.WithClock(func() time.Time { return now }),
		store.WithIDGenerator(func(p string) string { n++; return fmt.Sprintf("%s-test-%03d", p, n) }),
		store.WithMetrics(metrics),
	)

	router := gin.New()
	Register(router, prefix, Services{
		Auth:      service.NewAuthService(st, nil, nil),
		Students:  service.NewStudentService(st, nil, nil),
		Teachers:  service.NewTeacherService(st, nil, nil),
		Tasks:     service.NewTaskService(st, nil, nil),
		Grades:    service.NewGradeService(st, nil, nil),
		Classes:   service.NewClassService(st),
		Dashboard: service.NewDashboardService(st, nil),
		Reports:   service.NewReportService(st, service.ReportConfig{Enabled: true}, nil),
		Data:      service.NewDataService(st, nil, nil),
		Metrics:   metrics,
		Checks:    checks,
	}, nil)
	return &testServer{router: router, store: st, metrics: metrics}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T, email, role string) {
	t.Helper()
	rec := s.do(t, http.MethodPost, prefix+"/auth/login", service.LoginRequest{Email: email, Password: "password123", Role: role})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if dest != nil {
		require.NoError(t, json.Unmarshal(env.Data, dest))
	}
	return env
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(t, http.MethodGet, prefix+"/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodPost, prefix+"/auth/login", service.LoginRequest{Email: "andi@school.com", Password: "nope", Role: models.RoleStudent})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec, nil).Error.Code)

	srv.login(t, "andi@school.com", models.RoleStudent)
	rec = srv.do(t, http.MethodGet, prefix+"/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me map[string]interface{}
	decode(t, rec, &me)
	assert.Equal(t, "S001", me["id"])
	assert.NotContains(t, me, "password")

	rec = srv.do(t, http.MethodPost, prefix+"/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, http.StatusUnauthorized, srv.do(t, http.MethodGet, prefix+"/students", nil).Code)
}

func TestStudentAccessRules(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.login(t, "andi@school.com", models.RoleStudent)

	rec := srv.do(t, http.MethodGet, prefix+"/students/S001/statistics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.StudentStatistics
	decode(t, rec, &stats)
	assert.Equal(t, 88.3, stats.AverageGrade)

	assert.Equal(t, http.StatusForbidden, srv.do(t, http.MethodGet, prefix+"/students/S002/grades", nil).Code)
	assert.Equal(t, http.StatusForbidden, srv.do(t, http.MethodPost, prefix+"/grades", models.GradeInput{}).Code)

	rec = srv.do(t, http.MethodGet, prefix+"/students/S001/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dash service.StudentDashboard
	decode(t, rec, &dash)
	assert.Len(t, dash.Pending, 2)

	// students can mark their own work done
	rec = srv.do(t, http.MethodPatch, prefix+"/tasks/T001", map[string]string{"status": models.TaskDone})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, srv.store.TaskByID("T001").Done())

	// another student's row, and fields other than status, stay closed
	rec = srv.do(t, http.MethodPatch, prefix+"/tasks/T006", map[string]string{"judul": "diganti", "status": models.TaskDone})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = srv.do(t, http.MethodPatch, prefix+"/tasks/T002", map[string]string{"judul": "diganti"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "S002", srv.store.TaskByID("T006").StudentID)
	assert.NotEqual(t, "diganti", srv.store.TaskByID("T006").Title)
	assert.False(t, srv.store.TaskByID("T006").Done())
}

func TestTeacherGradingFlow(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.login(t, "santi@school.com", models.RoleTeacher)

	rec := srv.do(t, http.MethodPost, prefix+"/tasks/assign", models.ClassAssignment{
		Title: "Ulangan", Subject: "Matematika", TeacherID: "G001", DueDate: "2024-02-08", Class: "12 IPA 1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var rows []models.Task
	env := decode(t, rec, &rows)
	require.Len(t, rows, 2)
	assert.EqualValues(t, 2, env.Meta["total"])

	input := models.GradeInput{StudentID: "S001", TaskID: rows[0].ID, Score: 80, TeacherID: "G001"}
	rec = srv.do(t, http.MethodPost, prefix+"/grades", input)
	require.Equal(t, http.StatusCreated, rec.Code)

	input.Score = 90
	rec = srv.do(t, http.MethodPost, prefix+"/grades", input)
	require.Equal(t, http.StatusOK, rec.Code)
	var grade models.Grade
	decode(t, rec, &grade)
	assert.Equal(t, 90.0, grade.Score)

	q := url.Values{"siswaId": {"S001"}, "tugasId": {rows[0].ID}}
	rec = srv.do(t, http.MethodGet, prefix+"/grades/lookup?"+q.Encode(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	input.Score = 101
	rec = srv.do(t, http.MethodPost, prefix+"/grades", input)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec, nil).Error.Code)

	rec = srv.do(t, http.MethodGet, prefix+"/teachers/G001/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dash models.TeacherDashboard
	decode(t, rec, &dash)
	assert.Equal(t, 6, dash.TasksGiven)
	assert.Equal(t, "Ulangan", dash.RecentTasks[0].Task.Title)
	assert.Equal(t, 2, dash.RecentTasks[0].Total)
	assert.Equal(t, 0, dash.RecentTasks[0].Percent)
}

func TestTaskListFilters(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.login(t, "santi@school.com", models.RoleTeacher)

	rec := srv.do(t, http.MethodGet, prefix+"/tasks?siswaId=S001&status=selesai", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tasks []models.Task
	env := decode(t, rec, &tasks)
	assert.Len(t, tasks, 2)
	assert.EqualValues(t, 2, env.Meta["total"])

	rec = srv.do(t, http.MethodGet, prefix+"/tasks/T999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClassEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.login(t, "santi@school.com", models.RoleTeacher)
	class := url.PathEscape("12 IPA 1")

	rec := srv.do(t, http.MethodGet, prefix+"/classes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var classes []string
	decode(t, rec, &classes)
	assert.Contains(t, classes, "12 IPA 1")

	rec = srv.do(t, http.MethodGet, prefix+"/classes/"+class+"/ranking", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ranking []models.RankedStudent
	decode(t, rec, &ranking)
	require.Len(t, ranking, 2)
	assert.Equal(t, "S001", ranking[0].StudentID)

	rec = srv.do(t, http.MethodGet, prefix+"/classes/"+class+"/report?format=csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="laporan-12-ipa-1.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "Andi Wijaya")

	rec = srv.do(t, http.MethodGet, prefix+"/classes/"+class+"/report?format=doc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDataEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.login(t, "santi@school.com", models.RoleTeacher)

	rec := srv.do(t, http.MethodGet, prefix+"/data/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "myclassprogress-backup-")
	var snapshot models.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Len(t, snapshot.Grades, 5)
	assert.Equal(t, "password123", snapshot.Students[0].Password)

	rec = srv.do(t, http.MethodPost, prefix+"/data/import", map[string]interface{}{"grades": []models.Grade{}})
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, srv.store.AllGrades())
	assert.Len(t, srv.store.AllStudents(), 5)

	rec = srv.do(t, http.MethodPost, prefix+"/data/reset/confirm", service.ResetConfirmRequest{Token: "bogus"})
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)

	rec = srv.do(t, http.MethodPost, prefix+"/data/reset", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var ticket service.ResetTicket
	decode(t, rec, &ticket)
	require.NotEmpty(t, ticket.Token)

	req := httptest.NewRequest(http.MethodPost, prefix+"/data/reset/confirm", nil)
	req.Header.Set(resetTokenHeader, ticket.Token)
	rec = httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Len(t, srv.store.AllGrades(), 5)
	assert.Equal(t, "G001", srv.store.CurrentUser().ID())

	assert.Equal(t, http.StatusNoContent, srv.do(t, http.MethodPost, prefix+"/data/save", nil).Code)

	rec = srv.do(t, http.MethodPatch, prefix+"/settings", map[string]interface{}{"semester": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	var settings models.Settings
	decode(t, rec, &settings)
	assert.Equal(t, 2, settings.Semester)
}

func TestOpsEndpoints(t *testing.T) {
	srv := newTestServer(t, map[string]ReadinessCheck{
		"backend": func(context.Context) error { return errors.New("connection refused") },
	})

	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/health", nil).Code)

	rec := srv.do(t, http.MethodGet, "/ready", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")

	rec = srv.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `store_reseeds_total{reason="empty"} 1`)

	rec = srv.do(t, http.MethodGet, "/metrics/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary service.MetricsSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, uint64(1), summary.Reseeds)
	assert.False(t, summary.LastPersistFailed)

	healthy := newTestServer(t, map[string]ReadinessCheck{"backend": func(context.Context) error { return nil }})
	assert.Equal(t, http.StatusOK, healthy.do(t, http.MethodGet, "/ready", nil).Code)
}
