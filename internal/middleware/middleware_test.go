package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/myclassprogress/internal/models"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

type fakeSession struct {
	user *models.SessionUser
}

func (f fakeSession) Current() (*models.SessionUser, error) {
	if f.user == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "not logged in")
	}
	return f.user, nil
}

type observed struct {
	method string
	path   string
	status int
}

type fakeObserver struct {
	calls []observed
}

func (f *fakeObserver) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	f.calls = append(f.calls, observed{method, path, status})
}

func studentUser(id string) *models.SessionUser {
	return models.StudentSession(models.Student{ID: id, Role: models.RoleStudent})
}

func teacherUser(id string) *models.SessionUser {
	return models.TeacherSession(models.Teacher{ID: id, Role: models.RoleTeacher})
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestSessionAndRBAC(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(user *models.SessionUser) *gin.Engine {
		router := gin.New()
		group := router.Group("/", Session(fakeSession{user: user}))
		group.GET("/students/:id", RBAC(models.RoleTeacher, Self), func(c *gin.Context) {
			c.String(http.StatusOK, CurrentUser(c).ID())
		})
		group.POST("/grades", RequireRoles(models.RoleTeacher), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})
		return router
	}

	anonymous := build(nil)
	assert.Equal(t, http.StatusUnauthorized, serve(anonymous, http.MethodGet, "/students/S001").Code)

	student := build(studentUser("S001"))
	rec := serve(student, http.MethodGet, "/students/S001")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "S001", rec.Body.String())
	assert.Equal(t, http.StatusForbidden, serve(student, http.MethodGet, "/students/S002").Code)
	assert.Equal(t, http.StatusForbidden, serve(student, http.MethodPost, "/grades").Code)

	teacher := build(teacherUser("G001"))
	assert.Equal(t, http.StatusOK, serve(teacher, http.MethodGet, "/students/S002").Code)
	assert.Equal(t, http.StatusCreated, serve(teacher, http.MethodPost, "/grades").Code)
}

func TestRBACWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", RequireRoles(models.RoleTeacher), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, "/x").Code)
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &fakeObserver{}
	router := gin.New()
	router.Use(Metrics(obs))
	router.GET("/tasks/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	serve(router, http.MethodGet, "/tasks/T001")
	serve(router, http.MethodGet, "/missing")

	require.Len(t, obs.calls, 2)
	assert.Equal(t, observed{http.MethodGet, "/tasks/:id", http.StatusNoContent}, obs.calls[0])
	assert.Equal(t, observed{http.MethodGet, "/missing", http.StatusNotFound}, obs.calls[1])
}

func TestAuditLogsSuccessfulRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	router := gin.New()
	group := router.Group("/", Session(fakeSession{user: teacherUser("G001")}))
	group.PATCH("/grades/:id", Audit(zap.New(core), "update", "grade"), func(c *gin.Context) {
		if c.Param("id") == "N999" {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusOK)
	})

	serve(router, http.MethodPatch, "/grades/N001")
	serve(router, http.MethodPatch, "/grades/N999")

	entries := logs.FilterMessage("audit").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "update", fields["action"])
	assert.Equal(t, "N001", fields["resource_id"])
	assert.Equal(t, "G001", fields["user_id"])
	assert.Equal(t, models.RoleTeacher, fields["role"])
}
