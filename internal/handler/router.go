package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/myclassprogress/internal/middleware"
	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/service"
)

// Services bundles everything the routes call into.
type Services struct {
	Auth      *service.AuthService
	Students  *service.StudentService
	Teachers  *service.TeacherService
	Tasks     *service.TaskService
	Grades    *service.GradeService
	Classes   *service.ClassService
	Dashboard *service.DashboardService
	Reports   *service.ReportService
	Data      *service.DataService
	Metrics   *service.MetricsService
	Checks    map[string]ReadinessCheck
}

// Register mounts ops endpoints on root and the API under prefix. Everything
// under prefix except login needs a session; writes need a teacher account.
func Register(root *gin.Engine, prefix string, svc Services, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	metricsHandler := NewMetricsHandler(svc.Metrics, svc.Checks)
	root.GET("/health", metricsHandler.Health)
	root.GET("/ready", metricsHandler.Ready)
	root.GET("/metrics", metricsHandler.Prometheus)
	root.GET("/metrics/summary", metricsHandler.Summary)

	authHandler := NewAuthHandler(svc.Auth)
	studentHandler := NewStudentHandler(svc.Students, svc.Dashboard)
	teacherHandler := NewTeacherHandler(svc.Teachers, svc.Dashboard)
	taskHandler := NewTaskHandler(svc.Tasks)
	gradeHandler := NewGradeHandler(svc.Grades)
	classHandler := NewClassHandler(svc.Classes, svc.Reports)
	dataHandler := NewDataHandler(svc.Data)

	teacherOnly := middleware.RequireRoles(models.RoleTeacher)
	teacherOrSelf := middleware.RBAC(models.RoleTeacher, middleware.Self)
	audit := func(action, resource string) gin.HandlerFunc {
		return middleware.Audit(logger, action, resource)
	}

	api := root.Group(prefix)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	secured := api.Group("", middleware.Session(svc.Auth))
	secured.GET("/auth/me", authHandler.Me)

	students := secured.Group("/students")
	students.GET("", studentHandler.List)
	students.POST("", teacherOnly, audit("create", "student"), studentHandler.Create)
	students.GET("/:id", studentHandler.Get)
	students.PATCH("/:id", teacherOnly, audit("update", "student"), studentHandler.Update)
	students.DELETE("/:id", teacherOnly, audit("deactivate", "student"), studentHandler.Delete)
	students.GET("/:id/tasks", teacherOrSelf, studentHandler.Tasks)
	students.GET("/:id/grades", teacherOrSelf, studentHandler.Grades)
	students.GET("/:id/statistics", teacherOrSelf, studentHandler.Statistics)
	students.GET("/:id/dashboard", teacherOrSelf, studentHandler.Dashboard)

	teachers := secured.Group("/teachers")
	teachers.GET("", teacherHandler.List)
	teachers.POST("", teacherOnly, audit("create", "teacher"), teacherHandler.Create)
	teachers.GET("/:id", teacherHandler.Get)
	teachers.PATCH("/:id", teacherOnly, audit("update", "teacher"), teacherHandler.Update)
	teachers.DELETE("/:id", teacherOnly, audit("deactivate", "teacher"), teacherHandler.Delete)
	teachers.GET("/:id/tasks", teacherOnly, teacherHandler.Tasks)
	teachers.GET("/:id/grades", teacherOnly, teacherHandler.Grades)
	teachers.GET("/:id/dashboard", teacherOnly, teacherHandler.Dashboard)
	teachers.GET("/:id/report", teacherOnly, teacherHandler.Report)

	tasks := secured.Group("/tasks")
	tasks.GET("", taskHandler.List)
	tasks.POST("", teacherOnly, audit("create", "task"), taskHandler.Create)
	tasks.POST("/assign", teacherOnly, audit("assign", "task"), taskHandler.Assign)
	tasks.GET("/:id", taskHandler.Get)
	// students may only change the status of their own rows
	tasks.PATCH("/:id", audit("update", "task"), taskHandler.Update)

	grades := secured.Group("/grades")
	grades.GET("", gradeHandler.List)
	grades.GET("/lookup", gradeHandler.Lookup)
	grades.POST("", teacherOnly, audit("record", "grade"), gradeHandler.Record)
	grades.PATCH("/:id", teacherOnly, audit("update", "grade"), gradeHandler.Update)

	classes := secured.Group("/classes")
	classes.GET("", classHandler.List)
	classes.GET("/:class/students", classHandler.Students)
	classes.GET("/:class/tasks", classHandler.Tasks)
	classes.GET("/:class/statistics", classHandler.Statistics)
	classes.GET("/:class/ranking", classHandler.Ranking)
	classes.GET("/:class/report", teacherOnly, classHandler.Report)

	secured.GET("/settings", dataHandler.Settings)
	secured.PATCH("/settings", teacherOnly, audit("update", "settings"), dataHandler.UpdateSettings)

	data := secured.Group("/data", teacherOnly)
	data.GET("/export", audit("export", "data"), dataHandler.Export)
	data.POST("/import", audit("import", "data"), dataHandler.Import)
	data.POST("/reset", dataHandler.RequestReset)
	data.POST("/reset/confirm", audit("reset", "data"), dataHandler.ConfirmReset)
	data.POST("/save", dataHandler.Save)
}
