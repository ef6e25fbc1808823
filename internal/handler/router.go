package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/middleware"
	"github.com/noah-isme/edutrack-api/internal/models"
)

// Handlers groups every HTTP handler the API serves.
type Handlers struct {
	Session     *SessionHandler
	Dashboard   *DashboardHandler
	Students    *StudentHandler
	Assignments *AssignmentHandler
	Attendance  *AttendanceHandler
	Schedule    *ScheduleHandler
	Planner     *PlannerHandler
	Reports     *ReportHandler
	Metrics     *MetricsHandler
}

// Register mounts the API routes. Session routes are open; everything else
// needs a signed-in user, and class management is teacher only.
func Register(api *gin.RouterGroup, h Handlers, sessions middleware.SessionReader, logger *zap.Logger) {
	api.GET("/session", h.Session.Current)
	api.POST("/session/sign-in", middleware.Audit(logger, "session.sign_in"), h.Session.SignIn)
	api.POST("/session/sign-out", middleware.Audit(logger, "session.sign_out"), h.Session.SignOut)

	authed := api.Group("", middleware.RequireSession(sessions))
	authed.PUT("/session/view", h.Session.SelectView)
	authed.GET("/dashboard", h.Dashboard.Get)

	authed.GET("/schedule/week", h.Schedule.Week)
	authed.GET("/schedule/month", h.Schedule.Month)
	authed.GET("/schedule/lookup", h.Schedule.Lookup)
	authed.GET("/schedule/today", h.Schedule.Today)

	authed.GET("/students/:id", middleware.TeacherOrSelf(), h.Students.Get)
	authed.GET("/students/:id/assignments", middleware.TeacherOrSelf(), h.Assignments.List)
	authed.POST("/students/:id/assignments/:assignmentId/submit",
		middleware.RBAC(middleware.Self),
		middleware.Audit(logger, "assignment.submit"),
		h.Assignments.Submit,
	)

	teacher := authed.Group("", middleware.RequireRoles(models.RoleTeacher))
	teacher.PUT("/session/student", h.Session.SelectStudent)
	teacher.GET("/students", h.Students.List)
	teacher.PATCH("/students/:id/assignments/:assignmentId", middleware.Audit(logger, "assignment.update"), h.Assignments.Update)
	teacher.POST("/students/:id/assignments/:assignmentId/grade", middleware.Audit(logger, "assignment.grade"), h.Assignments.Grade)

	attendance := teacher.Group("/attendance")
	attendance.GET("", h.Attendance.History)
	attendance.POST("", middleware.Audit(logger, "attendance.record"), h.Attendance.Record)
	attendance.GET("/sheet", h.Attendance.Sheet)
	attendance.GET("/live", h.Attendance.Status)
	attendance.POST("/live", middleware.Audit(logger, "attendance.live.start"), h.Attendance.Start)
	attendance.DELETE("/live", middleware.Audit(logger, "attendance.live.cancel"), h.Attendance.Cancel)
	attendance.POST("/live/toggle", h.Attendance.Toggle)
	attendance.POST("/live/select-all", h.Attendance.SelectAll)
	attendance.POST("/live/save", middleware.Audit(logger, "attendance.live.save"), h.Attendance.Save)

	planner := teacher.Group("/planner")
	planner.GET("/activities", h.Planner.Activities)
	planner.POST("/activities", middleware.Audit(logger, "planner.activity.add"), h.Planner.AddActivity)
	planner.POST("/suggestions", h.Planner.Request)
	planner.GET("/suggestions/latest", h.Planner.Latest)
	planner.GET("/suggestions/:token", h.Planner.Result)
	planner.DELETE("/suggestions/:token/notice", h.Planner.Dismiss)
	planner.POST("/suggestions/:token/accept", middleware.Audit(logger, "planner.suggestion.accept"), h.Planner.Accept)
	planner.DELETE("/cache", middleware.Audit(logger, "planner.cache.clear"), h.Planner.ClearCache)

	teacher.GET("/reports/weekly", h.Reports.Weekly)
	teacher.GET("/metrics/snapshot", h.Metrics.Snapshot)
}
