package router

import (
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/loxx3450/Schedule-App-sub000/config"
	"github.com/loxx3450/Schedule-App-sub000/internal/api/handler"
	"github.com/loxx3450/Schedule-App-sub000/internal/api/middleware"
	"github.com/loxx3450/Schedule-App-sub000/pkg/jwt"
	"github.com/loxx3450/Schedule-App-sub000/pkg/redis"
)

// Setup builds the Gin engine with middleware, validators and all routes.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	registerValidators()

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			classrooms := authorized.Group("/classrooms")
			{
				classrooms.GET("", h.Classroom.ListClassrooms)
				classrooms.GET("/search", h.Classroom.SearchClassrooms)
				classrooms.GET("/:id", h.Classroom.GetClassroom)
				classrooms.POST("", h.Classroom.CreateClassroom)
				classrooms.PUT("/:id", h.Classroom.UpdateClassroom)
				classrooms.DELETE("/:id", h.Classroom.DeleteClassroom)
			}

			groups := authorized.Group("/groups")
			{
				groups.GET("", h.Group.ListGroups)
				groups.GET("/search", h.Group.SearchGroups)
				groups.GET("/:id", h.Group.GetGroup)
				groups.POST("", h.Group.CreateGroup)
				groups.PUT("/:id", h.Group.UpdateGroup)
				groups.DELETE("/:id", h.Group.DeleteGroup)

				groups.GET("/:id/teachers", h.GroupTeacher.ListGroupTeachers)
				groups.GET("/:id/teachers/:teacher_id", h.GroupTeacher.GetGroupTeacher)
				groups.POST("/:id/teachers/:teacher_id", h.GroupTeacher.AddGroupTeacher)
				groups.DELETE("/:id/teachers/:teacher_id", h.GroupTeacher.RemoveGroupTeacher)
			}

			subjects := authorized.Group("/subjects")
			{
				subjects.GET("", h.Subject.ListSubjects)
				subjects.GET("/search", h.Subject.SearchSubjects)
				subjects.GET("/:id", h.Subject.GetSubject)
				subjects.POST("", h.Subject.CreateSubject)
				subjects.PUT("/:id", h.Subject.UpdateSubject)
				subjects.DELETE("/:id", h.Subject.DeleteSubject)
			}

			teachers := authorized.Group("/teachers")
			{
				teachers.GET("", h.Teacher.ListTeachers)
				teachers.GET("/search", h.Teacher.SearchTeachers)
				teachers.GET("/:id", h.Teacher.GetTeacher)
				teachers.POST("", h.Teacher.CreateTeacher)
				teachers.PUT("/:id", h.Teacher.UpdateTeacher)
				teachers.DELETE("/:id", h.Teacher.DeleteTeacher)

				teachers.POST("/:id/subjects/:subject_id", h.Teacher.AddTeacherSubject)
				teachers.DELETE("/:id/subjects/:subject_id", h.Teacher.RemoveTeacherSubject)
				teachers.GET("/:id/groups", h.GroupTeacher.ListTeacherGroups)
			}

			lessons := authorized.Group("/lessons")
			{
				lessons.GET("", h.Lesson.ListLessons)
				lessons.GET("/search", h.Lesson.SearchLessons)
				lessons.GET("/:id", h.Lesson.GetLesson)
				lessons.POST("", h.Lesson.CreateLesson)
				lessons.PUT("/:id", h.Lesson.UpdateLesson)
				lessons.DELETE("/:id", h.Lesson.DeleteLesson)
			}

			lessonStatuses := authorized.Group("/lesson-statuses")
			{
				lessonStatuses.GET("", h.LessonStatus.ListLessonStatuses)
				lessonStatuses.GET("/:id", h.LessonStatus.GetLessonStatus)
				lessonStatuses.POST("", h.LessonStatus.CreateLessonStatus)
				lessonStatuses.PUT("/:id", h.LessonStatus.UpdateLessonStatus)
			}

			export := authorized.Group("/export")
			{
				export.GET("/groups/:id/timetable", h.Export.ExportGroupTimetable)
				export.GET("/groups/:id/calendar", h.Export.ExportGroupCalendar)
				export.GET("/teachers/:id/timetable", h.Export.ExportTeacherTimetable)
				export.GET("/teachers/:id/calendar", h.Export.ExportTeacherCalendar)
			}
		}
	}

	return r
}

// registerValidators adds the charset validators used by the DTO binding tags.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// titlechars: letters, digits, underscores and spaces
	_ = v.RegisterValidation("titlechars", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != ' ' {
				return false
			}
		}
		return true
	})

	// alphaspace: letters and spaces only
	_ = v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if !unicode.IsLetter(r) && r != ' ' {
				return false
			}
		}
		return true
	})
}
