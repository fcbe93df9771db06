package handler

import "github.com/loxx3450/Schedule-App-sub000/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth         *AuthHandler
	Classroom    *ClassroomHandler
	Group        *GroupHandler
	Subject      *SubjectHandler
	Teacher      *TeacherHandler
	Lesson       *LessonHandler
	LessonStatus *LessonStatusHandler
	GroupTeacher *GroupTeacherHandler
	Export       *ExportHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Classroom:    NewClassroomHandler(svc.Classroom),
		Group:        NewGroupHandler(svc.Group),
		Subject:      NewSubjectHandler(svc.Subject),
		Teacher:      NewTeacherHandler(svc.Teacher, svc.TeacherSubj),
		Lesson:       NewLessonHandler(svc.Lesson),
		LessonStatus: NewLessonStatusHandler(svc.LessonStatus),
		GroupTeacher: NewGroupTeacherHandler(svc.GroupTeacher),
		Export:       NewExportHandler(svc.Export),
	}
}
