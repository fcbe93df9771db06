package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/loxx3450/Schedule-App-sub000/config"
	"github.com/loxx3450/Schedule-App-sub000/internal/repository"
	"github.com/loxx3450/Schedule-App-sub000/pkg/jwt"
	"github.com/loxx3450/Schedule-App-sub000/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth         AuthService
	Classroom    ClassroomService
	Group        GroupService
	Subject      SubjectService
	Teacher      TeacherService
	Lesson       LessonService
	LessonStatus LessonStatusService
	GroupTeacher GroupTeacherService
	TeacherSubj  TeacherSubjectService
	Export       ExportService
}

// NewService wires the service aggregate. rdb may be nil; logout then degrades
// to a no-op blacklist.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Classroom:    NewClassroomService(repo, logger),
		Group:        NewGroupService(repo, logger),
		Subject:      NewSubjectService(repo, logger),
		Teacher:      NewTeacherService(repo, logger),
		Lesson:       NewLessonService(repo, logger),
		LessonStatus: NewLessonStatusService(repo, logger),
		GroupTeacher: NewGroupTeacherService(repo, logger),
		TeacherSubj:  NewTeacherSubjectService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}

// formatTime renders audit timestamps for the detailed projections.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// deletedName rewrites a unique title/username on soft delete so the original
// value becomes available for reuse. The timestamp is the same clock read
// stamped into deleted_at.
func deletedName(original string, at time.Time) string {
	return fmt.Sprintf("%s_deleted_%d", original, at.Unix())
}
