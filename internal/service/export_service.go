package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/model"
	"github.com/loxx3450/Schedule-App-sub000/internal/repository"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
)

// ExportService renders a group's or a teacher's timetable as an xlsx
// workbook or an iCalendar feed. Lessons come out ordered by start time.
type ExportService interface {
	GroupTimetableXLSX(ctx context.Context, groupID uint) (*bytes.Buffer, string, error)
	TeacherTimetableXLSX(ctx context.Context, teacherID uint) (*bytes.Buffer, string, error)
	GroupCalendarICS(ctx context.Context, groupID uint) (*bytes.Buffer, string, error)
	TeacherCalendarICS(ctx context.Context, teacherID uint) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) GroupTimetableXLSX(ctx context.Context, groupID uint) (*bytes.Buffer, string, error) {
	lessons, err := s.groupLessons(ctx, groupID)
	if err != nil {
		return nil, "", err
	}
	buf, err := s.timetableWorkbook(lessons)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("group_%d_timetable.xlsx", groupID), nil
}

func (s *exportService) TeacherTimetableXLSX(ctx context.Context, teacherID uint) (*bytes.Buffer, string, error) {
	lessons, err := s.teacherLessons(ctx, teacherID)
	if err != nil {
		return nil, "", err
	}
	buf, err := s.timetableWorkbook(lessons)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("teacher_%d_timetable.xlsx", teacherID), nil
}

func (s *exportService) GroupCalendarICS(ctx context.Context, groupID uint) (*bytes.Buffer, string, error) {
	lessons, err := s.groupLessons(ctx, groupID)
	if err != nil {
		return nil, "", err
	}
	return calendar(lessons), fmt.Sprintf("group_%d_timetable.ics", groupID), nil
}

func (s *exportService) TeacherCalendarICS(ctx context.Context, teacherID uint) (*bytes.Buffer, string, error) {
	lessons, err := s.teacherLessons(ctx, teacherID)
	if err != nil {
		return nil, "", err
	}
	return calendar(lessons), fmt.Sprintf("teacher_%d_timetable.ics", teacherID), nil
}

func (s *exportService) groupLessons(ctx context.Context, groupID uint) ([]model.Lesson, error) {
	if _, err := s.repo.Group.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Group", "id", groupID)
		}
		s.logger.Error("get group failed", zap.Uint("id", groupID), zap.Error(err))
		return nil, apperr.Store(err)
	}

	lessons, err := s.repo.Lesson.ListByGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("load group timetable failed", zap.Uint("group_id", groupID), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return lessons, nil
}

func (s *exportService) teacherLessons(ctx context.Context, teacherID uint) ([]model.Lesson, error) {
	if _, err := s.repo.Teacher.GetByID(ctx, teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Teacher", "id", teacherID)
		}
		s.logger.Error("get teacher failed", zap.Uint("id", teacherID), zap.Error(err))
		return nil, apperr.Store(err)
	}

	lessons, err := s.repo.Lesson.ListByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Error("load teacher timetable failed", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return lessons, nil
}

var timetableHeader = []string{"Date", "Starts", "Ends", "Subject", "Teacher", "Group", "Classroom", "Status"}

func (s *exportService) timetableWorkbook(lessons []model.Lesson) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Timetable"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range timetableHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for row, lesson := range lessons {
		values := []interface{}{
			lesson.StartsAt.Format("2006-01-02"),
			lesson.StartsAt.Format("15:04"),
			lesson.EndsAt.Format("15:04"),
			lessonSubjectTitle(&lesson),
			lessonTeacherName(&lesson),
			lessonGroupTitle(&lesson),
			lessonClassroomTitle(&lesson),
			lessonStatusText(&lesson),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write workbook failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return buf, nil
}

func calendar(lessons []model.Lesson) *bytes.Buffer {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//schedule-app//timetable//EN")

	now := time.Now()
	for i := range lessons {
		lesson := &lessons[i]
		event := cal.AddEvent(fmt.Sprintf("lesson-%d@schedule-app", lesson.ID))
		event.SetDtStampTime(now)
		event.SetStartAt(lesson.StartsAt)
		event.SetEndAt(lesson.EndsAt)
		event.SetSummary(lessonSubjectTitle(lesson))
		event.SetLocation(lessonClassroomTitle(lesson))
		event.SetDescription(fmt.Sprintf("%s, group %s, %s",
			lessonTeacherName(lesson), lessonGroupTitle(lesson), lessonStatusText(lesson)))
	}

	return bytes.NewBufferString(cal.Serialize())
}

func lessonSubjectTitle(lesson *model.Lesson) string {
	if lesson.Subject == nil {
		return ""
	}
	return lesson.Subject.Title
}

func lessonTeacherName(lesson *model.Lesson) string {
	if lesson.Teacher == nil {
		return ""
	}
	return lesson.Teacher.FirstName + " " + lesson.Teacher.LastName
}

func lessonGroupTitle(lesson *model.Lesson) string {
	if lesson.Group == nil {
		return ""
	}
	return lesson.Group.Title
}

func lessonClassroomTitle(lesson *model.Lesson) string {
	if lesson.Classroom == nil {
		return ""
	}
	return lesson.Classroom.Title
}

func lessonStatusText(lesson *model.Lesson) string {
	if lesson.LessonStatus == nil {
		return ""
	}
	return lesson.LessonStatus.Description
}
