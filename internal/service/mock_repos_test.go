package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/model"
	"github.com/loxx3450/Schedule-App-sub000/internal/repository"
)

// store is the shared in-memory backing of the mock repositories. It applies
// the same visibility rules as the real database: normal lookups only see
// rows with a null deleted_at, uniqueness checks see every row.
type store struct {
	classrooms    []model.Classroom
	groups        []model.Group
	subjects      []model.Subject
	teachers      []model.Teacher
	lessons       []model.Lesson
	statuses      []model.LessonStatus
	groupTeachers []model.GroupTeacher

	teacherSubjects map[[2]uint]bool // (teacherID, subjectID)

	nextID uint
}

func newStore() *store {
	return &store{teacherSubjects: make(map[[2]uint]bool)}
}

func (st *store) id() uint {
	st.nextID++
	return st.nextID
}

// newTestRepo wires the mock repositories over one shared store.
func newTestRepo() (*repository.Repository, *store) {
	st := newStore()
	repo := &repository.Repository{
		Classroom:    &mockClassroomRepo{st: st},
		Group:        &mockGroupRepo{st: st},
		Subject:      &mockSubjectRepo{st: st},
		Teacher:      &mockTeacherRepo{st: st},
		Lesson:       &mockLessonRepo{st: st},
		LessonStatus: &mockLessonStatusRepo{st: st},
		GroupTeacher: &mockGroupTeacherRepo{st: st},
	}
	return repo, st
}

func live(deletedAt gorm.DeletedAt) bool { return !deletedAt.Valid }

func page[T any](rows []T, skip, take int) []T {
	if skip >= len(rows) {
		return nil
	}
	rows = rows[skip:]
	if take < len(rows) {
		rows = rows[:take]
	}
	return rows
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// classrooms

type mockClassroomRepo struct {
	st *store
}

func (m *mockClassroomRepo) Create(_ context.Context, room *model.Classroom) error {
	for i := range m.st.classrooms {
		if m.st.classrooms[i].Title == room.Title {
			return gorm.ErrDuplicatedKey
		}
	}
	room.ID = m.st.id()
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now
	m.st.classrooms = append(m.st.classrooms, *room)
	return nil
}

func (m *mockClassroomRepo) GetByID(_ context.Context, id uint) (*model.Classroom, error) {
	for i := range m.st.classrooms {
		if m.st.classrooms[i].ID == id && live(m.st.classrooms[i].DeletedAt) {
			room := m.st.classrooms[i]
			return &room, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassroomRepo) GetByTitle(_ context.Context, title string) (*model.Classroom, error) {
	for i := range m.st.classrooms {
		if m.st.classrooms[i].Title == title && live(m.st.classrooms[i].DeletedAt) {
			room := m.st.classrooms[i]
			return &room, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassroomRepo) GetByTitleAny(_ context.Context, title string) (*model.Classroom, error) {
	for i := range m.st.classrooms {
		if m.st.classrooms[i].Title == title {
			room := m.st.classrooms[i]
			return &room, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassroomRepo) List(_ context.Context, skip, take int) ([]model.Classroom, error) {
	var rows []model.Classroom
	for i := range m.st.classrooms {
		if live(m.st.classrooms[i].DeletedAt) {
			rows = append(rows, m.st.classrooms[i])
		}
	}
	return page(rows, skip, take), nil
}

func (m *mockClassroomRepo) ListWithFilters(ctx context.Context, filters *repository.ClassroomFilters, skip, take int) ([]model.Classroom, error) {
	rows, _ := m.List(ctx, 0, len(m.st.classrooms))
	if filters != nil && filters.TitlePattern != nil {
		var filtered []model.Classroom
		for _, row := range rows {
			if containsFold(row.Title, *filters.TitlePattern) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	return page(rows, skip, take), nil
}

func (m *mockClassroomRepo) Update(_ context.Context, room *model.Classroom) error {
	for i := range m.st.classrooms {
		if m.st.classrooms[i].ID == room.ID {
			room.UpdatedAt = time.Now()
			m.st.classrooms[i] = *room
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockClassroomRepo) SoftDeleteCascade(_ context.Context, id uint, newTitle string, lessonIDs []uint, deletedAt time.Time) error {
	for i := range m.st.classrooms {
		if m.st.classrooms[i].ID == id {
			m.st.classrooms[i].Title = newTitle
			m.st.classrooms[i].UpdatedAt = deletedAt
			m.st.classrooms[i].DeletedAt = gorm.DeletedAt{Time: deletedAt, Valid: true}
		}
	}
	m.st.softDeleteLessons(lessonIDs, deletedAt)
	return nil
}

// groups

type mockGroupRepo struct {
	st *store
}

func (m *mockGroupRepo) Create(_ context.Context, group *model.Group) error {
	for i := range m.st.groups {
		if m.st.groups[i].Title == group.Title {
			return gorm.ErrDuplicatedKey
		}
	}
	group.ID = m.st.id()
	now := time.Now()
	group.CreatedAt = now
	group.UpdatedAt = now
	m.st.groups = append(m.st.groups, *group)
	return nil
}

func (m *mockGroupRepo) GetByID(_ context.Context, id uint) (*model.Group, error) {
	for i := range m.st.groups {
		if m.st.groups[i].ID == id && live(m.st.groups[i].DeletedAt) {
			group := m.st.groups[i]
			return &group, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) GetByTitle(_ context.Context, title string) (*model.Group, error) {
	for i := range m.st.groups {
		if m.st.groups[i].Title == title && live(m.st.groups[i].DeletedAt) {
			group := m.st.groups[i]
			return &group, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) GetByTitleAny(_ context.Context, title string) (*model.Group, error) {
	for i := range m.st.groups {
		if m.st.groups[i].Title == title {
			group := m.st.groups[i]
			return &group, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) List(_ context.Context, skip, take int) ([]model.Group, error) {
	var rows []model.Group
	for i := range m.st.groups {
		if live(m.st.groups[i].DeletedAt) {
			rows = append(rows, m.st.groups[i])
		}
	}
	return page(rows, skip, take), nil
}

func (m *mockGroupRepo) ListWithFilters(ctx context.Context, filters *repository.GroupFilters, skip, take int) ([]model.Group, error) {
	rows, _ := m.List(ctx, 0, len(m.st.groups))
	if filters != nil && filters.TeacherID != nil {
		var filtered []model.Group
		for _, row := range rows {
			if m.st.hasLiveGroupTeacher(row.ID, *filters.TeacherID) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	return page(rows, skip, take), nil
}

func (m *mockGroupRepo) Update(_ context.Context, group *model.Group) error {
	for i := range m.st.groups {
		if m.st.groups[i].ID == group.ID {
			group.UpdatedAt = time.Now()
			m.st.groups[i] = *group
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) SoftDeleteCascade(_ context.Context, id uint, newTitle string, lessonIDs []uint, deletedAt time.Time) error {
	for i := range m.st.groups {
		if m.st.groups[i].ID == id {
			m.st.groups[i].Title = newTitle
			m.st.groups[i].UpdatedAt = deletedAt
			m.st.groups[i].DeletedAt = gorm.DeletedAt{Time: deletedAt, Valid: true}
		}
	}
	m.st.softDeleteLessons(lessonIDs, deletedAt)
	return nil
}

// subjects

type mockSubjectRepo struct {
	st *store
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	for i := range m.st.subjects {
		if m.st.subjects[i].Title == subject.Title {
			return gorm.ErrDuplicatedKey
		}
	}
	subject.ID = m.st.id()
	now := time.Now()
	subject.CreatedAt = now
	subject.UpdatedAt = now
	m.st.subjects = append(m.st.subjects, *subject)
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id uint) (*model.Subject, error) {
	for i := range m.st.subjects {
		if m.st.subjects[i].ID == id && live(m.st.subjects[i].DeletedAt) {
			subject := m.st.subjects[i]
			return &subject, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) GetByTitle(_ context.Context, title string) (*model.Subject, error) {
	for i := range m.st.subjects {
		if m.st.subjects[i].Title == title && live(m.st.subjects[i].DeletedAt) {
			subject := m.st.subjects[i]
			return &subject, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) GetByTitleAny(_ context.Context, title string) (*model.Subject, error) {
	for i := range m.st.subjects {
		if m.st.subjects[i].Title == title {
			subject := m.st.subjects[i]
			return &subject, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(_ context.Context, skip, take int) ([]model.Subject, error) {
	var rows []model.Subject
	for i := range m.st.subjects {
		if live(m.st.subjects[i].DeletedAt) {
			rows = append(rows, m.st.subjects[i])
		}
	}
	return page(rows, skip, take), nil
}

func (m *mockSubjectRepo) ListWithFilters(ctx context.Context, filters *repository.SubjectFilters, skip, take int) ([]model.Subject, error) {
	rows, _ := m.List(ctx, 0, len(m.st.subjects))
	if filters != nil {
		var filtered []model.Subject
		for _, row := range rows {
			if filters.TitlePattern != nil && !containsFold(row.Title, *filters.TitlePattern) {
				continue
			}
			if filters.TeacherID != nil && !m.st.teacherSubjects[[2]uint{*filters.TeacherID, row.ID}] {
				continue
			}
			filtered = append(filtered, row)
		}
		rows = filtered
	}
	return page(rows, skip, take), nil
}

func (m *mockSubjectRepo) Update(_ context.Context, subject *model.Subject) error {
	for i := range m.st.subjects {
		if m.st.subjects[i].ID == subject.ID {
			subject.UpdatedAt = time.Now()
			m.st.subjects[i] = *subject
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) SoftDeleteCascade(_ context.Context, id uint, newTitle string, lessonIDs []uint, deletedAt time.Time) error {
	for i := range m.st.subjects {
		if m.st.subjects[i].ID == id {
			m.st.subjects[i].Title = newTitle
			m.st.subjects[i].UpdatedAt = deletedAt
			m.st.subjects[i].DeletedAt = gorm.DeletedAt{Time: deletedAt, Valid: true}
		}
	}
	m.st.softDeleteLessons(lessonIDs, deletedAt)
	return nil
}

// teachers

type mockTeacherRepo struct {
	st *store
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	for i := range m.st.teachers {
		if m.st.teachers[i].Username == teacher.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	teacher.ID = m.st.id()
	now := time.Now()
	teacher.CreatedAt = now
	teacher.UpdatedAt = now
	m.st.teachers = append(m.st.teachers, *teacher)
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id uint) (*model.Teacher, error) {
	for i := range m.st.teachers {
		if m.st.teachers[i].ID == id && live(m.st.teachers[i].DeletedAt) {
			teacher := m.st.teachers[i]
			return &teacher, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByIDWithSubjects(ctx context.Context, id uint) (*model.Teacher, error) {
	teacher, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range m.st.subjects {
		subject := m.st.subjects[i]
		if live(subject.DeletedAt) && m.st.teacherSubjects[[2]uint{id, subject.ID}] {
			teacher.Subjects = append(teacher.Subjects, subject)
		}
	}
	return teacher, nil
}

func (m *mockTeacherRepo) GetByUsername(_ context.Context, username string) (*model.Teacher, error) {
	for i := range m.st.teachers {
		if m.st.teachers[i].Username == username && live(m.st.teachers[i].DeletedAt) {
			teacher := m.st.teachers[i]
			return &teacher, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByUsernameAny(_ context.Context, username string) (*model.Teacher, error) {
	for i := range m.st.teachers {
		if m.st.teachers[i].Username == username {
			teacher := m.st.teachers[i]
			return &teacher, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(_ context.Context, skip, take int) ([]model.Teacher, error) {
	var rows []model.Teacher
	for i := range m.st.teachers {
		if live(m.st.teachers[i].DeletedAt) {
			rows = append(rows, m.st.teachers[i])
		}
	}
	return page(rows, skip, take), nil
}

func (m *mockTeacherRepo) ListWithFilters(ctx context.Context, filters *repository.TeacherFilters, skip, take int) ([]model.Teacher, error) {
	rows, _ := m.List(ctx, 0, len(m.st.teachers))
	if filters != nil {
		var filtered []model.Teacher
		for _, row := range rows {
			if filters.SubjectID != nil && !m.st.teacherSubjects[[2]uint{row.ID, *filters.SubjectID}] {
				continue
			}
			if filters.NamePattern != nil &&
				!containsFold(row.FirstName, *filters.NamePattern) &&
				!containsFold(row.LastName, *filters.NamePattern) {
				continue
			}
			filtered = append(filtered, row)
		}
		rows = filtered
	}
	return page(rows, skip, take), nil
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	for i := range m.st.teachers {
		if m.st.teachers[i].ID == teacher.ID {
			teacher.UpdatedAt = time.Now()
			m.st.teachers[i] = *teacher
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) SoftDeleteCascade(_ context.Context, id uint, newUsername string, lessonIDs []uint, deletedAt time.Time) error {
	for i := range m.st.teachers {
		if m.st.teachers[i].ID == id {
			m.st.teachers[i].Username = newUsername
			m.st.teachers[i].UpdatedAt = deletedAt
			m.st.teachers[i].DeletedAt = gorm.DeletedAt{Time: deletedAt, Valid: true}
		}
	}
	m.st.softDeleteLessons(lessonIDs, deletedAt)
	return nil
}

func (m *mockTeacherRepo) HasSubject(_ context.Context, teacherID, subjectID uint) (bool, error) {
	return m.st.teacherSubjects[[2]uint{teacherID, subjectID}], nil
}

func (m *mockTeacherRepo) AddSubject(_ context.Context, teacherID, subjectID uint, stampedAt time.Time) error {
	if m.st.teacherSubjects[[2]uint{teacherID, subjectID}] {
		return gorm.ErrDuplicatedKey
	}
	m.st.teacherSubjects[[2]uint{teacherID, subjectID}] = true
	m.st.stampTeacher(teacherID, stampedAt)
	return nil
}

func (m *mockTeacherRepo) RemoveSubject(_ context.Context, teacherID, subjectID uint, stampedAt time.Time) error {
	delete(m.st.teacherSubjects, [2]uint{teacherID, subjectID})
	m.st.stampTeacher(teacherID, stampedAt)
	return nil
}

func (st *store) hasLiveGroupTeacher(groupID, teacherID uint) bool {
	for i := range st.groupTeachers {
		row := &st.groupTeachers[i]
		if row.GroupID == groupID && row.TeacherID == teacherID && live(row.DeletedAt) {
			return true
		}
	}
	return false
}

func (st *store) stampTeacher(teacherID uint, stampedAt time.Time) {
	for i := range st.teachers {
		if st.teachers[i].ID == teacherID {
			st.teachers[i].UpdatedAt = stampedAt
		}
	}
}

// lessons

type mockLessonRepo struct {
	st *store
}

func (m *mockLessonRepo) Create(_ context.Context, lesson *model.Lesson) error {
	// mirrors the chk_lessons_time_window check constraint
	if !lesson.EndsAt.After(lesson.StartsAt) {
		return gorm.ErrCheckConstraintViolated
	}
	lesson.ID = m.st.id()
	now := time.Now()
	lesson.CreatedAt = now
	lesson.UpdatedAt = now
	m.st.lessons = append(m.st.lessons, *lesson)
	return nil
}

func (m *mockLessonRepo) GetByID(_ context.Context, id uint) (*model.Lesson, error) {
	for i := range m.st.lessons {
		if m.st.lessons[i].ID == id && live(m.st.lessons[i].DeletedAt) {
			lesson := m.st.lessons[i]
			m.st.preload(&lesson)
			return &lesson, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLessonRepo) List(_ context.Context, skip, take int) ([]model.Lesson, error) {
	return page(m.liveLessons(), skip, take), nil
}

func (m *mockLessonRepo) ListWithFilters(_ context.Context, filters *repository.LessonFilters, skip, take int) ([]model.Lesson, error) {
	rows := m.liveLessons()
	if filters != nil {
		var filtered []model.Lesson
		for _, row := range rows {
			if filters.ClassroomID != nil && row.ClassroomID != *filters.ClassroomID {
				continue
			}
			if filters.SubjectID != nil && row.SubjectID != *filters.SubjectID {
				continue
			}
			if filters.GroupID != nil && row.GroupID != *filters.GroupID {
				continue
			}
			if filters.TeacherID != nil && row.TeacherID != *filters.TeacherID {
				continue
			}
			if filters.LessonStatusID != nil && row.LessonStatusID != *filters.LessonStatusID {
				continue
			}
			filtered = append(filtered, row)
		}
		rows = filtered
	}
	return page(rows, skip, take), nil
}

func (m *mockLessonRepo) ListByGroup(_ context.Context, groupID uint) ([]model.Lesson, error) {
	var rows []model.Lesson
	for _, row := range m.liveLessons() {
		if row.GroupID == groupID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StartsAt.Before(rows[j].StartsAt) })
	return rows, nil
}

func (m *mockLessonRepo) ListByTeacher(_ context.Context, teacherID uint) ([]model.Lesson, error) {
	var rows []model.Lesson
	for _, row := range m.liveLessons() {
		if row.TeacherID == teacherID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StartsAt.Before(rows[j].StartsAt) })
	return rows, nil
}

func (m *mockLessonRepo) Update(_ context.Context, lesson *model.Lesson) error {
	if !lesson.EndsAt.After(lesson.StartsAt) {
		return gorm.ErrCheckConstraintViolated
	}
	for i := range m.st.lessons {
		if m.st.lessons[i].ID == lesson.ID {
			lesson.UpdatedAt = time.Now()
			m.st.lessons[i] = *lesson
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockLessonRepo) SoftDelete(_ context.Context, id uint, deletedAt time.Time) error {
	m.st.softDeleteLessons([]uint{id}, deletedAt)
	return nil
}

func (m *mockLessonRepo) IDsByClassroom(_ context.Context, classroomID uint) ([]uint, error) {
	return m.idsBy(func(l *model.Lesson) bool { return l.ClassroomID == classroomID }), nil
}

func (m *mockLessonRepo) IDsBySubject(_ context.Context, subjectID uint) ([]uint, error) {
	return m.idsBy(func(l *model.Lesson) bool { return l.SubjectID == subjectID }), nil
}

func (m *mockLessonRepo) IDsByGroup(_ context.Context, groupID uint) ([]uint, error) {
	return m.idsBy(func(l *model.Lesson) bool { return l.GroupID == groupID }), nil
}

func (m *mockLessonRepo) IDsByTeacher(_ context.Context, teacherID uint) ([]uint, error) {
	return m.idsBy(func(l *model.Lesson) bool { return l.TeacherID == teacherID }), nil
}

func (m *mockLessonRepo) idsBy(match func(*model.Lesson) bool) []uint {
	var ids []uint
	for i := range m.st.lessons {
		if live(m.st.lessons[i].DeletedAt) && match(&m.st.lessons[i]) {
			ids = append(ids, m.st.lessons[i].ID)
		}
	}
	return ids
}

func (m *mockLessonRepo) liveLessons() []model.Lesson {
	var rows []model.Lesson
	for i := range m.st.lessons {
		if live(m.st.lessons[i].DeletedAt) {
			lesson := m.st.lessons[i]
			m.st.preload(&lesson)
			rows = append(rows, lesson)
		}
	}
	return rows
}

func (st *store) softDeleteLessons(ids []uint, deletedAt time.Time) {
	for _, id := range ids {
		for i := range st.lessons {
			if st.lessons[i].ID == id && live(st.lessons[i].DeletedAt) {
				st.lessons[i].UpdatedAt = deletedAt
				st.lessons[i].DeletedAt = gorm.DeletedAt{Time: deletedAt, Valid: true}
			}
		}
	}
}

func (st *store) preload(lesson *model.Lesson) {
	for i := range st.classrooms {
		if st.classrooms[i].ID == lesson.ClassroomID && live(st.classrooms[i].DeletedAt) {
			room := st.classrooms[i]
			lesson.Classroom = &room
		}
	}
	for i := range st.subjects {
		if st.subjects[i].ID == lesson.SubjectID && live(st.subjects[i].DeletedAt) {
			subject := st.subjects[i]
			lesson.Subject = &subject
		}
	}
	for i := range st.groups {
		if st.groups[i].ID == lesson.GroupID && live(st.groups[i].DeletedAt) {
			group := st.groups[i]
			lesson.Group = &group
		}
	}
	for i := range st.teachers {
		if st.teachers[i].ID == lesson.TeacherID && live(st.teachers[i].DeletedAt) {
			teacher := st.teachers[i]
			lesson.Teacher = &teacher
		}
	}
	for i := range st.statuses {
		if st.statuses[i].ID == lesson.LessonStatusID {
			status := st.statuses[i]
			lesson.LessonStatus = &status
		}
	}
}

// lesson statuses

type mockLessonStatusRepo struct {
	st *store
}

func (m *mockLessonStatusRepo) Create(_ context.Context, status *model.LessonStatus) error {
	for i := range m.st.statuses {
		if m.st.statuses[i].Description == status.Description {
			return gorm.ErrDuplicatedKey
		}
	}
	status.ID = m.st.id()
	m.st.statuses = append(m.st.statuses, *status)
	return nil
}

func (m *mockLessonStatusRepo) GetByID(_ context.Context, id uint) (*model.LessonStatus, error) {
	for i := range m.st.statuses {
		if m.st.statuses[i].ID == id {
			status := m.st.statuses[i]
			return &status, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLessonStatusRepo) GetByDescription(_ context.Context, description string) (*model.LessonStatus, error) {
	for i := range m.st.statuses {
		if m.st.statuses[i].Description == description {
			status := m.st.statuses[i]
			return &status, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLessonStatusRepo) List(_ context.Context) ([]model.LessonStatus, error) {
	return append([]model.LessonStatus(nil), m.st.statuses...), nil
}

func (m *mockLessonStatusRepo) Update(_ context.Context, status *model.LessonStatus) error {
	for i := range m.st.statuses {
		if m.st.statuses[i].ID == status.ID {
			if i2 := m.findDescription(status.Description); i2 >= 0 && m.st.statuses[i2].ID != status.ID {
				return gorm.ErrDuplicatedKey
			}
			m.st.statuses[i] = *status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockLessonStatusRepo) findDescription(description string) int {
	for i := range m.st.statuses {
		if m.st.statuses[i].Description == description {
			return i
		}
	}
	return -1
}

// group teachers

type mockGroupTeacherRepo struct {
	st *store
}

func (m *mockGroupTeacherRepo) Create(_ context.Context, assoc *model.GroupTeacher) error {
	// mirrors the partial unique index over live pairs
	for i := range m.st.groupTeachers {
		row := &m.st.groupTeachers[i]
		if row.GroupID == assoc.GroupID && row.TeacherID == assoc.TeacherID && live(row.DeletedAt) {
			return gorm.ErrDuplicatedKey
		}
	}
	assoc.ID = m.st.id()
	now := time.Now()
	assoc.CreatedAt = now
	assoc.UpdatedAt = now
	m.st.groupTeachers = append(m.st.groupTeachers, *assoc)
	return nil
}

func (m *mockGroupTeacherRepo) GetByPair(_ context.Context, groupID, teacherID uint) (*model.GroupTeacher, error) {
	for i := range m.st.groupTeachers {
		row := m.st.groupTeachers[i]
		if row.GroupID == groupID && row.TeacherID == teacherID && live(row.DeletedAt) {
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupTeacherRepo) ListByTeacher(_ context.Context, teacherID uint, skip, take int) ([]model.GroupTeacher, error) {
	var rows []model.GroupTeacher
	for i := range m.st.groupTeachers {
		row := m.st.groupTeachers[i]
		if row.TeacherID == teacherID && live(row.DeletedAt) {
			for j := range m.st.groups {
				if m.st.groups[j].ID == row.GroupID {
					group := m.st.groups[j]
					row.Group = &group
				}
			}
			rows = append(rows, row)
		}
	}
	return page(rows, skip, take), nil
}

func (m *mockGroupTeacherRepo) ListByGroup(_ context.Context, groupID uint, skip, take int) ([]model.GroupTeacher, error) {
	var rows []model.GroupTeacher
	for i := range m.st.groupTeachers {
		row := m.st.groupTeachers[i]
		if row.GroupID == groupID && live(row.DeletedAt) {
			for j := range m.st.teachers {
				if m.st.teachers[j].ID == row.TeacherID {
					teacher := m.st.teachers[j]
					row.Teacher = &teacher
				}
			}
			rows = append(rows, row)
		}
	}
	return page(rows, skip, take), nil
}

func (m *mockGroupTeacherRepo) SoftDelete(_ context.Context, id uint, deletedAt time.Time) error {
	for i := range m.st.groupTeachers {
		if m.st.groupTeachers[i].ID == id {
			m.st.groupTeachers[i].UpdatedAt = deletedAt
			m.st.groupTeachers[i].DeletedAt = gorm.DeletedAt{Time: deletedAt, Valid: true}
		}
	}
	return nil
}
