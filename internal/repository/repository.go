package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	Classroom    ClassroomRepository
	Group        GroupRepository
	Subject      SubjectRepository
	Teacher      TeacherRepository
	Lesson       LessonRepository
	LessonStatus LessonStatusRepository
	GroupTeacher GroupTeacherRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Classroom:    NewClassroomRepo(db),
		Group:        NewGroupRepo(db),
		Subject:      NewSubjectRepo(db),
		Teacher:      NewTeacherRepo(db),
		Lesson:       NewLessonRepo(db),
		LessonStatus: NewLessonStatusRepo(db),
		GroupTeacher: NewGroupTeacherRepo(db),
	}
}
