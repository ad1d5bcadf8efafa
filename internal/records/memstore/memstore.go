// Package memstore keeps records in process memory. It mirrors the
// behaviour of the postgres store and backs the service and handler tests.
package memstore

import (
	"context"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/bigredeye/gradebook/internal/apperr"
	"github.com/bigredeye/gradebook/internal/models"
)

type Store struct {
	mu sync.Mutex

	nextID    uint
	students  map[uint]models.Student
	addresses map[uint]models.Address
	subjects  map[uint]models.Subject
	marks     map[uint]models.Mark
}

func New() *Store {
	return &Store{
		students:  make(map[uint]models.Student),
		addresses: make(map[uint]models.Address),
		subjects:  make(map[uint]models.Subject),
		marks:     make(map[uint]models.Mark),
	}
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func sortedValues[T any](m map[uint]T) []T {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	res := make([]T, 0, len(keys))
	for _, k := range keys {
		res = append(res, m[k])
	}
	return res
}

func (s *Store) findStudent(id uint) (models.Student, error) {
	student, found := s.students[id]
	if !found {
		return student, apperr.NotFound("The student with id %d was not found!", id)
	}
	return student, nil
}

func (s *Store) ListStudents(ctx context.Context) ([]models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedValues(s.students), nil
}

func (s *Store) FindStudentByID(ctx context.Context, id uint) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, err := s.findStudent(id)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *Store) CreateStudent(ctx context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	student.ID = s.id()
	s.students[student.ID] = *student
	return nil
}

func (s *Store) UpdateStudent(ctx context.Context, id uint, name, firstName string, age int) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, err := s.findStudent(id)
	if err != nil {
		return nil, err
	}
	student.Name, student.FirstName, student.Age = name, firstName, age
	s.students[id] = student
	return &student, nil
}

func (s *Store) FindStudentAddress(ctx context.Context, id uint) (*models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, err := s.findStudent(id)
	if err != nil {
		return nil, err
	}
	if student.AddressID == nil {
		return nil, apperr.NotFound("The address of the student with id %d was not found!", id)
	}
	address, found := s.addresses[*student.AddressID]
	if !found {
		return nil, apperr.NotFound("The address of the student with id %d was not found!", id)
	}
	return &address, nil
}

func (s *Store) UpsertStudentAddress(ctx context.Context, id uint, fields models.Address) (*models.Student, *models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, err := s.findStudent(id)
	if err != nil {
		return nil, nil, err
	}

	if student.AddressID != nil {
		if _, found := s.addresses[*student.AddressID]; found {
			fields.ID = *student.AddressID
			s.addresses[fields.ID] = fields
			return &student, &fields, nil
		}
	}

	fields.ID = s.id()
	s.addresses[fields.ID] = fields
	addressID := fields.ID
	student.AddressID = &addressID
	s.students[id] = student
	return &student, &fields, nil
}

func (s *Store) DeleteStudent(ctx context.Context, id uint, deleteAddress bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, err := s.findStudent(id)
	if err != nil {
		return err
	}

	for markID, mark := range s.marks {
		if mark.StudentID != nil && *mark.StudentID == id {
			delete(s.marks, markID)
		}
	}
	delete(s.students, id)

	if deleteAddress && student.AddressID != nil {
		delete(s.addresses, *student.AddressID)
	}
	return nil
}

func (s *Store) Addresses() []models.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedValues(s.addresses)
}

func (s *Store) CreateSubject(ctx context.Context, subject *models.Subject) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	subject.ID = s.id()
	s.subjects[subject.ID] = *subject
	return nil
}

func (s *Store) FindSubjectByID(ctx context.Context, id uint) (*models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subject, found := s.subjects[id]
	if !found {
		return nil, apperr.NotFound("The subject with id %d does not exist!", id)
	}
	return &subject, nil
}

func (s *Store) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedValues(s.subjects), nil
}

func (s *Store) ListSubjectsByIDs(ctx context.Context, ids []uint) ([]models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]models.Subject, 0, len(ids))
	for _, subject := range sortedValues(s.subjects) {
		if slices.Contains(ids, subject.ID) {
			res = append(res, subject)
		}
	}
	return res, nil
}

func (s *Store) CreateMark(ctx context.Context, mark *models.Mark) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mark.StudentID == nil || mark.SubjectID == nil {
		return apperr.InvalidReference("A mark needs both a student and a subject")
	}
	if _, found := s.students[*mark.StudentID]; !found {
		return apperr.InvalidReference("Student with ID %d does not exist.", *mark.StudentID)
	}
	if _, found := s.subjects[*mark.SubjectID]; !found {
		return apperr.InvalidReference("Subject with ID %d does not exist.", *mark.SubjectID)
	}
	mark.ID = s.id()
	s.marks[mark.ID] = *mark
	return nil
}

func (s *Store) ListStudentMarks(ctx context.Context, studentID uint) ([]models.Mark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]models.Mark, 0)
	for _, mark := range sortedValues(s.marks) {
		if mark.StudentID != nil && *mark.StudentID == studentID {
			res = append(res, mark)
		}
	}
	return res, nil
}

func (s *Store) ListAllMarks(ctx context.Context) ([]models.Mark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]models.Mark, 0, len(s.marks))
	for _, mark := range sortedValues(s.marks) {
		if mark.StudentID != nil {
			res = append(res, mark)
		}
	}
	return res, nil
}

// InsertMark stores a mark as is, without reference checks.
func (s *Store) InsertMark(mark models.Mark) models.Mark {
	s.mu.Lock()
	defer s.mu.Unlock()
	mark.ID = s.id()
	s.marks[mark.ID] = mark
	return mark
}
