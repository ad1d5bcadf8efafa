package records

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/bigredeye/gradebook/internal/apperr"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/scorer"
)

type StudentMark struct {
	ID           uint
	Value        int
	DateAssigned time.Time
	SubjectName  string
}

func (s *Service) CreateMark(ctx context.Context, in MarkInput) (*models.Mark, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	studentID, subjectID := in.StudentID, in.SubjectID
	mark := &models.Mark{
		Value:        in.Value,
		DateAssigned: s.now(),
		StudentID:    &studentID,
		SubjectID:    &subjectID,
	}
	if err := s.store.CreateMark(ctx, mark); err != nil {
		return nil, err
	}

	s.logger.Info("Created mark",
		lf.MarkID(mark.ID),
		lf.StudentID(studentID),
		lf.SubjectID(subjectID),
	)
	return mark, nil
}

// loadStudentMarks returns the marks of an existing student together with
// the subjects they reference.
func (s *Service) loadStudentMarks(ctx context.Context, studentID uint) ([]models.Mark, scorer.SubjectsMap, error) {
	if _, err := s.store.FindStudentByID(ctx, studentID); err != nil {
		return nil, nil, err
	}

	marks, err := s.store.ListStudentMarks(ctx, studentID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Failed to list student marks")
	}

	subjects, err := s.store.ListSubjectsByIDs(ctx, scorer.SubjectIDs(marks))
	if err != nil {
		return nil, nil, errors.Wrap(err, "Failed to list subjects")
	}

	return marks, scorer.MakeSubjectsMap(subjects), nil
}

func annotate(marks []models.Mark, subjects scorer.SubjectsMap) []StudentMark {
	res := make([]StudentMark, len(marks))
	for i, mark := range marks {
		res[i] = StudentMark{
			ID:           mark.ID,
			Value:        mark.Value,
			DateAssigned: mark.DateAssigned,
		}
		if mark.SubjectID != nil {
			if subject, found := subjects[*mark.SubjectID]; found {
				res[i].SubjectName = subject.Name
			}
		}
	}
	return res
}

func (s *Service) ListMarksForStudent(ctx context.Context, studentID uint) ([]StudentMark, error) {
	marks, subjects, err := s.loadStudentMarks(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if len(marks) == 0 {
		return nil, apperr.NoMarks("No marks found for the student with id %d!", studentID)
	}
	return annotate(marks, subjects), nil
}

// ListMarksForSubject tells an unknown subject (NotFound) apart from a
// known subject the student has no marks in (NoMarks).
func (s *Service) ListMarksForSubject(ctx context.Context, studentID, subjectID uint) ([]StudentMark, error) {
	marks, subjects, err := s.loadStudentMarks(ctx, studentID)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Mark, 0, len(marks))
	for _, mark := range marks {
		if mark.HasSubject(subjectID) {
			filtered = append(filtered, mark)
		}
	}

	if len(filtered) == 0 {
		if _, err := s.store.FindSubjectByID(ctx, subjectID); err != nil {
			return nil, err
		}
		return nil, apperr.NoMarks("The student with id %d has no marks in the subject with id %d!", studentID, subjectID)
	}
	return annotate(filtered, subjects), nil
}

func (s *Service) SubjectAverages(ctx context.Context, studentID uint) ([]scorer.SubjectAverage, error) {
	marks, subjects, err := s.loadStudentMarks(ctx, studentID)
	if err != nil {
		return nil, err
	}

	averages := scorer.SubjectAverages(marks, subjects)
	if len(averages) == 0 {
		return nil, apperr.NoMarks("No marks found for the student with id %d.", studentID)
	}
	return averages, nil
}

func (s *Service) RankStudentsByAverage(ctx context.Context, order string) (*scorer.Standings, error) {
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list students")
	}
	if len(students) == 0 {
		return nil, apperr.NotFound("No student was found!")
	}

	marks, err := s.store.ListAllMarks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list marks")
	}

	subjects, err := s.store.ListSubjects(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list subjects")
	}

	parsed := scorer.ParseOrder(order)
	s.logger.Debug("Ranking students",
		lf.Order(parsed.String()),
		lf.NumStudents(len(students)),
		lf.NumMarks(len(marks)),
	)

	return scorer.Rank(students, scorer.GroupMarksByStudent(marks), scorer.MakeSubjectsMap(subjects), parsed), nil
}
