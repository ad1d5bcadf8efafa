package records

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/internal/apperr"
	"github.com/bigredeye/gradebook/internal/models"
)

// Store is implemented by *database.DataBase.
type Store interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	FindStudentByID(ctx context.Context, id uint) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error
	UpdateStudent(ctx context.Context, id uint, name, firstName string, age int) (*models.Student, error)
	FindStudentAddress(ctx context.Context, id uint) (*models.Address, error)
	UpsertStudentAddress(ctx context.Context, id uint, fields models.Address) (*models.Student, *models.Address, error)
	DeleteStudent(ctx context.Context, id uint, deleteAddress bool) error

	CreateSubject(ctx context.Context, subject *models.Subject) error
	FindSubjectByID(ctx context.Context, id uint) (*models.Subject, error)
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	ListSubjectsByIDs(ctx context.Context, ids []uint) ([]models.Subject, error)

	CreateMark(ctx context.Context, mark *models.Mark) error
	ListStudentMarks(ctx context.Context, studentID uint) ([]models.Mark, error)
	ListAllMarks(ctx context.Context) ([]models.Mark, error)
}

type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.Named("records"),
		now:    time.Now,
	}
}

type StudentInput struct {
	Name      string
	FirstName string
	Age       int
}

func (in *StudentInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.FirstName = strings.TrimSpace(in.FirstName)
	if in.Name == "" || in.FirstName == "" {
		return apperr.ValidationFailed("Name and first name must not be empty")
	}
	if in.Age < 0 {
		return apperr.ValidationFailed("Age must not be negative, got %d", in.Age)
	}
	return nil
}

type AddressInput struct {
	City   string
	Street string
	Number int
}

func (in *AddressInput) validate() error {
	in.City = strings.TrimSpace(in.City)
	in.Street = strings.TrimSpace(in.Street)
	if in.City == "" || in.Street == "" {
		return apperr.ValidationFailed("City and street must not be empty")
	}
	if in.Number < 0 {
		return apperr.ValidationFailed("Street number must not be negative, got %d", in.Number)
	}
	return nil
}

type MarkInput struct {
	Value     int
	StudentID uint
	SubjectID uint
}

func (in *MarkInput) validate() error {
	if in.Value < models.MinMarkValue || in.Value > models.MaxMarkValue {
		return apperr.ValidationFailed("Value must be between %d and %d.", models.MinMarkValue, models.MaxMarkValue)
	}
	return nil
}
