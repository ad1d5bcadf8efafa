package records

import (
	"context"

	"go.uber.org/zap"

	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
)

func (s *Service) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.store.ListStudents(ctx)
}

func (s *Service) GetStudent(ctx context.Context, id uint) (*models.Student, error) {
	return s.store.FindStudentByID(ctx, id)
}

func (s *Service) GetStudentAddress(ctx context.Context, id uint) (*models.Address, error) {
	return s.store.FindStudentAddress(ctx, id)
}

// CreateStudent never attaches an address; see UpsertStudentAddress.
func (s *Service) CreateStudent(ctx context.Context, in StudentInput) (*models.Student, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:      in.Name,
		FirstName: in.FirstName,
		Age:       in.Age,
	}
	if err := s.store.CreateStudent(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info("Created student", lf.StudentID(student.ID))
	return student, nil
}

func (s *Service) UpdateStudent(ctx context.Context, id uint, in StudentInput) (*models.Student, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.store.UpdateStudent(ctx, id, in.Name, in.FirstName, in.Age)
}

type StudentWithAddress struct {
	Student models.Student
	Address models.Address
}

func (s *Service) UpsertStudentAddress(ctx context.Context, id uint, in AddressInput) (*StudentWithAddress, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	student, address, err := s.store.UpsertStudentAddress(ctx, id, models.Address{
		City:   in.City,
		Street: in.Street,
		Number: in.Number,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Updated student address", lf.StudentID(id), lf.AddressID(address.ID))
	return &StudentWithAddress{Student: *student, Address: *address}, nil
}

func (s *Service) DeleteStudent(ctx context.Context, id uint, deleteAddress bool) error {
	err := s.store.DeleteStudent(ctx, id, deleteAddress)
	if err != nil {
		return err
	}

	s.logger.Info("Deleted student", lf.StudentID(id), zap.Bool("delete_address", deleteAddress))
	return nil
}
