package database

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/bigredeye/gradebook/internal/apperr"
	"github.com/bigredeye/gradebook/internal/models"
)

func studentNotFound(id uint) error {
	return apperr.NotFound("The student with id %d was not found!", id)
}

func findStudent(tx *gorm.DB, id uint) (*models.Student, error) {
	var student models.Student
	err := tx.First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, studentNotFound(id)
		}
		return nil, errors.Wrap(err, "Failed to find student")
	}
	return &student, nil
}

func (db *DataBase) ListStudents(ctx context.Context) (students []models.Student, err error) {
	students = make([]models.Student, 0)
	err = db.WithContext(ctx).Order("id").Find(&students).Error
	if err != nil {
		students = nil
	}
	return
}

func (db *DataBase) FindStudentByID(ctx context.Context, id uint) (*models.Student, error) {
	return findStudent(db.WithContext(ctx), id)
}

func (db *DataBase) CreateStudent(ctx context.Context, student *models.Student) error {
	return errors.Wrap(db.WithContext(ctx).Create(student).Error, "Failed to create student")
}

func (db *DataBase) UpdateStudent(ctx context.Context, id uint, name, firstName string, age int) (*models.Student, error) {
	var updated *models.Student
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := findStudent(tx, id)
		if err != nil {
			return err
		}

		student.Name = name
		student.FirstName = firstName
		student.Age = age
		err = tx.Model(student).Select("name", "first_name", "age").Updates(student).Error
		if err != nil {
			return errors.Wrap(err, "Failed to update student")
		}

		updated = student
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (db *DataBase) FindStudentAddress(ctx context.Context, id uint) (*models.Address, error) {
	tx := db.WithContext(ctx)
	student, err := findStudent(tx, id)
	if err != nil {
		return nil, err
	}

	if student.AddressID == nil {
		return nil, apperr.NotFound("The address of the student with id %d was not found!", id)
	}

	var address models.Address
	err = tx.First(&address, *student.AddressID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("The address of the student with id %d was not found!", id)
		}
		return nil, errors.Wrap(err, "Failed to find address")
	}
	return &address, nil
}

// UpsertStudentAddress overwrites the student's address in place, or
// creates one when the student has none.
func (db *DataBase) UpsertStudentAddress(ctx context.Context, id uint, fields models.Address) (*models.Student, *models.Address, error) {
	var (
		student *models.Student
		address models.Address
	)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		student, err = findStudent(tx, id)
		if err != nil {
			return err
		}

		if student.AddressID != nil {
			err = tx.First(&address, *student.AddressID).Error
			if err == nil {
				address.City = fields.City
				address.Street = fields.Street
				address.Number = fields.Number
				return errors.Wrap(tx.Save(&address).Error, "Failed to update address")
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(err, "Failed to find address")
			}
		}

		address = models.Address{
			City:   fields.City,
			Street: fields.Street,
			Number: fields.Number,
		}
		if err = tx.Create(&address).Error; err != nil {
			return errors.Wrap(err, "Failed to create address")
		}

		res := tx.Model(student).Update("address_id", address.ID)
		if res.Error != nil {
			return errors.Wrap(res.Error, "Failed to attach address")
		}
		student.AddressID = &address.ID
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return student, &address, nil
}

// DeleteStudent removes the student together with all of its marks.
// The address row survives unless deleteAddress is set.
func (db *DataBase) DeleteStudent(ctx context.Context, id uint, deleteAddress bool) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := findStudent(tx, id)
		if err != nil {
			return err
		}

		err = tx.Where("student_id = ?", id).Delete(&models.Mark{}).Error
		if err != nil {
			return errors.Wrap(err, "Failed to delete student marks")
		}

		err = tx.Delete(student).Error
		if err != nil {
			return errors.Wrap(err, "Failed to delete student")
		}

		if deleteAddress && student.AddressID != nil {
			err = tx.Delete(&models.Address{}, *student.AddressID).Error
			if err != nil {
				return errors.Wrap(err, "Failed to delete address")
			}
		}
		return nil
	})
}
