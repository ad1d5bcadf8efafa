package database

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/bigredeye/gradebook/internal/apperr"
	"github.com/bigredeye/gradebook/internal/models"
)

func exists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	err := tx.Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CreateMark checks both references inside the insert transaction; a
// reference deleted concurrently still surfaces as InvalidReference through
// the foreign key constraint.
func (db *DataBase) CreateMark(ctx context.Context, mark *models.Mark) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if mark.StudentID == nil || mark.SubjectID == nil {
			return apperr.InvalidReference("A mark needs both a student and a subject")
		}

		found, err := exists(tx, &models.Student{}, *mark.StudentID)
		if err != nil {
			return errors.Wrap(err, "Failed to check student")
		}
		if !found {
			return apperr.InvalidReference("Student with ID %d does not exist.", *mark.StudentID)
		}

		found, err = exists(tx, &models.Subject{}, *mark.SubjectID)
		if err != nil {
			return errors.Wrap(err, "Failed to check subject")
		}
		if !found {
			return apperr.InvalidReference("Subject with ID %d does not exist.", *mark.SubjectID)
		}

		return tx.Create(mark).Error
	})
	if isForeignKeyViolation(err) {
		return apperr.InvalidReference("Mark references a student or subject that no longer exists")
	}
	return err
}

func (db *DataBase) ListStudentMarks(ctx context.Context, studentID uint) (marks []models.Mark, err error) {
	marks = make([]models.Mark, 0)
	err = db.WithContext(ctx).Where("student_id = ?", studentID).Order("id").Find(&marks).Error
	if err != nil {
		marks = nil
	}
	return
}

func (db *DataBase) ListAllMarks(ctx context.Context) (marks []models.Mark, err error) {
	marks = make([]models.Mark, 0)
	err = db.WithContext(ctx).Where("student_id IS NOT NULL").Order("id").Find(&marks).Error
	if err != nil {
		marks = nil
	}
	return
}
