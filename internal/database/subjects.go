package database

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/bigredeye/gradebook/internal/apperr"
	"github.com/bigredeye/gradebook/internal/models"
)

func (db *DataBase) CreateSubject(ctx context.Context, subject *models.Subject) error {
	return errors.Wrap(db.WithContext(ctx).Create(subject).Error, "Failed to create subject")
}

func (db *DataBase) FindSubjectByID(ctx context.Context, id uint) (*models.Subject, error) {
	var subject models.Subject
	err := db.WithContext(ctx).First(&subject, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("The subject with id %d does not exist!", id)
		}
		return nil, errors.Wrap(err, "Failed to find subject")
	}
	return &subject, nil
}

func (db *DataBase) ListSubjects(ctx context.Context) (subjects []models.Subject, err error) {
	subjects = make([]models.Subject, 0)
	err = db.WithContext(ctx).Order("id").Find(&subjects).Error
	if err != nil {
		subjects = nil
	}
	return
}

func (db *DataBase) ListSubjectsByIDs(ctx context.Context, ids []uint) (subjects []models.Subject, err error) {
	subjects = make([]models.Subject, 0, len(ids))
	if len(ids) == 0 {
		return
	}
	err = db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&subjects).Error
	if err != nil {
		subjects = nil
	}
	return
}
