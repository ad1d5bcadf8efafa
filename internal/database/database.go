package database

import (
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"github.com/bigredeye/gradebook/internal/models"
)

type DataBase struct {
	*gorm.DB
}

func New(db *gorm.DB) *DataBase {
	return &DataBase{db}
}

const (
	pgForeignKeyViolation = "23503"
)

func isForeignKeyViolation(err error) bool {
	var perr *pgconn.PgError
	if errors.As(err, &perr) {
		return perr.Code == pgForeignKeyViolation
	}
	return false
}

func OpenDataBase(logger *zap.Logger, dsn string, retries uint64) (*DataBase, error) {
	zapLogger := zapgorm2.New(logger.Named("gorm"))
	zapLogger.SetAsDefault()

	var db *gorm.DB
	connect := func() (err error) {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: zapLogger,
		})
		if err != nil {
			logger.Warn("Failed to connect to database", zap.Error(err))
		}
		return
	}
	err := backoff.Retry(connect, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), retries))
	if err != nil {
		return nil, errors.Wrap(err, "Failed to open database")
	}

	if err = migrate(db); err != nil {
		return nil, errors.Wrap(err, "Failed to migrate database")
	}

	return &DataBase{db}, nil
}

type foreignKey struct {
	name  string
	model interface{}
	ddl   string
}

// Models carry plain id columns, so gorm does not derive constraints from them.
var foreignKeys = []foreignKey{{
	name:  "fk_students_address",
	model: &models.Student{},
	ddl:   `ALTER TABLE students ADD CONSTRAINT fk_students_address FOREIGN KEY (address_id) REFERENCES addresses(id) ON DELETE SET NULL`,
}, {
	name:  "fk_marks_student",
	model: &models.Mark{},
	ddl:   `ALTER TABLE marks ADD CONSTRAINT fk_marks_student FOREIGN KEY (student_id) REFERENCES students(id)`,
}, {
	name:  "fk_marks_subject",
	model: &models.Mark{},
	ddl:   `ALTER TABLE marks ADD CONSTRAINT fk_marks_subject FOREIGN KEY (subject_id) REFERENCES subjects(id)`,
}}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&models.Address{}, &models.Student{}, &models.Subject{}, &models.Mark{})
	if err != nil {
		return err
	}

	for _, fk := range foreignKeys {
		if db.Migrator().HasConstraint(fk.model, fk.name) {
			continue
		}
		if err := db.Exec(fk.ddl).Error; err != nil {
			return errors.Wrapf(err, "Failed to create constraint %s", fk.name)
		}
	}
	return nil
}
