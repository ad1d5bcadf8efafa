package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bigredeye/gradebook/internal/apperr"
	"github.com/bigredeye/gradebook/internal/models"
)

func newMockDataBase(t *testing.T) (*DataBase, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return New(db), mock
}

var studentColumns = []string{"id", "name", "first_name", "age", "address_id"}

func TestFindStudentByIDNotFound(t *testing.T) {
	db, mock := newMockDataBase(t)

	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows(studentColumns))

	student, err := db.FindStudentByID(context.Background(), 42)
	require.Nil(t, student)
	require.True(t, apperr.Is(err, apperr.KindNotFound))
	require.Contains(t, err.Error(), "42")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindStudentByID(t *testing.T) {
	db, mock := newMockDataBase(t)

	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows(studentColumns).AddRow(3, "Lovelace", "Ada", 36, nil))

	student, err := db.FindStudentByID(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, uint(3), student.ID)
	require.Equal(t, "Ada Lovelace", student.FullName())
	require.Nil(t, student.AddressID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStudentCascadesMarksAndAddress(t *testing.T) {
	db, mock := newMockDataBase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows(studentColumns).AddRow(3, "Lovelace", "Ada", 36, 9))
	mock.ExpectExec(`DELETE FROM "marks"`).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM "students"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "addresses"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, db.DeleteStudent(context.Background(), 3, true))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStudentKeepsAddress(t *testing.T) {
	db, mock := newMockDataBase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows(studentColumns).AddRow(3, "Lovelace", "Ada", 36, 9))
	mock.ExpectExec(`DELETE FROM "marks"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "students"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, db.DeleteStudent(context.Background(), 3, false))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUnknownStudentRollsBack(t *testing.T) {
	db, mock := newMockDataBase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows(studentColumns))
	mock.ExpectRollback()

	err := db.DeleteStudent(context.Background(), 5, true)
	require.True(t, apperr.Is(err, apperr.KindNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func uintPtr(v uint) *uint {
	return &v
}

func TestCreateMarkUnknownSubject(t *testing.T) {
	db, mock := newMockDataBase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "subjects"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := db.CreateMark(context.Background(), &models.Mark{
		Value:     7,
		StudentID: uintPtr(1),
		SubjectID: uintPtr(99),
	})
	require.True(t, apperr.Is(err, apperr.KindInvalidReference))
	require.Contains(t, err.Error(), "Subject with ID 99")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMark(t *testing.T) {
	db, mock := newMockDataBase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "subjects"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "marks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	mark := &models.Mark{Value: 7, StudentID: uintPtr(1), SubjectID: uintPtr(2)}
	require.NoError(t, db.CreateMark(context.Background(), mark))
	require.Equal(t, uint(11), mark.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMarkRacingDelete(t *testing.T) {
	db, mock := newMockDataBase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "subjects"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "marks"`).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})
	mock.ExpectRollback()

	err := db.CreateMark(context.Background(), &models.Mark{Value: 7, StudentID: uintPtr(1), SubjectID: uintPtr(2)})
	require.True(t, apperr.Is(err, apperr.KindInvalidReference))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListSubjectsByNoIDs(t *testing.T) {
	db, mock := newMockDataBase(t)

	subjects, err := db.ListSubjectsByIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, subjects)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStudent(t *testing.T) {
	db, mock := newMockDataBase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows(studentColumns).AddRow(3, "Lovelace", "Ada", 36, nil))
	mock.ExpectExec(`UPDATE "students" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	student, err := db.UpdateStudent(context.Background(), 3, "King", "Ada", 0)
	require.NoError(t, err)
	require.Equal(t, "King", student.Name)
	require.Equal(t, 0, student.Age)
	require.NoError(t, mock.ExpectationsWereMet())
}
