package lf

import "go.uber.org/zap"

const (
	FieldModule      = "module"
	FieldRequestID   = "request_id"
	FieldStudentID   = "student_id"
	FieldAddressID   = "address_id"
	FieldSubjectID   = "subject_id"
	FieldMarkID      = "mark_id"
	FieldOrder       = "order"
	FieldNumStudents = "num_students"
	FieldNumMarks    = "num_marks"
	FieldErrorKind   = "error_kind"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func RequestID(ID string) zap.Field {
	return zap.String(FieldRequestID, ID)
}

func StudentID(ID uint) zap.Field {
	return zap.Uint(FieldStudentID, ID)
}

func AddressID(ID uint) zap.Field {
	return zap.Uint(FieldAddressID, ID)
}

func SubjectID(ID uint) zap.Field {
	return zap.Uint(FieldSubjectID, ID)
}

func MarkID(ID uint) zap.Field {
	return zap.Uint(FieldMarkID, ID)
}

func Order(order string) zap.Field {
	return zap.String(FieldOrder, order)
}

func NumStudents(n int) zap.Field {
	return zap.Int(FieldNumStudents, n)
}

func NumMarks(n int) zap.Field {
	return zap.Int(FieldNumMarks, n)
}

func ErrorKind(kind string) zap.Field {
	return zap.String(FieldErrorKind, kind)
}
