package models

import "time"

const (
	MinMarkValue = 1
	MaxMarkValue = 10
)

type Mark struct {
	ID           uint `gorm:"primaryKey"`
	Value        int
	DateAssigned time.Time

	StudentID *uint `gorm:"index"`
	SubjectID *uint `gorm:"index"`
}

func (m Mark) HasSubject(id uint) bool {
	return m.SubjectID != nil && *m.SubjectID == id
}
