package api

import "time"

type MarkRequest struct {
	Value     int  `json:"value" form:"value" binding:"min=1,max=10"`
	StudentID uint `json:"studentId" form:"studentId" binding:"required"`
	SubjectID uint `json:"subjectId" form:"subjectId" binding:"required"`
}

type Mark struct {
	ID           uint      `json:"id"`
	Value        int       `json:"value"`
	DateAssigned time.Time `json:"dateAssigned"`
	StudentID    *uint     `json:"studentId"`
	SubjectID    *uint     `json:"subjectId"`
}

type StudentMark struct {
	ID           uint      `json:"id"`
	Value        int       `json:"value"`
	DateAssigned time.Time `json:"dateAssigned"`
	SubjectName  string    `json:"subjectName"`
}

type SubjectAverage struct {
	SubjectID    *uint   `json:"subjectId"`
	SubjectName  string  `json:"subjectName"`
	AverageMarks float64 `json:"averageMarks"`
}

type StandingsRequest struct {
	Order string `form:"order"`
}

type RankedStudent struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	FirstName    string  `json:"firstName"`
	Age          int     `json:"age"`
	AverageMarks float64 `json:"averageMarks"`
}
