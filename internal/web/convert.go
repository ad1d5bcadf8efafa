package web

import (
	"github.com/bigredeye/gradebook/api"
	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/records"
	"github.com/bigredeye/gradebook/internal/scorer"
)

func makeStudent(student *models.Student) api.Student {
	return api.Student{
		ID:        student.ID,
		Name:      student.Name,
		FirstName: student.FirstName,
		Age:       student.Age,
		AddressID: student.AddressID,
	}
}

func makeAddress(address *models.Address) api.Address {
	return api.Address{
		City:   address.City,
		Street: address.Street,
		Number: address.Number,
	}
}

func makeStudentMarks(marks []records.StudentMark) []api.StudentMark {
	res := make([]api.StudentMark, len(marks))
	for i, mark := range marks {
		res[i] = api.StudentMark{
			ID:           mark.ID,
			Value:        mark.Value,
			DateAssigned: mark.DateAssigned,
			SubjectName:  mark.SubjectName,
		}
	}
	return res
}

func makeSubjectAverages(averages []scorer.SubjectAverage) []api.SubjectAverage {
	res := make([]api.SubjectAverage, len(averages))
	for i, avg := range averages {
		res[i] = api.SubjectAverage{
			SubjectID:    avg.SubjectID,
			SubjectName:  avg.SubjectName,
			AverageMarks: avg.AverageMarks,
		}
	}
	return res
}

func makeStandings(standings *scorer.Standings) []api.RankedStudent {
	res := make([]api.RankedStudent, len(standings.Students))
	for i, ranked := range standings.Students {
		res[i] = api.RankedStudent{
			ID:           ranked.Student.ID,
			Name:         ranked.Student.Name,
			FirstName:    ranked.Student.FirstName,
			Age:          ranked.Student.Age,
			AverageMarks: ranked.AverageMarks,
		}
	}
	return res
}
