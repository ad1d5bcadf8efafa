package scorer

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/bigredeye/gradebook/internal/models"
)

type subjectKey struct {
	id    uint
	valid bool
}

func keyOf(mark *models.Mark) subjectKey {
	if mark.SubjectID == nil {
		return subjectKey{}
	}
	return subjectKey{id: *mark.SubjectID, valid: true}
}

type SubjectsMap map[uint]*models.Subject

func MakeSubjectsMap(subjects []models.Subject) SubjectsMap {
	res := make(SubjectsMap, len(subjects))
	for i := range subjects {
		res[subjects[i].ID] = &subjects[i]
	}
	return res
}

// SubjectAverages groups marks by subject in order of first appearance.
func SubjectAverages(marks []models.Mark, subjects SubjectsMap) []SubjectAverage {
	type group struct {
		sum   int
		count int
	}

	order := make([]subjectKey, 0)
	groups := make(map[subjectKey]*group)
	for i := range marks {
		key := keyOf(&marks[i])
		g, found := groups[key]
		if !found {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.sum += marks[i].Value
		g.count++
	}

	averages := make([]SubjectAverage, 0, len(order))
	for _, key := range order {
		g := groups[key]
		avg := SubjectAverage{
			AverageMarks: float64(g.sum) / float64(g.count),
			Count:        g.count,
		}
		if key.valid {
			id := key.id
			avg.SubjectID = &id
			if subject, found := subjects[id]; found {
				avg.SubjectName = subject.Name
			}
		}
		averages = append(averages, avg)
	}
	return averages
}

// OverallAverage is the mean of per-subject means, so a subject with many
// marks weighs the same as a subject with one.
func OverallAverage(averages []SubjectAverage) float64 {
	if len(averages) == 0 {
		return 0.0
	}

	total := 0.0
	for _, avg := range averages {
		total += avg.AverageMarks
	}
	return total / float64(len(averages))
}

func GroupMarksByStudent(marks []models.Mark) map[uint][]models.Mark {
	res := make(map[uint][]models.Mark)
	for _, mark := range marks {
		if mark.StudentID == nil {
			continue
		}
		res[*mark.StudentID] = append(res[*mark.StudentID], mark)
	}
	return res
}

// Rank keeps the input order of students with equal averages.
func Rank(students []models.Student, marks map[uint][]models.Mark, subjects SubjectsMap, order Order) *Standings {
	ranked := make([]RankedStudent, len(students))
	for i, student := range students {
		ranked[i] = RankedStudent{
			Student:      student,
			AverageMarks: OverallAverage(SubjectAverages(marks[student.ID], subjects)),
		}
	}

	slices.SortStableFunc(ranked, func(a, b RankedStudent) bool {
		if order == OrderDescending {
			return a.AverageMarks > b.AverageMarks
		}
		return a.AverageMarks < b.AverageMarks
	})

	return &Standings{Order: order, Students: ranked}
}

func SubjectIDs(marks []models.Mark) []uint {
	ids := make(map[uint]struct{})
	for _, mark := range marks {
		if mark.SubjectID != nil {
			ids[*mark.SubjectID] = struct{}{}
		}
	}
	res := maps.Keys(ids)
	slices.Sort(res)
	return res
}
