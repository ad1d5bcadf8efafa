package scorer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/bigredeye/gradebook/internal/models"
)

func id(v uint) *uint {
	return &v
}

func makeMark(student, subject uint, value int) models.Mark {
	return models.Mark{Value: value, StudentID: id(student), SubjectID: id(subject)}
}

var someSubjects = MakeSubjectsMap([]models.Subject{
	{ID: 1, Name: "Algebra"},
	{ID: 2, Name: "Biology"},
	{ID: 3, Name: "Chemistry"},
})

func TestSubjectAverages(t *testing.T) {
	marks := []models.Mark{
		makeMark(1, 1, 8),
		makeMark(1, 2, 6),
		makeMark(1, 1, 10),
	}

	averages := SubjectAverages(marks, someSubjects)
	expected := []SubjectAverage{
		{SubjectID: id(1), SubjectName: "Algebra", AverageMarks: 9.0, Count: 2},
		{SubjectID: id(2), SubjectName: "Biology", AverageMarks: 6.0, Count: 1},
	}
	if diff := cmp.Diff(expected, averages); diff != "" {
		t.Fatalf("Unexpected averages (-want +got):\n%s", diff)
	}

	require.Equal(t, 7.5, OverallAverage(averages))
}

func TestSubjectAveragesOrphanedMarks(t *testing.T) {
	marks := []models.Mark{
		{Value: 4, StudentID: id(1)},
		makeMark(1, 3, 9),
		{Value: 6, StudentID: id(1)},
	}

	averages := SubjectAverages(marks, someSubjects)
	expected := []SubjectAverage{
		{SubjectName: "", AverageMarks: 5.0, Count: 2},
		{SubjectID: id(3), SubjectName: "Chemistry", AverageMarks: 9.0, Count: 1},
	}
	if diff := cmp.Diff(expected, averages); diff != "" {
		t.Fatalf("Unexpected averages (-want +got):\n%s", diff)
	}
}

func TestOverallAverageWithoutMarks(t *testing.T) {
	require.Equal(t, 0.0, OverallAverage(SubjectAverages(nil, someSubjects)))
}

func TestParseOrder(t *testing.T) {
	for input, expected := range map[string]Order{
		"desc":   OrderDescending,
		"DESC":   OrderDescending,
		" Desc ": OrderDescending,
		"asc":    OrderAscending,
		"":       OrderAscending,
		"random": OrderAscending,
	} {
		require.Equal(t, expected, ParseOrder(input), "input %q", input)
	}
}

func rankedIDs(standings *Standings) []uint {
	ids := make([]uint, len(standings.Students))
	for i, s := range standings.Students {
		ids[i] = s.Student.ID
	}
	return ids
}

func TestRank(t *testing.T) {
	students := []models.Student{
		{ID: 1, Name: "Hopper"},
		{ID: 2, Name: "Turing"},
		{ID: 3, Name: "Knuth"},
		{ID: 4, Name: "Liskov"},
	}
	marks := GroupMarksByStudent([]models.Mark{
		makeMark(1, 1, 8), makeMark(1, 1, 10), makeMark(1, 2, 6), // 7.5, flat mean would be 8
		makeMark(2, 1, 9),
		makeMark(4, 3, 7), makeMark(4, 2, 8), // 7.5, ties with student 1
	})

	asc := Rank(students, marks, someSubjects, OrderAscending)
	require.Equal(t, []uint{3, 1, 4, 2}, rankedIDs(asc))
	require.Equal(t, 0.0, asc.Students[0].AverageMarks)
	require.Equal(t, 7.5, asc.Students[1].AverageMarks)

	desc := Rank(students, marks, someSubjects, ParseOrder("DESC"))
	require.Equal(t, []uint{2, 1, 4, 3}, rankedIDs(desc))
	for i := 1; i < len(desc.Students); i++ {
		require.GreaterOrEqual(t, desc.Students[i-1].AverageMarks, desc.Students[i].AverageMarks)
	}
}

func TestSubjectIDs(t *testing.T) {
	marks := []models.Mark{
		makeMark(1, 3, 8), makeMark(1, 1, 5), makeMark(1, 3, 2), {Value: 1, StudentID: id(1)},
	}
	require.Equal(t, []uint{1, 3}, SubjectIDs(marks))
}
