package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bigredeye/gradebook/api"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/records"
)

type marksService struct {
	webService
}

func setupMarksService(server *server, r *gin.Engine) {
	s := marksService{webService{server, server.config, server.logger}}

	r.POST("/marks", s.create)
	r.GET("/marks/sort-by-grades", s.standings)
	r.GET("/marks/student/:id", s.studentMarks)
	r.GET("/marks/:studentId/subject-average", s.subjectAverages)
	r.GET("/marks/:studentId/:subjectId", s.subjectMarks)
}

func (s marksService) create(c *gin.Context) {
	req := api.MarkRequest{}
	if !s.bind(c, &req) {
		return
	}

	mark, err := s.server.records.CreateMark(c, records.MarkInput{
		Value:     req.Value,
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, &api.Mark{
		ID:           mark.ID,
		Value:        mark.Value,
		DateAssigned: mark.DateAssigned,
		StudentID:    mark.StudentID,
		SubjectID:    mark.SubjectID,
	})
}

func (s marksService) studentMarks(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	marks, err := s.server.records.ListMarksForStudent(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, makeStudentMarks(marks))
}

func (s marksService) subjectMarks(c *gin.Context) {
	studentID, ok := s.pathID(c, "studentId")
	if !ok {
		return
	}
	subjectID, ok := s.pathID(c, "subjectId")
	if !ok {
		return
	}

	marks, err := s.server.records.ListMarksForSubject(c, studentID, subjectID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, makeStudentMarks(marks))
}

func (s marksService) subjectAverages(c *gin.Context) {
	id, ok := s.pathID(c, "studentId")
	if !ok {
		return
	}

	averages, err := s.server.records.SubjectAverages(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, makeSubjectAverages(averages))
}

func (s marksService) standings(c *gin.Context) {
	req := api.StandingsRequest{}
	if !s.bindQuery(c, &req) {
		return
	}

	s.requestLog(c).Info("Handling standings request", lf.Order(req.Order))
	standings, err := s.server.records.RankStudentsByAverage(c, req.Order)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, makeStandings(standings))
}
