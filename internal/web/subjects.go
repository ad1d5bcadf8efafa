package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bigredeye/gradebook/api"
)

type subjectsService struct {
	webService
}

func setupSubjectsService(server *server, r *gin.Engine) {
	s := subjectsService{webService{server, server.config, server.logger}}

	r.GET("/subjects", s.list)
	r.POST("/subjects", s.create)
}

func (s subjectsService) list(c *gin.Context) {
	subjects, err := s.server.records.ListSubjects(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	res := make([]api.Subject, len(subjects))
	for i, subject := range subjects {
		res[i] = api.Subject{ID: subject.ID, Name: subject.Name}
	}
	c.JSON(http.StatusOK, res)
}

func (s subjectsService) create(c *gin.Context) {
	req := api.SubjectRequest{}
	if !s.bind(c, &req) {
		return
	}

	subject, err := s.server.records.CreateSubject(c, req.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, &api.Subject{ID: subject.ID, Name: subject.Name})
}
