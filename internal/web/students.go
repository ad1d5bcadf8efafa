package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bigredeye/gradebook/api"
	"github.com/bigredeye/gradebook/internal/records"
)

type studentsService struct {
	webService
}

func setupStudentsService(server *server, r *gin.Engine) {
	s := studentsService{webService{server, server.config, server.logger}}

	r.GET("/students", s.list)
	r.POST("/students", s.create)
	r.GET("/students/:id", s.get)
	r.PUT("/students/:id", s.update)
	r.DELETE("/students/:id", s.delete)
	r.GET("/students/:id/address", s.address)
	r.PUT("/students/:id/address", s.updateAddress)
}

func (s studentsService) list(c *gin.Context) {
	students, err := s.server.records.ListStudents(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	res := make([]api.Student, len(students))
	for i := range students {
		res[i] = makeStudent(&students[i])
	}
	c.JSON(http.StatusOK, res)
}

func (s studentsService) get(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	student, err := s.server.records.GetStudent(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, makeStudent(student))
}

func (s studentsService) create(c *gin.Context) {
	req := api.StudentRequest{}
	if !s.bind(c, &req) {
		return
	}

	student, err := s.server.records.CreateStudent(c, records.StudentInput{
		Name:      req.Name,
		FirstName: req.FirstName,
		Age:       req.Age,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/students/%d", student.ID))
	c.JSON(http.StatusCreated, makeStudent(student))
}

func (s studentsService) update(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	req := api.StudentRequest{}
	if !s.bind(c, &req) {
		return
	}

	student, err := s.server.records.UpdateStudent(c, id, records.StudentInput{
		Name:      req.Name,
		FirstName: req.FirstName,
		Age:       req.Age,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, makeStudent(student))
}

func (s studentsService) delete(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	req := api.DeleteStudentRequest{}
	if !s.bindQuery(c, &req) {
		return
	}

	if err := s.server.records.DeleteStudent(c, id, req.DeleteAddress); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, &api.MessageResponse{
		Message: fmt.Sprintf("Student with id %d was successfully deleted!", id),
	})
}

func (s studentsService) address(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	address, err := s.server.records.GetStudentAddress(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, makeAddress(address))
}

func (s studentsService) updateAddress(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	req := api.Address{}
	if !s.bind(c, &req) {
		return
	}

	res, err := s.server.records.UpsertStudentAddress(c, id, records.AddressInput{
		City:   req.City,
		Street: req.Street,
		Number: req.Number,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	address := makeAddress(&res.Address)
	c.JSON(http.StatusOK, &api.StudentWithAddress{
		Name:      res.Student.Name,
		FirstName: res.Student.FirstName,
		Address:   &address,
	})
}
