package gradebook

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bigredeye/gradebook/api"
)

type Client struct {
	client *resty.Client
}

func NewClient(endpoint string) *Client {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(time.Second * 10).
		SetRetryCount(3)

	return &Client{client}
}

type RequestError struct {
	StatusCode int
	Kind       string
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d (%s): %s", e.StatusCode, e.Kind, e.Message)
}

func check(res *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if res.IsError() {
		reqErr := &RequestError{StatusCode: res.StatusCode()}
		if body, ok := res.Error().(*api.ErrorResponse); ok {
			reqErr.Kind = body.Kind
			reqErr.Message = body.Error
		}
		return reqErr
	}
	return nil
}

func (c *Client) request() *resty.Request {
	return c.client.R().SetError(&api.ErrorResponse{})
}

func id(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func (c *Client) ListStudents() ([]api.Student, error) {
	var res []api.Student
	err := check(c.request().SetResult(&res).Get("/students"))
	return res, err
}

func (c *Client) CreateStudent(req api.StudentRequest) (*api.Student, error) {
	res := &api.Student{}
	err := check(c.request().SetResult(res).SetBody(req).Post("/students"))
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) UpdateStudentAddress(studentID uint, req api.Address) (*api.StudentWithAddress, error) {
	res := &api.StudentWithAddress{}
	err := check(c.request().
		SetResult(res).
		SetBody(req).
		SetPathParam("id", id(studentID)).
		Put("/students/{id}/address"))
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) DeleteStudent(studentID uint, deleteAddress bool) error {
	return check(c.request().
		SetPathParam("id", id(studentID)).
		SetQueryParam("deleteAddress", strconv.FormatBool(deleteAddress)).
		Delete("/students/{id}"))
}

func (c *Client) ListSubjects() ([]api.Subject, error) {
	var res []api.Subject
	err := check(c.request().SetResult(&res).Get("/subjects"))
	return res, err
}

func (c *Client) CreateSubject(name string) (*api.Subject, error) {
	res := &api.Subject{}
	err := check(c.request().SetResult(res).SetBody(api.SubjectRequest{Name: name}).Post("/subjects"))
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) CreateMark(req api.MarkRequest) (*api.Mark, error) {
	res := &api.Mark{}
	err := check(c.request().SetResult(res).SetBody(req).Post("/marks"))
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) StudentMarks(studentID uint) ([]api.StudentMark, error) {
	var res []api.StudentMark
	err := check(c.request().
		SetResult(&res).
		SetPathParam("id", id(studentID)).
		Get("/marks/student/{id}"))
	return res, err
}

func (c *Client) SubjectMarks(studentID, subjectID uint) ([]api.StudentMark, error) {
	var res []api.StudentMark
	err := check(c.request().
		SetResult(&res).
		SetPathParams(map[string]string{
			"student": id(studentID),
			"subject": id(subjectID),
		}).
		Get("/marks/{student}/{subject}"))
	return res, err
}

func (c *Client) SubjectAverages(studentID uint) ([]api.SubjectAverage, error) {
	var res []api.SubjectAverage
	err := check(c.request().
		SetResult(&res).
		SetPathParam("id", id(studentID)).
		Get("/marks/{id}/subject-average"))
	return res, err
}

func (c *Client) LoadStandings(order string) ([]api.RankedStudent, error) {
	var res []api.RankedStudent
	err := check(c.request().
		SetResult(&res).
		SetQueryParam("order", order).
		Get("/marks/sort-by-grades"))
	return res, err
}
