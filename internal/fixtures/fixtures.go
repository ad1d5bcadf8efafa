package fixtures

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/bigredeye/gradebook/internal/models"
)

type Address struct {
	City   string `yaml:"city"`
	Street string `yaml:"street"`
	Number int    `yaml:"number"`
}

type Mark struct {
	Subject string `yaml:"subject"`
	Value   int    `yaml:"value"`
}

type Student struct {
	Name      string   `yaml:"name"`
	FirstName string   `yaml:"firstName"`
	Age       int      `yaml:"age"`
	Address   *Address `yaml:"address,omitempty"`
	Marks     []Mark   `yaml:"marks,omitempty"`
}

type Subject struct {
	Name string `yaml:"name"`
}

// Document is a seed file. Marks refer to subjects by name.
type Document struct {
	Subjects []Subject `yaml:"subjects"`
	Students []Student `yaml:"students"`
}

func Parse(body []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.UnmarshalStrict(body, doc); err != nil {
		return nil, errors.Wrap(err, "Failed to unmarshal fixtures")
	}

	if err := doc.validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid fixtures")
	}
	return doc, nil
}

func (d *Document) validate() error {
	subjects := make(map[string]struct{}, len(d.Subjects))
	for _, subject := range d.Subjects {
		name := subject.Name
		if strings.TrimSpace(name) == "" {
			return errors.New("subject without a name")
		}
		if _, found := subjects[name]; found {
			return errors.Errorf("subject %q is listed twice, marks could not tell them apart", name)
		}
		subjects[name] = struct{}{}
	}

	for i, student := range d.Students {
		if strings.TrimSpace(student.Name) == "" || strings.TrimSpace(student.FirstName) == "" {
			return errors.Errorf("student #%d has no name", i+1)
		}
		if student.Age < 0 {
			return errors.Errorf("student %s %s has negative age %d", student.FirstName, student.Name, student.Age)
		}
		for _, mark := range student.Marks {
			if _, found := subjects[mark.Subject]; !found {
				return errors.Errorf("student %s %s has a mark in unknown subject %q", student.FirstName, student.Name, mark.Subject)
			}
			if mark.Value < models.MinMarkValue || mark.Value > models.MaxMarkValue {
				return errors.Errorf("student %s %s has mark %d outside of [%d, %d]",
					student.FirstName, student.Name, mark.Value, models.MinMarkValue, models.MaxMarkValue)
			}
		}
	}
	return nil
}

func (d *Document) NumMarks() (count int) {
	for _, student := range d.Students {
		count += len(student.Marks)
	}
	return
}
