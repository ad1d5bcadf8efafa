package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/api"
	"github.com/bigredeye/gradebook/internal/fixtures"
)

func makeSeedCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load students, subjects and marks from a yaml file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed(file)
		},
	}
	cmd.Flags().StringVar(&file, "file", "seed.yaml", "Path to the seed file")

	return cmd
}

func seed(file string) error {
	body, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "Failed to read seed file")
	}

	doc, err := fixtures.Parse(body)
	if err != nil {
		return err
	}

	client := newClient()

	subjects := make(map[string]uint, len(doc.Subjects))
	for _, subject := range doc.Subjects {
		created, err := client.CreateSubject(subject.Name)
		if err != nil {
			return errors.Wrapf(err, "Failed to create subject %s", subject.Name)
		}
		subjects[subject.Name] = created.ID
	}

	for _, student := range doc.Students {
		created, err := client.CreateStudent(api.StudentRequest{
			Name:      student.Name,
			FirstName: student.FirstName,
			Age:       student.Age,
		})
		if err != nil {
			return errors.Wrapf(err, "Failed to create student %s %s", student.FirstName, student.Name)
		}

		if student.Address != nil {
			_, err = client.UpdateStudentAddress(created.ID, api.Address{
				City:   student.Address.City,
				Street: student.Address.Street,
				Number: student.Address.Number,
			})
			if err != nil {
				return errors.Wrapf(err, "Failed to set address of student %d", created.ID)
			}
		}

		for _, mark := range student.Marks {
			_, err = client.CreateMark(api.MarkRequest{
				Value:     mark.Value,
				StudentID: created.ID,
				SubjectID: subjects[mark.Subject],
			})
			if err != nil {
				return errors.Wrapf(err, "Failed to create mark for student %d", created.ID)
			}
		}
	}

	log.Info("Seeded gradebook",
		zap.Int("subjects", len(doc.Subjects)),
		zap.Int("students", len(doc.Students)),
		zap.Int("marks", doc.NumMarks()),
	)
	return nil
}
