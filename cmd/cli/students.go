package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func makeListStudentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List students",
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := newClient().ListStudents()
			if err != nil {
				return err
			}
			for _, student := range students {
				fmt.Printf("%d\t%s %s\t%d\n", student.ID, student.FirstName, student.Name, student.Age)
			}
			return nil
		},
	}
}

func makeDeleteStudentCommand() *cobra.Command {
	var deleteAddress bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a student with all of their marks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 0)
			if err != nil {
				return err
			}
			if err := newClient().DeleteStudent(uint(id), deleteAddress); err != nil {
				return err
			}
			log.Info("Deleted student", zap.Uint64("student_id", id), zap.Bool("delete_address", deleteAddress))
			return nil
		},
	}
	cmd.Flags().BoolVar(&deleteAddress, "address", false, "Delete the student's address too")

	return cmd
}
