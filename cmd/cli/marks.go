package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bigredeye/gradebook/api"
)

func makeMarksCommand() *cobra.Command {
	var student, subject uint
	cmd := &cobra.Command{
		Use:   "marks",
		Short: "Dump marks of a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			var marks []api.StudentMark
			var err error
			if subject != 0 {
				marks, err = newClient().SubjectMarks(student, subject)
			} else {
				marks, err = newClient().StudentMarks(student)
			}
			if err != nil {
				return err
			}

			for _, mark := range marks {
				fmt.Printf("%s\t%s\t%d\n", mark.DateAssigned.Format("02-01-2006 15:04"), mark.SubjectName, mark.Value)
			}
			return nil
		},
	}
	cmd.Flags().UintVar(&student, "student", 0, "Student id")
	cmd.Flags().UintVar(&subject, "subject", 0, "Subject id, all subjects when omitted")
	check(cmd.MarkFlagRequired("student"))

	return cmd
}

func makeAveragesCommand() *cobra.Command {
	var student uint
	cmd := &cobra.Command{
		Use:   "averages",
		Short: "Dump per-subject averages of a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			averages, err := newClient().SubjectAverages(student)
			if err != nil {
				return err
			}
			for _, avg := range averages {
				fmt.Printf("%s\t%.3f\n", avg.SubjectName, avg.AverageMarks)
			}
			return nil
		},
	}
	cmd.Flags().UintVar(&student, "student", 0, "Student id")
	check(cmd.MarkFlagRequired("student"))

	return cmd
}
