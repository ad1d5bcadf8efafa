package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func makeStandingsCommand() *cobra.Command {
	var order string
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Dump students ranked by their average mark",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpStandings(order)
		},
	}
	cmd.Flags().StringVar(&order, "order", "asc", "Sort order, asc or desc")

	return cmd
}

func dumpStandings(order string) error {
	standings, err := newClient().LoadStandings(order)
	if err != nil {
		return err
	}

	for i, student := range standings {
		fmt.Printf("%d\t%s %s\t%.3f\n", i+1, student.FirstName, student.Name, student.AverageMarks)
	}
	return nil
}
