package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bigredeye/gradebook/pkg/client/gradebook"
)

var log *zap.Logger

var endpoint string

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func unwrap[T any](value T, err error) T {
	check(err)
	return value
}

var (
	rootCmd = &cobra.Command{
		Use:   "gb",
		Short: "Gradebook client",
	}

	studentsCmd = &cobra.Command{
		Use:   "students",
		Short: "Inspect students",
	}
)

func newClient() *gradebook.Client {
	return gradebook.NewClient(endpoint)
}

func initLogging() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.ConsoleSeparator = " "
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.StampMilli)
	log = unwrap(config.Build())
}

func initCommands() {
	defaultEndpoint := os.Getenv("GB_ENDPOINT")
	if defaultEndpoint == "" {
		defaultEndpoint = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", defaultEndpoint, "Gradebook server address")

	studentsCmd.AddCommand(makeListStudentsCommand())
	studentsCmd.AddCommand(makeDeleteStudentCommand())
	rootCmd.AddCommand(studentsCmd)
	rootCmd.AddCommand(makeStandingsCommand())
	rootCmd.AddCommand(makeMarksCommand())
	rootCmd.AddCommand(makeAveragesCommand())
	rootCmd.AddCommand(makeSeedCommand())
}

func init() {
	initLogging()
	initCommands()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s", err.Error())
		os.Exit(1)
	}
}
