package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-lambda-go/events"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var eventFile string

//nolint:gochecknoglobals // required by cobra CLI pattern
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay an S3 notification event from a JSON document",
	Long: `Process a single S3 notification batch read from a JSON file or
standard input.

Useful for local testing and for re-driving notifications that failed
in production: save the event payload to a file and replay it against
the same configuration the handler uses.`,
	RunE: runReplay,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	runCmd.Flags().StringVar(
		&eventFile, "event", "",
		"Path to an S3 event JSON document (defaults to stdin)",
	)
	rootCmd.AddCommand(runCmd)
}

func runReplay(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	event, err := readEvent()
	if err != nil {
		return err
	}

	service, err := buildService(ctx)
	if err != nil {
		return err
	}

	return service.ProcessEvent(ctx, event)
}

func readEvent() (events.S3Event, error) {
	var event events.S3Event

	var data []byte
	var err error
	if eventFile != "" {
		data, err = os.ReadFile(eventFile)
		if err != nil {
			return event, fmt.Errorf("failed to read event file %q: %w", eventFile, err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return event, fmt.Errorf("failed to read event from stdin: %w", err)
		}
	}

	if unmarshalErr := json.Unmarshal(data, &event); unmarshalErr != nil {
		return event, fmt.Errorf("failed to parse event document: %w", unmarshalErr)
	}

	return event, nil
}
