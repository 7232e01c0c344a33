package cmd

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Start the Lambda notification handler",
	Long: `Start the AWS Lambda runtime handler and process S3 change
notifications as they arrive.

This is the deployed entrypoint. Each invocation carries a batch of one
or more notification records; every record is mirrored into the target
GitLab project before the invocation completes.`,
	RunE: runListen,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(listenCmd)
}

func runListen(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	service, err := buildService(ctx)
	if err != nil {
		return err
	}

	logger.Info("Starting notification handler...")

	lambda.StartWithOptions(
		func(ctx context.Context, event events.S3Event) error {
			return service.ProcessEvent(ctx, event)
		},
		lambda.WithContext(ctx),
	)
	return nil
}
