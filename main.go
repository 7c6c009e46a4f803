package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"taskclient/config"
	"taskclient/logging"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	configPath  string
	endpoint    string
	timeoutFlag time.Duration
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskclient",
		Short: "Client for the autonomous programming webhook",
		Long: `taskclient sends natural-language programming tasks to an autonomous
programming workflow over HTTP and renders the results. Without a subcommand
it runs an interactive session; 'taskclient examples' runs the built-in
demonstration tasks instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadConfig(configPath); err != nil {
				return err
			}
			logging.InitLogger()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(os.Stdin, os.Stdout, effectiveEndpoint(), effectiveTimeout())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "webhook URL (overrides the config file)")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "request timeout (overrides the config file)")

	rootCmd.AddCommand(newExamplesCommand(), newVersionCommand())

	return rootCmd
}

func newExamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Run the built-in demonstration tasks against the webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			webhookURL := effectiveEndpoint()
			if webhookURL == "" {
				return errors.New("no webhook URL configured; set webhook.url in the config file or pass --endpoint")
			}

			client := NewTaskClient(webhookURL, effectiveTimeout())
			pause := time.Duration(config.AppConfig.Examples.PauseSeconds) * time.Second
			runExamples(client, os.Stdout, pause)
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stderr, "taskclient\n")
			fmt.Fprintf(os.Stderr, "Version: %s\n", version)
			fmt.Fprintf(os.Stderr, "Build time: %s\n", buildTime)
		},
	}
}

// effectiveEndpoint resolves the webhook URL: flag first, then config file.
// Empty means "prompt for it" in interactive mode and is an error elsewhere.
func effectiveEndpoint() string {
	if endpoint != "" {
		return endpoint
	}
	return config.AppConfig.Webhook.URL
}

// effectiveTimeout resolves the request timeout: flag first, then config file.
func effectiveTimeout() time.Duration {
	if timeoutFlag > 0 {
		return timeoutFlag
	}
	return time.Duration(config.AppConfig.Webhook.TimeoutSeconds) * time.Second
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
