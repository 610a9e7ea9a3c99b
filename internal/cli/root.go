package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"integration-audit/internal/app"
	"integration-audit/internal/audits"
	"integration-audit/internal/models"
	"integration-audit/internal/shared/configs"
	"integration-audit/internal/shared/svcerrors"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	format      string
	configPath  string
	envFile     string
	noOverwrite bool
}

// NewRootCommand builds the integration-audit command.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	formats := make([]string, 0, len(models.OutputFormats))
	for _, f := range models.OutputFormats {
		formats = append(formats, string(f))
	}

	cmd := &cobra.Command{
		Use:   "integration-audit <email> <token> <save_path>",
		Short: "Export a user's third-party integration history from a Slack workspace",
		Long: `integration-audit pulls every team.integrationLogs page for one user, groups the
entries by service or app id and writes them to save_path.

The token needs the admin, users:read, users:read.email and team:read scopes.

Formats:
  csv-full     every log entry per integration, oldest first
  csv-summary  one row per integration with its latest status
  raw          the unmodified log entries as a JSON array`,
		Example: `  integration-audit jane@example.com xoxp-... audit.csv
  integration-audit jane@example.com xoxp-... summary.csv --format csv-summary`,
		Args:          usageArgs(cobra.ExactArgs(3)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, opts, args[0], args[1], args[2])
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errUsage(err)
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.format, "format", string(models.FormatCSVFull), "output format: "+strings.Join(formats, ", "))
	flags.StringVar(&opts.configPath, "config", "", "optional YAML config file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.BoolVar(&opts.noOverwrite, "no-overwrite", false, "fail instead of replacing an existing save_path")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("api-url", "https://slack.com/api", "Slack Web API base URL")
	flags.Int("timeout", 0, "per-request timeout in seconds, 0 waits forever")
	flags.String("metrics-file", "", "write Prometheus metrics to this file after the run")

	return cmd
}

func runAudit(cmd *cobra.Command, opts *rootOptions, email, token, savePath string) error {
	if err := configs.LoadDotEnv(opts.envFile); err != nil {
		return err
	}

	cfg, err := configs.LoadConfig(opts.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	application, err := app.New(cfg, app.Options{
		Token:          token,
		AllowOverwrite: !opts.noOverwrite,
		LogWriter:      cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	result, err := application.Run(cmd.Context(), audits.Request{
		Email:    email,
		Format:   models.OutputFormat(opts.format),
		SavePath: savePath,
	})
	if err != nil {
		return err
	}

	if len(result.Unclassified) > 0 {
		fmt.Fprint(cmd.ErrOrStderr(), RenderUnclassified(result.Unclassified))
	}
	return nil
}

// Execute runs the command with args and returns the process exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if svcErr, ok := svcerrors.AsServiceError(err); ok && svcErr.Code == codeUsage {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return svcerrors.ExitCodeOf(err)
	}
	return 0
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errUsage(err)
		}
		return nil
	}
}
