package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liftgrid/liftgrid/internal/app"
	"github.com/liftgrid/liftgrid/internal/buildinfo"
	"github.com/liftgrid/liftgrid/internal/hclloader"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

type globalOptions struct {
	logLevel  string
	logFormat string
	inventory []string
}

func (o *globalOptions) validate() error {
	format := strings.ToLower(o.logFormat)
	if format != "text" && format != "json" {
		return &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch strings.ToLower(o.logLevel) {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	return nil
}

// New assembles the root command. All command output and logging go to outW.
func New(outW io.Writer) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "liftgrid",
		Short:         "liftgrid plans and runs dependency-ordered upgrade stages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(outW)

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	root.PersistentFlags().StringArrayVar(&opts.inventory, "inventory", nil, "Path to an inventory YAML file. Repeatable, later files win.")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})

	root.AddCommand(newPlanCmd(outW, opts))
	root.AddCommand(newRunCmd(outW, opts))
	root.AddCommand(newVersionCmd(outW))
	return root
}

func requirePlanPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return &ExitError{Code: 2, Message: fmt.Sprintf("%s requires at least one plan path", cmd.Name())}
	}
	return nil
}

func newApp(outW io.Writer, opts *globalOptions, paths []string, healthcheckPort int) (*app.App, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	cfg, err := app.NewConfig(app.Config{
		PlanPaths:       paths,
		InventoryPaths:  opts.inventory,
		LogLevel:        strings.ToLower(opts.logLevel),
		LogFormat:       strings.ToLower(opts.logFormat),
		HealthcheckPort: healthcheckPort,
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	return app.New(outW, cfg, hclloader.NewLoader())
}

func newPlanCmd(outW io.Writer, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <path>...",
		Short: "Print the execution order without running anything",
		Args:  requirePlanPath,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(outW, opts, args, 0)
			if err != nil {
				return err
			}
			order, err := a.Plan(cmd.Context())
			if err != nil {
				return err
			}
			for i, name := range order {
				fmt.Fprintf(outW, "%3d. %s\n", i+1, name)
			}
			return nil
		},
	}
}

func newRunCmd(outW io.Writer, opts *globalOptions) *cobra.Command {
	var healthcheckPort int

	cmd := &cobra.Command{
		Use:   "run <path>...",
		Short: "Plan and execute every stage in dependency order",
		Args:  requirePlanPath,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(outW, opts, args, healthcheckPort)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&healthcheckPort, "healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	return cmd
}

func newVersionCmd(outW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(outW, "liftgrid %s\n", buildinfo.Version)
			return nil
		},
	}
}
