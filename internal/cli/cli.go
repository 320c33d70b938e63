package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/optmap/internal/app"
	"github.com/specialistvlad/optmap/internal/hcl_adapter"
	"github.com/specialistvlad/optmap/kvmap"
	"github.com/specialistvlad/optmap/name"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
	envPrefix string
	format    string
}

// Execute runs the command line described by args. Results are written to
// outW, logs and usage errors to errW.
func Execute(ctx context.Context, args []string, outW, errW io.Writer, environ []string) error {
	root := NewRootCommand(outW, errW, environ)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the optmap command tree.
func NewRootCommand(outW, errW io.Writer, environ []string) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "optmap",
		Short:         "Inspect hierarchical option sets",
		Long:          "optmap loads HCL option files and OPTMAP_* environment variables into an ordered option map, answers typed lookups, compares option sets and turns byte offsets into line/column positions.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := flags.config()
			return err
		},
		// No Run: prints help by default.
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "info", "logging level: debug|info|warn|error")
	pf.StringVar(&flags.logFormat, "log-format", "text", "log output format: text|json")
	pf.StringVar(&flags.envPrefix, "env-prefix", app.DefaultEnvPrefix, "environment variable prefix for option overrides (empty disables)")
	pf.StringVar(&flags.format, "format", "text", "output format for show: text|json")

	newApp := func() (*app.App, error) {
		cfg, err := flags.config()
		if err != nil {
			return nil, err
		}
		slog.Debug("CLI parameter validation complete.")
		return app.NewApp(outW, errW, cfg, hcl_adapter.NewLoader(), environ), nil
	}

	root.AddCommand(
		newShowCommand(newApp),
		newGetCommand(newApp),
		newDiffCommand(newApp),
		newPosCommand(newApp),
	)
	return root
}

func (f *globalFlags) config() (*app.Config, error) {
	cfg, err := app.NewConfig(app.Config{
		EnvPrefix:    f.envPrefix,
		LogFormat:    strings.ToLower(f.logFormat),
		LogLevel:     strings.ToLower(f.logLevel),
		OutputFormat: strings.ToLower(f.format),
	})
	if err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}

type appFactory func() (*app.App, error)

func newShowCommand(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "show PATH...",
		Short: "Print the merged options of files or directories",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.Show(cmd.Context(), args...)
		},
	}
}

func newGetCommand(newApp appFactory) *cobra.Command {
	var key, kind, def string

	cmd := &cobra.Command{
		Use:   "get PATH... --key NAME",
		Short: "Print one option as a given kind, falling back to a default",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := name.Parse(key)
			if err != nil {
				return usageError(fmt.Errorf("invalid --key: %w", err))
			}
			k, ok := kvmap.ParseKind(strings.ToLower(kind))
			if !ok {
				return usageError(fmt.Errorf("invalid --type %q: must be string, bool, name, nat or int", kind))
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.Get(cmd.Context(), args, n, k, def)
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "dotted option name (required)")
	cmd.Flags().StringVar(&kind, "type", "string", "value kind: string|bool|name|nat|int")
	cmd.Flags().StringVar(&def, "default", "", "value printed when the option is missing or of another kind")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func newDiffCommand(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "diff LEFT RIGHT",
		Short: "Compare two option sets regardless of entry order",
		Long:  "Prints equivalent, subset, superset or different. Exits with code 3 when neither side contains the other.",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			rel, err := a.Compare(cmd.Context(), []string{args[0]}, []string{args[1]})
			if err != nil {
				return err
			}
			if rel == app.Different {
				return &ExitError{Code: CodeDifferent, Message: "option sets differ"}
			}
			return nil
		},
	}
}

func newPosCommand(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "pos FILE OFFSET...",
		Short: "Translate byte offsets into line:column positions",
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			offsets := make([]int, 0, len(args)-1)
			for _, raw := range args[1:] {
				off, err := strconv.Atoi(raw)
				if err != nil || off < 0 {
					return usageError(fmt.Errorf("invalid offset %q: must be a non-negative integer", raw))
				}
				offsets = append(offsets, off)
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.Locate(cmd.Context(), args[0], offsets)
		},
	}
}
