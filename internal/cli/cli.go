// Package cli implements the command-line interface for winpath.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EmergencyTemporalShift/Winpath/internal/config"
	"github.com/EmergencyTemporalShift/Winpath/internal/host"
	"github.com/EmergencyTemporalShift/Winpath/internal/logging"
	"github.com/EmergencyTemporalShift/Winpath/internal/types"
	"github.com/EmergencyTemporalShift/Winpath/internal/validation"
)

type AppContext struct {
	Config *config.Config
	Logger *logging.Logger
	Host   *host.Client
}

var appCtx *AppContext

func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "winpath [flags] [--] <path>",
		Short: "Convert a Wine path to the host path and act on it",
		Long: `winpath converts a Windows-style path from a Wine prefix into the
equivalent host path, then opens it in the file browser (default),
prints it, or copies it to the clipboard.

Flags are read from the front of the argument list only; the first
token that does not start with "-", or a literal "--", ends flag
parsing and the next token is taken as the path.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Example: `  winpath 'Z:\home\user\.local\share\Steam'
  winpath -o 'Z:\home\user\file'
  winpath -c -- 'Z:\strange\-o'`,
		// The argument grammar (prefix-only flags, silently ignored
		// unknown dash tokens, rightmost precedence) is hand-parsed;
		// pflag would reject or mis-consume those token sequences.
		DisableFlagParsing: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			appCtx, err = initContext()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseArgs(args)
			if err != nil {
				return err
			}
			if opts.ShowHelp {
				fmt.Fprint(cmd.OutOrStdout(), usageText)
				return nil
			}
			if opts.ShowVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "winpath version %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
				return nil
			}
			return run(getContext(), cmd.OutOrStdout(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

func initContext() (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := validation.ValidateCommandName(cfg.Opener); err != nil {
		return nil, &types.AppError{
			Op:   "config",
			Tool: validation.SanitizeString(cfg.Opener),
			Err:  types.ErrInvalidOpener,
			Help: "WINPATH_OPENER must name an executable, e.g. xdg-open or gio.",
		}
	}

	logger := logging.New(cfg.Quiet, cfg.Debug)
	hostClient := host.NewClient(logger, cfg.Opener, cfg.CopyTimeout)

	return &AppContext{
		Config: cfg,
		Logger: logger,
		Host:   hostClient,
	}, nil
}

func getContext() *AppContext { return appCtx }
