package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/daftar/internal/nav"
	"github.com/faizmokh/daftar/internal/roster"
	"github.com/faizmokh/daftar/internal/ui"
	"github.com/faizmokh/daftar/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "daftar",
		Short:   "Build a list of names and hand it to a result screen.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(ctx, cmd.ErrOrStderr(), opts, nav.New())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config.toml (default: $DAFTAR_HOME/config.toml)")
	flags.StringVar(&opts.lang, "lang", "", "UI language, e.g. en or id (default: from config)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write JSON logs to this file (default: from config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (default: from config)")

	cmd.AddCommand(
		newEncodeCommand(opts),
		newDecodeCommand(opts),
		newOpenCommand(ctx, opts),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).Execute()
}

// Main is a helper used by cmd/daftar/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(ctx context.Context, errOut io.Writer, opts *rootOptions, navigator *nav.Navigator) error {
	sess, err := opts.open()
	if err != nil {
		return err
	}
	defer sess.close(errOut)

	m := ui.NewModel(ui.Options{
		Store:     roster.Initial(),
		Navigator: navigator,
		Strings:   sess.strings,
		Logger:    sess.logger,
	})
	defer m.Close()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if sess.cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	sess.logger.Info("tui start", "route", navigator.Current().Route)
	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
