package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/faizmokh/daftar/internal/codec"
	"github.com/faizmokh/daftar/internal/locale"
	"github.com/faizmokh/daftar/internal/nav"
	"github.com/faizmokh/daftar/internal/roster"
)

func newOpenCommand(ctx context.Context, opts *rootOptions) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "open <route>",
		Short: "Resolve a route and show its screen.",
		Long:  "open accepts home or resultContent/?listData=<payload> and prints that screen. With --tui the interactive app starts there instead.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			navigator, dest, err := resolveRoute(args[0])
			if err != nil {
				return err
			}

			if interactive {
				return runTUI(ctx, cmd.ErrOrStderr(), opts, navigator)
			}

			sess, err := opts.open()
			if err != nil {
				return err
			}
			defer sess.close(cmd.ErrOrStderr())
			sess.logger.Info("open", "route", dest.Route, "screen", dest.Screen.String(), "id", dest.ID.String())

			empty := sess.strings.Get(locale.NoEntries)
			switch dest.Screen {
			case nav.ScreenResult:
				res := codec.Decode(dest.Arg(nav.ArgListData))
				if !res.OK() {
					sess.logger.Warn("decode payload", "id", dest.ID.String(), "err", res.Err)
				}
				printEntries(cmd, sess.strings.Get(locale.ResultTitle), res.List(), empty)
			default:
				printEntries(cmd, sess.strings.Get(locale.EnterItem), roster.Initial().Entries(), empty)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&interactive, "tui", false, "Start the interactive app at the route")

	return cmd
}

// resolveRoute returns a navigator positioned on route. Home routes reuse the
// root destination instead of stacking a second home on top of it.
func resolveRoute(route string) (*nav.Navigator, nav.Destination, error) {
	navigator := nav.New()

	dest, err := nav.Parse(route)
	if err != nil {
		return nil, nav.Destination{}, err
	}
	if dest.Screen == nav.ScreenHome {
		return navigator, navigator.Current(), nil
	}

	dest, err = navigator.Navigate(route)
	if err != nil {
		return nil, nav.Destination{}, err
	}
	return navigator, dest, nil
}
