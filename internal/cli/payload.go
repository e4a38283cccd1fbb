package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/daftar/internal/codec"
	"github.com/faizmokh/daftar/internal/locale"
	"github.com/faizmokh/daftar/internal/nav"
	"github.com/faizmokh/daftar/internal/roster"
)

func newEncodeCommand(opts *rootOptions) *cobra.Command {
	var (
		seedFlag  bool
		routeFlag bool
	)

	cmd := &cobra.Command{
		Use:   "encode [name ...]",
		Short: "Encode names into a result route payload.",
		Long:  "encode serializes the names in order and percent-encodes them. Blank names are skipped, as on the home screen.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open()
			if err != nil {
				return err
			}
			defer sess.close(cmd.ErrOrStderr())

			store := roster.NewStore()
			if seedFlag {
				store = roster.Initial()
			}
			for _, name := range args {
				if !store.Append(name) {
					sess.logger.Debug("skip blank name")
				}
			}

			payload := codec.Encode(store.Entries())
			sess.logger.Info("encode", "entries", store.Len(), "bytes", len(payload))

			if routeFlag {
				fmt.Fprintln(cmd.OutOrStdout(), nav.ResultRoute(payload))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), payload)
			return nil
		},
	}

	cmd.Flags().BoolVar(&seedFlag, "seed", false, "Start from the seeded list (Tanu, Tina, Tono)")
	cmd.Flags().BoolVar(&routeFlag, "route", false, "Print the full result route instead of the bare payload")

	return cmd
}

func newDecodeCommand(opts *rootOptions) *cobra.Command {
	var (
		outputJSON bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "decode <payload>",
		Short: "Decode a result route payload.",
		Long:  "decode prints the names carried by a payload. Unreadable payloads print an empty list unless --strict is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open()
			if err != nil {
				return err
			}
			defer sess.close(cmd.ErrOrStderr())

			res := codec.Decode(args[0])
			if !res.OK() {
				if strict {
					return fmt.Errorf("decode payload: %w", res.Err)
				}
				sess.logger.Warn("decode payload", "err", res.Err)
			}

			if outputJSON {
				return printEntriesJSON(cmd, res.List())
			}
			printEntries(cmd, "", res.List(), sess.strings.Get(locale.NoEntries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit the decoded list as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail instead of falling back to an empty list")

	return cmd
}

func printEntriesJSON(cmd *cobra.Command, entries []roster.Entry) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(entries)
}
