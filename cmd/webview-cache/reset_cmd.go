package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myrison/invoicedesk/internal/webviewcache"
)

func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove the version marker so the next launch clears the caches",
		Long: `Remove the version marker so the next launch clears the caches.

The cache folders themselves are left alone: WebView2 keeps them open while
InvoiceDesk is running, so they are deleted by the app on its next start.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			p, mode, strategy, err := opts.resolveStrategy(cmd)
			if err != nil {
				return err
			}

			localDir, err := opts.resolveLocalDataDir()
			if err != nil {
				return fmt.Errorf("failed to resolve local data directory: %w", err)
			}

			store := webviewcache.NewFileMarkerStore()
			if err := store.Remove(localDir); err != nil {
				return fmt.Errorf("failed to reset marker: %w", err)
			}
			fmt.Fprintf(out, "✓ Removed %s\n", store.Path(localDir))

			if _, noop := strategy.(webviewcache.NoopStrategy); noop {
				fmt.Fprintf(out, "⚠ The cache guard does not run on %s (mode %s); nothing will be cleared\n", p, mode)
				return nil
			}
			fmt.Fprintln(out, "Cache folders will be cleared on the next launch")
			return nil
		},
	}
}
