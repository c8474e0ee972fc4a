package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/myrison/invoicedesk/internal/desktop"
	"github.com/myrison/invoicedesk/internal/webviewcache"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the cache guard state",
		Args:  cobra.NoArgs,
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
			cacheDir, cacheErr := opts.resolveCacheDir()

			version := desktop.CurrentVersion()
			store := webviewcache.NewFileMarkerStore()
			marker, hasMarker := store.Read(localDir)

			fmt.Fprintf(out, "platform:    %s\n", p)
			fmt.Fprintf(out, "strategy:    %s (mode %s)\n", strategy.Name(), mode)
			fmt.Fprintf(out, "version:     %s\n", version)
			fmt.Fprintf(out, "local data:  %s\n", localDir)
			if cacheErr != nil {
				fmt.Fprintf(out, "cache:       (unresolved: %v)\n", cacheErr)
			} else {
				fmt.Fprintf(out, "cache:       %s\n", cacheDir)
			}
			if hasMarker {
				fmt.Fprintf(out, "marker:      %s (%s)\n", marker, store.Path(localDir))
			} else {
				fmt.Fprintf(out, "marker:      (none)\n")
			}

			_, noop := strategy.(webviewcache.NoopStrategy)
			switch {
			case noop:
				fmt.Fprintln(out, "next launch: no-op on this platform")
			case hasMarker && marker == version:
				fmt.Fprintln(out, "next launch: no-op, marker matches this build")
			default:
				fmt.Fprintln(out, "next launch: purge cache folders")
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "cache folders:")
			if err := printTargets(out, localDir); err != nil {
				return err
			}
			if cacheErr == nil {
				if err := printTargets(out, cacheDir); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printTargets(out io.Writer, baseDir string) error {
	found, err := webviewcache.ExistingTargets(baseDir, webviewcache.DefaultDirNames)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Fprintf(out, "  none under %s\n", baseDir)
		return nil
	}
	for _, path := range found {
		fmt.Fprintf(out, "  present  %s\n", path)
	}
	return nil
}
