package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"finpulse/internal/client"
	"finpulse/internal/trace"

	"github.com/spf13/cobra"
)

func newFetchCmd(f *flags) *cobra.Command {
	var asJSON, strict bool
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the summary once and print it",
		Long: `Perform a single acquisition, exactly as one dashboard poll does, and print the result.

Failures print the fallback summary unless --strict is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			logger := newLogger(os.Stderr, cfg.LogLevel)

			ctx := cmd.Context()
			tp, err := trace.Setup(ctx, "fetch")
			if err != nil {
				return err
			}
			defer tp.Shutdown(context.Background())

			c := client.New(cfg.SummaryURL(), cfg.Timeout,
				client.WithTracer(tp.Tracer("finpulse/client")),
				client.WithLogger(logger),
			)

			var snap client.Snapshot
			if strict {
				s, err := c.Fetch(ctx)
				if err != nil {
					return fmt.Errorf("fetching %s: %w", c.URL(), err)
				}
				snap.Summary = s
			} else {
				snap = client.NewPoller(c, logger).Acquire(ctx)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(snap.Summary)
			}
			_, err = fmt.Fprintln(out, snap.Summary.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of printing the fallback")
	return cmd
}
