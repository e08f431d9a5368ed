package main

import (
	"context"
	"os"

	"finpulse/internal/server"
	"finpulse/internal/trace"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(f *flags) *cobra.Command {
	var addr, scores string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sentiment summaries for the dashboard",
		Long: `Run a summary API aggregating pre-labelled scores.

Scores come from a YAML list (--scores or scores_file in config), re-read on
every request. Without one, a built-in sample is served.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.ServeAddr = addr
			}
			if cmd.Flags().Changed("scores") {
				cfg.ScoresFile = scores
			}
			logger := newLogger(os.Stderr, cfg.LogLevel)

			ctx := cmd.Context()
			tp, err := trace.Setup(ctx, "server")
			if err != nil {
				return err
			}
			defer tp.Shutdown(context.Background())

			gin.SetMode(gin.ReleaseMode)
			src := server.SourceFor(cfg.ScoresFile)
			logger.Info("serving summaries", "addr", cfg.ServeAddr, "scores", cfg.ScoresFile)
			return server.New(src, version, logger).Run(ctx, cfg.ServeAddr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&scores, "scores", "", "YAML file of labelled scores")
	return cmd
}
