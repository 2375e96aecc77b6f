package main

import (
	"os"
	"os/signal"
	"time"

	"github.com/akyairhashvil/profilecard/internal/config"
	"github.com/akyairhashvil/profilecard/internal/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	theme      string
	verbose    bool
	logFile    string
	timeout    time.Duration
	progress   bool
	pdfPath    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	logger := zap.NewNop()

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Print a personal profile card with live activity",
		Long: `Prints a bordered card with contact details and the latest activity
pulled from each configured feed. Feeds that cannot be reached show their
fallback text instead.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := util.NewLogger(opts.verbose, opts.logFile)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return run(ctx, *opts, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "profile file (default "+util.ConfigPath(config.AppName, config.ConfigFileName)+")")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	root.Flags().StringVarP(&opts.theme, "theme", "t", "", "color theme (default, dracula, mono)")
	root.Flags().DurationVar(&opts.timeout, "timeout", config.RequestTimeout, "per-source request timeout")
	root.Flags().BoolVarP(&opts.progress, "progress", "p", false, "show fetch progress on stderr")
	root.Flags().StringVar(&opts.pdfPath, "pdf", "", "also write the card as a PDF to this path")

	root.AddCommand(newInitCmd(opts), newVersionCmd())
	return root
}
