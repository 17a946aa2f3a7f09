// Package cli wires the sigil commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/door66/sigil/internal/adapters/config"
	"github.com/door66/sigil/pkg/logger"
)

type rootOptions struct {
	configPath string
	verbose    bool

	cfg *config.Config
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "sigil",
		Short:        "Render stylized QR codes and print sheets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.verbose {
				cfg.Debug = true
			}
			if err := logger.Init(logger.Config{
				Debug:     cfg.Debug,
				LogToFile: cfg.LogToFile,
				LogsDir:   cfg.LogsDir,
			}); err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newRenderCmd(opts),
		newSheetCmd(opts),
	)
	return cmd
}
