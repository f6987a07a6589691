package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cognicore/artikel/internal/logger"
	"github.com/cognicore/artikel/pkg/artikel/config"
)

// rootOptions is shared by all subcommands.
type rootOptions struct {
	cfgFile  string
	logLevel string

	settings *config.Settings
	log      *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: logger.GetLogger()}

	cmd := &cobra.Command{
		Use:          "artikel",
		Short:        "artikel finds missing English articles and suggests fixes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default ./artikel.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newDictCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// load reads settings and applies the log level.
func (o *rootOptions) load() error {
	s, err := config.LoadSettings(o.cfgFile)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		s.Log.Level = o.logLevel
	}
	if err := logger.SetLogLevel(s.Log.Level); err != nil {
		return err
	}
	o.settings = s
	return nil
}
