package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vsalert/internal/config"
	"github.com/alexisbeaulieu97/vsalert/internal/logger"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "vsalert",
		Short:         "vsalert shows modal alerts in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newLayoutCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger builds the command logger. Entries go to the command's stderr so
// they never mix with the alert or the command's output.
func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	level := f.logLevel
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
}

func (f *rootFlags) loadConfig() (*config.Config, error) {
	if f.configPath == "" {
		return &config.Config{}, nil
	}
	return config.ParseConfig(f.configPath)
}
