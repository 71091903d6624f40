package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ss58-project/ss58gen/cmd/cli"
	"github.com/ss58-project/ss58gen/common/log"
)

const (
	DefaultRegistryPath = "ss58-registry.json"
)

func main() {
	rootCmd, rootVc := cli.NewCommand(nil, nil, "ss58gen",
		"SS58 registry validation and artifact generation")
	rootCmd.SilenceUsage = true

	logger := log.GlobalLogger()

	flags := rootCmd.PersistentFlags()
	flags.String("log_level", "debug", "Global log level (trace,debug,info,warn,error,fatal,panic)")
	flags.String("console_level", "info", "Console log level (trace,debug,info,warn,error,fatal,panic)")
	flags.String("log_file", "", "Log file path (rotated)")
	flags.StringToString("mod_level", nil, "Set console log level for specific module ('mod'='level',...)")
	cli.BindPFlags(rootVc, flags)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if lv, err := log.ParseLevel(rootVc.GetString("log_level")); err != nil {
			return err
		} else {
			logger.SetLevel(lv)
		}
		if lv, err := log.ParseLevel(rootVc.GetString("console_level")); err != nil {
			return err
		} else {
			logger.SetConsoleLevel(lv)
		}
		for mod, lvStr := range rootVc.GetStringMapString("mod_level") {
			if lv, err := log.ParseLevel(lvStr); err != nil {
				return err
			} else {
				logger.SetModuleLevel(mod, lv)
			}
		}
		if name := rootVc.GetString("log_file"); name != "" {
			writer, err := log.NewWriter(&log.WriterConfig{
				Filename: name,
			})
			if err != nil {
				return err
			}
			if err := logger.SetFileWriter(writer); err != nil {
				return err
			}
		}
		return nil
	}

	NewValidateCmd(rootCmd, rootVc)
	NewGenCmd(rootCmd, rootVc)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
