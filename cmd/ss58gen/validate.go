package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ss58-project/ss58gen/cmd/cli"
	"github.com/ss58-project/ss58gen/common/log"
	"github.com/ss58-project/ss58gen/registry"
)

func NewValidateCmd(parentCmd *cobra.Command, parentVc *viper.Viper) *cobra.Command {
	cmd, vc := cli.NewCommand(parentCmd, parentVc, "validate",
		"Validate the registry document")

	flags := cmd.Flags()
	flags.StringP("registry", "r", DefaultRegistryPath, "Registry document path")
	cli.BindPFlags(vc, flags)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := log.WithFields(log.Fields{log.FieldKeyModule: "validate"})

		path := vc.GetString("registry")
		reg, err := registry.Load(path)
		if err != nil {
			return err
		}
		logger.Debugf("loaded %d entries from %s", reg.Len(), path)

		if _, err := registry.Validate(reg); err != nil {
			return err
		}
		logger.Infof("registry %s is valid (%d entries)", path, reg.Len())
		return nil
	}
	return cmd
}
