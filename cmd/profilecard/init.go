package main

import (
	"fmt"
	"os"

	"github.com/akyairhashvil/profilecard/internal/config"
	"github.com/akyairhashvil/profilecard/internal/util"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in profile to the config file for editing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = util.ConfigPath(config.AppName, config.ConfigFileName)
			}
			path = util.ExpandPath(path)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Write(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote profile to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing profile")
	return cmd
}
