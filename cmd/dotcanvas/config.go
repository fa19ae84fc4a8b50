package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dotcanvas/internal/settings"
	"dotcanvas/internal/shell"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the grid config file",
	}
	cmd.AddCommand(newConfigInitCommand(), newConfigShowCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := shell.ConfigName
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := settings.SaveFile(path, settings.Defaults()); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var dev bool
	var configPath string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved config",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := shell.DetectMode(os.Getenv)
			if dev {
				mode = shell.Development
			}
			src, err := shell.Resolve(mode, configPath)
			if err != nil {
				return err
			}
			c, err := src.Load()
			if err != nil {
				return err
			}
			data, err := settings.Marshal(c)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s config from %s\n", src.Mode, src.Path)
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&dev, "dev", false, "Resolve as in development mode")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file to read")
	return cmd
}
