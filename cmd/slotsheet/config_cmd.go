package main

import (
	"fmt"

	"github.com/Nomadcxx/slotsheet/internal/config"
	"github.com/Nomadcxx/slotsheet/internal/ui"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage slotsheet configuration",
		Long: `Commands for managing slotsheet configuration.

The config file is stored at: ~/.config/slotsheet/config.toml
Every key can also be set through the environment, e.g.
SLOTSHEET_LOGGING_LEVEL=debug or SLOTSHEET_SERVE_ADDR=:9000.

Examples:
  slotsheet config init              # Create default config file
  slotsheet config show              # Display effective configuration
  slotsheet config path              # Show config file path`,
	}

	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))
	cmd.AddCommand(newConfigPathCmd(opts))

	return cmd
}

func newConfigInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create default configuration file",
		Annotations: map[string]string{annotationConfigOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath(opts)
			if err != nil {
				return err
			}
			if config.ConfigExists(path) && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			if err := config.DefaultConfig().Save(path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			ui.SuccessMsg(cmd.OutOrStdout(), "Created config at %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing config")

	return cmd
}

func newConfigShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), opts.cfg.ToTOML())
		},
	}
}

func newConfigPathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Show the config file path",
		Annotations: map[string]string{annotationConfigOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func configFilePath(opts *options) (string, error) {
	if opts.cfgFile != "" {
		return opts.cfgFile, nil
	}
	return config.ConfigPath()
}
