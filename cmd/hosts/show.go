package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/hosts/pkg/adapters/fs"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the hosts file as it would be saved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := openService()
		if err != nil {
			return fmt.Errorf("opening hosts file: %w", err)
		}

		lines, err := service.Lines(cmd.Context())
		if err != nil {
			return err
		}

		data, err := fs.NewHostsSerializer(false).Serialize(lines)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the hosts file being edited",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := openService()
		if err != nil {
			return fmt.Errorf("opening hosts file: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), service.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pathCmd)
}
