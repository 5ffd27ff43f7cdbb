package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <ip> <hostname>",
	Short: "Map a hostname to an ip",
	Long:  `Add appends the mapping unless the exact same ip/hostname pair already exists.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := openService()
		if err != nil {
			return fmt.Errorf("opening hosts file: %w", err)
		}

		if err := service.Add(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
