package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	removeRegex bool
	removeGlob  bool
)

var removeCmd = &cobra.Command{
	Use:   "remove <ip> [hostname]",
	Short: "Remove mappings for an ip",
	Long: `Remove deletes every mapping of ip. With a hostname only that name is
removed; --regex and --glob turn the hostname into a pattern.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := hostnameFilter(args[1:], removeRegex, removeGlob)
		if err != nil {
			return err
		}

		service, err := openService()
		if err != nil {
			return fmt.Errorf("opening hosts file: %w", err)
		}

		if err := service.Remove(cmd.Context(), args[0], filter); err != nil {
			return err
		}

		if filter == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %s\n", args[0], filter)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVar(&removeRegex, "regex", false, "Treat hostname as a regular expression")
	removeCmd.Flags().BoolVar(&removeGlob, "glob", false, "Treat hostname as a glob pattern")
}
